package job

import (
	"context"
	log "log/slog"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
)

// OrphanSweepJob removes follower, notification and update rows whose issue
// has been deleted. Issue deletion cascades inline, so this only catches rows
// left behind by partial failures.
type OrphanSweepJob struct {
	followerRepo     repository.FollowerRepo
	notificationRepo repository.NotificationRepo
	updateRepo       repository.IssueUpdateRepo
}

func NewOrphanSweepJob(
	followerRepo repository.FollowerRepo,
	notificationRepo repository.NotificationRepo,
	updateRepo repository.IssueUpdateRepo,
) *OrphanSweepJob {
	return &OrphanSweepJob{
		followerRepo:     followerRepo,
		notificationRepo: notificationRepo,
		updateRepo:       updateRepo,
	}
}

func (s *OrphanSweepJob) Run() {
	ctx := context.Background()
	log.Info("start orphan sweep job")

	followers, err := s.followerRepo.DeleteOrphans(ctx)
	if err != nil {
		log.Error("failed to sweep orphan followers", "err", err)
	}

	notifications, err := s.notificationRepo.DeleteOrphans(ctx)
	if err != nil {
		log.Error("failed to sweep orphan notifications", "err", err)
	}

	updates, err := s.updateRepo.DeleteOrphanUpdates(ctx)
	if err != nil {
		log.Error("failed to sweep orphan updates", "err", err)
	}

	// Attachment rows depend on updates, so sweep them after.
	attachments, err := s.updateRepo.DeleteOrphanAttachments(ctx)
	if err != nil {
		log.Error("failed to sweep orphan update attachments", "err", err)
	}

	log.Info("orphan sweep job finished",
		"followers", followers,
		"notifications", notifications,
		"updates", updates,
		"attachments", attachments,
	)
}
