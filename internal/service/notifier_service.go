package service

import (
	"context"
	log "log/slog"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"

	"github.com/goccy/go-json"
)

// FanoutReport summarizes one fan-out pass.
type FanoutReport struct {
	Delivered int
	Failed    int
}

// NotifierService fans events out to an issue's followers. Delivery is best
// effort. A failed insert never fails the triggering request.
type NotifierService interface {
	NotifyFollowers(ctx context.Context, issueID, actorID uint64, notificationType string, payload any) FanoutReport
}

type NotifierServiceImpl struct {
	followerRepo     repository.FollowerRepo
	notificationRepo repository.NotificationRepo
}

func NewNotifierService(followerRepo repository.FollowerRepo, notificationRepo repository.NotificationRepo) NotifierService {
	return &NotifierServiceImpl{
		followerRepo:     followerRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *NotifierServiceImpl) NotifyFollowers(ctx context.Context, issueID, actorID uint64, notificationType string, payload any) FanoutReport {
	var report FanoutReport

	followerIDs, err := s.followerRepo.ListFollowerIDs(ctx, issueID)
	if err != nil {
		log.WarnContext(ctx, "notify: list followers failed", "issue_id", issueID, "err", err)
		return report
	}

	encoded, err := encodePayload(payload)
	if err != nil {
		log.WarnContext(ctx, "notify: encode payload failed", "issue_id", issueID, "type", notificationType, "err", err)
		return report
	}

	for _, followerID := range followerIDs {
		if followerID == actorID {
			continue
		}
		notification := &model.Notification{
			UserID:  followerID,
			IssueID: issueID,
			Type:    notificationType,
			Payload: encoded,
		}
		if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
			report.Failed++
			log.WarnContext(ctx, "notify: insert failed", "issue_id", issueID, "user_id", followerID, "err", err)
			continue
		}
		report.Delivered++
	}

	if report.Failed > 0 {
		log.WarnContext(ctx, "notify: partial fan-out",
			"issue_id", issueID, "type", notificationType,
			"delivered", report.Delivered, "failed", report.Failed)
	}
	return report
}

func encodePayload(payload any) (string, error) {
	if s, ok := payload.(string); ok {
		return s, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
