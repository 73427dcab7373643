package service

import (
	"context"
	log "log/slog"
	"strconv"
	"strings"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/consts"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/minio"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/redis"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/util"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"

	"github.com/jinzhu/copier"
)

const (
	issueListDefaultPageSize = 20
	issueListMaxPageSize     = 100
	userIssuesLimit          = 200
)

type IssueService interface {
	CreateIssue(ctx context.Context, userID uint64, req *dto.CreateIssueDTO) (*dto.IssueDTO, error)
	GetIssue(ctx context.Context, id uint64) (*dto.IssueDTO, error)
	ListIssues(ctx context.Context, filter repository.IssueFilter, page, pageSize int) (*dto.IssueListDTO, error)
	ListUserIssues(ctx context.Context, username string) ([]*dto.IssueDTO, error)
	PatchIssue(ctx context.Context, userID uint64, username string, id uint64, req *dto.PatchIssueDTO) (*dto.IssueDTO, error)
	DeleteIssue(ctx context.Context, userID, id uint64) error
	DeleteAllByUser(ctx context.Context, userID uint64) (int, error)
}

type IssueServiceImpl struct {
	issueRepo        repository.IssueRepo
	vehicleRepo      repository.VehicleRepo
	userRepo         repository.UserRepo
	commentRepo      repository.CommentRepo
	updateRepo       repository.IssueUpdateRepo
	mediaRepo        repository.MediaRepo
	followerRepo     repository.FollowerRepo
	notificationRepo repository.NotificationRepo
	notifier         NotifierService
}

func NewIssueService(
	issueRepo repository.IssueRepo,
	vehicleRepo repository.VehicleRepo,
	userRepo repository.UserRepo,
	commentRepo repository.CommentRepo,
	updateRepo repository.IssueUpdateRepo,
	mediaRepo repository.MediaRepo,
	followerRepo repository.FollowerRepo,
	notificationRepo repository.NotificationRepo,
	notifier NotifierService,
) IssueService {
	return &IssueServiceImpl{
		issueRepo:        issueRepo,
		vehicleRepo:      vehicleRepo,
		userRepo:         userRepo,
		commentRepo:      commentRepo,
		updateRepo:       updateRepo,
		mediaRepo:        mediaRepo,
		followerRepo:     followerRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
	}
}

func (s *IssueServiceImpl) CreateIssue(ctx context.Context, userID uint64, req *dto.CreateIssueDTO) (*dto.IssueDTO, error) {
	brand := strings.TrimSpace(req.Brand)
	vehicleModel := strings.TrimSpace(req.Model)
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if brand == "" || vehicleModel == "" || title == "" || description == "" {
		return nil, ErrParamInvalid
	}

	vehicleID, err := s.vehicleRepo.GetOrCreateVehicle(ctx, brand, vehicleModel)
	if err != nil {
		return nil, err
	}

	issue := &model.Issue{
		UserID:            userID,
		VehicleID:         vehicleID,
		Title:             util.TruncateRunes(title, consts.MaxTitleLen),
		IssueType:         req.IssueType,
		Description:       util.TruncateRunes(description, consts.MaxDescriptionLen),
		ServiceExperience: req.ServiceExperience,
		IssueLocation:     truncateLocation(req.IssueLocation),
		Status:            model.IssueStatusOpen,
	}
	if err := s.issueRepo.CreateIssue(ctx, issue); err != nil {
		return nil, err
	}

	return s.GetIssue(ctx, issue.ID)
}

func (s *IssueServiceImpl) GetIssue(ctx context.Context, id uint64) (*dto.IssueDTO, error) {
	row, err := s.issueRepo.GetIssueRow(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrIssueNotFound
	}
	return toIssueDTO(row), nil
}

func (s *IssueServiceImpl) ListIssues(ctx context.Context, filter repository.IssueFilter, page, pageSize int) (*dto.IssueListDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = issueListDefaultPageSize
	}
	if pageSize > issueListMaxPageSize {
		pageSize = issueListMaxPageSize
	}

	rows, total, err := s.issueRepo.ListIssues(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.IssueDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, toIssueDTO(row))
	}
	return &dto.IssueListDTO{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *IssueServiceImpl) ListUserIssues(ctx context.Context, username string) ([]*dto.IssueDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	rows, err := s.issueRepo.ListIssuesByUsername(ctx, username, userIssuesLimit)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.IssueDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, toIssueDTO(row))
	}
	return items, nil
}

// PatchIssue applies a partial edit by the issue owner. A real status
// transition fans a status notification out to followers.
func (s *IssueServiceImpl) PatchIssue(ctx context.Context, userID uint64, username string, id uint64, req *dto.PatchIssueDTO) (*dto.IssueDTO, error) {
	issue, err := s.issueRepo.GetIssueByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, ErrIssueNotFound
	}
	if issue.UserID != userID {
		return nil, ErrNotOwner
	}

	prevStatus := issue.Status

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		issue.Title = util.TruncateRunes(strings.TrimSpace(*req.Title), consts.MaxTitleLen)
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, ErrParamInvalid
		}
		issue.Description = util.TruncateRunes(description, consts.MaxDescriptionLen)
	}
	if req.IssueType != nil {
		issue.IssueType = req.IssueType
	}
	if req.Status != nil {
		if *req.Status != model.IssueStatusOpen && *req.Status != model.IssueStatusResolved {
			return nil, ErrStatusInvalid
		}
		issue.Status = *req.Status
	}
	if req.Solution != nil {
		issue.Solution = req.Solution
	}
	if req.ServiceExperience != nil {
		issue.ServiceExperience = req.ServiceExperience
	}
	if req.IssueLocation != nil {
		issue.IssueLocation = truncateLocation(req.IssueLocation)
	}

	if err := s.issueRepo.UpdateIssue(ctx, issue); err != nil {
		return nil, err
	}

	if prevStatus != issue.Status {
		s.notifier.NotifyFollowers(ctx, id, userID, NotificationTypeStatus, &StatusPayload{
			IssueID:    id,
			By:         username,
			From:       prevStatus,
			To:         issue.Status,
			IssueTitle: issue.Title,
		})
	}

	return s.GetIssue(ctx, id)
}

// DeleteIssue removes the issue and everything hanging off it: media objects,
// comments, developments and their attachments, follower rows and pending
// notifications.
func (s *IssueServiceImpl) DeleteIssue(ctx context.Context, userID, id uint64) error {
	issue, err := s.issueRepo.GetIssueByID(ctx, id)
	if err != nil {
		return err
	}
	if issue == nil {
		return ErrIssueNotFound
	}
	if issue.UserID != userID {
		return ErrNotOwner
	}
	return s.deleteIssueCascade(ctx, id)
}

// DeleteAllByUser bulk-deletes every issue the user owns and reports how
// many went through. One failed issue does not stop the rest.
func (s *IssueServiceImpl) DeleteAllByUser(ctx context.Context, userID uint64) (int, error) {
	ids, err := s.issueRepo.ListIssueIDsByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, id := range ids {
		if err := s.deleteIssueCascade(ctx, id); err != nil {
			log.WarnContext(ctx, "bulk delete: issue failed", "issue_id", id, "err", err)
			continue
		}
		deleted++
	}
	return deleted, nil
}

func (s *IssueServiceImpl) deleteIssueCascade(ctx context.Context, id uint64) error {
	s.removeStoredMedia(ctx, id)

	if err := s.mediaRepo.DeletePhotosByIssue(ctx, id); err != nil {
		return err
	}
	if err := s.mediaRepo.DeleteAttachmentsByIssue(ctx, id); err != nil {
		return err
	}
	if err := s.updateRepo.DeleteAttachmentsByIssue(ctx, id); err != nil {
		return err
	}
	if err := s.updateRepo.DeleteByIssue(ctx, id); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteByIssue(ctx, id); err != nil {
		return err
	}
	if err := s.followerRepo.DeleteByIssue(ctx, id); err != nil {
		return err
	}
	if err := s.notificationRepo.DeleteByIssue(ctx, id); err != nil {
		return err
	}
	if err := s.issueRepo.DeleteIssue(ctx, id); err != nil {
		return err
	}

	_ = redis.DeleteKey(ctx, consts.IssueFollowerCountKey+strconv.FormatUint(id, 10))
	return nil
}

// removeStoredMedia clears the object store. Best effort, rows go regardless.
func (s *IssueServiceImpl) removeStoredMedia(ctx context.Context, issueID uint64) {
	if photos, err := s.mediaRepo.ListPhotosByIssue(ctx, issueID); err == nil {
		for _, p := range photos {
			if err := minio.DeleteFile(ctx, p.Filename); err != nil {
				log.WarnContext(ctx, "delete photo object failed", "filename", p.Filename, "err", err)
			}
		}
	}
	if atts, err := s.mediaRepo.ListAttachmentsByIssue(ctx, issueID); err == nil {
		for _, a := range atts {
			if err := minio.DeleteFile(ctx, a.Filename); err != nil {
				log.WarnContext(ctx, "delete attachment object failed", "filename", a.Filename, "err", err)
			}
		}
	}
	if atts, err := s.updateRepo.ListAttachmentsByIssue(ctx, issueID); err == nil {
		for _, a := range atts {
			if err := minio.DeleteFile(ctx, a.Filename); err != nil {
				log.WarnContext(ctx, "delete update attachment object failed", "filename", a.Filename, "err", err)
			}
		}
	}
}

func truncateLocation(location *string) *string {
	if location == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*location)
	if trimmed == "" {
		return nil
	}
	capped := util.TruncateRunes(trimmed, consts.MaxLocationLen)
	return &capped
}

func toIssueDTO(row *repository.IssueRow) *dto.IssueDTO {
	out := &dto.IssueDTO{}
	_ = copier.Copy(out, row)
	out.CreatedAt = row.CreatedAt.Format("2006-01-02 15:04:05")
	out.UpdatedAt = row.UpdatedAt.Format("2006-01-02 15:04:05")
	return out
}
