package service

import (
	"context"
	log "log/slog"
	"mime/multipart"
	"strings"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/consts"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/minio"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/util"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
)

// UpdateService manages the owner-posted development timeline on an issue.
// Every mutation fans a notification out to followers.
type UpdateService interface {
	ListUpdates(ctx context.Context, issueID uint64) ([]*dto.IssueUpdateDTO, error)
	CreateUpdate(ctx context.Context, userID uint64, username string, issueID uint64, req *dto.CreateUpdateDTO, files []*multipart.FileHeader) (*dto.CreateUpdateResultDTO, error)
	EditUpdate(ctx context.Context, userID uint64, username string, updateID uint64, req *dto.PatchUpdateDTO) (*dto.IssueUpdateDTO, error)
	DeleteUpdate(ctx context.Context, userID uint64, username string, updateID uint64) (*dto.DeleteUpdateResultDTO, error)
}

type UpdateServiceImpl struct {
	updateRepo repository.IssueUpdateRepo
	issueRepo  repository.IssueRepo
	notifier   NotifierService
}

func NewUpdateService(updateRepo repository.IssueUpdateRepo, issueRepo repository.IssueRepo, notifier NotifierService) UpdateService {
	return &UpdateServiceImpl{
		updateRepo: updateRepo,
		issueRepo:  issueRepo,
		notifier:   notifier,
	}
}

func (s *UpdateServiceImpl) ListUpdates(ctx context.Context, issueID uint64) ([]*dto.IssueUpdateDTO, error) {
	issue, err := s.issueRepo.GetIssueByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, ErrIssueNotFound
	}

	rows, err := s.updateRepo.ListByIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.IssueUpdateDTO, 0, len(rows))
	for _, row := range rows {
		item, err := s.toUpdateDTO(ctx, row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *UpdateServiceImpl) CreateUpdate(ctx context.Context, userID uint64, username string, issueID uint64, req *dto.CreateUpdateDTO, files []*multipart.FileHeader) (*dto.CreateUpdateResultDTO, error) {
	issue, err := s.issueRepo.GetIssueByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, ErrIssueNotFound
	}
	if issue.UserID != userID {
		return nil, ErrNotOwner
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrParamInvalid
	}
	content = util.TruncateRunes(content, consts.MaxUpdateLen)

	update := &model.IssueUpdate{
		IssueID: issueID,
		UserID:  userID,
		Title:   normalizeUpdateTitle(req.Title),
		Content: content,
	}
	if len(files) > consts.MaxFilesPerUpload {
		return nil, ErrTooManyFiles
	}
	if err := s.updateRepo.CreateUpdate(ctx, update); err != nil {
		return nil, err
	}

	for _, fh := range files {
		objectName, mime, err := storeUpload(ctx, fh, consts.MaxAttachmentSize, nil)
		if err != nil {
			return nil, err
		}
		att := &model.IssueUpdateAttachment{
			UpdateID:     update.ID,
			Filename:     objectName,
			OriginalName: util.PtrString(fh.Filename),
			Mime:         mime,
			Kind:         util.KindFromMime(mime),
		}
		if err := s.updateRepo.CreateUpdateAttachment(ctx, att); err != nil {
			log.WarnContext(ctx, "update attachment insert failed", "update_id", update.ID, "err", err)
		}
	}

	s.notifier.NotifyFollowers(ctx, issueID, userID, NotificationTypeUpdate, &UpdatePayload{
		IssueID:    issueID,
		By:         username,
		Title:      update.Title,
		Content:    update.Content,
		IssueTitle: issue.Title,
	})

	row, err := s.updateRepo.GetUpdateRow(ctx, update.ID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrUpdateNotFound
	}
	inserted, err := s.toUpdateDTO(ctx, row)
	if err != nil {
		return nil, err
	}

	count, err := s.updateRepo.CountByIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	return &dto.CreateUpdateResultDTO{Inserted: inserted, UpdateCount: count}, nil
}

// EditUpdate only allows the owning issue's author, same as create.
func (s *UpdateServiceImpl) EditUpdate(ctx context.Context, userID uint64, username string, updateID uint64, req *dto.PatchUpdateDTO) (*dto.IssueUpdateDTO, error) {
	owner, err := s.updateRepo.GetUpdateWithOwner(ctx, updateID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUpdateNotFound
	}
	if owner.IssueOwner != userID {
		return nil, ErrNotOwner
	}

	content := owner.Content
	if req.Content != nil {
		trimmed := strings.TrimSpace(*req.Content)
		if trimmed == "" {
			return nil, ErrParamInvalid
		}
		content = util.TruncateRunes(trimmed, consts.MaxUpdateLen)
	}
	title := owner.Title
	if req.Title != nil {
		title = normalizeUpdateTitle(req.Title)
	}

	if err := s.updateRepo.UpdateTitleContent(ctx, updateID, title, content); err != nil {
		return nil, err
	}

	s.notifier.NotifyFollowers(ctx, owner.IssueID, userID, NotificationTypeUpdateEdit, &UpdateRefPayload{
		IssueID:  owner.IssueID,
		By:       username,
		UpdateID: updateID,
	})

	row, err := s.updateRepo.GetUpdateRow(ctx, updateID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrUpdateNotFound
	}
	return s.toUpdateDTO(ctx, row)
}

func (s *UpdateServiceImpl) DeleteUpdate(ctx context.Context, userID uint64, username string, updateID uint64) (*dto.DeleteUpdateResultDTO, error) {
	owner, err := s.updateRepo.GetUpdateWithOwner(ctx, updateID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUpdateNotFound
	}
	if owner.IssueOwner != userID {
		return nil, ErrNotOwner
	}

	if atts, err := s.updateRepo.ListUpdateAttachments(ctx, updateID); err == nil {
		for _, a := range atts {
			if err := minio.DeleteFile(ctx, a.Filename); err != nil {
				log.WarnContext(ctx, "delete update attachment object failed", "filename", a.Filename, "err", err)
			}
		}
	}
	if err := s.updateRepo.DeleteUpdateAttachments(ctx, updateID); err != nil {
		return nil, err
	}
	if err := s.updateRepo.DeleteUpdate(ctx, updateID); err != nil {
		return nil, err
	}

	s.notifier.NotifyFollowers(ctx, owner.IssueID, userID, NotificationTypeUpdateDelete, &UpdateRefPayload{
		IssueID:  owner.IssueID,
		By:       username,
		UpdateID: updateID,
	})

	count, err := s.updateRepo.CountByIssue(ctx, owner.IssueID)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteUpdateResultDTO{Deleted: true, UpdateCount: count}, nil
}

func (s *UpdateServiceImpl) toUpdateDTO(ctx context.Context, row *repository.UpdateRow) (*dto.IssueUpdateDTO, error) {
	atts, err := s.updateRepo.ListUpdateAttachments(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	attDTOs := make([]*dto.UpdateAttachmentDTO, 0, len(atts))
	for _, a := range atts {
		attDTOs = append(attDTOs, &dto.UpdateAttachmentDTO{
			ID:           a.ID,
			URL:          minio.GetPublicURL(a.Filename),
			OriginalName: a.OriginalName,
			Mime:         a.Mime,
			Kind:         a.Kind,
			CreatedAt:    a.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return &dto.IssueUpdateDTO{
		ID:          row.ID,
		Title:       row.Title,
		Content:     row.Content,
		Username:    row.Username,
		CreatedAt:   row.CreatedAt.Format("2006-01-02 15:04:05"),
		Attachments: attDTOs,
	}, nil
}

func normalizeUpdateTitle(title *string) *string {
	if title == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*title)
	if trimmed == "" {
		return nil
	}
	capped := util.TruncateRunes(trimmed, consts.MaxUpdateTitleLen)
	return &capped
}
