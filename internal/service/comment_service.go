package service

import (
	"context"
	"strings"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/consts"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/util"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
)

const commentListLimit = 500

type CommentService interface {
	ListComments(ctx context.Context, issueID uint64) ([]*dto.CommentDTO, error)
	CreateComment(ctx context.Context, userID uint64, username string, issueID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, userID, id uint64, req *dto.UpdateCommentDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID, id uint64) error
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	issueRepo   repository.IssueRepo
	notifier    NotifierService
}

func NewCommentService(commentRepo repository.CommentRepo, issueRepo repository.IssueRepo, notifier NotifierService) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		issueRepo:   issueRepo,
		notifier:    notifier,
	}
}

func (s *CommentServiceImpl) ListComments(ctx context.Context, issueID uint64) ([]*dto.CommentDTO, error) {
	if err := s.checkIssue(ctx, issueID); err != nil {
		return nil, err
	}
	rows, err := s.commentRepo.ListByIssue(ctx, issueID, commentListLimit)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.CommentDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, toCommentDTO(row))
	}
	return items, nil
}

func (s *CommentServiceImpl) CreateComment(ctx context.Context, userID uint64, username string, issueID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	issue, err := s.issueRepo.GetIssueByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, ErrIssueNotFound
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrParamInvalid
	}
	content = util.TruncateRunes(content, consts.MaxCommentLen)

	comment := &model.Comment{
		IssueID: issueID,
		UserID:  userID,
		Content: content,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.notifier.NotifyFollowers(ctx, issueID, userID, NotificationTypeComment, &CommentPayload{
		IssueID:    issueID,
		By:         username,
		Content:    content,
		IssueTitle: issue.Title,
	})

	row, err := s.commentRepo.GetCommentRow(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrCommentNotFound
	}
	return toCommentDTO(row), nil
}

func (s *CommentServiceImpl) UpdateComment(ctx context.Context, userID, id uint64, req *dto.UpdateCommentDTO) (*dto.CommentDTO, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != userID {
		return nil, ErrNotOwner
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrParamInvalid
	}
	content = util.TruncateRunes(content, consts.MaxCommentLen)

	if err := s.commentRepo.UpdateContent(ctx, id, content); err != nil {
		return nil, err
	}

	row, err := s.commentRepo.GetCommentRow(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrCommentNotFound
	}
	return toCommentDTO(row), nil
}

func (s *CommentServiceImpl) DeleteComment(ctx context.Context, userID, id uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return ErrNotOwner
	}
	return s.commentRepo.DeleteComment(ctx, id)
}

func (s *CommentServiceImpl) checkIssue(ctx context.Context, issueID uint64) error {
	issue, err := s.issueRepo.GetIssueByID(ctx, issueID)
	if err != nil {
		return err
	}
	if issue == nil {
		return ErrIssueNotFound
	}
	return nil
}

func toCommentDTO(row *repository.CommentRow) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        row.ID,
		Content:   row.Content,
		Username:  row.Username,
		CreatedAt: row.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
