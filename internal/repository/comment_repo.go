package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"

	"gorm.io/gorm"
)

// CommentRow is a comment joined with its author.
type CommentRow struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}

type CommentRepo interface {
	ListByIssue(ctx context.Context, issueID uint64, limit int) ([]*CommentRow, error)
	GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error)
	GetCommentRow(ctx context.Context, id uint64) (*CommentRow, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	UpdateContent(ctx context.Context, id uint64, content string) error
	DeleteComment(ctx context.Context, id uint64) error
	DeleteByIssue(ctx context.Context, issueID uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) ListByIssue(ctx context.Context, issueID uint64, limit int) ([]*CommentRow, error) {
	var rows []*CommentRow
	result := s.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.content, comments.created_at, users.username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.issue_id = ?", issueID).
		Order("comments.created_at ASC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (s *CommentRepoImpl) GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	result := s.db.WithContext(ctx).First(&comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &comment, nil
}

func (s *CommentRepoImpl) GetCommentRow(ctx context.Context, id uint64) (*CommentRow, error) {
	var row CommentRow
	result := s.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.content, comments.created_at, users.username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) UpdateContent(ctx context.Context, id uint64, content string) error {
	return s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("content", content).Error
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}

func (s *CommentRepoImpl) DeleteByIssue(ctx context.Context, issueID uint64) error {
	return s.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Delete(&model.Comment{}).Error
}
