package repository

import (
	"context"
	"time"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"

	"gorm.io/gorm"
)

// UpdateRow is a development joined with its author.
type UpdateRow struct {
	ID        uint64    `json:"id"`
	Title     *string   `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}

// UpdateOwnerRow carries the update plus the owning issue's user id, which
// gates edit/delete authorization.
type UpdateOwnerRow struct {
	ID         uint64    `json:"id"`
	IssueID    uint64    `json:"issue_id"`
	UserID     uint64    `json:"user_id"`
	Title      *string   `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	IssueOwner uint64    `json:"issue_owner"`
}

type IssueUpdateRepo interface {
	ListByIssue(ctx context.Context, issueID uint64) ([]*UpdateRow, error)
	GetUpdateRow(ctx context.Context, id uint64) (*UpdateRow, error)
	GetUpdateWithOwner(ctx context.Context, id uint64) (*UpdateOwnerRow, error)
	CreateUpdate(ctx context.Context, update *model.IssueUpdate) error
	UpdateTitleContent(ctx context.Context, id uint64, title *string, content string) error
	DeleteUpdate(ctx context.Context, id uint64) error
	CountByIssue(ctx context.Context, issueID uint64) (int64, error)
	DeleteByIssue(ctx context.Context, issueID uint64) error

	CreateUpdateAttachment(ctx context.Context, att *model.IssueUpdateAttachment) error
	ListUpdateAttachments(ctx context.Context, updateID uint64) ([]*model.IssueUpdateAttachment, error)
	DeleteUpdateAttachments(ctx context.Context, updateID uint64) error
	ListAttachmentsByIssue(ctx context.Context, issueID uint64) ([]*model.IssueUpdateAttachment, error)
	DeleteAttachmentsByIssue(ctx context.Context, issueID uint64) error

	DeleteOrphanUpdates(ctx context.Context) (int64, error)
	DeleteOrphanAttachments(ctx context.Context) (int64, error)
}

type IssueUpdateRepoImpl struct {
	db *gorm.DB
}

func NewIssueUpdateRepo(db *gorm.DB) IssueUpdateRepo {
	return &IssueUpdateRepoImpl{db: db}
}

func (s *IssueUpdateRepoImpl) ListByIssue(ctx context.Context, issueID uint64) ([]*UpdateRow, error) {
	var rows []*UpdateRow
	result := s.db.WithContext(ctx).
		Table("issue_updates").
		Select("issue_updates.id, issue_updates.title, issue_updates.content, issue_updates.created_at, users.username").
		Joins("JOIN users ON users.id = issue_updates.user_id").
		Where("issue_updates.issue_id = ?", issueID).
		Order("issue_updates.created_at ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (s *IssueUpdateRepoImpl) GetUpdateRow(ctx context.Context, id uint64) (*UpdateRow, error) {
	var row UpdateRow
	result := s.db.WithContext(ctx).
		Table("issue_updates").
		Select("issue_updates.id, issue_updates.title, issue_updates.content, issue_updates.created_at, users.username").
		Joins("JOIN users ON users.id = issue_updates.user_id").
		Where("issue_updates.id = ?", id).
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

func (s *IssueUpdateRepoImpl) GetUpdateWithOwner(ctx context.Context, id uint64) (*UpdateOwnerRow, error) {
	var row UpdateOwnerRow
	result := s.db.WithContext(ctx).
		Table("issue_updates").
		Select("issue_updates.id, issue_updates.issue_id, issue_updates.user_id, issue_updates.title, issue_updates.content, issue_updates.created_at, issues.user_id AS issue_owner").
		Joins("JOIN issues ON issues.id = issue_updates.issue_id").
		Where("issue_updates.id = ?", id).
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

func (s *IssueUpdateRepoImpl) CreateUpdate(ctx context.Context, update *model.IssueUpdate) error {
	return s.db.WithContext(ctx).Create(update).Error
}

func (s *IssueUpdateRepoImpl) UpdateTitleContent(ctx context.Context, id uint64, title *string, content string) error {
	return s.db.WithContext(ctx).
		Model(&model.IssueUpdate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "content": content}).Error
}

func (s *IssueUpdateRepoImpl) DeleteUpdate(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.IssueUpdate{}, id).Error
}

func (s *IssueUpdateRepoImpl) CountByIssue(ctx context.Context, issueID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.IssueUpdate{}).
		Where("issue_id = ?", issueID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *IssueUpdateRepoImpl) DeleteByIssue(ctx context.Context, issueID uint64) error {
	return s.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Delete(&model.IssueUpdate{}).Error
}

func (s *IssueUpdateRepoImpl) CreateUpdateAttachment(ctx context.Context, att *model.IssueUpdateAttachment) error {
	return s.db.WithContext(ctx).Create(att).Error
}

func (s *IssueUpdateRepoImpl) ListUpdateAttachments(ctx context.Context, updateID uint64) ([]*model.IssueUpdateAttachment, error) {
	var atts []*model.IssueUpdateAttachment
	result := s.db.WithContext(ctx).
		Where("update_id = ?", updateID).
		Order("id ASC").
		Find(&atts)
	if result.Error != nil {
		return nil, result.Error
	}
	return atts, nil
}

func (s *IssueUpdateRepoImpl) DeleteUpdateAttachments(ctx context.Context, updateID uint64) error {
	return s.db.WithContext(ctx).
		Where("update_id = ?", updateID).
		Delete(&model.IssueUpdateAttachment{}).Error
}

func (s *IssueUpdateRepoImpl) ListAttachmentsByIssue(ctx context.Context, issueID uint64) ([]*model.IssueUpdateAttachment, error) {
	var atts []*model.IssueUpdateAttachment
	result := s.db.WithContext(ctx).
		Where("update_id IN (?)", s.db.Model(&model.IssueUpdate{}).Select("id").Where("issue_id = ?", issueID)).
		Find(&atts)
	if result.Error != nil {
		return nil, result.Error
	}
	return atts, nil
}

func (s *IssueUpdateRepoImpl) DeleteAttachmentsByIssue(ctx context.Context, issueID uint64) error {
	return s.db.WithContext(ctx).
		Where("update_id IN (?)", s.db.Model(&model.IssueUpdate{}).Select("id").Where("issue_id = ?", issueID)).
		Delete(&model.IssueUpdateAttachment{}).Error
}

func (s *IssueUpdateRepoImpl) DeleteOrphanUpdates(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Exec(
		"DELETE u FROM issue_updates u LEFT JOIN issues i ON i.id = u.issue_id WHERE i.id IS NULL")
	return result.RowsAffected, result.Error
}

func (s *IssueUpdateRepoImpl) DeleteOrphanAttachments(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Exec(
		"DELETE a FROM issue_update_attachments a LEFT JOIN issue_updates u ON u.id = a.update_id WHERE u.id IS NULL")
	return result.RowsAffected, result.Error
}
