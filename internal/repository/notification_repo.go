package repository

import (
	"context"
	"time"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"

	"gorm.io/gorm"
)

type NotificationRepo interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	ListByUser(ctx context.Context, userID uint64, unreadOnly bool, limit int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, userID, id uint64, readAt time.Time) error
	MarkAllRead(ctx context.Context, userID uint64, readAt time.Time) error
	CountUnread(ctx context.Context, userID uint64) (int64, error)
	DeleteByIssue(ctx context.Context, issueID uint64) error
	DeleteOrphans(ctx context.Context) (int64, error)
}

type NotificationRepoImpl struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return &NotificationRepoImpl{db: db}
}

func (s *NotificationRepoImpl) CreateNotification(ctx context.Context, notification *model.Notification) error {
	return s.db.WithContext(ctx).Create(notification).Error
}

func (s *NotificationRepoImpl) ListByUser(ctx context.Context, userID uint64, unreadOnly bool, limit int) ([]*model.Notification, error) {
	query := s.db.WithContext(ctx).
		Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}
	var notifications []*model.Notification
	result := query.Order("id DESC").Limit(limit).Find(&notifications)
	if result.Error != nil {
		return nil, result.Error
	}
	return notifications, nil
}

// MarkRead only touches the caller's own rows. A foreign id falls through with
// zero rows affected.
func (s *NotificationRepoImpl) MarkRead(ctx context.Context, userID, id uint64, readAt time.Time) error {
	return s.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND id = ? AND read_at IS NULL", userID, id).
		Update("read_at", readAt).Error
}

func (s *NotificationRepoImpl) MarkAllRead(ctx context.Context, userID uint64, readAt time.Time) error {
	return s.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", readAt).Error
}

func (s *NotificationRepoImpl) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *NotificationRepoImpl) DeleteByIssue(ctx context.Context, issueID uint64) error {
	return s.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Delete(&model.Notification{}).Error
}

func (s *NotificationRepoImpl) DeleteOrphans(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Exec("DELETE n FROM notifications n LEFT JOIN issues i ON i.id = n.issue_id WHERE i.id IS NULL")
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
