package service

import (
	"context"
	"time"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
)

const (
	unreadListLimit = 50
	fullListLimit   = 100
)

// NotificationService is the read side of the notification inbox.
type NotificationService interface {
	List(ctx context.Context, userID uint64, unreadOnly bool) ([]*dto.NotificationDTO, error)
	MarkRead(ctx context.Context, userID uint64, id *uint64) (*dto.UnreadDTO, error)
	UnreadCount(ctx context.Context, userID uint64) (*dto.UnreadDTO, error)
}

type NotificationServiceImpl struct {
	notificationRepo repository.NotificationRepo
}

func NewNotificationService(notificationRepo repository.NotificationRepo) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) List(ctx context.Context, userID uint64, unreadOnly bool) ([]*dto.NotificationDTO, error) {
	limit := fullListLimit
	if unreadOnly {
		limit = unreadListLimit
	}
	notifications, err := s.notificationRepo.ListByUser(ctx, userID, unreadOnly, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, &dto.NotificationDTO{
			ID:        n.ID,
			IssueID:   n.IssueID,
			Type:      n.Type,
			Payload:   DecodePayload(n.Payload),
			IsRead:    n.ReadAt != nil,
			CreatedAt: n.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return items, nil
}

// MarkRead marks one notification when id is given, otherwise every unread
// one. It always answers with the remaining unread count. Foreign ids fall
// through silently since the update is scoped to the caller's rows.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, userID uint64, id *uint64) (*dto.UnreadDTO, error) {
	now := time.Now()
	var err error
	if id != nil {
		err = s.notificationRepo.MarkRead(ctx, userID, *id, now)
	} else {
		err = s.notificationRepo.MarkAllRead(ctx, userID, now)
	}
	if err != nil {
		return nil, err
	}
	return s.UnreadCount(ctx, userID)
}

func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, userID uint64) (*dto.UnreadDTO, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadDTO{Unread: count}, nil
}
