package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
)

type fakeNotificationRepo struct {
	created []*model.Notification

	failFor   map[uint64]bool
	listErr   error
	unread    int64
	markCalls []uint64 // 0 means mark-all
	lastLimit int
	lastOnly  bool
}

func (s *fakeNotificationRepo) CreateNotification(ctx context.Context, n *model.Notification) error {
	if s.failFor[n.UserID] {
		return errors.New("insert failed")
	}
	s.created = append(s.created, n)
	return nil
}

func (s *fakeNotificationRepo) ListByUser(ctx context.Context, userID uint64, unreadOnly bool, limit int) ([]*model.Notification, error) {
	s.lastOnly = unreadOnly
	s.lastLimit = limit
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.created, nil
}

func (s *fakeNotificationRepo) MarkRead(ctx context.Context, userID, id uint64, readAt time.Time) error {
	s.markCalls = append(s.markCalls, id)
	return nil
}

func (s *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID uint64, readAt time.Time) error {
	s.markCalls = append(s.markCalls, 0)
	return nil
}

func (s *fakeNotificationRepo) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	return s.unread, nil
}

func (s *fakeNotificationRepo) DeleteByIssue(ctx context.Context, issueID uint64) error { return nil }
func (s *fakeNotificationRepo) DeleteOrphans(ctx context.Context) (int64, error)        { return 0, nil }

func TestNotifyFollowersSkipsActor(t *testing.T) {
	ctx := context.Background()
	followerRepo := newFakeFollowerRepo()
	_ = followerRepo.CreateFollower(ctx, 1, 42)
	_ = followerRepo.CreateFollower(ctx, 2, 42)
	_ = followerRepo.CreateFollower(ctx, 3, 42)
	notificationRepo := &fakeNotificationRepo{}

	svc := NewNotifierService(followerRepo, notificationRepo)
	report := svc.NotifyFollowers(ctx, 42, 2, NotificationTypeComment, CommentPayload{
		IssueID: 42, By: "yorumcu", Content: "bende de oldu", IssueTitle: "Şarj sorunu",
	})

	if report.Delivered != 2 || report.Failed != 0 {
		t.Fatalf("report = %+v, want 2 delivered, 0 failed", report)
	}
	for _, n := range notificationRepo.created {
		if n.UserID == 2 {
			t.Error("the acting user must not be notified")
		}
		if n.IssueID != 42 || n.Type != NotificationTypeComment {
			t.Errorf("unexpected notification row: %+v", n)
		}
	}
}

func TestNotifyFollowersEncodesPayload(t *testing.T) {
	ctx := context.Background()
	followerRepo := newFakeFollowerRepo()
	_ = followerRepo.CreateFollower(ctx, 5, 42)
	notificationRepo := &fakeNotificationRepo{}

	svc := NewNotifierService(followerRepo, notificationRepo)
	svc.NotifyFollowers(ctx, 42, 1, NotificationTypeStatus, StatusPayload{
		IssueID: 42, By: "sahibi", From: "open", To: "resolved", IssueTitle: "Kapı kolu",
	})

	if len(notificationRepo.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notificationRepo.created))
	}
	var decoded StatusPayload
	if err := json.Unmarshal([]byte(notificationRepo.created[0].Payload), &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if decoded.From != "open" || decoded.To != "resolved" {
		t.Errorf("decoded payload = %+v", decoded)
	}
}

func TestNotifyFollowersStringPassthrough(t *testing.T) {
	ctx := context.Background()
	followerRepo := newFakeFollowerRepo()
	_ = followerRepo.CreateFollower(ctx, 5, 42)
	notificationRepo := &fakeNotificationRepo{}

	svc := NewNotifierService(followerRepo, notificationRepo)
	svc.NotifyFollowers(ctx, 42, 1, NotificationTypeMedia, "raw message")

	if len(notificationRepo.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notificationRepo.created))
	}
	if got := notificationRepo.created[0].Payload; got != "raw message" {
		t.Errorf("string payloads must pass through unquoted, got %q", got)
	}
}

func TestNotifyFollowersPartialFailure(t *testing.T) {
	ctx := context.Background()
	followerRepo := newFakeFollowerRepo()
	_ = followerRepo.CreateFollower(ctx, 1, 42)
	_ = followerRepo.CreateFollower(ctx, 2, 42)
	_ = followerRepo.CreateFollower(ctx, 3, 42)
	notificationRepo := &fakeNotificationRepo{failFor: map[uint64]bool{2: true}}

	svc := NewNotifierService(followerRepo, notificationRepo)
	report := svc.NotifyFollowers(ctx, 42, 99, NotificationTypeUpdate, UpdatePayload{IssueID: 42, By: "birisi"})

	if report.Delivered != 2 || report.Failed != 1 {
		t.Errorf("report = %+v, want 2 delivered, 1 failed", report)
	}
}

func TestNotifyFollowersNoFollowers(t *testing.T) {
	svc := NewNotifierService(newFakeFollowerRepo(), &fakeNotificationRepo{})
	report := svc.NotifyFollowers(context.Background(), 42, 1, NotificationTypeComment, "x")
	if report.Delivered != 0 || report.Failed != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
}
