package service

import (
	"context"
	"testing"
	"time"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
)

func TestNotificationListLimits(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	if _, err := svc.List(ctx, 7, true); err != nil {
		t.Fatalf("List unread: %v", err)
	}
	if !repo.lastOnly || repo.lastLimit != 50 {
		t.Errorf("unread list: unreadOnly=%v limit=%d, want true/50", repo.lastOnly, repo.lastLimit)
	}

	if _, err := svc.List(ctx, 7, false); err != nil {
		t.Fatalf("List all: %v", err)
	}
	if repo.lastOnly || repo.lastLimit != 100 {
		t.Errorf("full list: unreadOnly=%v limit=%d, want false/100", repo.lastOnly, repo.lastLimit)
	}
}

func TestNotificationListMapsRows(t *testing.T) {
	now := time.Date(2026, 7, 14, 10, 30, 0, 0, time.UTC)
	repo := &fakeNotificationRepo{created: []*model.Notification{
		{
			ID:        1,
			UserID:    7,
			IssueID:   42,
			Type:      NotificationTypeComment,
			Payload:   `{"issue_id":42,"by":"yorumcu","content":"bende de var"}`,
			CreatedAt: now,
		},
		{
			ID:        2,
			UserID:    7,
			IssueID:   42,
			Type:      NotificationTypeStatus,
			Payload:   "plain text",
			CreatedAt: now,
			ReadAt:    &now,
		},
	}}
	svc := NewNotificationService(repo)

	items, err := svc.List(context.Background(), 7, false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	decoded, ok := items[0].Payload.(map[string]any)
	if !ok {
		t.Fatalf("JSON payloads must decode to objects, got %T", items[0].Payload)
	}
	if decoded["by"] != "yorumcu" {
		t.Errorf("payload by = %v", decoded["by"])
	}
	if items[0].IsRead {
		t.Error("row without read_at must be unread")
	}

	if items[1].Payload != "plain text" {
		t.Errorf("non-JSON payloads must pass through, got %v", items[1].Payload)
	}
	if !items[1].IsRead {
		t.Error("row with read_at must be read")
	}
	if items[0].CreatedAt != "2026-07-14 10:30:00" {
		t.Errorf("created_at = %q", items[0].CreatedAt)
	}
}

func TestMarkReadSingleAndAll(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{unread: 3}
	svc := NewNotificationService(repo)

	id := uint64(12)
	result, err := svc.MarkRead(ctx, 7, &id)
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if result.Unread != 3 {
		t.Errorf("unread = %d, want 3", result.Unread)
	}

	repo.unread = 0
	result, err = svc.MarkRead(ctx, 7, nil)
	if err != nil {
		t.Fatalf("MarkRead all: %v", err)
	}
	if result.Unread != 0 {
		t.Errorf("unread = %d, want 0", result.Unread)
	}

	if len(repo.markCalls) != 2 || repo.markCalls[0] != 12 || repo.markCalls[1] != 0 {
		t.Errorf("markCalls = %v, want [12 0]", repo.markCalls)
	}
}
