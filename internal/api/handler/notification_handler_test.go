package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
)

type fakeNotificationService struct {
	lastUnreadOnly bool
	lastID         *uint64
	markCalls      int
}

func (s *fakeNotificationService) List(ctx context.Context, userID uint64, unreadOnly bool) ([]*dto.NotificationDTO, error) {
	s.lastUnreadOnly = unreadOnly
	return []*dto.NotificationDTO{}, nil
}

func (s *fakeNotificationService) MarkRead(ctx context.Context, userID uint64, id *uint64) (*dto.UnreadDTO, error) {
	s.markCalls++
	s.lastID = id
	return &dto.UnreadDTO{Unread: 0}, nil
}

func (s *fakeNotificationService) UnreadCount(ctx context.Context, userID uint64) (*dto.UnreadDTO, error) {
	return &dto.UnreadDTO{Unread: 5}, nil
}

func setupNotificationRouter(svc *fakeNotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", uint64(7)) })

	h := NewNotificationHandler(svc)
	r.GET("/me/notifications", h.ListNotifications)
	r.POST("/me/notifications/read", h.MarkRead)
	return r
}

func TestListNotificationsUnreadFilter(t *testing.T) {
	svc := &fakeNotificationService{}
	r := setupNotificationRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me/notifications", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.lastUnreadOnly {
		t.Error("default listing must include read rows")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me/notifications?unread=1", nil))
	if !svc.lastUnreadOnly {
		t.Error("unread=1 must narrow to unread rows")
	}

	var envelope dto.Response
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if envelope.Code != 200 {
		t.Errorf("envelope code = %d", envelope.Code)
	}
}

func TestMarkReadEmptyBodyMarksAll(t *testing.T) {
	svc := &fakeNotificationService{}
	r := setupNotificationRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/me/notifications/read", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.markCalls != 1 || svc.lastID != nil {
		t.Errorf("empty body must mark all: calls=%d id=%v", svc.markCalls, svc.lastID)
	}
}

func TestMarkReadSingleID(t *testing.T) {
	svc := &fakeNotificationService{}
	r := setupNotificationRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/me/notifications/read", strings.NewReader(`{"id":12}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if svc.lastID == nil || *svc.lastID != 12 {
		t.Errorf("expected id 12, got %v", svc.lastID)
	}
}
