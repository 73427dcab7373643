package handler

import (
	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/response"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationSvc: notificationSvc,
	}
}

// ListNotifications returns the full inbox; unread=1 narrows it to unread.
func (s *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := c.GetUint64("user_id")
	unreadOnly := c.Query("unread") == "1"

	items, err := s.notificationSvc.List(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetUint64("user_id")

	// An empty body means mark everything read.
	var req dto.MarkReadDTO
	_ = c.ShouldBindJSON(&req)

	unread, err := s.notificationSvc.MarkRead(c.Request.Context(), userID, req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, unread)
}

func (s *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := c.GetUint64("user_id")

	unread, err := s.notificationSvc.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, unread)
}
