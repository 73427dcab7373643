package api

import "github.com/cbozkurt0671/ev-problem-tracker/internal/api/handler"

// HandlersGroup holds every initialized handler instance used by the router.
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	VehicleHandler      *handler.VehicleHandler
	IssueHandler        *handler.IssueHandler
	CommentHandler      *handler.CommentHandler
	UpdateHandler       *handler.UpdateHandler
	MediaHandler        *handler.MediaHandler
	FollowHandler       *handler.FollowHandler
	NotificationHandler *handler.NotificationHandler
}
