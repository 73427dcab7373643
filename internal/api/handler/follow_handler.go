package handler

import (
	"strconv"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/response"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{
		followSvc: followSvc,
	}
}

// GetFollowState works for anonymous callers too; the followed flag is only
// meaningful when a valid token was sent.
func (s *FollowHandler) GetFollowState(c *gin.Context) {
	issueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	var userID *uint64
	if uid := c.GetUint64("user_id"); uid != 0 {
		userID = &uid
	}

	state, err := s.followSvc.GetState(c.Request.Context(), issueID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

func (s *FollowHandler) Follow(c *gin.Context) {
	userID := c.GetUint64("user_id")

	issueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	state, err := s.followSvc.Follow(c.Request.Context(), issueID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

func (s *FollowHandler) Unfollow(c *gin.Context) {
	userID := c.GetUint64("user_id")

	issueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	state, err := s.followSvc.Unfollow(c.Request.Context(), issueID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

func (s *FollowHandler) ListMyFollows(c *gin.Context) {
	userID := c.GetUint64("user_id")

	items, err := s.followSvc.ListFollowed(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}
