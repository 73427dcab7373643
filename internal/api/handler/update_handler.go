package handler

import (
	"strconv"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/response"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/util"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type UpdateHandler struct {
	updateSvc service.UpdateService
}

func NewUpdateHandler(updateSvc service.UpdateService) *UpdateHandler {
	return &UpdateHandler{
		updateSvc: updateSvc,
	}
}

func (s *UpdateHandler) ListUpdates(c *gin.Context) {
	issueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	updates, err := s.updateSvc.ListUpdates(c.Request.Context(), issueID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, updates)
}

// CreateUpdate accepts a multipart form so a development can carry optional
// attachments in the same request.
func (s *UpdateHandler) CreateUpdate(c *gin.Context) {
	userID := c.GetUint64("user_id")
	username := c.GetString("username")

	issueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	req := dto.CreateUpdateDTO{
		Title:   util.PtrString(c.PostForm("title")),
		Content: c.PostForm("content"),
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	result, err := s.updateSvc.CreateUpdate(c.Request.Context(), userID, username, issueID, &req, formFiles(c, "attachments"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *UpdateHandler) EditUpdate(c *gin.Context) {
	userID := c.GetUint64("user_id")
	username := c.GetString("username")

	updateID, err := strconv.ParseUint(c.Param("updateId"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PatchUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	update, err := s.updateSvc.EditUpdate(c.Request.Context(), userID, username, updateID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, update)
}

func (s *UpdateHandler) DeleteUpdate(c *gin.Context) {
	userID := c.GetUint64("user_id")
	username := c.GetString("username")

	updateID, err := strconv.ParseUint(c.Param("updateId"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.updateSvc.DeleteUpdate(c.Request.Context(), userID, username, updateID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
