package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/response"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

func (s *MediaHandler) ListPhotos(c *gin.Context) {
	issueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	photos, err := s.mediaSvc.ListPhotos(c.Request.Context(), issueID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, photos)
}

func (s *MediaHandler) UploadPhotos(c *gin.Context) {
	userID := c.GetUint64("user_id")

	issueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	photos, err := s.mediaSvc.UploadPhotos(c.Request.Context(), userID, issueID, formFiles(c, "photos"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, photos)
}

func (s *MediaHandler) ListAttachments(c *gin.Context) {
	issueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	atts, err := s.mediaSvc.ListAttachments(c.Request.Context(), issueID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, atts)
}

func (s *MediaHandler) UploadAttachments(c *gin.Context) {
	userID := c.GetUint64("user_id")
	username := c.GetString("username")

	issueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	atts, err := s.mediaSvc.UploadAttachments(c.Request.Context(), userID, username, issueID, formFiles(c, "attachments"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, atts)
}

func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}
