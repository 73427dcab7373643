package handler

import (
	log "log/slog"
	"strconv"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/response"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/util"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type IssueHandler struct {
	issueSvc      service.IssueService
	similaritySvc service.SimilarityService
}

func NewIssueHandler(issueSvc service.IssueService, similaritySvc service.SimilarityService) *IssueHandler {
	return &IssueHandler{
		issueSvc:      issueSvc,
		similaritySvc: similaritySvc,
	}
}

func (s *IssueHandler) ListIssues(c *gin.Context) {
	filter := repository.IssueFilter{
		Brand:     c.Query("brand"),
		Model:     c.Query("model"),
		IssueType: c.Query("issue_type"),
		Username:  c.Query("username"),
		Query:     c.Query("q"),
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	list, err := s.issueSvc.ListIssues(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *IssueHandler) GetIssue(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	issue, err := s.issueSvc.GetIssue(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, issue)
}

func (s *IssueHandler) CreateIssue(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreateIssueDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	issue, err := s.issueSvc.CreateIssue(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, issue)
}

func (s *IssueHandler) PatchIssue(c *gin.Context) {
	userID := c.GetUint64("user_id")
	username := c.GetString("username")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PatchIssueDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	issue, err := s.issueSvc.PatchIssue(c.Request.Context(), userID, username, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, issue)
}

func (s *IssueHandler) DeleteIssue(c *gin.Context) {
	userID := c.GetUint64("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.issueSvc.DeleteIssue(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *IssueHandler) DeleteMyIssues(c *gin.Context) {
	userID := c.GetUint64("user_id")

	deleted, err := s.issueSvc.DeleteAllByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BulkDeleteDTO{Deleted: deleted})
}

func (s *IssueHandler) ListUserIssues(c *gin.Context) {
	username := c.Param("username")

	issues, err := s.issueSvc.ListUserIssues(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, issues)
}

// FindSimilar never fails the drafting flow: any error degrades to an empty
// suggestion list.
func (s *IssueHandler) FindSimilar(c *gin.Context) {
	empty := &dto.SimilarResultDTO{Items: []*dto.SimilarIssueDTO{}}

	var query dto.SimilarQueryDTO
	if err := c.ShouldBindJSON(&query); err != nil {
		response.Success(c, empty)
		return
	}

	result, err := s.similaritySvc.FindSimilar(c.Request.Context(), &query)
	if err != nil {
		log.WarnContext(c.Request.Context(), "similar lookup failed", "err", err)
		response.Success(c, empty)
		return
	}
	response.Success(c, result)
}
