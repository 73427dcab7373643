package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"

	"gorm.io/gorm"
)

// IssueRow is an issue joined with its owner, vehicle and the denormalized
// counts the list/detail views need.
type IssueRow struct {
	ID                uint64    `json:"id"`
	UserID            uint64    `json:"user_id"`
	VehicleID         uint64    `json:"vehicle_id"`
	Title             string    `json:"title"`
	IssueType         *string   `json:"issue_type"`
	Description       string    `json:"description"`
	Solution          *string   `json:"solution"`
	ServiceExperience *string   `json:"service_experience"`
	IssueLocation     *string   `json:"issue_location"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Username          string    `json:"username"`
	Brand             string    `json:"brand"`
	Model             string    `json:"model"`
	CommentCount      int64     `json:"comment_count"`
	UpdateCount       int64     `json:"update_count"`
	PhotoCount        int64     `json:"photo_count"`
	MediaCount        int64     `json:"media_count"`
}

// IssueFilter narrows the public issue listing.
type IssueFilter struct {
	Brand     string
	Model     string
	IssueType string
	Username  string
	Query     string
}

const issueRowSelect = `issues.id, issues.user_id, issues.vehicle_id, issues.title, issues.issue_type,
issues.description, issues.solution, issues.service_experience, issues.issue_location, issues.status,
issues.created_at, issues.updated_at, users.username, vehicles.brand, vehicles.model,
(SELECT COUNT(*) FROM comments c WHERE c.issue_id = issues.id) AS comment_count,
(SELECT COUNT(*) FROM issue_updates iu WHERE iu.issue_id = issues.id) AS update_count,
(SELECT COUNT(*) FROM issue_photos ip WHERE ip.issue_id = issues.id) AS photo_count,
((SELECT COUNT(*) FROM issue_photos ip2 WHERE ip2.issue_id = issues.id) +
 (SELECT COUNT(*) FROM issue_attachments ia2 WHERE ia2.issue_id = issues.id)) AS media_count`

type IssueRepo interface {
	CreateIssue(ctx context.Context, issue *model.Issue) error
	GetIssueByID(ctx context.Context, id uint64) (*model.Issue, error)
	GetIssueRow(ctx context.Context, id uint64) (*IssueRow, error)
	ListIssues(ctx context.Context, filter IssueFilter, limit, offset int) ([]*IssueRow, int64, error)
	ListIssuesByUsername(ctx context.Context, username string, limit int) ([]*IssueRow, error)
	ListIssueIDsByUser(ctx context.Context, userID uint64) ([]uint64, error)
	UpdateIssue(ctx context.Context, issue *model.Issue) error
	DeleteIssue(ctx context.Context, id uint64) error
	FindSimilarCandidates(ctx context.Context, brand, vehicleModel string, tokens []string, limit int) ([]*IssueRow, error)
}

type IssueRepoImpl struct {
	db *gorm.DB
}

func NewIssueRepo(db *gorm.DB) IssueRepo {
	return &IssueRepoImpl{db: db}
}

func (s *IssueRepoImpl) joined(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("issues").
		Select(issueRowSelect).
		Joins("JOIN users ON users.id = issues.user_id").
		Joins("JOIN vehicles ON vehicles.id = issues.vehicle_id")
}

func (s *IssueRepoImpl) CreateIssue(ctx context.Context, issue *model.Issue) error {
	return s.db.WithContext(ctx).Create(issue).Error
}

func (s *IssueRepoImpl) GetIssueByID(ctx context.Context, id uint64) (*model.Issue, error) {
	var issue model.Issue
	result := s.db.WithContext(ctx).First(&issue, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &issue, nil
}

func (s *IssueRepoImpl) GetIssueRow(ctx context.Context, id uint64) (*IssueRow, error) {
	var row IssueRow
	result := s.joined(ctx).Where("issues.id = ?", id).Limit(1).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

// ListIssues returns one page of the filtered listing plus the total count.
func (s *IssueRepoImpl) ListIssues(ctx context.Context, filter IssueFilter, limit, offset int) ([]*IssueRow, int64, error) {
	applyFilter := func(q *gorm.DB) *gorm.DB {
		if filter.Brand != "" {
			q = q.Where("vehicles.brand = ?", filter.Brand)
		}
		if filter.Model != "" {
			q = q.Where("vehicles.model = ?", filter.Model)
		}
		if filter.IssueType != "" {
			q = q.Where("issues.issue_type = ?", filter.IssueType)
		}
		if filter.Username != "" {
			q = q.Where("users.username = ?", filter.Username)
		}
		if filter.Query != "" {
			like := "%" + filter.Query + "%"
			q = q.Where("issues.title LIKE ? OR issues.description LIKE ? OR issues.solution LIKE ?", like, like, like)
		}
		return q
	}

	var total int64
	countQuery := applyFilter(s.db.WithContext(ctx).
		Table("issues").
		Joins("JOIN users ON users.id = issues.user_id").
		Joins("JOIN vehicles ON vehicles.id = issues.vehicle_id"))
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*IssueRow
	result := applyFilter(s.joined(ctx)).
		Order("issues.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return rows, total, nil
}

func (s *IssueRepoImpl) ListIssuesByUsername(ctx context.Context, username string, limit int) ([]*IssueRow, error) {
	var rows []*IssueRow
	result := s.joined(ctx).
		Where("users.username = ?", username).
		Order("issues.created_at DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (s *IssueRepoImpl) ListIssueIDsByUser(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	result := s.db.WithContext(ctx).
		Model(&model.Issue{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

func (s *IssueRepoImpl) UpdateIssue(ctx context.Context, issue *model.Issue) error {
	return s.db.WithContext(ctx).Save(issue).Error
}

func (s *IssueRepoImpl) DeleteIssue(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Issue{}, id).Error
}

// FindSimilarCandidates pulls the candidate pool for duplicate detection:
// same brand/model, any token appearing as a substring in the title,
// description or solution, newest first. Scoring happens in the service.
func (s *IssueRepoImpl) FindSimilarCandidates(ctx context.Context, brand, vehicleModel string, tokens []string, limit int) ([]*IssueRow, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	var clauses []string
	var args []interface{}
	for _, tok := range tokens {
		like := "%" + strings.ToLower(tok) + "%"
		clauses = append(clauses, "(LOWER(issues.title) LIKE ? OR LOWER(issues.description) LIKE ? OR LOWER(IFNULL(issues.solution, '')) LIKE ?)")
		args = append(args, like, like, like)
	}

	var rows []*IssueRow
	result := s.joined(ctx).
		Where("vehicles.brand = ? AND vehicles.model = ?", brand, vehicleModel).
		Where(strings.Join(clauses, " OR "), args...).
		Order("issues.created_at DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
