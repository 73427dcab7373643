package repository

import (
	"context"
	"time"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowedIssueRow is a followed issue as it appears in the user's follow list.
type FollowedIssueRow struct {
	IssueID    uint64    `json:"issue_id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	Brand      string    `json:"brand"`
	Model      string    `json:"model"`
	FollowedAt time.Time `json:"followed_at"`
}

type FollowerRepo interface {
	CreateFollower(ctx context.Context, userID, issueID uint64) error
	DeleteFollower(ctx context.Context, userID, issueID uint64) error
	Exists(ctx context.Context, userID, issueID uint64) (bool, error)
	CountByIssue(ctx context.Context, issueID uint64) (int64, error)
	ListFollowerIDs(ctx context.Context, issueID uint64) ([]uint64, error)
	ListFollowedIssues(ctx context.Context, userID uint64, limit int) ([]*FollowedIssueRow, error)
	DeleteByIssue(ctx context.Context, issueID uint64) error
	DeleteOrphans(ctx context.Context) (int64, error)
}

type FollowerRepoImpl struct {
	db *gorm.DB
}

func NewFollowerRepo(db *gorm.DB) FollowerRepo {
	return &FollowerRepoImpl{db: db}
}

// CreateFollower is idempotent. Re-following an already followed issue is a
// no-op rather than an error.
func (s *FollowerRepoImpl) CreateFollower(ctx context.Context, userID, issueID uint64) error {
	follower := &model.IssueFollower{UserID: userID, IssueID: issueID}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(follower).Error
}

func (s *FollowerRepoImpl) DeleteFollower(ctx context.Context, userID, issueID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND issue_id = ?", userID, issueID).
		Delete(&model.IssueFollower{}).Error
}

func (s *FollowerRepoImpl) Exists(ctx context.Context, userID, issueID uint64) (bool, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.IssueFollower{}).
		Where("user_id = ? AND issue_id = ?", userID, issueID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (s *FollowerRepoImpl) CountByIssue(ctx context.Context, issueID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.IssueFollower{}).
		Where("issue_id = ?", issueID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *FollowerRepoImpl) ListFollowerIDs(ctx context.Context, issueID uint64) ([]uint64, error) {
	var ids []uint64
	result := s.db.WithContext(ctx).
		Model(&model.IssueFollower{}).
		Where("issue_id = ?", issueID).
		Pluck("user_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

func (s *FollowerRepoImpl) ListFollowedIssues(ctx context.Context, userID uint64, limit int) ([]*FollowedIssueRow, error) {
	var rows []*FollowedIssueRow
	result := s.db.WithContext(ctx).
		Table("issue_followers").
		Select("issue_followers.issue_id, issues.title, issues.status, vehicles.brand, vehicles.model, issue_followers.created_at AS followed_at").
		Joins("JOIN issues ON issues.id = issue_followers.issue_id").
		Joins("JOIN vehicles ON vehicles.id = issues.vehicle_id").
		Where("issue_followers.user_id = ?", userID).
		Order("issue_followers.created_at DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (s *FollowerRepoImpl) DeleteByIssue(ctx context.Context, issueID uint64) error {
	return s.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Delete(&model.IssueFollower{}).Error
}

// DeleteOrphans removes follow rows whose issue no longer exists. Such rows
// can only appear after a crash mid-delete.
func (s *FollowerRepoImpl) DeleteOrphans(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Exec("DELETE f FROM issue_followers f LEFT JOIN issues i ON i.id = f.issue_id WHERE i.id IS NULL")
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
