package service

import (
	"context"
	"strconv"
	"time"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/consts"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/redis"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
)

const followedIssuesLimit = 1000

// FollowService maintains the issue follower registry. The follower count is
// cached in redis for an hour and invalidated on every follow change.
type FollowService interface {
	GetState(ctx context.Context, issueID uint64, userID *uint64) (*dto.FollowStateDTO, error)
	Follow(ctx context.Context, issueID, userID uint64) (*dto.FollowStateDTO, error)
	Unfollow(ctx context.Context, issueID, userID uint64) (*dto.FollowStateDTO, error)
	ListFollowed(ctx context.Context, userID uint64) ([]*dto.FollowedIssueDTO, error)
}

type FollowServiceImpl struct {
	followerRepo repository.FollowerRepo
	issueRepo    repository.IssueRepo
}

func NewFollowService(followerRepo repository.FollowerRepo, issueRepo repository.IssueRepo) FollowService {
	return &FollowServiceImpl{
		followerRepo: followerRepo,
		issueRepo:    issueRepo,
	}
}

func (s *FollowServiceImpl) GetState(ctx context.Context, issueID uint64, userID *uint64) (*dto.FollowStateDTO, error) {
	if err := s.checkIssue(ctx, issueID); err != nil {
		return nil, err
	}

	count, err := s.getFollowerCount(ctx, issueID)
	if err != nil {
		return nil, err
	}

	followed := false
	if userID != nil {
		followed, err = s.followerRepo.Exists(ctx, *userID, issueID)
		if err != nil {
			return nil, err
		}
	}
	return &dto.FollowStateDTO{Count: count, Followed: followed}, nil
}

func (s *FollowServiceImpl) Follow(ctx context.Context, issueID, userID uint64) (*dto.FollowStateDTO, error) {
	if err := s.checkIssue(ctx, issueID); err != nil {
		return nil, err
	}
	if err := s.followerRepo.CreateFollower(ctx, userID, issueID); err != nil {
		return nil, err
	}
	s.invalidateCount(ctx, issueID)

	count, err := s.getFollowerCount(ctx, issueID)
	if err != nil {
		return nil, err
	}
	return &dto.FollowStateDTO{Count: count, Followed: true}, nil
}

func (s *FollowServiceImpl) Unfollow(ctx context.Context, issueID, userID uint64) (*dto.FollowStateDTO, error) {
	if err := s.checkIssue(ctx, issueID); err != nil {
		return nil, err
	}
	if err := s.followerRepo.DeleteFollower(ctx, userID, issueID); err != nil {
		return nil, err
	}
	s.invalidateCount(ctx, issueID)

	count, err := s.getFollowerCount(ctx, issueID)
	if err != nil {
		return nil, err
	}
	return &dto.FollowStateDTO{Count: count, Followed: false}, nil
}

func (s *FollowServiceImpl) ListFollowed(ctx context.Context, userID uint64) ([]*dto.FollowedIssueDTO, error) {
	rows, err := s.followerRepo.ListFollowedIssues(ctx, userID, followedIssuesLimit)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.FollowedIssueDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, &dto.FollowedIssueDTO{
			IssueID:    row.IssueID,
			Title:      row.Title,
			Status:     row.Status,
			Brand:      row.Brand,
			Model:      row.Model,
			FollowedAt: row.FollowedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return items, nil
}

func (s *FollowServiceImpl) checkIssue(ctx context.Context, issueID uint64) error {
	issue, err := s.issueRepo.GetIssueByID(ctx, issueID)
	if err != nil {
		return err
	}
	if issue == nil {
		return ErrIssueNotFound
	}
	return nil
}

func (s *FollowServiceImpl) getFollowerCount(ctx context.Context, issueID uint64) (int64, error) {
	key := consts.IssueFollowerCountKey + strconv.FormatUint(issueID, 10)

	if cached, err := redis.GetInt64(ctx, key); err == nil {
		return cached, nil
	}

	count, err := s.followerRepo.CountByIssue(ctx, issueID)
	if err != nil {
		return 0, err
	}

	_ = redis.SetWithExpiration(ctx, key, count, time.Hour*1)
	return count, nil
}

func (s *FollowServiceImpl) invalidateCount(ctx context.Context, issueID uint64) {
	key := consts.IssueFollowerCountKey + strconv.FormatUint(issueID, 10)
	_ = redis.DeleteKey(ctx, key)
}
