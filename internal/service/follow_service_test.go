package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/consts"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/redis"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
)

type fakeFollowerRepo struct {
	followers map[uint64]map[uint64]struct{} // issueID -> userIDs

	countCalls int
	createErr  error
}

func newFakeFollowerRepo() *fakeFollowerRepo {
	return &fakeFollowerRepo{followers: make(map[uint64]map[uint64]struct{})}
}

func (s *fakeFollowerRepo) CreateFollower(ctx context.Context, userID, issueID uint64) error {
	if s.createErr != nil {
		return s.createErr
	}
	if s.followers[issueID] == nil {
		s.followers[issueID] = make(map[uint64]struct{})
	}
	s.followers[issueID][userID] = struct{}{}
	return nil
}

func (s *fakeFollowerRepo) DeleteFollower(ctx context.Context, userID, issueID uint64) error {
	delete(s.followers[issueID], userID)
	return nil
}

func (s *fakeFollowerRepo) Exists(ctx context.Context, userID, issueID uint64) (bool, error) {
	_, ok := s.followers[issueID][userID]
	return ok, nil
}

func (s *fakeFollowerRepo) CountByIssue(ctx context.Context, issueID uint64) (int64, error) {
	s.countCalls++
	return int64(len(s.followers[issueID])), nil
}

func (s *fakeFollowerRepo) ListFollowerIDs(ctx context.Context, issueID uint64) ([]uint64, error) {
	var ids []uint64
	for id := range s.followers[issueID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *fakeFollowerRepo) ListFollowedIssues(ctx context.Context, userID uint64, limit int) ([]*repository.FollowedIssueRow, error) {
	return nil, nil
}

func (s *fakeFollowerRepo) DeleteByIssue(ctx context.Context, issueID uint64) error {
	delete(s.followers, issueID)
	return nil
}

func (s *fakeFollowerRepo) DeleteOrphans(ctx context.Context) (int64, error) { return 0, nil }

func setupTestRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	old := redis.Rdb
	redis.Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redis.Rdb = old })
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	followerRepo := newFakeFollowerRepo()
	issueRepo := &fakeIssueRepo{issue: &model.Issue{ID: 42, UserID: 1}}
	svc := NewFollowService(followerRepo, issueRepo)

	state, err := svc.Follow(ctx, 42, 7)
	if err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if !state.Followed || state.Count != 1 {
		t.Errorf("after follow: followed=%v count=%d, want true/1", state.Followed, state.Count)
	}

	// Re-follow stays a no-op.
	state, err = svc.Follow(ctx, 42, 7)
	if err != nil {
		t.Fatalf("Follow again: %v", err)
	}
	if state.Count != 1 {
		t.Errorf("re-follow count = %d, want 1", state.Count)
	}

	state, err = svc.Unfollow(ctx, 42, 7)
	if err != nil {
		t.Fatalf("Unfollow: %v", err)
	}
	if state.Followed || state.Count != 0 {
		t.Errorf("after unfollow: followed=%v count=%d, want false/0", state.Followed, state.Count)
	}
}

func TestGetStateAnonymous(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	followerRepo := newFakeFollowerRepo()
	_ = followerRepo.CreateFollower(ctx, 3, 42)
	_ = followerRepo.CreateFollower(ctx, 4, 42)
	issueRepo := &fakeIssueRepo{issue: &model.Issue{ID: 42, UserID: 1}}
	svc := NewFollowService(followerRepo, issueRepo)

	state, err := svc.GetState(ctx, 42, nil)
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if state.Followed {
		t.Error("anonymous viewer must never appear as a follower")
	}
	if state.Count != 2 {
		t.Errorf("count = %d, want 2", state.Count)
	}
}

func TestFollowerCountIsCached(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	followerRepo := newFakeFollowerRepo()
	_ = followerRepo.CreateFollower(ctx, 3, 42)
	issueRepo := &fakeIssueRepo{issue: &model.Issue{ID: 42, UserID: 1}}
	svc := NewFollowService(followerRepo, issueRepo)

	followerRepo.countCalls = 0
	if _, err := svc.GetState(ctx, 42, nil); err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if _, err := svc.GetState(ctx, 42, nil); err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if followerRepo.countCalls != 1 {
		t.Errorf("expected one DB count within the cache window, got %d", followerRepo.countCalls)
	}

	// The cached value is served verbatim.
	key := consts.IssueFollowerCountKey + "42"
	if err := redis.SetWithExpiration(ctx, key, 99, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	state, err := svc.GetState(ctx, 42, nil)
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if state.Count != 99 {
		t.Errorf("count = %d, want cached 99", state.Count)
	}
}

func TestFollowMissingIssue(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	svc := NewFollowService(newFakeFollowerRepo(), &fakeIssueRepo{issue: nil})

	if _, err := svc.Follow(ctx, 999, 7); !errors.Is(err, ErrIssueNotFound) {
		t.Errorf("Follow on missing issue: err = %v, want ErrIssueNotFound", err)
	}
	if _, err := svc.GetState(ctx, 999, nil); !errors.Is(err, ErrIssueNotFound) {
		t.Errorf("GetState on missing issue: err = %v, want ErrIssueNotFound", err)
	}
}
