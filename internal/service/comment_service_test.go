package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
)

type fakeCommentRepo struct {
	byID *model.Comment
	row  *repository.CommentRow

	updated string
}

func (s *fakeCommentRepo) ListByIssue(ctx context.Context, issueID uint64, limit int) ([]*repository.CommentRow, error) {
	return nil, nil
}

func (s *fakeCommentRepo) GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error) {
	return s.byID, nil
}

func (s *fakeCommentRepo) GetCommentRow(ctx context.Context, id uint64) (*repository.CommentRow, error) {
	return s.row, nil
}

func (s *fakeCommentRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	comment.ID = 5
	return nil
}

func (s *fakeCommentRepo) UpdateContent(ctx context.Context, id uint64, content string) error {
	s.updated = content
	return nil
}

func (s *fakeCommentRepo) DeleteComment(ctx context.Context, id uint64) error { return nil }
func (s *fakeCommentRepo) DeleteByIssue(ctx context.Context, id uint64) error { return nil }

type fakeNotifier struct {
	calls int
}

func (s *fakeNotifier) NotifyFollowers(ctx context.Context, issueID, actorID uint64, notificationType string, payload any) FanoutReport {
	s.calls++
	return FanoutReport{}
}

func TestUpdateCommentAuthorOnly(t *testing.T) {
	repo := &fakeCommentRepo{
		byID: &model.Comment{ID: 5, IssueID: 42, UserID: 9, Content: "eski"},
		row:  &repository.CommentRow{ID: 5, Content: "yeni", Username: "yorumcu"},
	}
	svc := NewCommentService(repo, &fakeIssueRepo{}, &fakeNotifier{})

	if _, err := svc.UpdateComment(context.Background(), 8, 5, &dto.UpdateCommentDTO{Content: "yeni"}); !errors.Is(err, ErrNotOwner) {
		t.Errorf("foreign user edit: err = %v, want ErrNotOwner", err)
	}

	comment, err := svc.UpdateComment(context.Background(), 9, 5, &dto.UpdateCommentDTO{Content: " yeni "})
	if err != nil {
		t.Fatalf("UpdateComment: %v", err)
	}
	if repo.updated != "yeni" {
		t.Errorf("stored content = %q, want trimmed %q", repo.updated, "yeni")
	}
	if comment.Content != "yeni" {
		t.Errorf("returned content = %q", comment.Content)
	}
}

func TestUpdateCommentGoneAfterWrite(t *testing.T) {
	// A concurrent delete can remove the row between the write and the
	// re-read. That must surface as not-found, never as a nil dereference.
	repo := &fakeCommentRepo{
		byID: &model.Comment{ID: 5, IssueID: 42, UserID: 9, Content: "eski"},
		row:  nil,
	}
	svc := NewCommentService(repo, &fakeIssueRepo{}, &fakeNotifier{})

	_, err := svc.UpdateComment(context.Background(), 9, 5, &dto.UpdateCommentDTO{Content: "yeni"})
	if !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("err = %v, want ErrCommentNotFound", err)
	}
}
