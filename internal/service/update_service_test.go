package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
)

type fakeUpdateRepo struct {
	owner *repository.UpdateOwnerRow
	row   *repository.UpdateRow

	patchedTitle   *string
	patchedContent string
}

func (s *fakeUpdateRepo) ListByIssue(ctx context.Context, issueID uint64) ([]*repository.UpdateRow, error) {
	return nil, nil
}

func (s *fakeUpdateRepo) GetUpdateRow(ctx context.Context, id uint64) (*repository.UpdateRow, error) {
	return s.row, nil
}

func (s *fakeUpdateRepo) GetUpdateWithOwner(ctx context.Context, id uint64) (*repository.UpdateOwnerRow, error) {
	return s.owner, nil
}

func (s *fakeUpdateRepo) CreateUpdate(ctx context.Context, update *model.IssueUpdate) error {
	update.ID = 7
	return nil
}

func (s *fakeUpdateRepo) UpdateTitleContent(ctx context.Context, id uint64, title *string, content string) error {
	s.patchedTitle = title
	s.patchedContent = content
	return nil
}

func (s *fakeUpdateRepo) DeleteUpdate(ctx context.Context, id uint64) error { return nil }

func (s *fakeUpdateRepo) CountByIssue(ctx context.Context, issueID uint64) (int64, error) {
	return 1, nil
}

func (s *fakeUpdateRepo) DeleteByIssue(ctx context.Context, issueID uint64) error { return nil }

func (s *fakeUpdateRepo) CreateUpdateAttachment(ctx context.Context, att *model.IssueUpdateAttachment) error {
	return nil
}

func (s *fakeUpdateRepo) ListUpdateAttachments(ctx context.Context, updateID uint64) ([]*model.IssueUpdateAttachment, error) {
	return nil, nil
}

func (s *fakeUpdateRepo) DeleteUpdateAttachments(ctx context.Context, updateID uint64) error {
	return nil
}

func (s *fakeUpdateRepo) ListAttachmentsByIssue(ctx context.Context, issueID uint64) ([]*model.IssueUpdateAttachment, error) {
	return nil, nil
}

func (s *fakeUpdateRepo) DeleteAttachmentsByIssue(ctx context.Context, issueID uint64) error {
	return nil
}

func (s *fakeUpdateRepo) DeleteOrphanUpdates(ctx context.Context) (int64, error) { return 0, nil }

func (s *fakeUpdateRepo) DeleteOrphanAttachments(ctx context.Context) (int64, error) {
	return 0, nil
}

func strPtr(v string) *string { return &v }

func TestEditUpdateOwnerOnly(t *testing.T) {
	repo := &fakeUpdateRepo{
		owner: &repository.UpdateOwnerRow{ID: 7, IssueID: 42, UserID: 9, Content: "eski", IssueOwner: 9},
		row:   &repository.UpdateRow{ID: 7, Title: strPtr("Servis"), Content: "yeni", Username: "sahip"},
	}
	notifier := &fakeNotifier{}
	svc := NewUpdateService(repo, &fakeIssueRepo{}, notifier)

	if _, err := svc.EditUpdate(context.Background(), 8, "baskasi", 7, &dto.PatchUpdateDTO{Content: strPtr("yeni")}); !errors.Is(err, ErrNotOwner) {
		t.Errorf("foreign user edit: err = %v, want ErrNotOwner", err)
	}
	if notifier.calls != 0 {
		t.Errorf("rejected edit notified followers %d times", notifier.calls)
	}

	update, err := svc.EditUpdate(context.Background(), 9, "sahip", 7, &dto.PatchUpdateDTO{Title: strPtr(" Servis "), Content: strPtr(" yeni ")})
	if err != nil {
		t.Fatalf("EditUpdate: %v", err)
	}
	if repo.patchedContent != "yeni" {
		t.Errorf("stored content = %q, want trimmed %q", repo.patchedContent, "yeni")
	}
	if update.Content != "yeni" {
		t.Errorf("returned content = %q", update.Content)
	}
	if notifier.calls != 1 {
		t.Errorf("notifier calls = %d, want 1", notifier.calls)
	}
}

func TestEditUpdateGoneAfterWrite(t *testing.T) {
	// The update can disappear between the write and the re-read when the
	// issue is deleted concurrently. That must map to not-found, not a panic.
	repo := &fakeUpdateRepo{
		owner: &repository.UpdateOwnerRow{ID: 7, IssueID: 42, UserID: 9, Content: "eski", IssueOwner: 9},
		row:   nil,
	}
	svc := NewUpdateService(repo, &fakeIssueRepo{}, &fakeNotifier{})

	_, err := svc.EditUpdate(context.Background(), 9, "sahip", 7, &dto.PatchUpdateDTO{Content: strPtr("yeni")})
	if !errors.Is(err, ErrUpdateNotFound) {
		t.Errorf("err = %v, want ErrUpdateNotFound", err)
	}
}
