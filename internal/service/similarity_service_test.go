package service

import (
	"context"
	"testing"
	"time"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/util"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
)

type fakeIssueRepo struct {
	issue      *model.Issue
	candidates []*repository.IssueRow

	similarCalls int
	lastTokens   []string
	lastLimit    int
}

func (s *fakeIssueRepo) CreateIssue(ctx context.Context, issue *model.Issue) error { return nil }
func (s *fakeIssueRepo) GetIssueByID(ctx context.Context, id uint64) (*model.Issue, error) {
	return s.issue, nil
}
func (s *fakeIssueRepo) GetIssueRow(ctx context.Context, id uint64) (*repository.IssueRow, error) {
	return nil, nil
}
func (s *fakeIssueRepo) ListIssues(ctx context.Context, filter repository.IssueFilter, limit, offset int) ([]*repository.IssueRow, int64, error) {
	return nil, 0, nil
}
func (s *fakeIssueRepo) ListIssuesByUsername(ctx context.Context, username string, limit int) ([]*repository.IssueRow, error) {
	return nil, nil
}
func (s *fakeIssueRepo) ListIssueIDsByUser(ctx context.Context, userID uint64) ([]uint64, error) {
	return nil, nil
}
func (s *fakeIssueRepo) UpdateIssue(ctx context.Context, issue *model.Issue) error { return nil }
func (s *fakeIssueRepo) DeleteIssue(ctx context.Context, id uint64) error          { return nil }
func (s *fakeIssueRepo) FindSimilarCandidates(ctx context.Context, brand, vehicleModel string, tokens []string, limit int) ([]*repository.IssueRow, error) {
	s.similarCalls++
	s.lastTokens = tokens
	s.lastLimit = limit
	return s.candidates, nil
}

func candidateRow(id uint64, title, description string, age time.Duration) *repository.IssueRow {
	return &repository.IssueRow{
		ID:          id,
		Title:       title,
		Description: description,
		Username:    "testuser",
		Brand:       "Tesla",
		Model:       "Model Y",
		Status:      "open",
		CreatedAt:   time.Now().Add(-age),
	}
}

func TestFindSimilarRanking(t *testing.T) {
	repo := &fakeIssueRepo{
		candidates: []*repository.IssueRow{
			// Two title hits and one description hit.
			candidateRow(1, "Kapı kolu donuyor", "soğuk havada açılmıyor", time.Hour),
			// A single title hit.
			candidateRow(2, "Cam açılmıyor", "kış aylarında", 2*time.Hour),
			// A single description hit.
			candidateRow(3, "Batarya sorunu", "ön kapı titretiyor", 3*time.Hour),
			// The candidate query may over-match; zero scorers must be dropped.
			candidateRow(4, "Motor sesi", "titreşim var", time.Minute),
		},
	}
	svc := NewSimilarityService(repo)

	result, err := svc.FindSimilar(context.Background(), &dto.SimilarQueryDTO{
		Brand: "Tesla",
		Model: "Model Y",
		Title: util.PtrString("Kapı kolu açılmıyor"),
	})
	if err != nil {
		t.Fatalf("FindSimilar: %v", err)
	}

	if repo.similarCalls != 1 {
		t.Fatalf("expected one candidate query, got %d", repo.similarCalls)
	}
	if repo.lastLimit != 80 {
		t.Errorf("candidate limit = %d, want 80", repo.lastLimit)
	}

	ids := make([]uint64, 0, len(result.Items))
	for _, item := range result.Items {
		ids = append(ids, item.ID)
	}
	want := []uint64{1, 2, 3}
	if len(ids) != len(want) {
		t.Fatalf("got ids %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got ids %v, want %v", ids, want)
		}
	}
}

func TestFindSimilarTieBreakNewest(t *testing.T) {
	repo := &fakeIssueRepo{
		candidates: []*repository.IssueRow{
			candidateRow(10, "şarj durdu", "", 5*time.Hour),
			candidateRow(11, "şarj kesildi", "", time.Hour),
		},
	}
	svc := NewSimilarityService(repo)

	result, err := svc.FindSimilar(context.Background(), &dto.SimilarQueryDTO{
		Brand: "Tesla",
		Model: "Model Y",
		Title: util.PtrString("şarj"),
	})
	if err != nil {
		t.Fatalf("FindSimilar: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].ID != 11 {
		t.Errorf("equal scores should order newest first, got id %d", result.Items[0].ID)
	}
}

func TestFindSimilarResultCap(t *testing.T) {
	repo := &fakeIssueRepo{}
	for i := uint64(1); i <= 8; i++ {
		repo.candidates = append(repo.candidates, candidateRow(i, "batarya arızası", "", time.Duration(i)*time.Hour))
	}
	svc := NewSimilarityService(repo)

	result, err := svc.FindSimilar(context.Background(), &dto.SimilarQueryDTO{
		Brand: "Togg",
		Model: "T10X",
		Title: util.PtrString("batarya"),
	})
	if err != nil {
		t.Fatalf("FindSimilar: %v", err)
	}
	if len(result.Items) != 6 {
		t.Errorf("expected result cap of 6, got %d", len(result.Items))
	}
}

func TestFindSimilarEmptyInputs(t *testing.T) {
	repo := &fakeIssueRepo{
		candidates: []*repository.IssueRow{candidateRow(1, "şarj", "şarj", time.Hour)},
	}
	svc := NewSimilarityService(repo)

	tests := []struct {
		name  string
		query *dto.SimilarQueryDTO
	}{
		{"missing brand", &dto.SimilarQueryDTO{Model: "Model Y", Title: util.PtrString("şarj sorunu")}},
		{"missing model", &dto.SimilarQueryDTO{Brand: "Tesla", Title: util.PtrString("şarj sorunu")}},
		{"no text", &dto.SimilarQueryDTO{Brand: "Tesla", Model: "Model Y"}},
		{"only short tokens", &dto.SimilarQueryDTO{Brand: "Tesla", Model: "Model Y", Title: util.PtrString("ab cd")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.FindSimilar(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("FindSimilar: %v", err)
			}
			if len(result.Items) != 0 {
				t.Errorf("expected empty result, got %d items", len(result.Items))
			}
		})
	}
	if repo.similarCalls != 0 {
		t.Errorf("degenerate queries must not hit the repository, got %d calls", repo.similarCalls)
	}
}

func TestFindSimilarSnippetLength(t *testing.T) {
	long := make([]rune, 0, 400)
	for i := 0; i < 400; i++ {
		long = append(long, 'ş')
	}
	repo := &fakeIssueRepo{
		candidates: []*repository.IssueRow{candidateRow(1, "batarya", string(long), time.Hour)},
	}
	svc := NewSimilarityService(repo)

	result, err := svc.FindSimilar(context.Background(), &dto.SimilarQueryDTO{
		Brand: "Tesla",
		Model: "Model Y",
		Title: util.PtrString("batarya"),
	})
	if err != nil {
		t.Fatalf("FindSimilar: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.Items))
	}
	if n := len([]rune(result.Items[0].Snippet)); n != 180 {
		t.Errorf("snippet rune length = %d, want 180", n)
	}
}
