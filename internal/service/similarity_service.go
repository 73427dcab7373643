package service

import (
	"context"
	"sort"
	"strings"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/util"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
)

const (
	similarCandidateLimit = 80
	similarResultLimit    = 6
	similarSnippetRunes   = 180
)

// SimilarityService surfaces likely duplicates while the user is still
// typing a new issue.
type SimilarityService interface {
	FindSimilar(ctx context.Context, query *dto.SimilarQueryDTO) (*dto.SimilarResultDTO, error)
}

type SimilarityServiceImpl struct {
	issueRepo repository.IssueRepo
}

func NewSimilarityService(issueRepo repository.IssueRepo) SimilarityService {
	return &SimilarityServiceImpl{issueRepo: issueRepo}
}

type scoredIssue struct {
	row   *repository.IssueRow
	score int
}

// FindSimilar tokenizes the draft text, pulls same-vehicle candidates that
// contain any token and ranks them by weighted substring hits. Title hits
// count double over description hits.
func (s *SimilarityServiceImpl) FindSimilar(ctx context.Context, query *dto.SimilarQueryDTO) (*dto.SimilarResultDTO, error) {
	empty := &dto.SimilarResultDTO{Items: []*dto.SimilarIssueDTO{}}

	if query.Brand == "" || query.Model == "" {
		return empty, nil
	}
	blob := strings.TrimSpace(strings.Join([]string{
		deref(query.Title), deref(query.IssueType), deref(query.Description),
	}, " "))
	if blob == "" {
		return empty, nil
	}

	tokens := util.SearchTokens(blob)
	if len(tokens) == 0 {
		return empty, nil
	}

	candidates, err := s.issueRepo.FindSimilarCandidates(ctx, query.Brand, query.Model, tokens, similarCandidateLimit)
	if err != nil {
		return nil, err
	}

	var scored []scoredIssue
	for _, row := range candidates {
		title := strings.ToLower(row.Title)
		description := strings.ToLower(row.Description)
		score := 0
		for _, tok := range tokens {
			if strings.Contains(title, tok) {
				score += 2
			}
			if strings.Contains(description, tok) {
				score++
			}
		}
		if score == 0 {
			continue
		}
		scored = append(scored, scoredIssue{row: row, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].row.CreatedAt.After(scored[j].row.CreatedAt)
	})
	if len(scored) > similarResultLimit {
		scored = scored[:similarResultLimit]
	}

	items := make([]*dto.SimilarIssueDTO, 0, len(scored))
	for _, sc := range scored {
		row := sc.row
		items = append(items, &dto.SimilarIssueDTO{
			ID:           row.ID,
			Username:     row.Username,
			Brand:        row.Brand,
			Model:        row.Model,
			Title:        row.Title,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt.Format("2006-01-02 15:04:05"),
			UpdateCount:  row.UpdateCount,
			CommentCount: row.CommentCount,
			MediaCount:   row.MediaCount,
			IssueType:    row.IssueType,
			Snippet:      util.TruncateRunes(row.Description, similarSnippetRunes),
		})
	}

	return &dto.SimilarResultDTO{Items: items, Tokens: tokens}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
