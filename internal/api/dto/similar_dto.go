package dto

type SimilarQueryDTO struct {
	Brand       string  `json:"brand" validate:"required,max=80"`
	Model       string  `json:"model" validate:"required,max=80"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IssueType   *string `json:"issue_type"`
}

type SimilarIssueDTO struct {
	ID           uint64  `json:"id"`
	Username     string  `json:"username"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Title        string  `json:"title"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdateCount  int64   `json:"update_count"`
	CommentCount int64   `json:"comment_count"`
	MediaCount   int64   `json:"media_count"`
	IssueType    *string `json:"issue_type"`
	Snippet      string  `json:"snippet"`
}

type SimilarResultDTO struct {
	Items  []*SimilarIssueDTO `json:"items"`
	Tokens []string           `json:"tokens"`
}
