package dto

type IssueDTO struct {
	ID                uint64  `json:"id"`
	UserID            uint64  `json:"user_id"`
	Username          string  `json:"username"`
	Brand             string  `json:"brand"`
	Model             string  `json:"model"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	IssueType         *string `json:"issue_type"`
	Status            string  `json:"status"`
	Solution          *string `json:"solution"`
	ServiceExperience *string `json:"service_experience"`
	IssueLocation     *string `json:"issue_location"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`

	CommentCount int64 `json:"comment_count"`
	UpdateCount  int64 `json:"update_count"`
	PhotoCount   int64 `json:"photo_count"`
	MediaCount   int64 `json:"media_count"`
}

type CreateIssueDTO struct {
	Brand             string  `json:"brand" validate:"required,max=80"`
	Model             string  `json:"model" validate:"required,max=80"`
	Title             string  `json:"title" validate:"required,max=200"`
	Description       string  `json:"description" validate:"required,max=8000"`
	IssueType         *string `json:"issue_type" validate:"omitempty,max=80"`
	ServiceExperience *string `json:"service_experience" validate:"omitempty,max=8000"`
	IssueLocation     *string `json:"issue_location" validate:"omitempty,max=8192"`
}

type PatchIssueDTO struct {
	Title             *string `json:"title" validate:"omitempty,max=200"`
	Description       *string `json:"description" validate:"omitempty,max=8000"`
	IssueType         *string `json:"issue_type" validate:"omitempty,max=80"`
	Status            *string `json:"status" validate:"omitempty,oneof=open resolved"`
	Solution          *string `json:"solution" validate:"omitempty,max=8000"`
	ServiceExperience *string `json:"service_experience" validate:"omitempty,max=8000"`
	IssueLocation     *string `json:"issue_location" validate:"omitempty,max=8192"`
}

type IssueListDTO struct {
	Items    []*IssueDTO `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

type BulkDeleteDTO struct {
	Deleted int `json:"deleted"`
}
