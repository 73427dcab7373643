package dto

type UpdateAttachmentDTO struct {
	ID           uint64  `json:"id"`
	URL          string  `json:"url"`
	OriginalName *string `json:"original_name"`
	Mime         string  `json:"mime"`
	Kind         string  `json:"kind"`
	CreatedAt    string  `json:"created_at"`
}

type IssueUpdateDTO struct {
	ID          uint64                 `json:"id"`
	Title       *string                `json:"title"`
	Content     string                 `json:"content"`
	Username    string                 `json:"username"`
	CreatedAt   string                 `json:"created_at"`
	Attachments []*UpdateAttachmentDTO `json:"attachments"`
}

type CreateUpdateDTO struct {
	Title   *string `json:"title" validate:"omitempty,max=160"`
	Content string  `json:"content" validate:"required,min=1,max=4000"`
}

type PatchUpdateDTO struct {
	Title   *string `json:"title" validate:"omitempty,max=160"`
	Content *string `json:"content" validate:"omitempty,max=4000"`
}

type CreateUpdateResultDTO struct {
	Inserted    *IssueUpdateDTO `json:"inserted"`
	UpdateCount int64           `json:"update_count"`
}

type DeleteUpdateResultDTO struct {
	Deleted     bool  `json:"deleted"`
	UpdateCount int64 `json:"update_count"`
}
