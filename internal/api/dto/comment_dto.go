package dto

type CommentDTO struct {
	ID        uint64 `json:"id"`
	Content   string `json:"content"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type CreateCommentDTO struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type UpdateCommentDTO struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}
