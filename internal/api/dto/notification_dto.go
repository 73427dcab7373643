package dto

type NotificationDTO struct {
	ID        uint64 `json:"id"`
	IssueID   uint64 `json:"issue_id"`
	Type      string `json:"type"`
	Payload   any    `json:"payload"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type UnreadDTO struct {
	Unread int64 `json:"unread"`
}

type MarkReadDTO struct {
	ID *uint64 `json:"id"`
}
