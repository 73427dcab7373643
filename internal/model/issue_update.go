package model

import "time"

// IssueUpdate is a follow-up "development" posted by the issue owner,
// distinct from a comment.
type IssueUpdate struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	IssueID   uint64    `gorm:"not null;index:idx_issue_id" json:"issue_id"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	Title     *string   `gorm:"type:varchar(160)" json:"title"`
	Content   string    `gorm:"type:varchar(4000);not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (IssueUpdate) TableName() string {
	return "issue_updates"
}
