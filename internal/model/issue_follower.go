package model

import "time"

type IssueFollower struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	IssueID   uint64    `gorm:"primaryKey;index:idx_issue_id" json:"issue_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (IssueFollower) TableName() string {
	return "issue_followers"
}
