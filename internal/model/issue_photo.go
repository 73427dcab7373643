package model

import "time"

type IssuePhoto struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	IssueID      uint64    `gorm:"not null;index:idx_issue_id" json:"issue_id"`
	Filename     string    `gorm:"type:varchar(255);not null" json:"filename"`
	OriginalName *string   `gorm:"type:varchar(255)" json:"original_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (IssuePhoto) TableName() string {
	return "issue_photos"
}
