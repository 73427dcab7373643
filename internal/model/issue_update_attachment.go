package model

import "time"

type IssueUpdateAttachment struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	UpdateID     uint64    `gorm:"not null;index:idx_update_id" json:"update_id"`
	Filename     string    `gorm:"type:varchar(255);not null" json:"filename"`
	OriginalName *string   `gorm:"type:varchar(255)" json:"original_name"`
	Mime         string    `gorm:"type:varchar(64)" json:"mime"`
	Kind         string    `gorm:"type:varchar(16)" json:"kind"`
	CreatedAt    time.Time `json:"created_at"`
}

func (IssueUpdateAttachment) TableName() string {
	return "issue_update_attachments"
}
