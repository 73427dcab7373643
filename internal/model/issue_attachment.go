package model

import "time"

const (
	AttachmentKindImage = "image"
	AttachmentKindAudio = "audio"
	AttachmentKindVideo = "video"
	AttachmentKindOther = "other"
)

// IssueAttachment is a generic media file (image/audio/video) on an issue.
type IssueAttachment struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	IssueID      uint64    `gorm:"not null;index:idx_issue_id" json:"issue_id"`
	Filename     string    `gorm:"type:varchar(255);not null" json:"filename"`
	OriginalName *string   `gorm:"type:varchar(255)" json:"original_name"`
	Mime         string    `gorm:"type:varchar(64)" json:"mime"`
	Kind         string    `gorm:"type:varchar(16)" json:"kind"`
	CreatedAt    time.Time `json:"created_at"`
}

func (IssueAttachment) TableName() string {
	return "issue_attachments"
}
