package model

import "time"

// Notification rows are written only by the fan-out service. Payload stays
// an opaque serialized blob at this boundary; typed decoding happens in the
// service layer.
type Notification struct {
	ID        uint64     `gorm:"primaryKey" json:"id"`
	UserID    uint64     `gorm:"not null;index:idx_user_read,priority:1" json:"user_id"`
	IssueID   uint64     `gorm:"not null;index:idx_issue_id" json:"issue_id"`
	Type      string     `gorm:"type:varchar(24);not null" json:"type"`
	Payload   string     `gorm:"type:text" json:"payload"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `gorm:"index:idx_user_read,priority:2" json:"read_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
