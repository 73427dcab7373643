package model

import (
	"time"
)

const (
	IssueStatusOpen     = "open"
	IssueStatusResolved = "resolved"
)

type Issue struct {
	ID                uint64    `gorm:"primaryKey" json:"id"`
	UserID            uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	VehicleID         uint64    `gorm:"not null;index:idx_vehicle_id" json:"vehicle_id"`
	Title             string    `gorm:"type:varchar(200);not null" json:"title"`
	IssueType         *string   `gorm:"type:varchar(120)" json:"issue_type"`
	Description       string    `gorm:"type:text;not null" json:"description"`
	Solution          *string   `gorm:"type:text" json:"solution"`
	ServiceExperience *string   `gorm:"type:text" json:"service_experience"`
	IssueLocation     *string   `gorm:"type:text" json:"issue_location"` // opaque JSON blob, never parsed server-side
	Status            string    `gorm:"type:varchar(16);not null;default:open" json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID;references:ID"`
	Vehicle Vehicle `gorm:"foreignKey:VehicleID;references:ID"`
}

func (Issue) TableName() string {
	return "issues"
}
