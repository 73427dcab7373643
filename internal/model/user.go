package model

import (
	"time"
)

type User struct {
	ID           uint64  `gorm:"primaryKey"`
	Username     string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	PasswordHash string  `gorm:"type:varchar(255);not null" json:"-"`
	OwnedBrand   *string `gorm:"type:varchar(60)" json:"owned_brand"`
	OwnedModel   *string `gorm:"type:varchar(60)" json:"owned_model"`
	CreatedAt    time.Time

	Issues   []Issue       `gorm:"foreignKey:UserID;references:ID"`
	Vehicles []UserVehicle `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
