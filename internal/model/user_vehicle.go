package model

import "time"

// UserVehicle is a vehicle in a user's garage, distinct from the global
// brand/model catalog in vehicles.
type UserVehicle struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Brand     string    `gorm:"type:varchar(60);not null" json:"brand"`
	Model     string    `gorm:"type:varchar(60);not null" json:"model"`
	Km        *int      `json:"km"`
	ModelYear *int      `json:"model_year"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserVehicle) TableName() string {
	return "user_vehicles"
}
