package model

type Vehicle struct {
	ID    uint64 `gorm:"primaryKey" json:"id"`
	Brand string `gorm:"type:varchar(60);not null;uniqueIndex:idx_brand_model" json:"brand"`
	Model string `gorm:"type:varchar(60);not null;uniqueIndex:idx_brand_model" json:"model"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
