package repository

import (
	"context"
	"errors"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VehicleRepo interface {
	ListVehicles(ctx context.Context) ([]*model.Vehicle, error)
	GetOrCreateVehicle(ctx context.Context, brand, vehicleModel string) (uint64, error)
}

type VehicleRepoImpl struct {
	db *gorm.DB
}

func NewVehicleRepo(db *gorm.DB) VehicleRepo {
	return &VehicleRepoImpl{db: db}
}

func (s *VehicleRepoImpl) ListVehicles(ctx context.Context) ([]*model.Vehicle, error) {
	var vehicles []*model.Vehicle
	result := s.db.WithContext(ctx).
		Order("brand, model").
		Find(&vehicles)
	if result.Error != nil {
		return nil, result.Error
	}
	return vehicles, nil
}

// GetOrCreateVehicle resolves the catalog row for a brand/model pair,
// inserting it on first sight. The unique index absorbs concurrent inserts.
func (s *VehicleRepoImpl) GetOrCreateVehicle(ctx context.Context, brand, vehicleModel string) (uint64, error) {
	var vehicle model.Vehicle
	result := s.db.WithContext(ctx).
		Where("brand = ? AND model = ?", brand, vehicleModel).
		First(&vehicle)
	if result.Error == nil {
		return vehicle.ID, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, result.Error
	}

	vehicle = model.Vehicle{Brand: brand, Model: vehicleModel}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&vehicle).Error
	if err != nil {
		return 0, err
	}
	if vehicle.ID != 0 {
		return vehicle.ID, nil
	}

	// Lost the insert race, re-read the winner.
	result = s.db.WithContext(ctx).
		Where("brand = ? AND model = ?", brand, vehicleModel).
		First(&vehicle)
	if result.Error != nil {
		return 0, result.Error
	}
	return vehicle.ID, nil
}
