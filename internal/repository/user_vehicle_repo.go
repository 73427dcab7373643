package repository

import (
	"context"
	"errors"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"

	"gorm.io/gorm"
)

type UserVehicleRepo interface {
	ListByUser(ctx context.Context, userID uint64) ([]*model.UserVehicle, error)
	GetByIDAndUser(ctx context.Context, id, userID uint64) (*model.UserVehicle, error)
	CreateUserVehicle(ctx context.Context, vehicle *model.UserVehicle) error
	UpdateUserVehicle(ctx context.Context, vehicle *model.UserVehicle) error
	DeleteUserVehicle(ctx context.Context, id, userID uint64) error
}

type UserVehicleRepoImpl struct {
	db *gorm.DB
}

func NewUserVehicleRepo(db *gorm.DB) UserVehicleRepo {
	return &UserVehicleRepoImpl{db: db}
}

func (s *UserVehicleRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.UserVehicle, error) {
	var vehicles []*model.UserVehicle
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&vehicles)
	if result.Error != nil {
		return nil, result.Error
	}
	return vehicles, nil
}

func (s *UserVehicleRepoImpl) GetByIDAndUser(ctx context.Context, id, userID uint64) (*model.UserVehicle, error) {
	var vehicle model.UserVehicle
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&vehicle)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &vehicle, nil
}

func (s *UserVehicleRepoImpl) CreateUserVehicle(ctx context.Context, vehicle *model.UserVehicle) error {
	return s.db.WithContext(ctx).Create(vehicle).Error
}

func (s *UserVehicleRepoImpl) UpdateUserVehicle(ctx context.Context, vehicle *model.UserVehicle) error {
	return s.db.WithContext(ctx).Save(vehicle).Error
}

func (s *UserVehicleRepoImpl) DeleteUserVehicle(ctx context.Context, id, userID uint64) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.UserVehicle{}).Error
}
