package service

import (
	"context"
	"sort"
	"strings"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
)

// Curated starter catalog of popular EVs. The live vehicles table is merged
// on top, so community-added models show up alongside these.
var predefinedBrandModels = []dto.BrandModelsDTO{
	{Brand: "Tesla", Models: []string{"Model S", "Model 3", "Model X", "Model Y"}},
	{Brand: "Renault", Models: []string{"ZOE", "Megane E-Tech"}},
	{Brand: "Hyundai", Models: []string{"IONIQ 5", "IONIQ 6", "Kona Electric"}},
	{Brand: "Kia", Models: []string{"EV6", "Niro EV"}},
	{Brand: "BMW", Models: []string{"i3", "i4", "iX", "iX3"}},
	{Brand: "Mercedes", Models: []string{"EQA", "EQB", "EQC", "EQS"}},
	{Brand: "Volkswagen", Models: []string{"ID.3", "ID.4", "ID.5"}},
	{Brand: "Audi", Models: []string{"e-tron", "Q4 e-tron"}},
	{Brand: "Nissan", Models: []string{"Leaf", "Ariya"}},
	{Brand: "BYD", Models: []string{"Atto 3", "Han", "Seal"}},
}

var issueTypes = []string{
	"Batarya menzil düşüşü",
	"Şarj olmuyor / yavaş şarj",
	"Şarj portu arızası",
	"Hızlı şarj uyumsuzluğu",
	"Yazılım güncelleme hatası",
	"Multimedya / ekran donması",
	"Isı pompası problemi",
	"Rejeneratif frenleme sorunu",
	"Motor / inverter arızası",
	"Sensör kalibrasyon / ADAS",
	"Gürültü / titreşim",
	"Klima performans düşüşü",
	"Direksiyon / sürüş destek hatası",
}

type VehicleService interface {
	ListVehicles(ctx context.Context) ([]*dto.VehicleDTO, error)
	ListBrandModels(ctx context.Context) ([]dto.BrandModelsDTO, error)
	ListIssueTypes(ctx context.Context) []string

	ListUserVehicles(ctx context.Context, userID uint64) ([]*dto.UserVehicleDTO, error)
	CreateUserVehicle(ctx context.Context, userID uint64, req *dto.CreateUserVehicleDTO) (*dto.UserVehicleDTO, error)
	UpdateUserVehicle(ctx context.Context, userID, id uint64, req *dto.UpdateUserVehicleDTO) (*dto.UserVehicleDTO, error)
	DeleteUserVehicle(ctx context.Context, userID, id uint64) error
}

type VehicleServiceImpl struct {
	vehicleRepo     repository.VehicleRepo
	userVehicleRepo repository.UserVehicleRepo
}

func NewVehicleService(vehicleRepo repository.VehicleRepo, userVehicleRepo repository.UserVehicleRepo) VehicleService {
	return &VehicleServiceImpl{
		vehicleRepo:     vehicleRepo,
		userVehicleRepo: userVehicleRepo,
	}
}

func (s *VehicleServiceImpl) ListVehicles(ctx context.Context) ([]*dto.VehicleDTO, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.VehicleDTO, 0, len(vehicles))
	for _, v := range vehicles {
		items = append(items, &dto.VehicleDTO{ID: v.ID, Brand: v.Brand, Model: v.Model})
	}
	return items, nil
}

// ListBrandModels merges the curated catalog with every vehicle the
// community has reported issues for.
func (s *VehicleServiceImpl) ListBrandModels(ctx context.Context) ([]dto.BrandModelsDTO, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]map[string]struct{})
	for _, b := range predefinedBrandModels {
		models := make(map[string]struct{}, len(b.Models))
		for _, m := range b.Models {
			models[m] = struct{}{}
		}
		merged[b.Brand] = models
	}
	for _, v := range vehicles {
		if _, ok := merged[v.Brand]; !ok {
			merged[v.Brand] = make(map[string]struct{})
		}
		merged[v.Brand][v.Model] = struct{}{}
	}

	result := make([]dto.BrandModelsDTO, 0, len(merged))
	for brand, models := range merged {
		names := make([]string, 0, len(models))
		for m := range models {
			names = append(names, m)
		}
		sort.Strings(names)
		result = append(result, dto.BrandModelsDTO{Brand: brand, Models: names})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Brand < result[j].Brand })
	return result, nil
}

func (s *VehicleServiceImpl) ListIssueTypes(_ context.Context) []string {
	return issueTypes
}

func (s *VehicleServiceImpl) ListUserVehicles(ctx context.Context, userID uint64) ([]*dto.UserVehicleDTO, error) {
	vehicles, err := s.userVehicleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.UserVehicleDTO, 0, len(vehicles))
	for _, v := range vehicles {
		items = append(items, toUserVehicleDTO(v))
	}
	return items, nil
}

func (s *VehicleServiceImpl) CreateUserVehicle(ctx context.Context, userID uint64, req *dto.CreateUserVehicleDTO) (*dto.UserVehicleDTO, error) {
	userVehicle := &model.UserVehicle{
		UserID:    userID,
		Brand:     strings.TrimSpace(req.Brand),
		Model:     strings.TrimSpace(req.Model),
		Km:        req.Km,
		ModelYear: req.ModelYear,
	}
	if userVehicle.Brand == "" || userVehicle.Model == "" {
		return nil, ErrParamInvalid
	}
	if err := s.userVehicleRepo.CreateUserVehicle(ctx, userVehicle); err != nil {
		return nil, err
	}
	return toUserVehicleDTO(userVehicle), nil
}

// UpdateUserVehicle patches only the fields the caller sent.
func (s *VehicleServiceImpl) UpdateUserVehicle(ctx context.Context, userID, id uint64, req *dto.UpdateUserVehicleDTO) (*dto.UserVehicleDTO, error) {
	vehicle, err := s.userVehicleRepo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	if req.Brand != nil {
		vehicle.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Model != nil {
		vehicle.Model = strings.TrimSpace(*req.Model)
	}
	if req.Km != nil {
		vehicle.Km = req.Km
	}
	if req.ModelYear != nil {
		vehicle.ModelYear = req.ModelYear
	}
	if vehicle.Brand == "" || vehicle.Model == "" {
		return nil, ErrParamInvalid
	}

	if err := s.userVehicleRepo.UpdateUserVehicle(ctx, vehicle); err != nil {
		return nil, err
	}
	return toUserVehicleDTO(vehicle), nil
}

func (s *VehicleServiceImpl) DeleteUserVehicle(ctx context.Context, userID, id uint64) error {
	vehicle, err := s.userVehicleRepo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return ErrVehicleNotFound
	}
	return s.userVehicleRepo.DeleteUserVehicle(ctx, id, userID)
}

func toUserVehicleDTO(vehicle *model.UserVehicle) *dto.UserVehicleDTO {
	return &dto.UserVehicleDTO{
		ID:        vehicle.ID,
		Brand:     vehicle.Brand,
		Model:     vehicle.Model,
		Km:        vehicle.Km,
		ModelYear: vehicle.ModelYear,
		CreatedAt: vehicle.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
