package dto

type VehicleDTO struct {
	ID    uint64 `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

type BrandModelsDTO struct {
	Brand  string   `json:"brand"`
	Models []string `json:"models"`
}

type UserVehicleDTO struct {
	ID        uint64 `json:"id"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Km        *int   `json:"km"`
	ModelYear *int   `json:"model_year"`
	CreatedAt string `json:"created_at"`
}

type CreateUserVehicleDTO struct {
	Brand     string `json:"brand" validate:"required,max=60"`
	Model     string `json:"model" validate:"required,max=60"`
	Km        *int   `json:"km" validate:"omitempty,min=0"`
	ModelYear *int   `json:"model_year" validate:"omitempty,min=1990,max=2100"`
}

type UpdateUserVehicleDTO struct {
	Brand     *string `json:"brand" validate:"omitempty,max=60"`
	Model     *string `json:"model" validate:"omitempty,max=60"`
	Km        *int    `json:"km" validate:"omitempty,min=0"`
	ModelYear *int    `json:"model_year" validate:"omitempty,min=1990,max=2100"`
}
