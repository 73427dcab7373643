package dto

type UserDTO struct {
	ID         uint64  `json:"id"`
	Username   string  `json:"username"`
	OwnedBrand *string `json:"owned_brand"`
	OwnedModel *string `json:"owned_model"`
	CreatedAt  string  `json:"created_at"`
}

type UpdateProfileDTO struct {
	OwnedBrand *string `json:"owned_brand" validate:"omitempty,max=80"`
	OwnedModel *string `json:"owned_model" validate:"omitempty,max=80"`
}
