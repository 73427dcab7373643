package dto

type RegisterDTO struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
