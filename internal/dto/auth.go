package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"reader42"`
	Password string `json:"password" example:"secret"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"User successfully registered"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"reader42"`
	Password string `json:"password" example:"secret"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
}
