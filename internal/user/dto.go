package user

import (
	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type RegisterCommand struct {
	Username    string `json:"username" validate:"required"`
	DisplayName string `json:"displayName" validate:"required,max=64"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	Image       string `json:"image" validate:"omitempty,url"`
}

type LoginCommand struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileCommand struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=1,max=64"`
	Image       *string `json:"image" validate:"omitempty,url"`
}

type RegisterDeviceCommand struct {
	DeviceID string `json:"deviceId" validate:"required,max=128"`
	Token    string `json:"token" validate:"required"`
}

// Output DTOs
type UserDTO struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
}

type UserProfileDTO struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Image       string    `json:"image,omitempty"`
	Devices     int       `json:"devices"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	ExpiresIn   int      `json:"expires_in"`
	TokenType   string   `json:"token_type"`
	User        *UserDTO `json:"user"`
}
