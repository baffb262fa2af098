package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register new user with username + display name + password
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)
	Login(ctx context.Context, cmd LoginCommand) (*LoginResponse, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, cmd UpdateProfileCommand) (*UserProfileDTO, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	// Search users by username or display name (for adding contacts, etc.)
	SearchUsers(ctx context.Context, query string, limit int) ([]*UserProfileDTO, error)

	RegisterDevice(ctx context.Context, userID uuid.UUID, cmd RegisterDeviceCommand) error
	RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID string) error
}
