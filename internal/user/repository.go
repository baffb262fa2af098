package user

import (
	"context"

	User "murmur/internal/user/model"

	"github.com/google/uuid"
)

// Directory is the read side of the user store consumed by messaging and notifications.
type Directory interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error)
	FindUsers(ctx context.Context, query User.UserQuery) ([]*User.User, error)
	UserExists(ctx context.Context, query User.UserQuery) (bool, error)
}

type UserRepository interface {
	Directory

	CreateUser(ctx context.Context, user *User.User) error
	GetUserByUsername(ctx context.Context, username string) (*User.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, patch User.UserPatch) error
	SetStatus(ctx context.Context, userID uuid.UUID, status User.Status) error

	// Replaces the whole registration list; callers apply User.SetPushToken first
	UpdatePushRegistrations(ctx context.Context, userID uuid.UUID, regs []User.PushRegistration) error
}
