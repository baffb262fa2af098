package usecase

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"murmur/config"
	"murmur/internal/user"
	models "murmur/internal/user/model"
	"murmur/internal/user/repository"
	"murmur/pkg/errors"
	"murmur/pkg/logger"
	"murmur/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

const maxSearchResults = 50

type UserUsecase struct {
	repo     user.UserRepository
	logger   logger.Logger
	config   config.Config
	validate *validator.Validate
}

func NewUserUsecase(repo user.UserRepository, logger logger.Logger, config config.Config) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger, config: config, validate: validator.New()}
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserDTO, error) {
	if err := validateUsername(cmd.Username); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cmd.DisplayName) == "" {
		return nil, errors.ErrInvalidDisplayName
	}
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, errors.InvalidArg(err.Error())
	}

	if exists, err := uc.repo.UsernameExists(ctx, cmd.Username); err != nil {
		uc.logger.Error("database error checking username", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrUsernameTaken
	}

	hash, err := utils.HashPassword(cmd.Password)
	if err != nil {
		uc.logger.Error("failed to hash password", "err", err)
		return nil, errors.Internal("internal server error")
	}

	role := models.RoleUser
	if slices.Contains(uc.config.Admin.Usernames, cmd.Username) {
		role = models.RoleAdmin
	}

	u := &models.User{
		ID:           uuid.New(),
		Username:     cmd.Username,
		Name:         strings.TrimSpace(cmd.DisplayName),
		Image:        cmd.Image,
		PasswordHash: hash,
		Role:         role,
		Status:       models.StatusActive,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		if pkgerrors.Is(err, repository.ErrUsernameTaken) {
			return nil, errors.ErrUsernameTaken
		}
		uc.logger.Errorf("error while saving user in db: %v", err)
		return nil, errors.ErrRegistrationFailed(errors.Internal("database error"))
	}

	return toUserDTO(u), nil
}

var usernameRegex = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

func validateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return errors.ErrInvalidUsername
	}
	return nil
}

func (uc *UserUsecase) Login(ctx context.Context, cmd user.LoginCommand) (*user.LoginResponse, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, errors.InvalidArg(err.Error())
	}

	u, err := uc.repo.GetUserByUsername(ctx, cmd.Username)
	if err != nil {
		if pkgerrors.Is(err, repository.ErrUserNotFound) {
			uc.logger.Warn("login requested for unknown username", "username", cmd.Username)
			return nil, errors.ErrInvalidCredentials
		}
		uc.logger.Error("database error loading user", "err", err)
		return nil, errors.ErrLoginFailed(err)
	}
	if !utils.VerifyPassword(u.PasswordHash, cmd.Password) {
		return nil, errors.ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, errors.ErrAccountDeleted
	}

	token, expiresIn, err := utils.GenerateJWTToken(u.ID, string(u.Role), uc.config)
	if err != nil {
		uc.logger.Error("failed to sign token", "err", err)
		return nil, errors.Internal("error while creating tokens")
	}

	return &user.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		TokenType:   "Bearer",
		User:        toUserDTO(u),
	}, nil
}

func (uc *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*user.UserProfileDTO, error) {
	u, err := uc.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileDTO(u), nil
}

func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, cmd user.UpdateProfileCommand) (*user.UserProfileDTO, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, errors.InvalidArg(err.Error())
	}
	patch := models.UserPatch{Image: cmd.Image}
	if cmd.DisplayName != nil {
		name := strings.TrimSpace(*cmd.DisplayName)
		if name == "" {
			return nil, errors.ErrInvalidDisplayName
		}
		patch.Name = &name
	}

	if _, err := uc.activeUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateUser(ctx, userID, patch); err != nil {
		uc.logger.Errorf("error while updating profile in db: %v", err)
		return nil, errors.Internal("error while updating profile in db")
	}
	return uc.GetProfile(ctx, userID)
}

func (uc *UserUsecase) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if _, err := uc.activeUser(ctx, userID); err != nil {
		return err
	}
	if err := uc.repo.SetStatus(ctx, userID, models.StatusDeleted); err != nil {
		uc.logger.Errorf("error while deleting account: %v", err)
		return errors.Internal("error while deleting account")
	}
	return nil
}

func (uc *UserUsecase) SearchUsers(ctx context.Context, query string, limit int) ([]*user.UserProfileDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.InvalidArg("search query is required")
	}
	if limit <= 0 || limit > maxSearchResults {
		limit = maxSearchResults
	}

	users, err := uc.repo.FindUsers(ctx, models.UserQuery{Keyword: query, Limit: limit})
	if err != nil {
		uc.logger.Error("database error searching users", "err", err)
		return nil, errors.Internal("internal server error")
	}

	out := make([]*user.UserProfileDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toProfileDTO(u))
	}
	return out, nil
}

func (uc *UserUsecase) RegisterDevice(ctx context.Context, userID uuid.UUID, cmd user.RegisterDeviceCommand) error {
	if err := uc.validate.Struct(cmd); err != nil {
		return errors.ErrInvalidDevice
	}

	u, err := uc.activeUser(ctx, userID)
	if err != nil {
		return err
	}
	if !u.SetPushToken(cmd.DeviceID, cmd.Token) {
		return nil
	}
	if err := uc.repo.UpdatePushRegistrations(ctx, userID, u.PushRegistrations); err != nil {
		uc.logger.Errorf("error while saving push registration: %v", err)
		return errors.Internal("error while saving push registration")
	}
	return nil
}

func (uc *UserUsecase) RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	u, err := uc.activeUser(ctx, userID)
	if err != nil {
		return err
	}
	if !u.RemoveDevice(deviceID) {
		return errors.ErrDeviceNotRegistered
	}
	if err := uc.repo.UpdatePushRegistrations(ctx, userID, u.PushRegistrations); err != nil {
		uc.logger.Errorf("error while removing push registration: %v", err)
		return errors.Internal("error while removing push registration")
	}
	return nil
}

func (uc *UserUsecase) activeUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if pkgerrors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error loading user", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	if !u.IsActive() {
		return nil, errors.ErrUserNotFound
	}
	return u, nil
}

func toUserDTO(u *models.User) *user.UserDTO {
	return &user.UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.Name,
		Role:        string(u.Role),
	}
}

func toProfileDTO(u *models.User) *user.UserProfileDTO {
	return &user.UserProfileDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.Name,
		Image:       u.Image,
		Devices:     len(u.PushRegistrations),
	}
}
