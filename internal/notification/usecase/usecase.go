package usecase

import (
	"context"
	"strings"

	"murmur/config"
	"murmur/internal/notification"
	"murmur/internal/notification/model"
	"murmur/internal/user"
	userModel "murmur/internal/user/model"
	"murmur/pkg/errors"
	"murmur/pkg/logger"
	"murmur/pkg/pagination"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type NotificationUsecase struct {
	repo       notification.NotificationRepository
	users      user.Directory
	dispatcher notification.Dispatcher
	logger     logger.Logger
	config     config.Config
	validate   *validator.Validate
}

func NewNotificationUsecase(
	repo notification.NotificationRepository,
	users user.Directory,
	dispatcher notification.Dispatcher,
	logger logger.Logger,
	config config.Config,
) *NotificationUsecase {
	return &NotificationUsecase{
		repo:       repo,
		users:      users,
		dispatcher: dispatcher,
		logger:     logger,
		config:     config,
		validate:   validator.New(),
	}
}

func (uc *NotificationUsecase) ListNotifications(ctx context.Context, userID uuid.UUID, page pagination.Params) (pagination.Page[*notification.NotificationDTO], error) {
	page = page.Normalize(uc.config.Pagination.DefaultPageSize, uc.config.Pagination.MaxPageSize)

	result, err := uc.repo.ListNotifications(ctx, userID, page)
	if err != nil {
		uc.logger.Error("database error listing notifications", "user_id", userID, "err", err)
		return pagination.Page[*notification.NotificationDTO]{}, errors.Internal("internal server error")
	}
	return pagination.Map(result, notification.ToNotificationDTO), nil
}

func (uc *NotificationUsecase) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	exists, err := uc.users.UserExists(ctx, userModel.UserQuery{IDs: []uuid.UUID{userID}})
	if err != nil {
		uc.logger.Error("database error checking user", "user_id", userID, "err", err)
		return errors.Internal("internal server error")
	}
	if !exists {
		return errors.ErrUserNotFound
	}

	n, err := uc.repo.MarkAllRead(ctx, userID)
	if err != nil {
		uc.logger.Error("database error marking notifications read", "user_id", userID, "err", err)
		return errors.Internal("internal server error")
	}
	uc.logger.Debug("notifications marked read", "user_id", userID, "count", n)
	return nil
}

func (uc *NotificationUsecase) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		uc.logger.Error("database error counting notifications", "user_id", userID, "err", err)
		return 0, errors.Internal("internal server error")
	}
	return n, nil
}

func (uc *NotificationUsecase) Announce(ctx context.Context, cmd notification.AnnounceCommand) error {
	cmd.Title = strings.TrimSpace(cmd.Title)
	cmd.Body = strings.TrimSpace(cmd.Body)
	if err := uc.validate.Struct(cmd); err != nil {
		return errors.InvalidArg(err.Error())
	}

	query := &userModel.UserQuery{IDs: cmd.UserIDs, Role: userModel.Role(cmd.Role)}
	record := &model.Notification{
		Type:  model.TypeAnnouncement,
		Title: cmd.Title,
		Body:  cmd.Body,
	}
	if cmd.SenderID != uuid.Nil {
		sender := cmd.SenderID
		record.MessengerID = &sender
	}

	err := uc.dispatcher.Notify(ctx, notification.Intent{
		IsGrouped:      true,
		GroupQuery:     query,
		UseRealtime:    cmd.Realtime,
		UsePush:        cmd.Push,
		UseDatabase:    true,
		ChannelEvent:   notification.AnnouncementEvent,
		ChannelPayload: notification.AnnouncementPayload{Title: cmd.Title, Body: cmd.Body},
		PushTitle:      cmd.Title,
		PushBody:       cmd.Body,
		PushData:       map[string]string{"type": string(model.TypeAnnouncement)},
		Record:         record,
	})
	if err != nil {
		return err
	}
	uc.logger.Info("announcement dispatched", "title", cmd.Title, "role", cmd.Role, "ids", len(cmd.UserIDs))
	return nil
}
