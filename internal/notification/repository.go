package notification

import (
	"context"

	"murmur/internal/notification/model"
	"murmur/pkg/pagination"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	CreateMany(ctx context.Context, notifications []*model.Notification) error
	ListNotifications(ctx context.Context, userID uuid.UUID, page pagination.Params) (pagination.Page[*model.Notification], error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
