package notification

import (
	"context"

	"murmur/pkg/pagination"

	"github.com/google/uuid"
)

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, page pagination.Params) (pagination.Page[*NotificationDTO], error)
	// MarkAllRead fails with NOT_FOUND for unknown users
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// Announce fans an admin announcement out to every user matching the selector
	Announce(ctx context.Context, cmd AnnounceCommand) error
}
