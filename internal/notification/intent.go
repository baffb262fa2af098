package notification

import (
	"context"

	"murmur/internal/notification/model"
	userModel "murmur/internal/user/model"

	"github.com/google/uuid"
)

// Intent describes one notification and the channels it should travel through.
type Intent struct {
	// TargetUser is the recipient in single mode
	TargetUser *uuid.UUID
	// GroupQuery selects the recipients in grouped mode
	GroupQuery *userModel.UserQuery
	IsGrouped  bool

	UseRealtime bool
	UsePush     bool
	UseDatabase bool

	ChannelEvent   string
	ChannelPayload any

	PushTitle string
	PushBody  string
	PushData  map[string]string

	// Record is the persisted shape; its UserID is stamped per recipient
	Record *model.Notification
}

type Dispatcher interface {
	Notify(ctx context.Context, intent Intent) error
}

// RealtimeChannel delivers events to connected clients. Delivery is fire-and-forget.
type RealtimeChannel interface {
	SendToUser(userID uuid.UUID, event string, payload any)
	Broadcast(event string, payload any)
}

type PushNotifier interface {
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) error
}
