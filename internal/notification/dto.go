package notification

import (
	"time"

	"murmur/internal/notification/model"

	"github.com/google/uuid"
)

// AnnouncementEvent is the realtime event carrying admin announcements.
const AnnouncementEvent = "announcement"

type AnnounceCommand struct {
	Title string `json:"title" validate:"required,max=120"`
	Body  string `json:"body" validate:"required,max=2000"`
	// Role and UserIDs narrow the audience; empty means every active user
	Role     string      `json:"role" validate:"omitempty,oneof=user admin"`
	UserIDs  []uuid.UUID `json:"userIds" validate:"max=1000"`
	Realtime bool        `json:"realtime"`
	Push     bool        `json:"push"`
	SenderID uuid.UUID   `json:"-"`
}

type NotificationDTO struct {
	ID          uuid.UUID    `json:"id"`
	Type        model.Type   `json:"type"`
	MessageID   *uuid.UUID   `json:"message,omitempty"`
	MessengerID *uuid.UUID   `json:"messenger,omitempty"`
	Title       string       `json:"title,omitempty"`
	Body        string       `json:"body,omitempty"`
	Status      model.Status `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type AnnouncementPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func ToNotificationDTO(n *model.Notification) *NotificationDTO {
	return &NotificationDTO{
		ID:          n.ID,
		Type:        n.Type,
		MessageID:   n.MessageID,
		MessengerID: n.MessengerID,
		Title:       n.Title,
		Body:        n.Body,
		Status:      n.Status,
		CreatedAt:   n.CreatedAt,
	}
}
