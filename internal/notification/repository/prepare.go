package repository

import (
	"time"

	"murmur/internal/notification/model"

	"github.com/google/uuid"
)

func prepare(n *model.Notification) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Status == "" {
		n.Status = model.StatusUnread
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
}
