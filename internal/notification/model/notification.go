package model

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeNewMessage          Type = "new_message"
	TypeNewConversation     Type = "new_conversation"
	TypeConversationUpdated Type = "conversation_updated"
	TypeAnnouncement        Type = "announcement"
)

type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
)

type Notification struct {
	ID     uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()" bson:"_id"`
	Type   Type      `bun:",notnull" bson:"type"`
	UserID uuid.UUID `bun:",notnull,type:uuid" bson:"user"`

	MessageID   *uuid.UUID `bun:",type:uuid,nullzero" bson:"message,omitempty"`
	MessengerID *uuid.UUID `bun:",type:uuid,nullzero" bson:"messenger,omitempty"`

	Title string `bun:",nullzero" bson:"title,omitempty"`
	Body  string `bun:",nullzero" bson:"body,omitempty"`

	Status    Status    `bun:",notnull,default:'unread'" bson:"status"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" bson:"createdAt"`
}

// For returns a fresh unread copy of n addressed to userID.
func (n Notification) For(userID uuid.UUID) *Notification {
	n.ID = uuid.New()
	n.UserID = userID
	n.Status = StatusUnread
	return &n
}
