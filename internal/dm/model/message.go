package model

import (
	"time"

	"murmur/pkg/pagination"

	"github.com/google/uuid"
)

type MessageStatus string

const (
	MessageUnread  MessageStatus = "unread"
	MessageRead    MessageStatus = "read"
	MessageDeleted MessageStatus = "deleted"
)

type Message struct {
	ID             uuid.UUID     `bun:",pk,type:uuid,default:gen_random_uuid()" bson:"_id"`
	ConversationID uuid.UUID     `bun:",notnull,type:uuid" bson:"conversationId"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id" bson:"-"`

	UserFrom uuid.UUID `bun:",notnull,type:uuid" bson:"userFrom"`
	UserTo   uuid.UUID `bun:",notnull,type:uuid" bson:"userTo"`

	Text        string        `bun:",nullzero" bson:"text,omitempty"`
	Attachments []Attachment  `bun:",type:jsonb,nullzero" bson:"attachments,omitempty"`
	Status      MessageStatus `bun:",notnull,default:'unread'" bson:"status"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" bson:"createdAt"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" bson:"updatedAt"`
}

type Attachment struct {
	Key       string `json:"key" bson:"key"`
	MediaType string `json:"mediaType" bson:"mediaType"`
}

func (m *Message) IsDeleted() bool { return m.Status == MessageDeleted }

// AttachmentTypes lists the media types in attachment order.
func (m *Message) AttachmentTypes() []string {
	types := make([]string, 0, len(m.Attachments))
	for _, a := range m.Attachments {
		types = append(types, a.MediaType)
	}
	return types
}

// Preview projects the message for conversation lists. A deleted message keeps
// its sender and time but exposes no content.
func (m *Message) Preview() *MessagePreview {
	if m.IsDeleted() {
		return &MessagePreview{
			Sender:          m.UserFrom,
			CreatedAt:       m.CreatedAt,
			AttachmentTypes: []string{},
			Deleted:         true,
		}
	}
	return &MessagePreview{
		Text:            m.Text,
		Sender:          m.UserFrom,
		CreatedAt:       m.CreatedAt,
		AttachmentTypes: m.AttachmentTypes(),
	}
}

// MessageQuery filters by ConversationID or, when that is nil, by the unordered pair (UserA, UserB).
type MessageQuery struct {
	ConversationID *uuid.UUID
	UserA          *uuid.UUID
	UserB          *uuid.UUID
	Page           pagination.Params
}

func (q MessageQuery) HasReference() bool {
	return q.ConversationID != nil || (q.UserA != nil && q.UserB != nil)
}

// MessagePatch enumerates the fields a sender may edit.
type MessagePatch struct {
	Text *string
}

func (p MessagePatch) IsEmpty() bool { return p.Text == nil }
