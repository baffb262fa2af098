package model

import (
	"time"

	"murmur/pkg/pagination"

	"github.com/google/uuid"
)

type ConversationStatus string

const (
	ConversationPending  ConversationStatus = "pending"
	ConversationAccepted ConversationStatus = "accepted"
	ConversationRejected ConversationStatus = "rejected"
)

type Conversation struct {
	ID       uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()" bson:"_id"`
	UserFrom uuid.UUID `bun:",notnull,type:uuid" bson:"userFrom"`
	UserTo   uuid.UUID `bun:",notnull,type:uuid" bson:"userTo"`

	// PairKey is utils.PairKey(UserFrom, UserTo); unique in both stores
	PairKey string             `bun:",unique,notnull" bson:"pairKey"`
	Status  ConversationStatus `bun:",notnull,default:'pending'" bson:"status"`

	LastMessageID *uuid.UUID `bun:",type:uuid,nullzero" bson:"lastMessageId,omitempty"`
	LastMessage   *Message   `bun:"rel:belongs-to,join:last_message_id=id" bson:"-"`
	LastMessageAt *time.Time `bun:",nullzero" bson:"lastMessageAt,omitempty"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" bson:"createdAt"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" bson:"updatedAt"`
}

func (c *Conversation) HasParty(userID uuid.UUID) bool {
	return c.UserFrom == userID || c.UserTo == userID
}

// OtherParty returns the participant that is not userID.
func (c *Conversation) OtherParty(userID uuid.UUID) uuid.UUID {
	if c.UserFrom == userID {
		return c.UserTo
	}
	return c.UserFrom
}

// Resume applies the lifecycle rule for a sender writing into an existing conversation and
// reports whether the status changed. The original recipient replying accepts a pending
// conversation; rejected conversations refuse new messages.
func (c *Conversation) Resume(sender uuid.UUID) (bool, error) {
	switch c.Status {
	case ConversationRejected:
		return false, ErrRejected
	case ConversationPending:
		if sender == c.UserTo {
			c.Status = ConversationAccepted
			return true, nil
		}
	}
	return false, nil
}

// Reject moves a pending conversation to rejected. Only the recipient may do it.
func (c *Conversation) Reject(actor uuid.UUID) error {
	if c.Status != ConversationPending || actor != c.UserTo {
		return ErrNotRejectable
	}
	c.Status = ConversationRejected
	return nil
}

// ConversationQuery selects the conversations listed for one user.
type ConversationQuery struct {
	UserID  uuid.UUID
	Keyword string
	Page    pagination.Params
}

// PartyProfile is the public projection of the other participant.
type PartyProfile struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image string    `json:"image,omitempty"`
}

// MessagePreview is the last-message projection shown in conversation lists.
type MessagePreview struct {
	Text            string    `json:"text"`
	Sender          uuid.UUID `json:"sender"`
	CreatedAt       time.Time `json:"createdAt"`
	AttachmentTypes []string  `json:"attachmentTypes"`
	Deleted         bool      `json:"deleted,omitempty"`
}

// ConversationSummary is one row of a conversation list.
type ConversationSummary struct {
	ID          uuid.UUID          `json:"id"`
	Status      ConversationStatus `json:"status"`
	UserFrom    uuid.UUID          `json:"userFrom"`
	UserTo      uuid.UUID          `json:"userTo"`
	CreatedAt   time.Time          `json:"createdAt"`
	OtherParty  PartyProfile       `json:"otherParty"`
	LastMessage *MessagePreview    `json:"lastMessage"`
}
