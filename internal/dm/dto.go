package dm

import (
	"time"

	"murmur/internal/dm/model"
	"murmur/pkg/pagination"

	"github.com/google/uuid"
)

// Input commands
type SendMessageCommand struct {
	UserFrom    uuid.UUID       `json:"-"`
	UserTo      uuid.UUID       `json:"userTo" validate:"required"`
	Text        string          `json:"text" validate:"max=4000"`
	Attachments []AttachmentDTO `json:"attachments" validate:"max=10,dive"`
	// DisplayName of the sender used in push bodies; looked up when empty
	DisplayName string `json:"-"`
}

type AttachmentDTO struct {
	Key       string `json:"key" validate:"required,max=512"`
	MediaType string `json:"mediaType" validate:"required,max=128"`
}

type UpdateMessageCommand struct {
	Text string `json:"text" validate:"required,max=4000"`
}

type ListConversationsQuery struct {
	Keyword string `form:"keyword"`
	pagination.Params
}

// ListMessagesQuery needs ConversationID or both users.
type ListMessagesQuery struct {
	ConversationID *uuid.UUID
	User1          *uuid.UUID
	User2          *uuid.UUID
	pagination.Params
}

// Output DTOs
type MessageDTO struct {
	ID             uuid.UUID           `json:"id"`
	ConversationID uuid.UUID           `json:"conversationId"`
	UserFrom       uuid.UUID           `json:"userFrom"`
	UserTo         uuid.UUID           `json:"userTo"`
	Text           string              `json:"text"`
	Attachments    []AttachmentDTO     `json:"attachments"`
	Status         model.MessageStatus `json:"status"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	Conversation   *ConversationDTO    `json:"conversation,omitempty"`
}

type ConversationDTO struct {
	ID          uuid.UUID                `json:"id"`
	UserFrom    uuid.UUID                `json:"userFrom"`
	UserTo      uuid.UUID                `json:"userTo"`
	Status      model.ConversationStatus `json:"status"`
	LastMessage *MessageDTO              `json:"lastMessage"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

func ToMessageDTO(m *model.Message) *MessageDTO {
	attachments := make([]AttachmentDTO, 0, len(m.Attachments))
	for _, a := range m.Attachments {
		attachments = append(attachments, AttachmentDTO{Key: a.Key, MediaType: a.MediaType})
	}
	dto := &MessageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		UserFrom:       m.UserFrom,
		UserTo:         m.UserTo,
		Text:           m.Text,
		Attachments:    attachments,
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Conversation != nil {
		dto.Conversation = ToConversationDTO(m.Conversation)
	}
	return dto
}

func ToConversationDTO(c *model.Conversation) *ConversationDTO {
	dto := &ConversationDTO{
		ID:        c.ID,
		UserFrom:  c.UserFrom,
		UserTo:    c.UserTo,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.LastMessage != nil {
		last := *c.LastMessage
		// the message may point back at this conversation
		last.Conversation = nil
		dto.LastMessage = ToMessageDTO(&last)
	}
	return dto
}
