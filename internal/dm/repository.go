package dm

import (
	"context"

	"murmur/internal/dm/model"
	"murmur/pkg/pagination"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	// CreateConversation fails with repository.ErrDuplicatePair when the pair already has one
	CreateConversation(ctx context.Context, conversation *model.Conversation) error
	GetConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	GetConversationByPair(ctx context.Context, pairKey string) (*model.Conversation, error)
	UpdateConversationStatus(ctx context.Context, id uuid.UUID, status model.ConversationStatus) error
	SetLastMessage(ctx context.Context, conversationID uuid.UUID, message *model.Message) error
	ListConversations(ctx context.Context, query model.ConversationQuery) (pagination.Page[*model.ConversationSummary], error)
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, message *model.Message) error
	GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error)
	ListMessages(ctx context.Context, query model.MessageQuery) (pagination.Page[*model.Message], error)
	// MarkRead flips unread messages of the conversation addressed to recipient and returns how many changed
	MarkRead(ctx context.Context, conversationID, recipient uuid.UUID) (int64, error)
	UpdateMessage(ctx context.Context, id uuid.UUID, patch model.MessagePatch) error
	SetMessageStatus(ctx context.Context, id uuid.UUID, status model.MessageStatus) error
	// DeleteMessage removes the row and clears any conversation pointing at it
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

type DMRepository interface {
	ConversationRepository
	MessageRepository
}
