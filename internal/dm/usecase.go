package dm

import (
	"context"

	"murmur/internal/dm/model"
	"murmur/pkg/pagination"

	"github.com/google/uuid"
)

type DMUsecase interface {
	// SendMessage runs the whole send flow: conversation lookup, append, pointer update, fan-out
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)

	FindOrCreateConversation(ctx context.Context, userFrom, userTo uuid.UUID) (*model.Conversation, error)
	AttachLastMessage(ctx context.Context, conversation *model.Conversation, message *model.Message) error
	GetConversation(ctx context.Context, id, actor uuid.UUID) (*ConversationDTO, error)
	RejectConversation(ctx context.Context, id, actor uuid.UUID) (*ConversationDTO, error)
	ListConversations(ctx context.Context, actor uuid.UUID, query ListConversationsQuery) (pagination.Page[*model.ConversationSummary], error)

	AppendMessage(ctx context.Context, message *model.Message) error
	ListMessages(ctx context.Context, actor uuid.UUID, query ListMessagesQuery) (pagination.Page[*MessageDTO], error)
	MarkRead(ctx context.Context, conversationID, recipient uuid.UUID) error
	UpdateMessage(ctx context.Context, id, actor uuid.UUID, cmd UpdateMessageCommand) (*MessageDTO, error)
	DeleteMessage(ctx context.Context, id, actor uuid.UUID) error

	// PurgeMessage physically removes a message; admin only
	PurgeMessage(ctx context.Context, id uuid.UUID) error
}
