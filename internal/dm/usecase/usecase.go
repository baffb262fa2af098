package usecase

import (
	"context"
	"strings"
	"time"

	"murmur/config"
	"murmur/internal/dm"
	"murmur/internal/dm/model"
	"murmur/internal/dm/repository"
	"murmur/internal/notification"
	notificationModel "murmur/internal/notification/model"
	"murmur/internal/user"
	userModel "murmur/internal/user/model"
	"murmur/pkg/errors"
	"murmur/pkg/logger"
	"murmur/pkg/pagination"
	"murmur/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

type DMUsecase struct {
	repo     dm.DMRepository
	users    user.Directory
	notifier notification.Dispatcher
	logger   logger.Logger
	config   config.Config
	validate *validator.Validate
}

func NewDMUsecase(
	repo dm.DMRepository,
	users user.Directory,
	notifier notification.Dispatcher,
	logger logger.Logger,
	config config.Config,
) *DMUsecase {
	return &DMUsecase{
		repo:     repo,
		users:    users,
		notifier: notifier,
		logger:   logger,
		config:   config,
		validate: validator.New(),
	}
}

func (uc *DMUsecase) SendMessage(ctx context.Context, cmd dm.SendMessageCommand) (*dm.MessageDTO, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, errors.InvalidArg(err.Error())
	}
	if strings.TrimSpace(cmd.Text) == "" && len(cmd.Attachments) == 0 {
		return nil, errors.ErrEmptyMessage
	}

	exists, err := uc.users.UserExists(ctx, userModel.UserQuery{IDs: []uuid.UUID{cmd.UserTo}})
	if err != nil {
		uc.logger.Error("database error checking recipient", "user_id", cmd.UserTo, "err", err)
		return nil, errors.Internal("internal server error")
	}
	if !exists {
		return nil, errors.ErrUserNotFound
	}

	displayName := cmd.DisplayName
	if displayName == "" {
		sender, err := uc.users.GetUserByID(ctx, cmd.UserFrom)
		if err != nil {
			uc.logger.Error("failed to load sender", "user_id", cmd.UserFrom, "err", err)
			return nil, errors.ErrUserNotFound
		}
		displayName = sender.Name
	}

	conversation, err := uc.FindOrCreateConversation(ctx, cmd.UserFrom, cmd.UserTo)
	if err != nil {
		return nil, err
	}

	message := &model.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		UserFrom:       cmd.UserFrom,
		UserTo:         cmd.UserTo,
		Text:           cmd.Text,
		Attachments:    toAttachments(cmd.Attachments),
		Status:         model.MessageUnread,
		CreatedAt:      time.Now().UTC(),
	}
	message.UpdatedAt = message.CreatedAt
	if err := uc.AppendMessage(ctx, message); err != nil {
		return nil, err
	}
	if err := uc.AttachLastMessage(ctx, conversation, message); err != nil {
		return nil, err
	}

	message.Conversation = conversation
	out := dm.ToMessageDTO(message)

	pushBody := dm.NewMessagePushBody(displayName)
	err = uc.notifier.Notify(ctx, notification.Intent{
		TargetUser:     &cmd.UserTo,
		UseRealtime:    true,
		UsePush:        true,
		UseDatabase:    true,
		ChannelEvent:   dm.NewMessageEvent(conversation.ID),
		ChannelPayload: out,
		PushTitle:      dm.PushTitleNewMessage,
		PushBody:       pushBody,
		PushData: map[string]string{
			"type":           string(notificationModel.TypeNewMessage),
			"conversationId": conversation.ID.String(),
			"messageId":      message.ID.String(),
		},
		Record: &notificationModel.Notification{
			Type:        notificationModel.TypeNewMessage,
			UserID:      cmd.UserTo,
			MessageID:   &message.ID,
			MessengerID: &cmd.UserFrom,
			Title:       dm.PushTitleNewMessage,
			Body:        pushBody,
		},
	})
	if err != nil {
		return nil, err
	}

	err = uc.notifier.Notify(ctx, notification.Intent{
		TargetUser:     &cmd.UserTo,
		UseRealtime:    true,
		ChannelEvent:   dm.ConversationsUpdatedEvent,
		ChannelPayload: out.Conversation,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *DMUsecase) FindOrCreateConversation(ctx context.Context, userFrom, userTo uuid.UUID) (*model.Conversation, error) {
	if userFrom == uuid.Nil || userTo == uuid.Nil {
		return nil, errors.InvalidArg("both users are required")
	}
	if userFrom == userTo {
		return nil, errors.ErrSelfConversation
	}

	pairKey := utils.PairKey(userFrom.String(), userTo.String())
	conversation, err := uc.repo.GetConversationByPair(ctx, pairKey)
	if err == nil {
		return uc.resume(ctx, conversation, userFrom)
	}
	if !pkgerrors.Is(err, repository.ErrConversationNotFound) {
		uc.logger.Error("database error loading conversation", "pair", pairKey, "err", err)
		return nil, errors.Internal("internal server error")
	}

	conversation = &model.Conversation{
		ID:       uuid.New(),
		UserFrom: userFrom,
		UserTo:   userTo,
		Status:   model.ConversationPending,
	}
	if err := uc.repo.CreateConversation(ctx, conversation); err != nil {
		if !pkgerrors.Is(err, repository.ErrDuplicatePair) {
			uc.logger.Errorf("error while saving conversation in db: %v", err)
			return nil, errors.Internal("error while saving conversation in db")
		}

		// another request created the pair between our lookup and insert
		winner, err := uc.repo.GetConversationByPair(ctx, pairKey)
		if err != nil {
			uc.logger.Error("failed to reload conversation after duplicate insert", "pair", pairKey, "err", err)
			return nil, errors.Internal("internal server error")
		}
		return uc.resume(ctx, winner, userFrom)
	}

	uc.logger.Debug("conversation created", "conversation_id", conversation.ID)
	return conversation, nil
}

func (uc *DMUsecase) resume(ctx context.Context, conversation *model.Conversation, sender uuid.UUID) (*model.Conversation, error) {
	changed, err := conversation.Resume(sender)
	if err != nil {
		return nil, errors.ErrConversationRejected
	}
	if changed {
		if err := uc.repo.UpdateConversationStatus(ctx, conversation.ID, conversation.Status); err != nil {
			uc.logger.Errorf("error while updating conversation status: %v", err)
			return nil, errors.Internal("error while updating conversation status")
		}
	}
	return conversation, nil
}

func (uc *DMUsecase) AttachLastMessage(ctx context.Context, conversation *model.Conversation, message *model.Message) error {
	if err := uc.repo.SetLastMessage(ctx, conversation.ID, message); err != nil {
		if pkgerrors.Is(err, repository.ErrConversationNotFound) {
			return errors.ErrConversationNotFound
		}
		uc.logger.Errorf("error while updating last message: %v", err)
		return errors.Internal("error while updating last message")
	}

	createdAt := message.CreatedAt
	conversation.LastMessageID = &message.ID
	conversation.LastMessage = message
	conversation.LastMessageAt = &createdAt
	return nil
}

func (uc *DMUsecase) GetConversation(ctx context.Context, id, actor uuid.UUID) (*dm.ConversationDTO, error) {
	conversation, err := uc.conversation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParty(actor) {
		return nil, errors.ErrNotConversationParty
	}
	return dm.ToConversationDTO(conversation), nil
}

func (uc *DMUsecase) RejectConversation(ctx context.Context, id, actor uuid.UUID) (*dm.ConversationDTO, error) {
	conversation, err := uc.conversation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParty(actor) {
		return nil, errors.ErrNotConversationParty
	}
	if err := conversation.Reject(actor); err != nil {
		return nil, errors.ErrCannotReject
	}
	if err := uc.repo.UpdateConversationStatus(ctx, conversation.ID, conversation.Status); err != nil {
		uc.logger.Errorf("error while rejecting conversation: %v", err)
		return nil, errors.Internal("error while rejecting conversation")
	}

	out := dm.ToConversationDTO(conversation)
	for _, party := range []uuid.UUID{conversation.UserFrom, conversation.UserTo} {
		err := uc.notifier.Notify(ctx, notification.Intent{
			TargetUser:     &party,
			UseRealtime:    true,
			ChannelEvent:   dm.ConversationsUpdatedEvent,
			ChannelPayload: out,
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (uc *DMUsecase) ListConversations(ctx context.Context, actor uuid.UUID, query dm.ListConversationsQuery) (pagination.Page[*model.ConversationSummary], error) {
	page := query.Params.Normalize(uc.config.Pagination.DefaultPageSize, uc.config.Pagination.MaxPageSize)

	result, err := uc.repo.ListConversations(ctx, model.ConversationQuery{
		UserID:  actor,
		Keyword: strings.TrimSpace(query.Keyword),
		Page:    page,
	})
	if err != nil {
		uc.logger.Error("database error listing conversations", "user_id", actor, "err", err)
		return pagination.Page[*model.ConversationSummary]{}, errors.Internal("internal server error")
	}
	return result, nil
}

func (uc *DMUsecase) AppendMessage(ctx context.Context, message *model.Message) error {
	if message.ConversationID == uuid.Nil || message.UserFrom == uuid.Nil || message.UserTo == uuid.Nil {
		return errors.InvalidArg("conversation, userFrom and userTo are required")
	}
	if err := uc.repo.CreateMessage(ctx, message); err != nil {
		uc.logger.Errorf("error while saving message in db: %v", err)
		return errors.Internal("error while saving message in db")
	}
	return nil
}

func (uc *DMUsecase) ListMessages(ctx context.Context, actor uuid.UUID, query dm.ListMessagesQuery) (pagination.Page[*dm.MessageDTO], error) {
	filter := model.MessageQuery{
		Page: query.Params.Normalize(uc.config.Pagination.DefaultPageSize, uc.config.Pagination.MaxPageSize),
	}

	switch {
	case query.ConversationID != nil:
		conversation, err := uc.conversation(ctx, *query.ConversationID)
		if err != nil {
			return pagination.Page[*dm.MessageDTO]{}, err
		}
		if !conversation.HasParty(actor) {
			return pagination.Page[*dm.MessageDTO]{}, errors.ErrNotConversationParty
		}
		filter.ConversationID = query.ConversationID
	case query.User1 != nil && query.User2 != nil:
		if actor != *query.User1 && actor != *query.User2 {
			return pagination.Page[*dm.MessageDTO]{}, errors.ErrNotConversationParty
		}
		filter.UserA, filter.UserB = query.User1, query.User2
	default:
		return pagination.Page[*dm.MessageDTO]{}, errors.ErrMissingConversationReference
	}

	result, err := uc.repo.ListMessages(ctx, filter)
	if err != nil {
		uc.logger.Error("database error listing messages", "err", err)
		return pagination.Page[*dm.MessageDTO]{}, errors.Internal("internal server error")
	}
	return pagination.Map(result, dm.ToMessageDTO), nil
}

func (uc *DMUsecase) MarkRead(ctx context.Context, conversationID, recipient uuid.UUID) error {
	conversation, err := uc.conversation(ctx, conversationID)
	if err != nil {
		return err
	}

	exists, err := uc.users.UserExists(ctx, userModel.UserQuery{IDs: []uuid.UUID{recipient}})
	if err != nil {
		uc.logger.Error("database error checking recipient", "user_id", recipient, "err", err)
		return errors.Internal("internal server error")
	}
	if !exists {
		return errors.ErrUserNotFound
	}
	if !conversation.HasParty(recipient) {
		return errors.ErrNotConversationParty
	}

	n, err := uc.repo.MarkRead(ctx, conversationID, recipient)
	if err != nil {
		uc.logger.Errorf("error while marking messages read: %v", err)
		return errors.Internal("error while marking messages read")
	}
	uc.logger.Debug("messages marked read", "conversation_id", conversationID, "count", n)
	return nil
}

func (uc *DMUsecase) UpdateMessage(ctx context.Context, id, actor uuid.UUID, cmd dm.UpdateMessageCommand) (*dm.MessageDTO, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, errors.InvalidArg(err.Error())
	}
	text := strings.TrimSpace(cmd.Text)

	message, err := uc.message(ctx, id)
	if err != nil {
		return nil, err
	}
	if message.UserFrom != actor {
		return nil, errors.ErrNotMessageSender
	}
	if message.IsDeleted() {
		return nil, errors.ErrMessageDeleted
	}
	if text == "" && len(message.Attachments) == 0 {
		return nil, errors.ErrEmptyMessage
	}

	if err := uc.repo.UpdateMessage(ctx, id, model.MessagePatch{Text: &text}); err != nil {
		uc.logger.Errorf("error while updating message: %v", err)
		return nil, errors.Internal("error while updating message")
	}
	message.Text = text
	message.UpdatedAt = time.Now().UTC()
	return dm.ToMessageDTO(message), nil
}

func (uc *DMUsecase) DeleteMessage(ctx context.Context, id, actor uuid.UUID) error {
	message, err := uc.message(ctx, id)
	if err != nil {
		return err
	}
	if message.UserFrom != actor {
		return errors.ErrNotMessageSender
	}
	if message.IsDeleted() {
		return nil
	}
	if err := uc.repo.SetMessageStatus(ctx, id, model.MessageDeleted); err != nil {
		uc.logger.Errorf("error while deleting message: %v", err)
		return errors.Internal("error while deleting message")
	}
	return nil
}

func (uc *DMUsecase) PurgeMessage(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.DeleteMessage(ctx, id); err != nil {
		if pkgerrors.Is(err, repository.ErrMessageNotFound) {
			return errors.ErrMessageNotFound
		}
		uc.logger.Errorf("error while purging message: %v", err)
		return errors.Internal("error while purging message")
	}
	uc.logger.Info("message purged", "message_id", id)
	return nil
}

func (uc *DMUsecase) conversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	conversation, err := uc.repo.GetConversationByID(ctx, id)
	if err != nil {
		if pkgerrors.Is(err, repository.ErrConversationNotFound) {
			return nil, errors.ErrConversationNotFound
		}
		uc.logger.Error("database error loading conversation", "conversation_id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return conversation, nil
}

func (uc *DMUsecase) message(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	message, err := uc.repo.GetMessageByID(ctx, id)
	if err != nil {
		if pkgerrors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.ErrMessageNotFound
		}
		uc.logger.Error("database error loading message", "message_id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return message, nil
}

func toAttachments(in []dm.AttachmentDTO) []model.Attachment {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.Attachment, 0, len(in))
	for _, a := range in {
		out = append(out, model.Attachment{Key: a.Key, MediaType: a.MediaType})
	}
	return out
}
