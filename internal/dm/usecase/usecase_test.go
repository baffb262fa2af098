package usecase

import (
	"context"
	"errors"
	"testing"

	"murmur/config"
	"murmur/internal/dm"
	"murmur/internal/dm/mocks"
	"murmur/internal/dm/model"
	"murmur/internal/dm/repository"
	"murmur/internal/notification"
	notificationMocks "murmur/internal/notification/mocks"
	notificationModel "murmur/internal/notification/model"
	userMocks "murmur/internal/user/mocks"
	userModel "murmur/internal/user/model"
	appErrors "murmur/pkg/errors"
	"murmur/pkg/logger"
	"murmur/pkg/pagination"
	"murmur/pkg/utils"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo     *mocks.MockDMRepository
	users    *userMocks.MockDirectory
	notifier *notificationMocks.MockDispatcher
	uc       *DMUsecase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:     mocks.NewMockDMRepository(ctrl),
		users:    userMocks.NewMockDirectory(ctrl),
		notifier: notificationMocks.NewMockDispatcher(ctrl),
	}
	cfg := config.Config{Pagination: config.Pagination{DefaultPageSize: 20, MaxPageSize: 50}}
	f.uc = NewDMUsecase(f.repo, f.users, f.notifier, logger.Logger{}, cfg)
	return f
}

func pairOf(a, b uuid.UUID) string { return utils.PairKey(a.String(), b.String()) }

func Test_FindOrCreateConversation(t *testing.T) {
	u1, u2 := uuid.New(), uuid.New()

	t.Run("creates pending conversation", func(t *testing.T) {
		f := newFixture(t)
		g := f.repo.EXPECT()
		g.GetConversationByPair(gomock.Any(), pairOf(u1, u2)).Return(nil, repository.ErrConversationNotFound)
		g.CreateConversation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *model.Conversation) error {
			assert.Equal(t, u1, c.UserFrom)
			assert.Equal(t, u2, c.UserTo)
			assert.Equal(t, model.ConversationPending, c.Status)
			return nil
		})

		conv, err := f.uc.FindOrCreateConversation(context.Background(), u1, u2)
		require.NoError(t, err)
		assert.Equal(t, model.ConversationPending, conv.Status)
	})

	t.Run("pair lookup is direction independent", func(t *testing.T) {
		assert.Equal(t, pairOf(u1, u2), pairOf(u2, u1))

		f := newFixture(t)
		existing := &model.Conversation{ID: uuid.New(), UserFrom: u1, UserTo: u2, Status: model.ConversationAccepted}
		f.repo.EXPECT().GetConversationByPair(gomock.Any(), pairOf(u1, u2)).Return(existing, nil).Times(2)

		a, err := f.uc.FindOrCreateConversation(context.Background(), u1, u2)
		require.NoError(t, err)
		b, err := f.uc.FindOrCreateConversation(context.Background(), u2, u1)
		require.NoError(t, err)
		assert.Equal(t, a.ID, b.ID)
	})

	t.Run("recipient reply accepts", func(t *testing.T) {
		f := newFixture(t)
		existing := &model.Conversation{ID: uuid.New(), UserFrom: u1, UserTo: u2, Status: model.ConversationPending}
		g := f.repo.EXPECT()
		g.GetConversationByPair(gomock.Any(), pairOf(u1, u2)).Return(existing, nil)
		g.UpdateConversationStatus(gomock.Any(), existing.ID, model.ConversationAccepted).Return(nil)

		conv, err := f.uc.FindOrCreateConversation(context.Background(), u2, u1)
		require.NoError(t, err)
		assert.Equal(t, model.ConversationAccepted, conv.Status)
	})

	t.Run("initiator follow-up keeps pending", func(t *testing.T) {
		f := newFixture(t)
		existing := &model.Conversation{ID: uuid.New(), UserFrom: u1, UserTo: u2, Status: model.ConversationPending}
		f.repo.EXPECT().GetConversationByPair(gomock.Any(), pairOf(u1, u2)).Return(existing, nil)

		conv, err := f.uc.FindOrCreateConversation(context.Background(), u1, u2)
		require.NoError(t, err)
		assert.Equal(t, model.ConversationPending, conv.Status)
	})

	t.Run("rejected refuses without mutation", func(t *testing.T) {
		f := newFixture(t)
		existing := &model.Conversation{ID: uuid.New(), UserFrom: u1, UserTo: u2, Status: model.ConversationRejected}
		f.repo.EXPECT().GetConversationByPair(gomock.Any(), pairOf(u1, u2)).Return(existing, nil)

		conv, err := f.uc.FindOrCreateConversation(context.Background(), u1, u2)
		assert.Nil(t, conv)
		assert.Equal(t, appErrors.ErrConversationRejected, err)
		assert.Equal(t, appErrors.CodeConversationRejected, appErrors.CodeOf(err))
	})

	t.Run("lost insert race returns the winner", func(t *testing.T) {
		f := newFixture(t)
		winner := &model.Conversation{ID: uuid.New(), UserFrom: u2, UserTo: u1, Status: model.ConversationPending}
		g := f.repo.EXPECT()
		gomock.InOrder(
			g.GetConversationByPair(gomock.Any(), pairOf(u1, u2)).Return(nil, repository.ErrConversationNotFound),
			g.CreateConversation(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicatePair),
			g.GetConversationByPair(gomock.Any(), pairOf(u1, u2)).Return(winner, nil),
			g.UpdateConversationStatus(gomock.Any(), winner.ID, model.ConversationAccepted).Return(nil),
		)

		conv, err := f.uc.FindOrCreateConversation(context.Background(), u1, u2)
		require.NoError(t, err)
		assert.Equal(t, winner.ID, conv.ID)
		assert.Equal(t, model.ConversationAccepted, conv.Status)
	})

	t.Run("self conversation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.FindOrCreateConversation(context.Background(), u1, u1)
		assert.Equal(t, appErrors.ErrSelfConversation, err)
	})

	t.Run("db down", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetConversationByPair(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.uc.FindOrCreateConversation(context.Background(), u1, u2)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})
}

func Test_SendMessage(t *testing.T) {
	u1, u2 := uuid.New(), uuid.New()
	recipientQuery := userModel.UserQuery{IDs: []uuid.UUID{u2}}

	t.Run("first message creates conversation and fans out", func(t *testing.T) {
		f := newFixture(t)

		var created *model.Conversation
		var appended *model.Message

		f.users.EXPECT().UserExists(gomock.Any(), recipientQuery).Return(true, nil)
		f.users.EXPECT().GetUserByID(gomock.Any(), u1).Return(&userModel.User{ID: u1, Name: "Alice"}, nil)

		g := f.repo.EXPECT()
		gomock.InOrder(
			g.GetConversationByPair(gomock.Any(), pairOf(u1, u2)).Return(nil, repository.ErrConversationNotFound),
			g.CreateConversation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *model.Conversation) error {
				created = c
				return nil
			}),
			g.CreateMessage(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *model.Message) error {
				appended = m
				assert.Equal(t, created.ID, m.ConversationID)
				assert.Equal(t, "hi", m.Text)
				assert.Equal(t, model.MessageUnread, m.Status)
				return nil
			}),
			g.SetLastMessage(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id uuid.UUID, m *model.Message) error {
				assert.Equal(t, created.ID, id)
				assert.Same(t, appended, m)
				return nil
			}),
		)

		n := f.notifier.EXPECT()
		gomock.InOrder(
			n.Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in notification.Intent) error {
				require.NotNil(t, in.TargetUser)
				assert.Equal(t, u2, *in.TargetUser)
				assert.False(t, in.IsGrouped)
				assert.True(t, in.UseRealtime)
				assert.True(t, in.UsePush)
				assert.True(t, in.UseDatabase)
				assert.Equal(t, "new_message_"+created.ID.String(), in.ChannelEvent)
				assert.Equal(t, "New Message", in.PushTitle)
				assert.Equal(t, "New message from Alice", in.PushBody)

				payload, ok := in.ChannelPayload.(*dm.MessageDTO)
				require.True(t, ok)
				assert.Equal(t, appended.ID, payload.ID)

				require.NotNil(t, in.Record)
				assert.Equal(t, notificationModel.TypeNewMessage, in.Record.Type)
				assert.Equal(t, u2, in.Record.UserID)
				assert.Equal(t, appended.ID, *in.Record.MessageID)
				assert.Equal(t, u1, *in.Record.MessengerID)
				return nil
			}),
			n.Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in notification.Intent) error {
				assert.Equal(t, u2, *in.TargetUser)
				assert.Equal(t, dm.ConversationsUpdatedEvent, in.ChannelEvent)
				assert.True(t, in.UseRealtime)
				assert.False(t, in.UsePush)
				assert.False(t, in.UseDatabase)

				payload, ok := in.ChannelPayload.(*dm.ConversationDTO)
				require.True(t, ok)
				require.NotNil(t, payload.LastMessage)
				assert.Equal(t, appended.ID, payload.LastMessage.ID)
				return nil
			}),
		)

		out, err := f.uc.SendMessage(context.Background(), dm.SendMessageCommand{UserFrom: u1, UserTo: u2, Text: "hi"})
		require.NoError(t, err)
		assert.Equal(t, appended.ID, out.ID)
		require.NotNil(t, out.Conversation)
		assert.Equal(t, model.ConversationPending, out.Conversation.Status)
		require.NotNil(t, out.Conversation.LastMessage)
		assert.Equal(t, "hi", out.Conversation.LastMessage.Text)
		require.NotNil(t, created.LastMessageID)
		assert.Equal(t, appended.ID, *created.LastMessageID)
	})

	t.Run("reply accepts the conversation", func(t *testing.T) {
		f := newFixture(t)
		existing := &model.Conversation{ID: uuid.New(), UserFrom: u2, UserTo: u1, Status: model.ConversationPending}

		f.users.EXPECT().UserExists(gomock.Any(), recipientQuery).Return(true, nil)
		g := f.repo.EXPECT()
		g.GetConversationByPair(gomock.Any(), pairOf(u1, u2)).Return(existing, nil)
		g.UpdateConversationStatus(gomock.Any(), existing.ID, model.ConversationAccepted).Return(nil)
		g.CreateMessage(gomock.Any(), gomock.Any()).Return(nil)
		g.SetLastMessage(gomock.Any(), existing.ID, gomock.Any()).Return(nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		out, err := f.uc.SendMessage(context.Background(), dm.SendMessageCommand{
			UserFrom:    u1,
			UserTo:      u2,
			Text:        "hello back",
			DisplayName: "Bob",
		})
		require.NoError(t, err)
		assert.Equal(t, model.ConversationAccepted, out.Conversation.Status)
		assert.Equal(t, out.ID, out.Conversation.LastMessage.ID)
	})

	t.Run("rejected conversation aborts before append", func(t *testing.T) {
		f := newFixture(t)
		existing := &model.Conversation{ID: uuid.New(), UserFrom: u1, UserTo: u2, Status: model.ConversationRejected}

		f.users.EXPECT().UserExists(gomock.Any(), recipientQuery).Return(true, nil)
		f.repo.EXPECT().GetConversationByPair(gomock.Any(), pairOf(u1, u2)).Return(existing, nil)

		out, err := f.uc.SendMessage(context.Background(), dm.SendMessageCommand{UserFrom: u1, UserTo: u2, Text: "hi", DisplayName: "A"})
		assert.Nil(t, out)
		assert.Equal(t, appErrors.ErrConversationRejected, err)
	})

	t.Run("first fan-out failure skips the second", func(t *testing.T) {
		f := newFixture(t)
		existing := &model.Conversation{ID: uuid.New(), UserFrom: u1, UserTo: u2, Status: model.ConversationAccepted}

		f.users.EXPECT().UserExists(gomock.Any(), recipientQuery).Return(true, nil)
		g := f.repo.EXPECT()
		g.GetConversationByPair(gomock.Any(), gomock.Any()).Return(existing, nil)
		g.CreateMessage(gomock.Any(), gomock.Any()).Return(nil)
		g.SetLastMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		failure := appErrors.Internal("failed to persist notification")
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(failure).Times(1)

		_, err := f.uc.SendMessage(context.Background(), dm.SendMessageCommand{UserFrom: u1, UserTo: u2, Text: "hi", DisplayName: "A"})
		assert.Equal(t, failure, err)
	})

	t.Run("unknown recipient", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().UserExists(gomock.Any(), recipientQuery).Return(false, nil)

		_, err := f.uc.SendMessage(context.Background(), dm.SendMessageCommand{UserFrom: u1, UserTo: u2, Text: "hi"})
		assert.Equal(t, appErrors.ErrUserNotFound, err)
	})

	t.Run("empty message", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.SendMessage(context.Background(), dm.SendMessageCommand{UserFrom: u1, UserTo: u2, Text: "   "})
		assert.Equal(t, appErrors.ErrEmptyMessage, err)
	})

	t.Run("missing recipient", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.SendMessage(context.Background(), dm.SendMessageCommand{UserFrom: u1, Text: "hi"})
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})
}

func Test_AppendMessage(t *testing.T) {
	f := newFixture(t)
	err := f.uc.AppendMessage(context.Background(), &model.Message{UserFrom: uuid.New(), UserTo: uuid.New()})
	assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
}

func Test_ListMessages(t *testing.T) {
	u1, u2 := uuid.New(), uuid.New()

	t.Run("missing reference", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.ListMessages(context.Background(), u1, dm.ListMessagesQuery{User1: &u1})
		assert.Equal(t, appErrors.ErrMissingConversationReference, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})

	t.Run("by pair", func(t *testing.T) {
		f := newFixture(t)
		msgs := []*model.Message{{ID: uuid.New(), UserFrom: u2, UserTo: u1, Text: "yo"}}
		f.repo.EXPECT().ListMessages(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q model.MessageQuery) (pagination.Page[*model.Message], error) {
				assert.Nil(t, q.ConversationID)
				assert.Equal(t, u1, *q.UserA)
				assert.Equal(t, u2, *q.UserB)
				assert.Equal(t, pagination.Params{Page: 1, PageSize: 20}, q.Page)
				return pagination.NewPage(msgs, 1, q.Page), nil
			})

		page, err := f.uc.ListMessages(context.Background(), u1, dm.ListMessagesQuery{User1: &u1, User2: &u2})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "yo", page.Data[0].Text)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("by conversation, outsider refused", func(t *testing.T) {
		f := newFixture(t)
		conv := &model.Conversation{ID: uuid.New(), UserFrom: u1, UserTo: u2}
		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)

		_, err := f.uc.ListMessages(context.Background(), uuid.New(), dm.ListMessagesQuery{ConversationID: &conv.ID})
		assert.Equal(t, appErrors.ErrNotConversationParty, err)
	})

	t.Run("beyond last page is empty", func(t *testing.T) {
		f := newFixture(t)
		conv := &model.Conversation{ID: uuid.New(), UserFrom: u1, UserTo: u2}
		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)
		f.repo.EXPECT().ListMessages(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q model.MessageQuery) (pagination.Page[*model.Message], error) {
				assert.Equal(t, conv.ID, *q.ConversationID)
				return pagination.NewPage[*model.Message](nil, 3, q.Page), nil
			})

		page, err := f.uc.ListMessages(context.Background(), u2, dm.ListMessagesQuery{
			ConversationID: &conv.ID,
			Params:         pagination.Params{Page: 9, PageSize: 2},
		})
		require.NoError(t, err)
		assert.NotNil(t, page.Data)
		assert.Empty(t, page.Data)
		assert.Equal(t, 2, page.TotalPages)
	})
}

func Test_MarkRead(t *testing.T) {
	u1, u2 := uuid.New(), uuid.New()
	conv := &model.Conversation{ID: uuid.New(), UserFrom: u1, UserTo: u2}

	t.Run("idempotent", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil).Times(2)
		f.users.EXPECT().UserExists(gomock.Any(), userModel.UserQuery{IDs: []uuid.UUID{u2}}).Return(true, nil).Times(2)
		gomock.InOrder(
			f.repo.EXPECT().MarkRead(gomock.Any(), conv.ID, u2).Return(int64(3), nil),
			f.repo.EXPECT().MarkRead(gomock.Any(), conv.ID, u2).Return(int64(0), nil),
		)

		require.NoError(t, f.uc.MarkRead(context.Background(), conv.ID, u2))
		require.NoError(t, f.uc.MarkRead(context.Background(), conv.ID, u2))
	})

	t.Run("unknown conversation", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetConversationByID(gomock.Any(), gomock.Any()).Return(nil, repository.ErrConversationNotFound)

		err := f.uc.MarkRead(context.Background(), uuid.New(), u2)
		assert.Equal(t, appErrors.ErrConversationNotFound, err)
	})

	t.Run("unknown recipient", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)
		f.users.EXPECT().UserExists(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.uc.MarkRead(context.Background(), conv.ID, u2)
		assert.Equal(t, appErrors.ErrUserNotFound, err)
	})
}

func Test_RejectConversation(t *testing.T) {
	u1, u2 := uuid.New(), uuid.New()

	t.Run("recipient rejects pending", func(t *testing.T) {
		f := newFixture(t)
		conv := &model.Conversation{ID: uuid.New(), UserFrom: u1, UserTo: u2, Status: model.ConversationPending}
		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)
		f.repo.EXPECT().UpdateConversationStatus(gomock.Any(), conv.ID, model.ConversationRejected).Return(nil)

		var notified []uuid.UUID
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in notification.Intent) error {
			assert.Equal(t, dm.ConversationsUpdatedEvent, in.ChannelEvent)
			notified = append(notified, *in.TargetUser)
			return nil
		}).Times(2)

		out, err := f.uc.RejectConversation(context.Background(), conv.ID, u2)
		require.NoError(t, err)
		assert.Equal(t, model.ConversationRejected, out.Status)
		assert.ElementsMatch(t, []uuid.UUID{u1, u2}, notified)
	})

	t.Run("initiator cannot reject", func(t *testing.T) {
		f := newFixture(t)
		conv := &model.Conversation{ID: uuid.New(), UserFrom: u1, UserTo: u2, Status: model.ConversationPending}
		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)

		_, err := f.uc.RejectConversation(context.Background(), conv.ID, u1)
		assert.Equal(t, appErrors.ErrCannotReject, err)
	})

	t.Run("outsider", func(t *testing.T) {
		f := newFixture(t)
		conv := &model.Conversation{ID: uuid.New(), UserFrom: u1, UserTo: u2, Status: model.ConversationPending}
		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)

		_, err := f.uc.RejectConversation(context.Background(), conv.ID, uuid.New())
		assert.Equal(t, appErrors.ErrNotConversationParty, err)
	})
}

func Test_ListConversations(t *testing.T) {
	f := newFixture(t)
	actor := uuid.New()

	f.repo.EXPECT().ListConversations(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q model.ConversationQuery) (pagination.Page[*model.ConversationSummary], error) {
			assert.Equal(t, actor, q.UserID)
			assert.Equal(t, "bob", q.Keyword)
			assert.Equal(t, 50, q.Page.PageSize)
			return pagination.NewPage[*model.ConversationSummary](nil, 0, q.Page), nil
		})

	page, err := f.uc.ListConversations(context.Background(), actor, dm.ListConversationsQuery{
		Keyword: "  bob ",
		Params:  pagination.Params{PageSize: 500},
	})
	require.NoError(t, err)
	assert.Equal(t, []*model.ConversationSummary{}, page.Data)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Equal(t, 0, page.TotalPages)
}

func Test_UpdateAndDeleteMessage(t *testing.T) {
	sender, other := uuid.New(), uuid.New()
	newMsg := func() *model.Message {
		return &model.Message{ID: uuid.New(), UserFrom: sender, UserTo: other, Text: "old", Status: model.MessageUnread}
	}

	t.Run("sender edits", func(t *testing.T) {
		f := newFixture(t)
		msg := newMsg()
		f.repo.EXPECT().GetMessageByID(gomock.Any(), msg.ID).Return(msg, nil)
		f.repo.EXPECT().UpdateMessage(gomock.Any(), msg.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, patch model.MessagePatch) error {
				assert.Equal(t, "new", *patch.Text)
				return nil
			})

		out, err := f.uc.UpdateMessage(context.Background(), msg.ID, sender, dm.UpdateMessageCommand{Text: " new "})
		require.NoError(t, err)
		assert.Equal(t, "new", out.Text)
	})

	t.Run("other party cannot edit", func(t *testing.T) {
		f := newFixture(t)
		msg := newMsg()
		f.repo.EXPECT().GetMessageByID(gomock.Any(), msg.ID).Return(msg, nil)

		_, err := f.uc.UpdateMessage(context.Background(), msg.ID, other, dm.UpdateMessageCommand{Text: "x"})
		assert.Equal(t, appErrors.ErrNotMessageSender, err)
	})

	t.Run("deleted message cannot be edited", func(t *testing.T) {
		f := newFixture(t)
		msg := newMsg()
		msg.Status = model.MessageDeleted
		f.repo.EXPECT().GetMessageByID(gomock.Any(), msg.ID).Return(msg, nil)

		_, err := f.uc.UpdateMessage(context.Background(), msg.ID, sender, dm.UpdateMessageCommand{Text: "x"})
		assert.Equal(t, appErrors.ErrMessageDeleted, err)
	})

	t.Run("soft delete", func(t *testing.T) {
		f := newFixture(t)
		msg := newMsg()
		f.repo.EXPECT().GetMessageByID(gomock.Any(), msg.ID).Return(msg, nil)
		f.repo.EXPECT().SetMessageStatus(gomock.Any(), msg.ID, model.MessageDeleted).Return(nil)

		require.NoError(t, f.uc.DeleteMessage(context.Background(), msg.ID, sender))
	})

	t.Run("purge unknown", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.repo.EXPECT().DeleteMessage(gomock.Any(), id).Return(repository.ErrMessageNotFound)

		assert.Equal(t, appErrors.ErrMessageNotFound, f.uc.PurgeMessage(context.Background(), id))
	})
}
