package usecase

import (
	"context"
	"errors"
	"testing"

	"murmur/internal/notification"
	"murmur/internal/notification/mocks"
	"murmur/internal/notification/model"
	userMocks "murmur/internal/user/mocks"
	userModel "murmur/internal/user/model"
	appErrors "murmur/pkg/errors"
	"murmur/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type dispatcherFixture struct {
	users    *userMocks.MockDirectory
	repo     *mocks.MockNotificationRepository
	realtime *mocks.MockRealtimeChannel
	push     *mocks.MockPushNotifier
	logs     *observer.ObservedLogs
	d        *Dispatcher
}

func newDispatcherFixture(t *testing.T) *dispatcherFixture {
	ctrl := gomock.NewController(t)
	core, logs := observer.New(zap.DebugLevel)
	f := &dispatcherFixture{
		users:    userMocks.NewMockDirectory(ctrl),
		repo:     mocks.NewMockNotificationRepository(ctrl),
		realtime: mocks.NewMockRealtimeChannel(ctrl),
		push:     mocks.NewMockPushNotifier(ctrl),
		logs:     logs,
	}
	f.d = NewDispatcher(f.users, f.repo, f.realtime, f.push, logger.FromZap(zap.New(core)))
	return f
}

func userWithTokens(tokens ...string) *userModel.User {
	u := &userModel.User{ID: uuid.New(), Status: userModel.StatusActive}
	for i, token := range tokens {
		u.SetPushToken(string(rune('a'+i)), token)
	}
	return u
}

func Test_Notify_Single(t *testing.T) {
	t.Run("realtime, database then push", func(t *testing.T) {
		f := newDispatcherFixture(t)
		target := userWithTokens("t1", "t2")

		gomock.InOrder(
			f.realtime.EXPECT().SendToUser(target.ID, "evt", "payload"),
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *model.Notification) error {
				assert.Equal(t, target.ID, n.UserID)
				assert.Equal(t, model.TypeNewMessage, n.Type)
				return nil
			}),
			f.users.EXPECT().GetUserByID(gomock.Any(), target.ID).Return(target, nil),
			f.push.EXPECT().SendMulticast(gomock.Any(), []string{"t1", "t2"}, "title", "body", map[string]string{"k": "v"}).Return(nil),
		)

		err := f.d.Notify(context.Background(), notification.Intent{
			TargetUser:     &target.ID,
			UseRealtime:    true,
			UsePush:        true,
			UseDatabase:    true,
			ChannelEvent:   "evt",
			ChannelPayload: "payload",
			PushTitle:      "title",
			PushBody:       "body",
			PushData:       map[string]string{"k": "v"},
			Record:         &model.Notification{Type: model.TypeNewMessage},
		})
		require.NoError(t, err)
	})

	t.Run("missing target", func(t *testing.T) {
		f := newDispatcherFixture(t)
		err := f.d.Notify(context.Background(), notification.Intent{UseRealtime: true})
		assert.Equal(t, appErrors.ErrMissingTarget, err)
		assert.Equal(t, appErrors.CodeMissingTarget, appErrors.CodeOf(err))

		err = f.d.Notify(context.Background(), notification.Intent{UsePush: true})
		assert.Equal(t, appErrors.ErrMissingTarget, err)
	})

	t.Run("missing record skips persistence", func(t *testing.T) {
		f := newDispatcherFixture(t)
		target := uuid.New()
		f.realtime.EXPECT().SendToUser(target, "evt", nil)

		err := f.d.Notify(context.Background(), notification.Intent{
			TargetUser:   &target,
			UseRealtime:  true,
			UseDatabase:  true,
			ChannelEvent: "evt",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, f.logs.FilterMessage("notification record missing, skipping persistence").Len())
	})

	t.Run("database failure is returned and push skipped", func(t *testing.T) {
		f := newDispatcherFixture(t)
		target := uuid.New()
		f.realtime.EXPECT().SendToUser(target, "evt", nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		err := f.d.Notify(context.Background(), notification.Intent{
			TargetUser:   &target,
			UseRealtime:  true,
			UsePush:      true,
			UseDatabase:  true,
			ChannelEvent: "evt",
			Record:       &model.Notification{Type: model.TypeNewMessage},
		})
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})

	t.Run("push failure is swallowed", func(t *testing.T) {
		f := newDispatcherFixture(t)
		target := userWithTokens("t1")
		f.users.EXPECT().GetUserByID(gomock.Any(), target.ID).Return(target, nil)
		f.push.EXPECT().SendMulticast(gomock.Any(), []string{"t1"}, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("fcm down"))

		err := f.d.Notify(context.Background(), notification.Intent{TargetUser: &target.ID, UsePush: true})
		require.NoError(t, err)
		assert.Equal(t, 1, f.logs.FilterMessage("push delivery failed").Len())
	})

	t.Run("no tokens, no push call", func(t *testing.T) {
		f := newDispatcherFixture(t)
		target := userWithTokens()
		f.users.EXPECT().GetUserByID(gomock.Any(), target.ID).Return(target, nil)

		err := f.d.Notify(context.Background(), notification.Intent{TargetUser: &target.ID, UsePush: true})
		require.NoError(t, err)
	})

	t.Run("database only with record addressed", func(t *testing.T) {
		f := newDispatcherFixture(t)
		owner := uuid.New()
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *model.Notification) error {
			assert.Equal(t, owner, n.UserID)
			return nil
		}).Times(1)

		err := f.d.Notify(context.Background(), notification.Intent{
			UseDatabase: true,
			Record:      &model.Notification{UserID: owner, Type: model.TypeConversationUpdated},
		})
		require.NoError(t, err)
	})
}

func Test_Notify_Grouped(t *testing.T) {
	t.Run("one record per resolved user", func(t *testing.T) {
		f := newDispatcherFixture(t)
		a, b, c := userWithTokens("ta"), userWithTokens("tb", "ta"), userWithTokens()
		query := userModel.UserQuery{Role: userModel.RoleUser, Limit: 10}

		gomock.InOrder(
			f.users.EXPECT().FindUsers(gomock.Any(), userModel.UserQuery{Role: userModel.RoleUser}).
				Return([]*userModel.User{a, b, c}, nil),
			f.realtime.EXPECT().Broadcast("announcement", "hello"),
			f.repo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ns []*model.Notification) error {
				require.Len(t, ns, 3)
				assert.Equal(t, a.ID, ns[0].UserID)
				assert.Equal(t, b.ID, ns[1].UserID)
				assert.Equal(t, c.ID, ns[2].UserID)
				assert.NotEqual(t, ns[0].ID, ns[1].ID)
				return nil
			}),
			f.push.EXPECT().SendMulticast(gomock.Any(), []string{"ta", "tb"}, "t", "b", gomock.Any()).Return(nil),
		)

		err := f.d.Notify(context.Background(), notification.Intent{
			IsGrouped:      true,
			GroupQuery:     &query,
			UseRealtime:    true,
			UsePush:        true,
			UseDatabase:    true,
			ChannelEvent:   "announcement",
			ChannelPayload: "hello",
			PushTitle:      "t",
			PushBody:       "b",
			Record:         &model.Notification{Type: model.TypeAnnouncement},
		})
		require.NoError(t, err)
	})

	t.Run("empty group persists nothing", func(t *testing.T) {
		f := newDispatcherFixture(t)
		f.users.EXPECT().FindUsers(gomock.Any(), gomock.Any()).Return([]*userModel.User{}, nil)

		err := f.d.Notify(context.Background(), notification.Intent{
			IsGrouped:   true,
			GroupQuery:  &userModel.UserQuery{},
			UseDatabase: true,
			UsePush:     true,
			Record:      &model.Notification{Type: model.TypeAnnouncement},
		})
		require.NoError(t, err)
	})

	t.Run("missing group query", func(t *testing.T) {
		f := newDispatcherFixture(t)
		err := f.d.Notify(context.Background(), notification.Intent{IsGrouped: true, UseRealtime: true})
		assert.Equal(t, appErrors.ErrMissingTarget, err)
	})

	t.Run("directory failure", func(t *testing.T) {
		f := newDispatcherFixture(t)
		f.users.EXPECT().FindUsers(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		err := f.d.Notify(context.Background(), notification.Intent{
			IsGrouped:   true,
			GroupQuery:  &userModel.UserQuery{},
			UseRealtime: true,
		})
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})
}
