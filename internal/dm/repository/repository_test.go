package repository

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"murmur/internal/dm"
	"murmur/internal/dm/model"
	"murmur/internal/user"
	usermodel "murmur/internal/user/model"
	userrepo "murmur/internal/user/repository"
	"murmur/pkg/database/dbtest"
	"murmur/pkg/logger"
	"murmur/pkg/pagination"
	"murmur/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pg    *dbtest.Postgres
	mg    *dbtest.Mongo
	skip  string
	noLog logger.Logger
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	pg, err = dbtest.StartPostgres(ctx)
	if err != nil {
		log.Printf("failed to start postgres container: %s", err)
		skip = "docker is not available"
	}
	if skip == "" {
		mg, err = dbtest.StartMongo(ctx)
		if err != nil {
			log.Printf("failed to start mongo container: %s", err)
			pg.Terminate(ctx)
			skip = "docker is not available"
		}
	}
	if skip == "" {
		if err := userrepo.CreatePostgresSchema(ctx, pg.DB); err != nil {
			log.Fatalf("failed to create user schema: %v", err)
		}
		if err := CreatePostgresSchema(ctx, pg.DB); err != nil {
			log.Fatalf("failed to create schema: %v", err)
		}
		if err := CreateMongoIndexes(ctx, mg.DB); err != nil {
			log.Fatalf("failed to create indexes: %v", err)
		}
	}

	code := m.Run()

	if skip == "" {
		pg.Terminate(ctx)
		mg.Terminate(ctx)
	}
	os.Exit(code)
}

type backend struct {
	repo  dm.DMRepository
	users user.UserRepository
}

func eachBackend(t *testing.T, fn func(t *testing.T, b backend)) {
	t.Helper()
	if skip != "" {
		t.Skip(skip)
	}
	ctx := context.Background()

	t.Run("postgres", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx, (*model.Message)(nil), (*model.Conversation)(nil), (*usermodel.User)(nil)))
		fn(t, backend{
			repo:  NewPostgresDMRepository(pg.DB, noLog),
			users: userrepo.NewPostgresUserRepository(pg.DB, noLog),
		})
	})
	t.Run("mongo", func(t *testing.T) {
		require.NoError(t, mg.Drop(ctx, conversationsCollection, messagesCollection, usersCollection))
		fn(t, backend{
			repo:  NewMongoDMRepository(mg.DB, noLog),
			users: userrepo.NewMongoUserRepository(mg.DB, noLog),
		})
	})
}

func (b backend) user(t *testing.T, username, name string) uuid.UUID {
	t.Helper()
	u := &usermodel.User{
		ID:           uuid.New(),
		Username:     username,
		Name:         name,
		PasswordHash: "hash",
		Role:         usermodel.RoleUser,
		Status:       usermodel.StatusActive,
	}
	require.NoError(t, b.users.CreateUser(context.Background(), u))
	return u.ID
}

func (b backend) conversation(t *testing.T, from, to uuid.UUID) *model.Conversation {
	t.Helper()
	c := &model.Conversation{UserFrom: from, UserTo: to, Status: model.ConversationPending}
	require.NoError(t, b.repo.CreateConversation(context.Background(), c))
	return c
}

func (b backend) message(t *testing.T, c *model.Conversation, from, to uuid.UUID, text string, at time.Time) *model.Message {
	t.Helper()
	m := &model.Message{
		ConversationID: c.ID,
		UserFrom:       from,
		UserTo:         to,
		Text:           text,
		CreatedAt:      at,
		UpdatedAt:      at,
	}
	require.NoError(t, b.repo.CreateMessage(context.Background(), m))
	return m
}

// epoch sits after every row's own created_at so message recency decides ordering.
var epoch = time.Now().UTC().Add(24 * time.Hour).Truncate(time.Millisecond)

func Test_CreateConversation(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		ctx := context.Background()
		u1, u2 := uuid.New(), uuid.New()

		c := b.conversation(t, u1, u2)
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.Equal(t, utils.PairKey(u1.String(), u2.String()), c.PairKey)

		// the reverse direction is the same pair
		err := b.repo.CreateConversation(ctx, &model.Conversation{UserFrom: u2, UserTo: u1, Status: model.ConversationPending})
		assert.ErrorIs(t, err, ErrDuplicatePair)

		byPair, err := b.repo.GetConversationByPair(ctx, utils.PairKey(u2.String(), u1.String()))
		require.NoError(t, err)
		assert.Equal(t, c.ID, byPair.ID)
		assert.Equal(t, model.ConversationPending, byPair.Status)
		assert.Nil(t, byPair.LastMessage)

		_, err = b.repo.GetConversationByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrConversationNotFound)
	})
}

func Test_ConversationStatusAndLastMessage(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		ctx := context.Background()
		u1, u2 := uuid.New(), uuid.New()
		c := b.conversation(t, u1, u2)

		require.NoError(t, b.repo.UpdateConversationStatus(ctx, c.ID, model.ConversationAccepted))
		err := b.repo.UpdateConversationStatus(ctx, uuid.New(), model.ConversationAccepted)
		assert.ErrorIs(t, err, ErrConversationNotFound)

		m := b.message(t, c, u1, u2, "hello", epoch)
		require.NoError(t, b.repo.SetLastMessage(ctx, c.ID, m))

		got, err := b.repo.GetConversationByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ConversationAccepted, got.Status)
		require.NotNil(t, got.LastMessageID)
		assert.Equal(t, m.ID, *got.LastMessageID)
		require.NotNil(t, got.LastMessage)
		assert.Equal(t, "hello", got.LastMessage.Text)

		err = b.repo.SetLastMessage(ctx, uuid.New(), m)
		assert.ErrorIs(t, err, ErrConversationNotFound)
	})
}

func Test_ListConversations(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		ctx := context.Background()
		me := b.user(t, "me", "Me")
		bob := b.user(t, "bob", "Bob Builder")
		carol := b.user(t, "carol", "Carol")
		dave := b.user(t, "dave", "Dave")

		withBob := b.conversation(t, me, bob)
		withCarol := b.conversation(t, carol, me)
		b.conversation(t, me, dave)
		b.conversation(t, bob, carol)

		older := b.message(t, withBob, me, bob, "see you tomorrow", epoch)
		require.NoError(t, b.repo.SetLastMessage(ctx, withBob.ID, older))
		newer := b.message(t, withCarol, carol, me, "lunch?", epoch.Add(time.Hour))
		require.NoError(t, b.repo.SetLastMessage(ctx, withCarol.ID, newer))

		page, err := b.repo.ListConversations(ctx, model.ConversationQuery{
			UserID: me,
			Page:   pagination.Params{Page: 1, PageSize: 2},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 3, page.TotalCount)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Data, 2)

		// conversations with messages come first, most recent on top
		assert.Equal(t, withCarol.ID, page.Data[0].ID)
		assert.Equal(t, carol, page.Data[0].OtherParty.ID)
		assert.Equal(t, "Carol", page.Data[0].OtherParty.Name)
		require.NotNil(t, page.Data[0].LastMessage)
		assert.Equal(t, "lunch?", page.Data[0].LastMessage.Text)
		assert.Equal(t, carol, page.Data[0].LastMessage.Sender)
		assert.Equal(t, withBob.ID, page.Data[1].ID)

		filtered, err := b.repo.ListConversations(ctx, model.ConversationQuery{
			UserID:  me,
			Keyword: "BUILDER",
			Page:    pagination.Params{Page: 1, PageSize: 10},
		})
		require.NoError(t, err)
		require.Len(t, filtered.Data, 1)
		assert.Equal(t, withBob.ID, filtered.Data[0].ID)

		byText, err := b.repo.ListConversations(ctx, model.ConversationQuery{
			UserID:  me,
			Keyword: "lunch",
			Page:    pagination.Params{Page: 1, PageSize: 10},
		})
		require.NoError(t, err)
		require.Len(t, byText.Data, 1)
		assert.Equal(t, withCarol.ID, byText.Data[0].ID)

		beyond, err := b.repo.ListConversations(ctx, model.ConversationQuery{
			UserID: me,
			Page:   pagination.Params{Page: 5, PageSize: 2},
		})
		require.NoError(t, err)
		assert.Empty(t, beyond.Data)
		assert.EqualValues(t, 3, beyond.TotalCount)
	})
}

func Test_ListConversationsDeletedLastMessage(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		ctx := context.Background()
		me := b.user(t, "me", "Me")
		erin := b.user(t, "erin", "Erin")

		c := b.conversation(t, me, erin)
		m := b.message(t, c, erin, me, "secret plans", epoch)
		require.NoError(t, b.repo.SetLastMessage(ctx, c.ID, m))
		require.NoError(t, b.repo.SetMessageStatus(ctx, m.ID, model.MessageDeleted))

		page, err := b.repo.ListConversations(ctx, model.ConversationQuery{
			UserID: me,
			Page:   pagination.Params{Page: 1, PageSize: 10},
		})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		last := page.Data[0].LastMessage
		require.NotNil(t, last)
		assert.Empty(t, last.Text)
		assert.Empty(t, last.AttachmentTypes)
		assert.True(t, last.Deleted)
		assert.Equal(t, erin, last.Sender)

		byText, err := b.repo.ListConversations(ctx, model.ConversationQuery{
			UserID:  me,
			Keyword: "secret",
			Page:    pagination.Params{Page: 1, PageSize: 10},
		})
		require.NoError(t, err)
		assert.Empty(t, byText.Data)
		assert.Zero(t, byText.TotalCount)

		byName, err := b.repo.ListConversations(ctx, model.ConversationQuery{
			UserID:  me,
			Keyword: "erin",
			Page:    pagination.Params{Page: 1, PageSize: 10},
		})
		require.NoError(t, err)
		require.Len(t, byName.Data, 1)
		assert.Equal(t, c.ID, byName.Data[0].ID)
	})
}

func Test_ListMessages(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		ctx := context.Background()
		u1, u2, u3 := uuid.New(), uuid.New(), uuid.New()
		c := b.conversation(t, u1, u2)
		other := b.conversation(t, u1, u3)

		for i := range 5 {
			from, to := u1, u2
			if i%2 == 1 {
				from, to = u2, u1
			}
			b.message(t, c, from, to, "msg", epoch.Add(time.Duration(i)*time.Minute))
		}
		deleted := b.message(t, c, u1, u2, "gone", epoch.Add(time.Hour))
		require.NoError(t, b.repo.SetMessageStatus(ctx, deleted.ID, model.MessageDeleted))
		b.message(t, other, u1, u3, "elsewhere", epoch)

		byConversation, err := b.repo.ListMessages(ctx, model.MessageQuery{
			ConversationID: &c.ID,
			Page:           pagination.Params{Page: 1, PageSize: 2},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 5, byConversation.TotalCount)
		assert.Equal(t, 3, byConversation.TotalPages)
		require.Len(t, byConversation.Data, 2)
		assert.True(t, byConversation.Data[0].CreatedAt.After(byConversation.Data[1].CreatedAt))

		byPair, err := b.repo.ListMessages(ctx, model.MessageQuery{
			UserA: &u2,
			UserB: &u1,
			Page:  pagination.Params{Page: 3, PageSize: 2},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 5, byPair.TotalCount)
		assert.Len(t, byPair.Data, 1)
	})
}

func Test_MarkRead(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		ctx := context.Background()
		u1, u2 := uuid.New(), uuid.New()
		c := b.conversation(t, u1, u2)

		b.message(t, c, u1, u2, "one", epoch)
		b.message(t, c, u1, u2, "two", epoch.Add(time.Minute))
		mine := b.message(t, c, u2, u1, "reply", epoch.Add(2*time.Minute))

		n, err := b.repo.MarkRead(ctx, c.ID, u2)
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)

		n, err = b.repo.MarkRead(ctx, c.ID, u2)
		require.NoError(t, err)
		assert.Zero(t, n)

		got, err := b.repo.GetMessageByID(ctx, mine.ID)
		require.NoError(t, err)
		assert.Equal(t, model.MessageUnread, got.Status)
	})
}

func Test_UpdateAndDeleteMessage(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		ctx := context.Background()
		u1, u2 := uuid.New(), uuid.New()
		c := b.conversation(t, u1, u2)
		m := b.message(t, c, u1, u2, "typo", epoch)
		require.NoError(t, b.repo.SetLastMessage(ctx, c.ID, m))

		text := "fixed"
		require.NoError(t, b.repo.UpdateMessage(ctx, m.ID, model.MessagePatch{Text: &text}))
		got, err := b.repo.GetMessageByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, "fixed", got.Text)

		assert.ErrorIs(t, b.repo.UpdateMessage(ctx, uuid.New(), model.MessagePatch{Text: &text}), ErrMessageNotFound)

		require.NoError(t, b.repo.DeleteMessage(ctx, m.ID))
		_, err = b.repo.GetMessageByID(ctx, m.ID)
		assert.ErrorIs(t, err, ErrMessageNotFound)

		conv, err := b.repo.GetConversationByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Nil(t, conv.LastMessageID)
		assert.Nil(t, conv.LastMessage)

		assert.ErrorIs(t, b.repo.DeleteMessage(ctx, m.ID), ErrMessageNotFound)
	})
}
