package repository

import (
	"context"
	"database/sql"
	"time"

	"murmur/internal/dm/model"
	"murmur/pkg/database"
	"murmur/pkg/logger"
	"murmur/pkg/pagination"
	"murmur/pkg/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type PostgresDMRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewPostgresDMRepository(db *bun.DB, logger logger.Logger) *PostgresDMRepository {
	return &PostgresDMRepository{
		db:     db,
		logger: &logger,
	}
}

func CreatePostgresSchema(ctx context.Context, db *bun.DB) error {
	models := []any{(*model.Conversation)(nil), (*model.Message)(nil)}
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrap(err, "dmRepo.CreateSchema.CreateTable")
		}
	}

	indexes := []struct {
		name    string
		model   any
		columns []string
	}{
		{"idx_conversations_user_from", (*model.Conversation)(nil), []string{"user_from"}},
		{"idx_conversations_user_to", (*model.Conversation)(nil), []string{"user_to"}},
		{"idx_messages_conversation_created", (*model.Message)(nil), []string{"conversation_id", "created_at"}},
		{"idx_messages_recipient_status", (*model.Message)(nil), []string{"user_to", "status"}},
	}
	for _, idx := range indexes {
		_, err := db.NewCreateIndex().Model(idx.model).Index(idx.name).Column(idx.columns...).IfNotExists().Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "dmRepo.CreateSchema.CreateIndex")
		}
	}
	return nil
}

func (r *PostgresDMRepository) CreateConversation(ctx context.Context, conversation *model.Conversation) error {
	if conversation.ID == uuid.Nil {
		conversation.ID = uuid.New()
	}
	conversation.PairKey = utils.PairKey(conversation.UserFrom.String(), conversation.UserTo.String())

	_, err := r.db.NewInsert().Model(conversation).Returning("*").Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicatePair
		}
		return errors.Wrap(err, "dmRepo.CreateConversation.Insert")
	}
	return nil
}

func (r *PostgresDMRepository) GetConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	return r.getConversation(ctx, "?TableAlias.id = ?", id)
}

func (r *PostgresDMRepository) GetConversationByPair(ctx context.Context, pairKey string) (*model.Conversation, error) {
	return r.getConversation(ctx, "?TableAlias.pair_key = ?", pairKey)
}

func (r *PostgresDMRepository) getConversation(ctx context.Context, where string, arg any) (*model.Conversation, error) {
	conversation := new(model.Conversation)
	err := r.db.NewSelect().
		Model(conversation).
		Relation("LastMessage").
		Where(where, arg).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "dmRepo.GetConversation.Scan")
	}
	return conversation, nil
}

func (r *PostgresDMRepository) UpdateConversationStatus(ctx context.Context, id uuid.UUID, status model.ConversationStatus) error {
	res, err := r.db.NewUpdate().
		Model((*model.Conversation)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.UpdateConversationStatus.Update")
	}
	return requireAffected(res, ErrConversationNotFound)
}

func (r *PostgresDMRepository) SetLastMessage(ctx context.Context, conversationID uuid.UUID, message *model.Message) error {
	res, err := r.db.NewUpdate().
		Model((*model.Conversation)(nil)).
		Set("last_message_id = ?", message.ID).
		Set("last_message_at = ?", message.CreatedAt).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", conversationID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.SetLastMessage.Update")
	}
	return requireAffected(res, ErrConversationNotFound)
}

// conversationRow is one conversation joined with its last message and the other party.
type conversationRow struct {
	ID              uuid.UUID                `bun:"id"`
	UserFrom        uuid.UUID                `bun:"user_from"`
	UserTo          uuid.UUID                `bun:"user_to"`
	Status          model.ConversationStatus `bun:"status"`
	CreatedAt       time.Time                `bun:"created_at"`
	OtherID         uuid.UUID                `bun:"other_id"`
	OtherName       string                   `bun:"other_name"`
	OtherImage      string                   `bun:"other_image"`
	LastText        string                   `bun:"last_text"`
	LastSender      uuid.UUID                `bun:"last_sender"`
	LastStatus      model.MessageStatus      `bun:"last_status"`
	LastCreatedAt   *time.Time               `bun:"last_created_at"`
	LastAttachments []model.Attachment       `bun:"last_attachments,type:jsonb"`
}

func (row *conversationRow) summary() *model.ConversationSummary {
	s := &model.ConversationSummary{
		ID:         row.ID,
		Status:     row.Status,
		UserFrom:   row.UserFrom,
		UserTo:     row.UserTo,
		CreatedAt:  row.CreatedAt,
		OtherParty: model.PartyProfile{ID: row.OtherID, Name: row.OtherName, Image: row.OtherImage},
	}
	if row.LastCreatedAt != nil {
		last := model.Message{
			UserFrom:    row.LastSender,
			Status:      row.LastStatus,
			Text:        row.LastText,
			Attachments: row.LastAttachments,
			CreatedAt:   *row.LastCreatedAt,
		}
		s.LastMessage = last.Preview()
	}
	return s
}

func (r *PostgresDMRepository) ListConversations(ctx context.Context, query model.ConversationQuery) (pagination.Page[*model.ConversationSummary], error) {
	rows := make([]conversationRow, 0)
	q := r.db.NewSelect().
		TableExpr("conversations AS c").
		ColumnExpr("c.id, c.user_from, c.user_to, c.status, c.created_at").
		ColumnExpr("u.id AS other_id, u.name AS other_name, u.image AS other_image").
		ColumnExpr("m.text AS last_text, m.user_from AS last_sender, m.created_at AS last_created_at, m.attachments AS last_attachments").
		ColumnExpr("m.status AS last_status").
		Join("JOIN users AS u ON u.id = CASE WHEN c.user_from = ? THEN c.user_to ELSE c.user_from END", query.UserID).
		Join("LEFT JOIN messages AS m ON m.id = c.last_message_id").
		Where("(c.user_from = ? OR c.user_to = ?)", query.UserID, query.UserID)

	if query.Keyword != "" {
		pattern := utils.LikePattern(query.Keyword)
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("(m.status <> ? AND m.text ILIKE ?)", model.MessageDeleted, pattern).WhereOr("u.name ILIKE ?", pattern)
		})
	}

	count, err := q.
		OrderExpr("COALESCE(m.created_at, c.created_at) DESC").
		OrderExpr("c.id").
		Limit(query.Page.Limit()).
		Offset(query.Page.Offset()).
		ScanAndCount(ctx, &rows)
	if err != nil {
		return pagination.Page[*model.ConversationSummary]{}, errors.Wrap(err, "dmRepo.ListConversations.ScanAndCount")
	}

	summaries := make([]*model.ConversationSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, rows[i].summary())
	}
	return pagination.NewPage(summaries, int64(count), query.Page), nil
}

func (r *PostgresDMRepository) CreateMessage(ctx context.Context, message *model.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.Status == "" {
		message.Status = model.MessageUnread
	}
	if _, err := r.db.NewInsert().Model(message).Returning("*").Exec(ctx); err != nil {
		return errors.Wrap(err, "dmRepo.CreateMessage.Insert")
	}
	return nil
}

func (r *PostgresDMRepository) GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	message := new(model.Message)
	err := r.db.NewSelect().Model(message).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "dmRepo.GetMessageByID.Scan")
	}
	return message, nil
}

func (r *PostgresDMRepository) ListMessages(ctx context.Context, query model.MessageQuery) (pagination.Page[*model.Message], error) {
	messages := make([]*model.Message, 0)
	q := r.db.NewSelect().Model(&messages).Where("status <> ?", model.MessageDeleted)

	if query.ConversationID != nil {
		q = q.Where("conversation_id = ?", *query.ConversationID)
	} else {
		a, b := *query.UserA, *query.UserB
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("(user_from = ? AND user_to = ?)", a, b).WhereOr("(user_from = ? AND user_to = ?)", b, a)
		})
	}

	count, err := q.
		Order("created_at DESC", "id DESC").
		Limit(query.Page.Limit()).
		Offset(query.Page.Offset()).
		ScanAndCount(ctx)
	if err != nil {
		return pagination.Page[*model.Message]{}, errors.Wrap(err, "dmRepo.ListMessages.ScanAndCount")
	}
	return pagination.NewPage(messages, int64(count), query.Page), nil
}

func (r *PostgresDMRepository) MarkRead(ctx context.Context, conversationID, recipient uuid.UUID) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("status = ?", model.MessageRead).
		Set("updated_at = ?", time.Now()).
		Where("conversation_id = ?", conversationID).
		Where("user_to = ?", recipient).
		Where("status = ?", model.MessageUnread).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "dmRepo.MarkRead.Update")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "dmRepo.MarkRead.RowsAffected")
	}
	return n, nil
}

func (r *PostgresDMRepository) UpdateMessage(ctx context.Context, id uuid.UUID, patch model.MessagePatch) error {
	if patch.IsEmpty() {
		return nil
	}
	q := r.db.NewUpdate().Model((*model.Message)(nil)).Where("id = ?", id).Set("updated_at = ?", time.Now())
	if patch.Text != nil {
		q = q.Set("text = ?", *patch.Text)
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.UpdateMessage.Update")
	}
	return requireAffected(res, ErrMessageNotFound)
}

func (r *PostgresDMRepository) SetMessageStatus(ctx context.Context, id uuid.UUID, status model.MessageStatus) error {
	res, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.SetMessageStatus.Update")
	}
	return requireAffected(res, ErrMessageNotFound)
}

func (r *PostgresDMRepository) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*model.Conversation)(nil)).
			Set("last_message_id = NULL").
			Set("last_message_at = NULL").
			Where("last_message_id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "dmRepo.DeleteMessage.ClearLastMessage")
		}

		res, err := tx.NewDelete().Model((*model.Message)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "dmRepo.DeleteMessage.Delete")
		}
		return requireAffected(res, ErrMessageNotFound)
	})
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "dmRepo.RowsAffected")
	}
	if n == 0 {
		return notFound
	}
	return nil
}
