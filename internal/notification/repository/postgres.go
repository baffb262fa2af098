package repository

import (
	"context"

	"murmur/internal/notification/model"
	"murmur/pkg/logger"
	"murmur/pkg/pagination"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type PostgresNotificationRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewPostgresNotificationRepository(db *bun.DB, logger logger.Logger) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{
		db:     db,
		logger: &logger,
	}
}

func CreatePostgresSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*model.Notification)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "notificationRepo.CreateSchema.notifications")
	}
	_, err = db.NewCreateIndex().
		Model((*model.Notification)(nil)).
		Index("idx_notifications_user_status").
		Column("user_id", "status").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "notificationRepo.CreateSchema.index")
	}
	return nil
}

func (r *PostgresNotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	return r.CreateMany(ctx, []*model.Notification{notification})
}

func (r *PostgresNotificationRepository) CreateMany(ctx context.Context, notifications []*model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	for _, n := range notifications {
		prepare(n)
	}
	if _, err := r.db.NewInsert().Model(&notifications).Returning("*").Exec(ctx); err != nil {
		return errors.Wrap(err, "notificationRepo.CreateMany.Insert")
	}
	return nil
}

func (r *PostgresNotificationRepository) ListNotifications(ctx context.Context, userID uuid.UUID, page pagination.Params) (pagination.Page[*model.Notification], error) {
	notifications := make([]*model.Notification, 0)
	count, err := r.db.NewSelect().
		Model(&notifications).
		Where("user_id = ?", userID).
		Order("created_at DESC", "id DESC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ScanAndCount(ctx)
	if err != nil {
		return pagination.Page[*model.Notification]{}, errors.Wrap(err, "notificationRepo.ListNotifications.ScanAndCount")
	}
	return pagination.NewPage(notifications, int64(count), page), nil
}

func (r *PostgresNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*model.Notification)(nil)).
		Set("status = ?", model.StatusRead).
		Where("user_id = ?", userID).
		Where("status = ?", model.StatusUnread).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "notificationRepo.MarkAllRead.Update")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "notificationRepo.MarkAllRead.RowsAffected")
	}
	return n, nil
}

func (r *PostgresNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := r.db.NewSelect().
		Model((*model.Notification)(nil)).
		Where("user_id = ?", userID).
		Where("status = ?", model.StatusUnread).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "notificationRepo.CountUnread.Count")
	}
	return int64(count), nil
}
