package repository

import (
	"context"

	"murmur/internal/notification/model"
	"murmur/pkg/database"
	"murmur/pkg/logger"
	"murmur/pkg/pagination"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const notificationsCollection = "notifications"

type MongoNotificationRepository struct {
	notifications *mongo.Collection
	logger        *logger.Logger
}

func NewMongoNotificationRepository(db *mongo.Database, logger logger.Logger) *MongoNotificationRepository {
	return &MongoNotificationRepository{
		notifications: db.Collection(notificationsCollection),
		logger:        &logger,
	}
}

func CreateMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(notificationsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return errors.Wrap(err, "notificationRepo.CreateIndexes")
	}
	return nil
}

func (r *MongoNotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	prepare(notification)
	if _, err := r.notifications.InsertOne(ctx, notification); err != nil {
		return errors.Wrap(err, "notificationRepo.Create.InsertOne")
	}
	return nil
}

func (r *MongoNotificationRepository) CreateMany(ctx context.Context, notifications []*model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	docs := make([]any, 0, len(notifications))
	for _, n := range notifications {
		prepare(n)
		docs = append(docs, n)
	}
	if _, err := r.notifications.InsertMany(ctx, docs); err != nil {
		return errors.Wrap(err, "notificationRepo.CreateMany.InsertMany")
	}
	return nil
}

func (r *MongoNotificationRepository) ListNotifications(ctx context.Context, userID uuid.UUID, page pagination.Params) (pagination.Page[*model.Notification], error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
	}
	result, err := database.AggregatePage[*model.Notification](ctx, r.notifications, pipeline, page)
	if err != nil {
		return pagination.Page[*model.Notification]{}, errors.Wrap(err, "notificationRepo.ListNotifications")
	}
	return result, nil
}

func (r *MongoNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res, err := r.notifications.UpdateMany(ctx,
		bson.M{"user": userID, "status": model.StatusUnread},
		bson.M{"$set": bson.M{"status": model.StatusRead}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "notificationRepo.MarkAllRead.UpdateMany")
	}
	return res.ModifiedCount, nil
}

func (r *MongoNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.notifications.CountDocuments(ctx, bson.M{"user": userID, "status": model.StatusUnread})
	if err != nil {
		return 0, errors.Wrap(err, "notificationRepo.CountUnread")
	}
	return n, nil
}
