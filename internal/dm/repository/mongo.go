package repository

import (
	"context"
	"time"

	"murmur/internal/dm/model"
	"murmur/pkg/database"
	"murmur/pkg/logger"
	"murmur/pkg/pagination"
	"murmur/pkg/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	conversationsCollection = "conversations"
	messagesCollection      = "messages"
	usersCollection         = "users"
)

type MongoDMRepository struct {
	conversations *mongo.Collection
	messages      *mongo.Collection
	logger        *logger.Logger
}

func NewMongoDMRepository(db *mongo.Database, logger logger.Logger) *MongoDMRepository {
	return &MongoDMRepository{
		conversations: db.Collection(conversationsCollection),
		messages:      db.Collection(messagesCollection),
		logger:        &logger,
	}
}

func CreateMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(conversationsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "pairKey", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userFrom", Value: 1}}},
		{Keys: bson.D{{Key: "userTo", Value: 1}}},
	})
	if err != nil {
		return errors.Wrap(err, "dmRepo.CreateIndexes.conversations")
	}

	_, err = db.Collection(messagesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "userTo", Value: 1}, {Key: "status", Value: 1}}},
	})
	if err != nil {
		return errors.Wrap(err, "dmRepo.CreateIndexes.messages")
	}
	return nil
}

func (r *MongoDMRepository) CreateConversation(ctx context.Context, conversation *model.Conversation) error {
	now := time.Now().UTC()
	if conversation.ID == uuid.Nil {
		conversation.ID = uuid.New()
	}
	if conversation.Status == "" {
		conversation.Status = model.ConversationPending
	}
	conversation.PairKey = utils.PairKey(conversation.UserFrom.String(), conversation.UserTo.String())
	conversation.CreatedAt, conversation.UpdatedAt = now, now

	if _, err := r.conversations.InsertOne(ctx, conversation); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicatePair
		}
		return errors.Wrap(err, "dmRepo.CreateConversation.InsertOne")
	}
	return nil
}

func (r *MongoDMRepository) GetConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	return r.findConversation(ctx, bson.M{"_id": id})
}

func (r *MongoDMRepository) GetConversationByPair(ctx context.Context, pairKey string) (*model.Conversation, error) {
	return r.findConversation(ctx, bson.M{"pairKey": pairKey})
}

func (r *MongoDMRepository) findConversation(ctx context.Context, filter bson.M) (*model.Conversation, error) {
	conversation := new(model.Conversation)
	if err := r.conversations.FindOne(ctx, filter).Decode(conversation); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "dmRepo.FindConversation.Decode")
	}

	if conversation.LastMessageID != nil {
		last, err := r.GetMessageByID(ctx, *conversation.LastMessageID)
		switch {
		case err == nil:
			conversation.LastMessage = last
		case !errors.Is(err, ErrMessageNotFound):
			return nil, err
		}
	}
	return conversation, nil
}

func (r *MongoDMRepository) UpdateConversationStatus(ctx context.Context, id uuid.UUID, status model.ConversationStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	return updateOne(ctx, r.conversations, id, update, ErrConversationNotFound, "dmRepo.UpdateConversationStatus")
}

func (r *MongoDMRepository) SetLastMessage(ctx context.Context, conversationID uuid.UUID, message *model.Message) error {
	update := bson.M{"$set": bson.M{
		"lastMessageId": message.ID,
		"lastMessageAt": message.CreatedAt,
		"updatedAt":     time.Now().UTC(),
	}}
	return updateOne(ctx, r.conversations, conversationID, update, ErrConversationNotFound, "dmRepo.SetLastMessage")
}

type partyDoc struct {
	ID    uuid.UUID `bson:"_id"`
	Name  string    `bson:"name"`
	Image string    `bson:"image"`
}

type conversationDoc struct {
	ID       uuid.UUID                `bson:"_id"`
	UserFrom uuid.UUID                `bson:"userFrom"`
	UserTo   uuid.UUID                `bson:"userTo"`
	Status   model.ConversationStatus `bson:"status"`
	Created  time.Time                `bson:"createdAt"`
	Last     *model.Message           `bson:"last"`
	Other    *partyDoc                `bson:"other"`
}

func (d *conversationDoc) summary() *model.ConversationSummary {
	s := &model.ConversationSummary{
		ID:        d.ID,
		Status:    d.Status,
		UserFrom:  d.UserFrom,
		UserTo:    d.UserTo,
		CreatedAt: d.Created,
	}
	if d.Other != nil {
		s.OtherParty = model.PartyProfile{ID: d.Other.ID, Name: d.Other.Name, Image: d.Other.Image}
	}
	if d.Last != nil {
		s.LastMessage = d.Last.Preview()
	}
	return s
}

func (r *MongoDMRepository) ListConversations(ctx context.Context, query model.ConversationQuery) (pagination.Page[*model.ConversationSummary], error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"userFrom": query.UserID},
			bson.M{"userTo": query.UserID},
		}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         messagesCollection,
			"localField":   "lastMessageId",
			"foreignField": "_id",
			"as":           "last",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$last", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$addFields", Value: bson.M{
			"otherId": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$userFrom", query.UserID}}, "$userTo", "$userFrom"}},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "otherId",
			"foreignField": "_id",
			"as":           "other",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$other", "preserveNullAndEmptyArrays": true}}},
	}

	if query.Keyword != "" {
		pattern := bson.M{"$regex": utils.RegexPattern(query.Keyword), "$options": "i"}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"last.text": pattern, "last.status": bson.M{"$ne": model.MessageDeleted}},
			bson.M{"other.name": pattern},
		}}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$addFields", Value: bson.M{"recency": bson.M{"$ifNull": bson.A{"$last.createdAt", "$createdAt"}}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "recency", Value: -1}, {Key: "_id", Value: 1}}}},
	)

	page, err := database.AggregatePage[*conversationDoc](ctx, r.conversations, pipeline, query.Page)
	if err != nil {
		return pagination.Page[*model.ConversationSummary]{}, errors.Wrap(err, "dmRepo.ListConversations")
	}
	return pagination.Map(page, (*conversationDoc).summary), nil
}

func (r *MongoDMRepository) CreateMessage(ctx context.Context, message *model.Message) error {
	now := time.Now().UTC()
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.Status == "" {
		message.Status = model.MessageUnread
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = now
	}
	message.UpdatedAt = now

	if _, err := r.messages.InsertOne(ctx, message); err != nil {
		return errors.Wrap(err, "dmRepo.CreateMessage.InsertOne")
	}
	return nil
}

func (r *MongoDMRepository) GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	message := new(model.Message)
	if err := r.messages.FindOne(ctx, bson.M{"_id": id}).Decode(message); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "dmRepo.GetMessageByID.Decode")
	}
	return message, nil
}

func (r *MongoDMRepository) ListMessages(ctx context.Context, query model.MessageQuery) (pagination.Page[*model.Message], error) {
	filter := bson.M{"status": bson.M{"$ne": model.MessageDeleted}}
	if query.ConversationID != nil {
		filter["conversationId"] = *query.ConversationID
	} else {
		a, b := *query.UserA, *query.UserB
		filter["$or"] = bson.A{
			bson.M{"userFrom": a, "userTo": b},
			bson.M{"userFrom": b, "userTo": a},
		}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
	}
	page, err := database.AggregatePage[*model.Message](ctx, r.messages, pipeline, query.Page)
	if err != nil {
		return pagination.Page[*model.Message]{}, errors.Wrap(err, "dmRepo.ListMessages")
	}
	return page, nil
}

func (r *MongoDMRepository) MarkRead(ctx context.Context, conversationID, recipient uuid.UUID) (int64, error) {
	res, err := r.messages.UpdateMany(ctx,
		bson.M{"conversationId": conversationID, "userTo": recipient, "status": model.MessageUnread},
		bson.M{"$set": bson.M{"status": model.MessageRead, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "dmRepo.MarkRead.UpdateMany")
	}
	return res.ModifiedCount, nil
}

func (r *MongoDMRepository) UpdateMessage(ctx context.Context, id uuid.UUID, patch model.MessagePatch) error {
	if patch.IsEmpty() {
		return nil
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Text != nil {
		set["text"] = *patch.Text
	}
	return updateOne(ctx, r.messages, id, bson.M{"$set": set}, ErrMessageNotFound, "dmRepo.UpdateMessage")
}

func (r *MongoDMRepository) SetMessageStatus(ctx context.Context, id uuid.UUID, status model.MessageStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	return updateOne(ctx, r.messages, id, update, ErrMessageNotFound, "dmRepo.SetMessageStatus")
}

func (r *MongoDMRepository) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	res, err := r.messages.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "dmRepo.DeleteMessage.DeleteOne")
	}
	if res.DeletedCount == 0 {
		return ErrMessageNotFound
	}

	_, err = r.conversations.UpdateMany(ctx,
		bson.M{"lastMessageId": id},
		bson.M{"$unset": bson.M{"lastMessageId": "", "lastMessageAt": ""}},
	)
	if err != nil {
		return errors.Wrap(err, "dmRepo.DeleteMessage.ClearLastMessage")
	}
	return nil
}

func updateOne(ctx context.Context, coll *mongo.Collection, id uuid.UUID, update bson.M, notFound error, op string) error {
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return errors.Wrap(err, op+".UpdateOne")
	}
	if res.MatchedCount == 0 {
		return notFound
	}
	return nil
}
