package repository

import (
	"context"
	"time"

	User "murmur/internal/user/model"
	"murmur/pkg/logger"
	"murmur/pkg/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type MongoUserRepository struct {
	users  *mongo.Collection
	logger *logger.Logger
}

func NewMongoUserRepository(db *mongo.Database, logger logger.Logger) *MongoUserRepository {
	return &MongoUserRepository{
		users:  db.Collection(usersCollection),
		logger: &logger,
	}
}

func CreateMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "role", Value: 1}}},
	})
	if err != nil {
		return errors.Wrap(err, "userRepo.CreateIndexes")
	}
	return nil
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *User.User) error {
	now := time.Now().UTC()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Role == "" {
		user.Role = User.RoleUser
	}
	if user.Status == "" {
		user.Status = User.StatusActive
	}
	user.CreatedAt, user.UpdatedAt = now, now

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameTaken
		}
		return errors.Wrap(err, "userRepo.CreateUser.InsertOne")
	}
	return nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, "userRepo.GetUserByID")
}

func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*User.User, error) {
	return r.findOne(ctx, bson.M{"username": username}, "userRepo.GetUserByUsername")
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M, op string) (*User.User, error) {
	user := new(User.User)
	if err := r.users.FindOne(ctx, filter).Decode(user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, op+".Decode")
	}
	return user, nil
}

func (r *MongoUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	n, err := r.users.CountDocuments(ctx, bson.M{"username": username}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "userRepo.UsernameExists")
	}
	return n > 0, nil
}

func (r *MongoUserRepository) FindUsers(ctx context.Context, query User.UserQuery) ([]*User.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if query.Limit > 0 {
		opts.SetLimit(int64(query.Limit))
	}

	cursor, err := r.users.Find(ctx, userFilter(query), opts)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.FindUsers.Find")
	}
	defer cursor.Close(ctx)

	users := make([]*User.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "userRepo.FindUsers.All")
	}
	return users, nil
}

func (r *MongoUserRepository) UserExists(ctx context.Context, query User.UserQuery) (bool, error) {
	n, err := r.users.CountDocuments(ctx, userFilter(query), options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "userRepo.UserExists")
	}
	return n > 0, nil
}

func userFilter(query User.UserQuery) bson.M {
	filter := bson.M{"status": query.EffectiveStatus()}
	if len(query.IDs) > 0 {
		filter["_id"] = bson.M{"$in": query.IDs}
	}
	if query.Username != "" {
		filter["username"] = query.Username
	}
	if query.Role != "" {
		filter["role"] = query.Role
	}
	if query.Keyword != "" {
		pattern := bson.M{"$regex": utils.RegexPattern(query.Keyword), "$options": "i"}
		filter["$or"] = bson.A{bson.M{"username": pattern}, bson.M{"name": pattern}}
	}
	return filter
}

func (r *MongoUserRepository) UpdateUser(ctx context.Context, userID uuid.UUID, patch User.UserPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	return r.updateOne(ctx, userID, bson.M{"$set": set}, "userRepo.UpdateUser")
}

func (r *MongoUserRepository) SetStatus(ctx context.Context, userID uuid.UUID, status User.Status) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	return r.updateOne(ctx, userID, update, "userRepo.SetStatus")
}

func (r *MongoUserRepository) UpdatePushRegistrations(ctx context.Context, userID uuid.UUID, regs []User.PushRegistration) error {
	if regs == nil {
		regs = []User.PushRegistration{}
	}
	update := bson.M{"$set": bson.M{"pushRegistrations": regs, "updatedAt": time.Now().UTC()}}
	return r.updateOne(ctx, userID, update, "userRepo.UpdatePushRegistrations")
}

func (r *MongoUserRepository) updateOne(ctx context.Context, userID uuid.UUID, update bson.M, op string) error {
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return errors.Wrap(err, op+".UpdateOne")
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
