package repository

import (
	"context"
	"database/sql"
	"time"

	User "murmur/internal/user/model"
	"murmur/pkg/database"
	"murmur/pkg/logger"
	"murmur/pkg/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type PostgresUserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewPostgresUserRepository(db *bun.DB, logger logger.Logger) *PostgresUserRepository {
	return &PostgresUserRepository{
		db:     db,
		logger: &logger,
	}
}

func CreatePostgresSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*User.User)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.CreateSchema.users")
	}
	return nil
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *User.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return errors.Wrap(err, "userRepo.CreateUser.InsertUser")
	}
	return nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error) {
	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan")
	}
	return user, nil
}

func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*User.User, error) {
	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByUsername.Scan")
	}
	return user, nil
}

func (r *PostgresUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := r.db.NewSelect().Model((*User.User)(nil)).Where("username = ?", username).Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.UsernameExists")
	}
	return exists, nil
}

func (r *PostgresUserRepository) FindUsers(ctx context.Context, query User.UserQuery) ([]*User.User, error) {
	users := make([]*User.User, 0)
	q := r.db.NewSelect().Model(&users)
	applyUserQuery(q, query)
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}
	if err := q.Order("created_at ASC").Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "userRepo.FindUsers.Scan")
	}
	return users, nil
}

func (r *PostgresUserRepository) UserExists(ctx context.Context, query User.UserQuery) (bool, error) {
	q := r.db.NewSelect().Model((*User.User)(nil))
	applyUserQuery(q, query)
	exists, err := q.Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.UserExists")
	}
	return exists, nil
}

func applyUserQuery(q *bun.SelectQuery, query User.UserQuery) {
	q.Where("status = ?", query.EffectiveStatus())
	if len(query.IDs) > 0 {
		q.Where("id IN (?)", bun.In(query.IDs))
	}
	if query.Username != "" {
		q.Where("username = ?", query.Username)
	}
	if query.Role != "" {
		q.Where("role = ?", query.Role)
	}
	if query.Keyword != "" {
		pattern := utils.LikePattern(query.Keyword)
		q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("username ILIKE ?", pattern).WhereOr("name ILIKE ?", pattern)
		})
	}
}

func (r *PostgresUserRepository) UpdateUser(ctx context.Context, userID uuid.UUID, patch User.UserPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	q := r.db.NewUpdate().Model((*User.User)(nil)).Where("id = ?", userID).Set("updated_at = ?", time.Now())
	if patch.Name != nil {
		q = q.Set("name = ?", *patch.Name)
	}
	if patch.Image != nil {
		q = q.Set("image = ?", *patch.Image)
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateUser.Update")
	}
	return requireAffected(res)
}

func (r *PostgresUserRepository) SetStatus(ctx context.Context, userID uuid.UUID, status User.Status) error {
	res, err := r.db.NewUpdate().
		Model((*User.User)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.SetStatus.Update")
	}
	return requireAffected(res)
}

func (r *PostgresUserRepository) UpdatePushRegistrations(ctx context.Context, userID uuid.UUID, regs []User.PushRegistration) error {
	//only touch this column, the rest of the row may be stale in the caller's copy
	res, err := r.db.NewUpdate().
		Model(&User.User{ID: userID, PushRegistrations: regs, UpdatedAt: time.Now()}).
		Column("push_registrations", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdatePushRegistrations.Update")
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "userRepo.RowsAffected")
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
