package database

import (
	"context"
	"database/sql"

	"murmur/config"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

func NewBunDB(ctx context.Context, cfg *config.Config) (*bun.DB, error) {
	if cfg.Database.DSN == "" {
		return nil, errors.New("database.dsn is empty")
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Database.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "database.NewBunDB.Ping")
	}
	return db, nil
}

// IsUniqueViolation reports whether err is a postgres unique_violation (23505).
func IsUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}
