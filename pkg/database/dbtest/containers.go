// Package dbtest starts throwaway postgres and mongo containers for repository tests.
package dbtest

import (
	"context"
	"database/sql"

	"murmur/pkg/database"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.mongodb.org/mongo-driver/mongo"
)

// Postgres is a running postgres container with an open bun handle.
type Postgres struct {
	DB        *bun.DB
	container *postgres.PostgresContainer
}

func StartPostgres(ctx context.Context) (*Postgres, error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("murmur"),
		postgres.WithUsername("murmur"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "dbtest.StartPostgres.Run")
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Wrap(err, "dbtest.StartPostgres.ConnectionString")
	}

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(connStr)))
	db := bun.NewDB(sqlDB, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Wrap(err, "dbtest.StartPostgres.Ping")
	}
	return &Postgres{DB: db, container: container}, nil
}

// Truncate empties the given tables between tests.
func (p *Postgres) Truncate(ctx context.Context, models ...any) error {
	for _, m := range models {
		if _, err := p.DB.NewTruncateTable().Model(m).Cascade().Exec(ctx); err != nil {
			return errors.Wrap(err, "dbtest.Truncate")
		}
	}
	return nil
}

func (p *Postgres) Terminate(ctx context.Context) {
	_ = p.DB.Close()
	_ = p.container.Terminate(ctx)
}

// Mongo is a running mongodb container with a client using the uuid-aware registry.
type Mongo struct {
	Client    *mongo.Client
	DB        *mongo.Database
	container *mongodb.MongoDBContainer
}

func StartMongo(ctx context.Context) (*Mongo, error) {
	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		return nil, errors.Wrap(err, "dbtest.StartMongo.Run")
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Wrap(err, "dbtest.StartMongo.ConnectionString")
	}

	client, err := database.NewMongoClient(ctx, uri)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	return &Mongo{Client: client, DB: client.Database("murmur_test"), container: container}, nil
}

// Drop removes the given collections between tests.
func (m *Mongo) Drop(ctx context.Context, collections ...string) error {
	for _, c := range collections {
		if _, err := m.DB.Collection(c).DeleteMany(ctx, map[string]any{}); err != nil {
			return errors.Wrap(err, "dbtest.Drop")
		}
	}
	return nil
}

func (m *Mongo) Terminate(ctx context.Context) {
	_ = m.Client.Disconnect(ctx)
	_ = m.container.Terminate(ctx)
}
