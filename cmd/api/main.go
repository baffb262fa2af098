package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"murmur/config"
	"murmur/internal/dm"
	dmhttp "murmur/internal/dm/delivery/http"
	dmrepo "murmur/internal/dm/repository"
	dmusecase "murmur/internal/dm/usecase"
	"murmur/internal/notification"
	notificationhttp "murmur/internal/notification/delivery/http"
	notificationrepo "murmur/internal/notification/repository"
	notificationusecase "murmur/internal/notification/usecase"
	"murmur/internal/push"
	"murmur/internal/realtime"
	"murmur/internal/server"
	"murmur/internal/user"
	userhttp "murmur/internal/user/delivery/http"
	userrepo "murmur/internal/user/repository"
	userusecase "murmur/internal/user/usecase"
	"murmur/pkg/database"
	"murmur/pkg/logger"

	"github.com/joho/godotenv"
)

type stores struct {
	users         user.UserRepository
	dms           dm.DMRepository
	notifications notification.NotificationRepository
	close         func(context.Context) error
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}

	configName := os.Getenv("CONFIG")
	if configName == "" {
		configName = "config-local"
	}
	v, err := config.LoadConfig(configName)
	if err != nil {
		log.Fatalf("LoadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("ParseConfig: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("NewLogger: %v", err)
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *appLogger); err != nil {
		appLogger.Error("murmur stopped with error", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger logger.Logger) error {
	st, err := openStores(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(context.Background()); err != nil {
			appLogger.Warn("failed to close database", "err", err)
		}
	}()

	hub := realtime.NewHub(cfg.Realtime, cfg.Server.AllowedOrigins, appLogger)
	go hub.Run(ctx)

	var pusher notification.PushNotifier = push.NewLogNotifier(appLogger)
	if cfg.Push.Enabled {
		fcm, err := push.NewFCMNotifier(ctx, cfg.Push, appLogger)
		if err != nil {
			return err
		}
		pusher = fcm
	}

	dispatcher := notificationusecase.NewDispatcher(st.users, st.notifications, hub, pusher, appLogger)
	userUC := userusecase.NewUserUsecase(st.users, appLogger, *cfg)
	dmUC := dmusecase.NewDMUsecase(st.dms, st.users, dispatcher, appLogger, *cfg)
	notificationUC := notificationusecase.NewNotificationUsecase(st.notifications, st.users, dispatcher, appLogger, *cfg)

	srv := server.NewServer(cfg, server.Handlers{
		User:         userhttp.NewHandler(userUC, appLogger),
		DM:           dmhttp.NewHandler(dmUC, appLogger),
		Notification: notificationhttp.NewHandler(notificationUC, appLogger),
	}, hub, appLogger)

	appLogger.Info("murmur starting", "driver", cfg.Database.Driver, "push", cfg.Push.Enabled)
	return srv.Run(ctx)
}

func openStores(ctx context.Context, cfg *config.Config, appLogger logger.Logger) (*stores, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		client, db, err := database.NewMongoDatabase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		for _, ensure := range []func(context.Context) error{
			func(ctx context.Context) error { return userrepo.CreateMongoIndexes(ctx, db) },
			func(ctx context.Context) error { return dmrepo.CreateMongoIndexes(ctx, db) },
			func(ctx context.Context) error { return notificationrepo.CreateMongoIndexes(ctx, db) },
		} {
			if err := ensure(ctx); err != nil {
				client.Disconnect(context.Background())
				return nil, err
			}
		}
		return &stores{
			users:         userrepo.NewMongoUserRepository(db, appLogger),
			dms:           dmrepo.NewMongoDMRepository(db, appLogger),
			notifications: notificationrepo.NewMongoNotificationRepository(db, appLogger),
			close:         client.Disconnect,
		}, nil

	default:
		db, err := database.NewBunDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		for _, ensure := range []func(context.Context) error{
			func(ctx context.Context) error { return userrepo.CreatePostgresSchema(ctx, db) },
			func(ctx context.Context) error { return dmrepo.CreatePostgresSchema(ctx, db) },
			func(ctx context.Context) error { return notificationrepo.CreatePostgresSchema(ctx, db) },
		} {
			if err := ensure(ctx); err != nil {
				db.Close()
				return nil, err
			}
		}
		return &stores{
			users:         userrepo.NewPostgresUserRepository(db, appLogger),
			dms:           dmrepo.NewPostgresDMRepository(db, appLogger),
			notifications: notificationrepo.NewPostgresNotificationRepository(db, appLogger),
			close:         func(context.Context) error { return db.Close() },
		}, nil
	}
}
