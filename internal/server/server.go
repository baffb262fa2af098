// Package server assembles the gin engine and owns the HTTP listener.
package server

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"murmur/config"
	dmhttp "murmur/internal/dm/delivery/http"
	notificationhttp "murmur/internal/notification/delivery/http"
	"murmur/internal/server/middleware"
	"murmur/internal/server/render"
	userhttp "murmur/internal/user/delivery/http"
	apperrors "murmur/pkg/errors"
	"murmur/pkg/logger"
	"murmur/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SocketServer attaches an authenticated user to the realtime channel.
type SocketServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, userID uuid.UUID)
}

type Handlers struct {
	User         *userhttp.Handler
	DM           *dmhttp.Handler
	Notification *notificationhttp.Handler
}

type Server struct {
	cfg      *config.Config
	logger   logger.Logger
	engine   *gin.Engine
	handlers Handlers
	sockets  SocketServer
}

func NewServer(cfg *config.Config, handlers Handlers, sockets SocketServer, logger logger.Logger) *Server {
	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger.With("component", "http"),
		engine:   gin.New(),
		handlers: handlers,
		sockets:  sockets,
	}
	s.mapHandlers()
	return s
}

// Handler exposes the engine, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) mapHandlers() {
	s.engine.Use(middleware.Recovery(s.logger), middleware.RequestLogger(s.logger))
	s.engine.Use(cors.New(corsConfig(s.cfg.Server.AllowedOrigins)))

	s.engine.GET("/healthz", func(c *gin.Context) {
		render.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/ws", s.serveWS)

	auth := middleware.Auth(s.cfg.JWT.Secret, s.logger)
	v1 := s.engine.Group("/api/v1")

	s.handlers.User.MapAuthRoutes(v1.Group("/auth"))

	protected := v1.Group("", auth)
	s.handlers.User.MapUserRoutes(protected.Group("/users"))
	s.handlers.DM.MapConversationRoutes(protected.Group("/conversations"))
	s.handlers.DM.MapMessageRoutes(protected.Group("/messages"))
	s.handlers.Notification.MapNotificationRoutes(protected.Group("/notifications"))

	admin := protected.Group("/admin", middleware.AdminOnly(s.logger))
	s.handlers.DM.MapAdminRoutes(admin)
	s.handlers.Notification.MapAdminRoutes(admin)
}

// serveWS authenticates with ?token= because browsers cannot set headers on the handshake.
func (s *Server) serveWS(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		render.Error(c, s.logger, apperrors.ErrInvalidToken)
		return
	}
	claims, err := utils.ParseJWTToken(token, s.cfg.JWT.Secret)
	if err != nil {
		render.Error(c, s.logger, apperrors.ErrInvalidToken)
		return
	}
	s.sockets.ServeWS(c.Writer, c.Request, claims.UserID)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         ":" + s.cfg.Server.Port,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down http server")
	return srv.Shutdown(shutdownCtx)
}
