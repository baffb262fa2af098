package http

import (
	"net/http"

	"murmur/internal/notification"
	"murmur/internal/server/middleware"
	"murmur/internal/server/render"
	"murmur/pkg/logger"
	"murmur/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	usecase notification.NotificationUsecase
	logger  logger.Logger
}

func NewHandler(usecase notification.NotificationUsecase, logger logger.Logger) *Handler {
	return &Handler{usecase: usecase, logger: logger}
}

func (h *Handler) MapNotificationRoutes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("/read", h.MarkAllRead)
	g.GET("/unread-count", h.CountUnread)
}

// MapAdminRoutes expects the group to be guarded by AdminOnly.
func (h *Handler) MapAdminRoutes(g *gin.RouterGroup) {
	g.POST("/announcements", h.Announce)
}

func (h *Handler) List(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		render.BadRequest(c, err)
		return
	}

	page, err := h.usecase.ListNotifications(c.Request.Context(), middleware.UserID(c), params)
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusOK, page)
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	if err := h.usecase.MarkAllRead(c.Request.Context(), middleware.UserID(c)); err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.NoContent(c)
}

func (h *Handler) CountUnread(c *gin.Context) {
	n, err := h.usecase.CountUnread(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusOK, gin.H{"unread": n})
}

func (h *Handler) Announce(c *gin.Context) {
	var cmd notification.AnnounceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		render.BadRequest(c, err)
		return
	}
	cmd.SenderID = middleware.UserID(c)

	if err := h.usecase.Announce(c.Request.Context(), cmd); err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.NoContent(c)
}
