package http

import (
	"net/http"

	"murmur/internal/dm"
	"murmur/internal/server/middleware"
	"murmur/internal/server/render"
	"murmur/pkg/logger"
	"murmur/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	usecase dm.DMUsecase
	logger  logger.Logger
}

func NewHandler(usecase dm.DMUsecase, logger logger.Logger) *Handler {
	return &Handler{usecase: usecase, logger: logger}
}

func (h *Handler) MapConversationRoutes(g *gin.RouterGroup) {
	g.GET("", h.ListConversations)
	g.GET("/:id", h.GetConversation)
	g.POST("/:id/reject", h.RejectConversation)
	g.POST("/:id/read", h.MarkRead)
}

func (h *Handler) MapMessageRoutes(g *gin.RouterGroup) {
	g.POST("", h.SendMessage)
	g.GET("", h.ListMessages)
	g.PATCH("/:id", h.UpdateMessage)
	g.DELETE("/:id", h.DeleteMessage)
}

// MapAdminRoutes expects the group to be guarded by AdminOnly.
func (h *Handler) MapAdminRoutes(g *gin.RouterGroup) {
	g.DELETE("/messages/:id", h.PurgeMessage)
}

func (h *Handler) SendMessage(c *gin.Context) {
	var cmd dm.SendMessageCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		render.BadRequest(c, err)
		return
	}
	cmd.UserFrom = middleware.UserID(c)

	out, err := h.usecase.SendMessage(c.Request.Context(), cmd)
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusCreated, out)
}

type listMessagesRequest struct {
	ConversationID string `form:"conversationId"`
	User1          string `form:"user1"`
	User2          string `form:"user2"`
	pagination.Params
}

func (h *Handler) ListMessages(c *gin.Context) {
	var req listMessagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		render.BadRequest(c, err)
		return
	}

	query := dm.ListMessagesQuery{Params: req.Params}
	for _, ref := range []struct {
		raw string
		dst **uuid.UUID
	}{
		{req.ConversationID, &query.ConversationID},
		{req.User1, &query.User1},
		{req.User2, &query.User2},
	} {
		if ref.raw == "" {
			continue
		}
		id, err := uuid.Parse(ref.raw)
		if err != nil {
			render.BadRequest(c, err)
			return
		}
		*ref.dst = &id
	}

	page, err := h.usecase.ListMessages(c.Request.Context(), middleware.UserID(c), query)
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusOK, page)
}

func (h *Handler) UpdateMessage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var cmd dm.UpdateMessageCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		render.BadRequest(c, err)
		return
	}

	out, err := h.usecase.UpdateMessage(c.Request.Context(), id, middleware.UserID(c), cmd)
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusOK, out)
}

func (h *Handler) DeleteMessage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteMessage(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.NoContent(c)
}

func (h *Handler) PurgeMessage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.PurgeMessage(c.Request.Context(), id); err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.NoContent(c)
}

func (h *Handler) ListConversations(c *gin.Context) {
	var query dm.ListConversationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		render.BadRequest(c, err)
		return
	}

	page, err := h.usecase.ListConversations(c.Request.Context(), middleware.UserID(c), query)
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusOK, page)
}

func (h *Handler) GetConversation(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	out, err := h.usecase.GetConversation(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusOK, out)
}

func (h *Handler) RejectConversation(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	out, err := h.usecase.RejectConversation(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusOK, out)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.MarkRead(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.NoContent(c)
}

func (h *Handler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		render.BadRequest(c, err)
		return uuid.Nil, false
	}
	return id, true
}
