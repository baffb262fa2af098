package http

import (
	"net/http"
	"strconv"

	"murmur/internal/server/middleware"
	"murmur/internal/server/render"
	"murmur/internal/user"
	"murmur/pkg/logger"

	"github.com/gin-gonic/gin"
)

const defaultSearchLimit = 20

type Handler struct {
	usecase user.UserUsecase
	logger  logger.Logger
}

func NewHandler(usecase user.UserUsecase, logger logger.Logger) *Handler {
	return &Handler{usecase: usecase, logger: logger}
}

// MapAuthRoutes registers the unauthenticated account routes.
func (h *Handler) MapAuthRoutes(g *gin.RouterGroup) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
}

func (h *Handler) MapUserRoutes(g *gin.RouterGroup) {
	g.GET("", h.Search)
	g.GET("/me", h.Me)
	g.PATCH("/me", h.UpdateProfile)
	g.DELETE("/me", h.DeleteAccount)
	g.PUT("/me/devices", h.RegisterDevice)
	g.DELETE("/me/devices/:deviceId", h.RemoveDevice)
}

func (h *Handler) Register(c *gin.Context) {
	var cmd user.RegisterCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		render.BadRequest(c, err)
		return
	}

	out, err := h.usecase.Register(c.Request.Context(), cmd)
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusCreated, out)
}

func (h *Handler) Login(c *gin.Context) {
	var cmd user.LoginCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		render.BadRequest(c, err)
		return
	}

	out, err := h.usecase.Login(c.Request.Context(), cmd)
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusOK, out)
}

func (h *Handler) Me(c *gin.Context) {
	out, err := h.usecase.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusOK, out)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var cmd user.UpdateProfileCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		render.BadRequest(c, err)
		return
	}

	out, err := h.usecase.UpdateProfile(c.Request.Context(), middleware.UserID(c), cmd)
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusOK, out)
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	if err := h.usecase.DeleteAccount(c.Request.Context(), middleware.UserID(c)); err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.NoContent(c)
}

func (h *Handler) RegisterDevice(c *gin.Context) {
	var cmd user.RegisterDeviceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		render.BadRequest(c, err)
		return
	}

	if err := h.usecase.RegisterDevice(c.Request.Context(), middleware.UserID(c), cmd); err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.NoContent(c)
}

func (h *Handler) RemoveDevice(c *gin.Context) {
	if err := h.usecase.RemoveDevice(c.Request.Context(), middleware.UserID(c), c.Param("deviceId")); err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.NoContent(c)
}

// Search matches ?q= against usernames and display names.
func (h *Handler) Search(c *gin.Context) {
	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			render.BadRequest(c, err)
			return
		}
		limit = n
	}

	out, err := h.usecase.SearchUsers(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		render.Error(c, h.logger, err)
		return
	}
	render.JSON(c, http.StatusOK, gin.H{"data": out})
}
