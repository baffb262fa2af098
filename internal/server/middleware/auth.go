package middleware

import (
	"strings"

	"murmur/internal/server/render"
	model "murmur/internal/user/model"
	apperrors "murmur/pkg/errors"
	"murmur/pkg/logger"
	"murmur/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const claimsKey = "murmur.claims"

// Auth accepts "Authorization: Bearer <jwt>"; the websocket route may pass ?token= instead.
func Auth(secret string, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			render.Error(c, log, apperrors.ErrInvalidToken)
			return
		}

		claims, err := utils.ParseJWTToken(token, secret)
		if err != nil {
			render.Error(c, log, apperrors.ErrInvalidToken)
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func AdminOnly(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok || claims.Role != string(model.RoleAdmin) {
			render.Error(c, log, apperrors.ErrAdminOnly)
			return
		}
		c.Next()
	}
}

func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return c.Query("token")
}

func Claims(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}

// UserID is the authenticated caller; only valid behind Auth.
func UserID(c *gin.Context) uuid.UUID {
	if claims, ok := Claims(c); ok {
		return claims.UserID
	}
	return uuid.Nil
}
