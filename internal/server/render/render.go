// Package render writes JSON responses and the error envelope.
package render

import (
	"net/http"

	apperrors "murmur/pkg/errors"
	"murmur/pkg/logger"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

// Error aborts the request with {"error": {"code", "message"}}. Errors that
// are not AppErrors are logged and reported as INTERNAL without detail.
func Error(c *gin.Context, log logger.Logger, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		log.Error("unhandled error", "method", c.Request.Method, "path", c.FullPath(), "err", err)
		appErr = &apperrors.AppError{Code: apperrors.CodeInternal, Message: "internal server error"}
	}

	status := appErr.Code.HTTPStatus()
	if status >= http.StatusInternalServerError && ok {
		log.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "err", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": errorBody{Code: appErr.Code, Message: appErr.Message}})
}

// BadRequest reports a malformed body or query.
func BadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errorBody{
		Code:    apperrors.CodeInvalidArgument,
		Message: err.Error(),
	}})
}

func JSON(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
