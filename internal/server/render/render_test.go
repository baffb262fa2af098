package render

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "murmur/pkg/errors"
	"murmur/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func Test_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		status   int
		body     string
		logLines int
	}{
		{
			name:   "not found",
			err:    apperrors.ErrConversationNotFound,
			status: http.StatusNotFound,
			body:   `{"error":{"code":"NOT_FOUND","message":"conversation not found"}}`,
		},
		{
			name:   "missing target",
			err:    apperrors.ErrMissingTarget,
			status: http.StatusBadRequest,
			body:   `{"error":{"code":"MISSING_TARGET","message":"notification has no resolvable recipient"}}`,
		},
		{
			name:     "wrapped internal keeps its message",
			err:      apperrors.Wrap(apperrors.CodeInternal, "registration failed", fmt.Errorf("timeout")),
			status:   http.StatusInternalServerError,
			body:     `{"error":{"code":"INTERNAL","message":"registration failed"}}`,
			logLines: 1,
		},
		{
			name:     "foreign error is hidden",
			err:      fmt.Errorf("dial tcp: refused"),
			status:   http.StatusInternalServerError,
			body:     `{"error":{"code":"INTERNAL","message":"internal server error"}}`,
			logLines: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Error(c, logger.FromZap(zap.New(core)), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			assert.True(t, c.IsAborted())
			assert.Equal(t, tt.logLines, logs.Len())
		})
	}
}
