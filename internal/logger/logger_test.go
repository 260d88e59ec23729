package logger

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := defaultLogger
	defaultLogger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { defaultLogger = previous })

	return &buf
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))

	scoped := With("component", "test")
	assert.Equal(t, scoped, FromContext(WithContext(context.Background(), scoped)))
}

func TestMiddleware_LogsRequest(t *testing.T) {
	buf := captureDefault(t)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware())
	router.GET("/api/ping", func(c *gin.Context) {
		FromContext(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusTeapot)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	out := buf.String()
	assert.Contains(t, out, `"msg":"inside handler"`)
	assert.Contains(t, out, `"path":"/api/ping"`)
	assert.Contains(t, out, `"status":418`)
}

func TestErrorErr_AddsErrorField(t *testing.T) {
	buf := captureDefault(t)

	ErrorErr(assert.AnError, "model call failed", "session_id", "abc")

	assert.Contains(t, buf.String(), `"error":"`+assert.AnError.Error()+`"`)
	assert.Contains(t, buf.String(), `"session_id":"abc"`)
}
