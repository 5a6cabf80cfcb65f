package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func loggedRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	r := gin.New()
	r.Use(RequestLog(zap.New(core)))
	r.GET("/api/projects", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/uploads/pic.png", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, logs
}

func TestRequestLogFields(t *testing.T) {
	r, logs := loggedRouter(t)

	req := httptest.NewRequest("GET", "/api/projects?featured=true", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/projects", fields["path"])
	assert.Equal(t, "featured=true", fields["query"])
}

func TestRequestLogDemotesStaticFileHits(t *testing.T) {
	r, logs := loggedRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/uploads/pic.png", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
}
