package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/folio-space/core/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", Auth(), func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusOK, gin.H{"user": CurrentUsername(c)})
	})
	return r
}

func TestAuthRejectsMissingToken(t *testing.T) {
	hits := 0
	r := protectedRouter(&hits)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/protected", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, hits, "handler must not run without a token")

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body["detail"])
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	hits := 0
	r := protectedRouter(&hits)

	token, err := jwt.Sign("admin", time.Hour)
	require.NoError(t, err)

	for _, header := range []string{token, "Basic " + token, "Bearer", "Bearer "} {
		req := httptest.NewRequest("POST", "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
	assert.Zero(t, hits)
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	hits := 0
	r := protectedRouter(&hits)

	token, err := jwt.Sign("admin", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, hits)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "admin", body["user"])
}

func TestIsAuthenticatedWithoutAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authed": IsAuthenticated(c)})
	})

	token, err := jwt.Sign("admin", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["authed"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/open", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body["authed"])
}
