package middleware

import (
	"strings"

	"github.com/folio-space/core/internal/pkg/jwt"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const ContextKeyUsername = "username"

// Auth returns a middleware that enforces bearer-token authentication on
// mutating endpoints. Absent or invalid tokens abort with 401 before the
// handler runs, so no mutation is ever attempted.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ValidateToken(ExtractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUsername, claims.Subject)
		c.Next()
	}
}

// ValidateToken parses and verifies a token string, failing closed on any
// parse, signature, or expiry error.
func ValidateToken(rawToken string) (*jwt.Claims, error) {
	return jwt.Parse(rawToken)
}

// CurrentUsername extracts the authenticated username from context.
func CurrentUsername(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUsername)
	name, _ := v.(string)
	return name
}

// IsAuthenticated reports whether the request carries a valid token. Usable
// on routes without the Auth middleware.
func IsAuthenticated(c *gin.Context) bool {
	if CurrentUsername(c) != "" {
		return true
	}
	_, err := ValidateToken(ExtractToken(c))
	return err == nil
}

// ExtractToken reads the token from the Authorization header. Only the
// "Bearer <token>" form is accepted.
func ExtractToken(c *gin.Context) string {
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if auth == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}
