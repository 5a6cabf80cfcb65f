package middleware

import (
	"fmt"
	"time"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
)

// Throttle limits unauthenticated requests per IP within a fixed window.
// Counting is in-process (go-cache); good enough for a single-instance
// deployment, which is the only topology this app runs in.
func Throttle(max int, window time.Duration) gin.HandlerFunc {
	counters := gocache.New(window, 2*window)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%d", ip, time.Now().Unix()/int64(window.Seconds()))
		count, err := counters.IncrementInt64(key, 1)
		if err != nil {
			counters.Set(key, int64(1), window)
			count = 1
		}

		if count > int64(max) {
			c.Header("Retry-After", fmt.Sprintf("%.0f", window.Seconds()))
			response.TooManyRequests(c, "Too many requests, slow down")
			return
		}

		c.Next()
	}
}
