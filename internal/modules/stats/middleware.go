package stats

import (
	"context"
	"net"
	"strings"

	"github.com/folio-space/core/internal/middleware"
	"github.com/gin-gonic/gin"
)

var botMarkers = []string{"bot", "crawler", "spider", "curl", "wget"}

// Tracker records public GET traffic. Authenticated requests, bots and
// loopback probes are not counted.
func Tracker(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != "GET" || c.Writer.Status() >= 400 {
			return
		}
		if middleware.IsAuthenticated(c) {
			return
		}
		if isBot(c.Request.UserAgent()) {
			return
		}
		ip := c.ClientIP()
		if isLoopback(ip) {
			return
		}

		path := c.Request.URL.Path
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()
			svc.Record(ctx, ip, path)
		}()
	}
}

func isBot(ua string) bool {
	ua = strings.ToLower(ua)
	if ua == "" {
		return true
	}
	for _, marker := range botMarkers {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}

func isLoopback(ip string) bool {
	parsed := net.ParseIP(ip)
	return parsed != nil && parsed.IsLoopback()
}
