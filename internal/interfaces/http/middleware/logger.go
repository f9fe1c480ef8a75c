package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"paletto-cards.backend/pkg/logger"
	"paletto-cards.backend/pkg/metrics"
)

// LoggerMiddleware logs HTTP requests using the structured logger and
// feeds the request counter.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		// Label by route pattern, not raw path, to keep cardinality bounded.
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		if raw != "" {
			path = path + "?" + raw
		}
		logger.LogRequest(c.Request.Context(), c.Request.Method, path, status, latency, c.ClientIP())
	}
}
