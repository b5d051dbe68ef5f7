package middleware

import (
	"strconv"
	"time"

	"github.com/ais-aviation/currency-service/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency per route. The route
// template (c.FullPath) is used instead of the raw URL to keep label
// cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, route,
		).Observe(time.Since(start).Seconds())
	}
}
