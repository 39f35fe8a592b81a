package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Vidora/internal/infrastructure/metrics"
)

// Metrics records a counter sample per handled request. The route template
// is used instead of the raw path so cardinality stays bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
