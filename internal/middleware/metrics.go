package middleware

import (
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency by matched route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
