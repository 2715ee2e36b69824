package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// RequestRecorder receives one observation per finished request
type RequestRecorder interface {
	RecordRequest(ctx context.Context, method, route string, status int, elapsed time.Duration)
}

// RequestMetrics records method, route template, status and latency.
// Unmatched routes are reported as "unmatched" to keep cardinality bounded.
func RequestMetrics(rec RequestRecorder) gin.HandlerFunc {
	if rec == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.RecordRequest(c.Request.Context(), c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// Profiling tags the request goroutine with route and method labels for
// continuous profiling. Health and swagger requests are left unlabelled.
func Profiling(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/health" || strings.HasPrefix(path, "/swagger") {
			c.Next()
			return
		}
		labels := telemetry.HTTPLabels(c.FullPath(), c.Request.Method)
		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}
