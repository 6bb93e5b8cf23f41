// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chadm2c/xml-importer/internal/metrics"
)

const unmatchedPath = "unmatched"

// Metrics returns a Gin middleware that records request counts, latency,
// in-flight requests and upload body sizes, labelled by route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics endpoint to avoid self-referential metrics
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		// Raw URLs would explode label cardinality (/products/1, /products/2, ...)
		path := c.FullPath()
		if path == "" {
			path = unmatchedPath
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
		if c.Request.ContentLength > 0 {
			metrics.HTTPRequestBodyBytes.WithLabelValues(path).Observe(float64(c.Request.ContentLength))
		}
	}
}
