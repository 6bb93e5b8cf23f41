// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, imports, exports, cache and database.
package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "xml_importer"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	HTTPRequestBodyBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_body_bytes",
			Help:      "Declared request body size in bytes, for requests that carry a body",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8), // 1KiB .. 16MiB
		},
		[]string{"path"},
	)

	// Import metrics - track XML catalog imports
	ImportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "imports",
			Name:      "total",
			Help:      "Total number of imports by outcome status",
		},
		[]string{"status"},
	)

	ImportsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "imports",
			Name:      "in_progress",
			Help:      "Number of imports currently in progress",
		},
	)

	ImportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "imports",
			Name:      "duration_seconds",
			Help:      "Import processing duration in seconds",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"status"},
	)

	// Item metrics - track product elements within imports
	ItemsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "items",
			Name:      "processed_total",
			Help:      "Total number of product elements processed by result",
		},
		[]string{"result"},
	)

	DuplicateSKUs = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "items",
			Name:      "duplicate_skus_total",
			Help:      "Total number of duplicate SKUs detected within import batches",
		},
	)

	InsertDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "items",
			Name:      "insert_duration_seconds",
			Help:      "Batch insert duration in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	// Streaming export metrics - track catalog exports
	StreamingExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "exports_total",
			Help:      "Total number of streaming exports by format and result",
		},
		[]string{"format", "result"},
	)

	StreamingExportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "export_duration_seconds",
			Help:      "Streaming export duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"format"},
	)

	StreamingExportRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "records_total",
			Help:      "Total number of products streamed by format",
		},
		[]string{"format"},
	)

	StreamingExportsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "exports_in_flight",
			Help:      "Number of streaming exports currently in progress",
		},
	)

	// Cache metrics - track product list cache effectiveness
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "requests_total",
			Help:      "Product list cache lookups by result",
		},
		[]string{"result"},
	)

	// Database metrics - track database operation performance
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is an interface for getting pool statistics
// This allows for easier testing by mocking the pool stats
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

// pgxPoolAdapter adapts pgxpool.Pool to PoolStatsProvider
type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector collects database pool statistics periodically
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a new pool stats collector
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: &pgxPoolAdapter{pool: pool},
		stopChan: make(chan struct{}),
	}
}

// NewPoolStatsCollectorWithProvider creates a new pool stats collector with a custom provider (for testing)
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// ObserveImport records metrics when an import finishes
func ObserveImport(status string, durationSeconds float64, imported, failed int) {
	ImportsTotal.WithLabelValues(status).Inc()
	ImportDuration.WithLabelValues(status).Observe(durationSeconds)

	if imported > 0 {
		ItemsProcessed.WithLabelValues("imported").Add(float64(imported))
	}
	if failed > 0 {
		ItemsProcessed.WithLabelValues("failed").Add(float64(failed))
	}
}

// StartImport increments the in-progress gauge
func StartImport() {
	ImportsInProgress.Inc()
}

// EndImport decrements the in-progress gauge
func EndImport() {
	ImportsInProgress.Dec()
}

// ObserveDuplicateSKUs counts duplicate SKUs found in one batch
func ObserveDuplicateSKUs(count int) {
	if count > 0 {
		DuplicateSKUs.Add(float64(count))
	}
}

// ObserveCacheLookup records a product list cache hit or miss
func ObserveCacheLookup(hit bool) {
	if hit {
		CacheRequests.WithLabelValues("hit").Inc()
		return
	}
	CacheRequests.WithLabelValues("miss").Inc()
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}

// LogHealthCheckMetrics logs database health check result (for debugging)
func LogHealthCheckMetrics(ctx context.Context, pool *pgxpool.Pool) {
	stats := pool.Stat()
	slog.Debug("Database pool stats",
		slog.Int("total_conns", int(stats.TotalConns())),
		slog.Int("idle_conns", int(stats.IdleConns())),
		slog.Int("acquired_conns", int(stats.AcquiredConns())),
		slog.Int64("acquire_count", stats.AcquireCount()),
		slog.Int64("canceled_acquire_count", stats.CanceledAcquireCount()),
	)
}

// StartStreamingExport starts tracking a streaming export
func StartStreamingExport() {
	StreamingExportsInFlight.Inc()
}

// EndStreamingExport ends tracking a streaming export and records metrics
func EndStreamingExport(format, result string, durationSeconds float64, recordCount int) {
	StreamingExportsInFlight.Dec()
	StreamingExportsTotal.WithLabelValues(format, result).Inc()
	StreamingExportDuration.WithLabelValues(format).Observe(durationSeconds)
	if recordCount > 0 {
		StreamingExportRecords.WithLabelValues(format).Add(float64(recordCount))
	}
}
