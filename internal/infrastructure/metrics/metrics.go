package metrics

import (
	"strconv"
	"strings"
	"time"

	"calcplanner/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the application instruments. All methods are safe on a nil
// receiver.
type Metrics struct {
	estimatesCreated prometheus.Counter
	estimatesRemoved prometheus.Counter
	priceUpdates     prometheus.Counter
	storageErrors    *prometheus.CounterVec
	exports          *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

var _ interfaces.IMetricsRecorder = (*Metrics)(nil)

// New registers the instruments on registerer (the default registerer when nil).
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		estimatesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcplanner_estimates_created_total",
			Help: "Estimates persisted by the store.",
		}),
		estimatesRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcplanner_estimates_removed_total",
			Help: "Estimates deleted from the store.",
		}),
		priceUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcplanner_price_updates_total",
			Help: "Catalog unit price edits persisted.",
		}),
		storageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calcplanner_storage_errors_total",
			Help: "Key-value storage failures by operation.",
		}, []string{"op"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calcplanner_exports_total",
			Help: "Rendered export documents by format and result.",
		}, []string{"format", "result"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "calcplanner_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"}),
	}

	registerer.MustRegister(
		m.estimatesCreated,
		m.estimatesRemoved,
		m.priceUpdates,
		m.storageErrors,
		m.exports,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) EstimateCreated() {
	if m == nil {
		return
	}
	m.estimatesCreated.Inc()
}

func (m *Metrics) EstimateRemoved() {
	if m == nil {
		return
	}
	m.estimatesRemoved.Inc()
}

func (m *Metrics) PriceUpdated() {
	if m == nil {
		return
	}
	m.priceUpdates.Inc()
}

func (m *Metrics) StorageError(op string) {
	if m == nil {
		return
	}
	m.storageErrors.WithLabelValues(normalizeLabel(op)).Inc()
}

func (m *Metrics) ExportRendered(format string, ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.exports.WithLabelValues(normalizeLabel(format), result).Inc()
}

// GinMiddleware observes request latency per route template.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.httpDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func normalizeLabel(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return "unknown"
	}
	return v
}
