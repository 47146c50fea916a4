package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/krismos64/SmartPlanning-sub005/internal/planning"
)

// MetricsService encapsulates Prometheus instrumentation. It doubles as the
// planning engine's monitoring sink: failure and performance events flow in
// through the planning.Reporter interface.
type MetricsService struct {
	registry           *prometheus.Registry
	handler            http.Handler
	requestDuration    *prometheus.HistogramVec
	requestTotal       *prometheus.CounterVec
	generationDuration prometheus.Observer
	generationSlow     prometheus.Counter
	generationFailures *prometheus.CounterVec
	generationBatch    prometheus.Observer
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	queueDepth         prometheus.Gauge

	logger *zap.Logger
}

var _ planning.Reporter = (*MetricsService)(nil)

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService(logger *zap.Logger) *MetricsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	generationDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planning_generation_duration_seconds",
		Help:    "Duration of schedule generation runs",
		Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	})

	generationSlow := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planning_generation_slow_total",
		Help: "Generation runs exceeding the slow threshold",
	})

	generationFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planning_generation_failures_total",
		Help: "Schedule generation failures by operation",
	}, []string{"operation"})

	generationBatch := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planning_generation_batch_size",
		Help:    "Employees per generation run",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planning_cache_hits_total",
		Help: "Total schedule cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planning_cache_misses_total",
		Help: "Total schedule cache misses",
	})

	queueDepth := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "planning_queue_depth",
		Help: "Jobs waiting in the async generation queue",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, generationDuration, generationSlow, generationFailures, generationBatch, cacheHits, cacheMisses, queueDepth, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:           registry,
		handler:            handler,
		requestDuration:    requestDuration,
		requestTotal:       requestTotal,
		generationDuration: generationDuration,
		generationSlow:     generationSlow,
		generationFailures: generationFailures,
		generationBatch:    generationBatch,
		cacheHits:          cacheHits,
		cacheMisses:        cacheMisses,
		queueDepth:         queueDepth,
		logger:             logger,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCacheLookup counts a schedule cache hit or miss.
func (m *MetricsService) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}

// RecordQueueDepth tracks the async generation backlog.
func (m *MetricsService) RecordQueueDepth(depth int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(depth))
}

// ReportFailure implements planning.Reporter.
func (m *MetricsService) ReportFailure(event planning.FailureEvent) {
	if m == nil {
		return
	}
	m.generationFailures.WithLabelValues(event.Operation).Inc()
	m.logger.Warn("schedule generation failure",
		zap.String("operation", event.Operation),
		zap.String("employee_id", event.EmployeeID),
		zap.Int("week", event.Week),
		zap.Int("year", event.Year),
		zap.Error(event.Err))
}

// ReportPerformance implements planning.Reporter.
func (m *MetricsService) ReportPerformance(sample planning.PerformanceSample) {
	if m == nil {
		return
	}
	m.generationDuration.Observe(sample.Duration.Seconds())
	m.generationBatch.Observe(float64(sample.EmployeeCount))
	if sample.Slow {
		m.generationSlow.Inc()
	}
}
