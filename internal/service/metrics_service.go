package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the chat
// pipeline, the HTTP surface and the caches.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	classifierCalls *prometheus.CounterVec
	classifierTime  *prometheus.HistogramVec
	askBranches     *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
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

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	classifierCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_calls_total",
		Help: "Outbound classifier calls by task and outcome",
	}, []string{"task", "outcome"})

	classifierTime := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "classifier_duration_seconds",
		Help:    "Duration of outbound classifier calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"task"})

	askBranches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ask_branch_total",
		Help: "Questions answered per pipeline branch",
	}, []string{"branch"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLatency, cacheHits, cacheMisses, classifierCalls, classifierTime, askBranches, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		classifierCalls: classifierCalls,
		classifierTime:  classifierTime,
		askBranches:     askBranches,
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

// RecordCacheOperation records cache hit/miss metrics.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	if m.cacheLatency != nil {
		m.cacheLatency.Observe(duration.Seconds())
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}

// ObserveClassifierCall records one outbound classifier call.
func (m *MetricsService) ObserveClassifierCall(task string, ok bool, duration time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "degraded"
	}
	m.classifierCalls.WithLabelValues(task, outcome).Inc()
	m.classifierTime.WithLabelValues(task).Observe(duration.Seconds())
}

// RecordAskBranch counts which pipeline branch answered a question.
func (m *MetricsService) RecordAskBranch(branch string) {
	if m == nil {
		return
	}
	m.askBranches.WithLabelValues(branch).Inc()
}
