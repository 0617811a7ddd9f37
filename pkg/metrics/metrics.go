package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder encapsulates Prometheus instrumentation for outgoing API calls.
type Recorder struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	requestErrors   *prometheus.CounterVec
	downloadBytes   prometheus.Counter
}

// NewRecorder registers the client collectors on a private registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "api_client_request_duration_seconds",
		Help:    "Duration of backend API requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_client_requests_total",
		Help: "Total number of backend API requests",
	}, []string{"method", "endpoint", "status"})

	requestErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_client_request_errors_total",
		Help: "Backend API requests that ended in an error, by error code",
	}, []string{"code"})

	downloadBytes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "api_client_download_bytes_total",
		Help: "Bytes received through binary download endpoints",
	})

	registry.MustRegister(
		requestDuration,
		requestTotal,
		requestErrors,
		downloadBytes,
		collectors.NewGoCollector(),
	)

	return &Recorder{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		requestErrors:   requestErrors,
		downloadBytes:   downloadBytes,
	}
}

// Handler exposes the registry for scraping.
func (r *Recorder) Handler() http.Handler {
	return r.handler
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveRequest records one round trip. status is 0 for transport failures.
func (r *Recorder) ObserveRequest(method, endpoint string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	code := strconv.Itoa(status)
	r.requestDuration.WithLabelValues(method, endpoint, code).Observe(duration.Seconds())
	r.requestTotal.WithLabelValues(method, endpoint, code).Inc()
}

// RecordError counts a failed call by error code.
func (r *Recorder) RecordError(code string) {
	if r == nil {
		return
	}
	r.requestErrors.WithLabelValues(code).Inc()
}

// AddDownloadBytes tracks binary payload volume.
func (r *Recorder) AddDownloadBytes(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.downloadBytes.Add(float64(n))
}
