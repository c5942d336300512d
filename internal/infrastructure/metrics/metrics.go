package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Content-API Metrics
var (
	// HTTP request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brandforge",
			Subsystem: "content_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "brandforge",
			Subsystem: "content_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Provider call counters
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brandforge",
			Subsystem: "content_api",
			Name:      "provider_requests_total",
			Help:      "Total generation calls per provider",
		},
		[]string{"provider", "model", "status"},
	)

	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brandforge",
			Subsystem: "content_api",
			Name:      "provider_errors_total",
			Help:      "Total provider call failures",
		},
		[]string{"provider", "error_type"},
	)

	// Token counter
	TokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brandforge",
			Subsystem: "content_api",
			Name:      "tokens_total",
			Help:      "Total tokens consumed across providers",
		},
		[]string{"provider", "model"},
	)

	// Generation latency per provider
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "brandforge",
			Subsystem: "content_api",
			Name:      "generation_duration_seconds",
			Help:      "Provider generation call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"provider", "model"},
	)

	// Quality score distribution for selected versions
	QualityScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "brandforge",
			Subsystem: "content_api",
			Name:      "quality_score",
			Help:      "Quality score distribution of selected content versions",
			Buckets:   []float64{40, 50, 60, 70, 80, 90, 100},
		},
		[]string{"content_type"},
	)

	// Provider availability gauge
	ProviderUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "brandforge",
			Subsystem: "content_api",
			Name:      "provider_up",
			Help:      "Provider availability (1=reachable, 0=unreachable)",
		},
		[]string{"provider"},
	)
)

// RecordRequest records an HTTP request with its duration.
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordProviderCall records the outcome of one provider generation call.
func RecordProviderCall(provider, model, status string, tokens int, durationSec float64) {
	ProviderRequestsTotal.WithLabelValues(provider, model, status).Inc()
	GenerationDuration.WithLabelValues(provider, model).Observe(durationSec)
	if tokens > 0 {
		TokensTotal.WithLabelValues(provider, model).Add(float64(tokens))
	}
}

// RecordProviderError records a provider failure by class.
func RecordProviderError(provider, errorType string) {
	ProviderErrorsTotal.WithLabelValues(provider, errorType).Inc()
}

// RecordQuality records the quality score of the version that won selection.
func RecordQuality(contentType string, score int) {
	QualityScore.WithLabelValues(contentType).Observe(float64(score))
}

// SetProviderUp sets the availability gauge for a provider.
func SetProviderUp(provider string, up bool) {
	val := 0.0
	if up {
		val = 1.0
	}
	ProviderUp.WithLabelValues(provider).Set(val)
}
