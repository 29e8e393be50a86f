package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds. Model calls dominate, so the upper
	// range is wide.
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodgate_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"route", "method", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodgate_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"type"}, // "request" or "upstream"
	)

	ClassificationsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodgate_classifications_total",
			Help: "Classification results by emotion and risk level",
		},
		[]string{"emotion", "risk_level"},
	)

	CrisisOverridesTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "moodgate_crisis_overrides_total",
			Help: "Classifications forced to critical by the crisis keyword scan",
		},
	)

	UpstreamFailuresTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodgate_upstream_failures_total",
			Help: "Model call failures by kind",
		},
		[]string{"provider", "kind"}, // rate_limited, quota_exhausted, error, malformed
	)

	EscalationsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodgate_escalations_total",
			Help: "Draft escalations raised by detection",
		},
		[]string{"level"},
	)

	DetectionFailuresTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "moodgate_detection_failures_total",
			Help: "Draft detections that fell back to the unavailable notice",
		},
	)
)

type MetricsConfig struct {
	EnableLatency bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency: true,
	}
}

var Config MetricsConfig

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

func Registry() *prometheus.Registry {
	return registry
}
