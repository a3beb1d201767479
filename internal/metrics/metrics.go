package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// EvaluationsTotal counts gatekeeper evaluations by outcome
	EvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "request_gateway",
			Subsystem: "gatekeeper",
			Name:      "evaluations_total",
			Help:      "Number of evaluations by outcome",
		},
		[]string{"outcome"},
	)

	// BackendFetchLatency tracks the latency of backend fetch operations
	BackendFetchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "request_gateway",
			Subsystem: "backend",
			Name:      "fetch_latency_seconds",
			Help:      "Time spent in Backend.Fetch()",
		},
		[]string{"backend"},
	)

	// BackendFetchErrors tracks backend fetch errors
	BackendFetchErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "request_gateway",
			Subsystem: "backend",
			Name:      "fetch_errors_total",
			Help:      "Number of backend fetch errors",
		},
		[]string{"backend", "error_type"},
	)
)

// MustRegister registers all metrics with the default Prometheus registry
func MustRegister() {
	prometheus.MustRegister(
		EvaluationsTotal,
		BackendFetchLatency,
		BackendFetchErrors,
	)
}
