package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parts_searches_total",
			Help: "Searches handled, by outcome.",
		},
		[]string{"outcome"},
	)
	partsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parts_processed_total",
			Help: "Part numbers processed by the orchestrator, by status.",
		},
		[]string{"status"},
	)
	gatewayDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "supplier_gateway_duration_seconds",
			Help:    "Duration of supplier gateway calls.",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"supplier", "status"},
	)
	summaryFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_fallbacks_total",
			Help: "Summaries replaced by the fallback text.",
		},
	)
)

func init() {
	prometheus.MustRegister(searchesTotal, partsProcessed, gatewayDuration, summaryFallbacks)
}

// RecordSearch counts a finished search: "ok", "no_part_numbers", "no_results" or "error".
func RecordSearch(outcome string) {
	searchesTotal.WithLabelValues(outcome).Inc()
}

// RecordPart counts one orchestrated part: "ok", "failed" or "persist_failed".
func RecordPart(status string) {
	partsProcessed.WithLabelValues(status).Inc()
}

func RecordGatewayCall(supplier string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	gatewayDuration.WithLabelValues(supplier, status).Observe(duration.Seconds())
}

func RecordSummaryFallback() {
	summaryFallbacks.Inc()
}
