package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MapperMetrics instruments the bounded concurrent mapper (C1). The "tier"
// label distinguishes the outer (repository) and inner (release) mappers so
// their independent caps can be observed separately.
type MapperMetrics struct {
	InFlight  *prometheus.GaugeVec   // Current in-flight invocations per tier.
	Scheduled *prometheus.CounterVec // Total invocations scheduled per tier.
	Completed *prometheus.CounterVec // Total invocations completed per tier, by outcome (ok/error).
}

func newMapperMetrics(namespace string) *MapperMetrics {
	return &MapperMetrics{
		InFlight: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "mapper",
			Name:      "in_flight",
			Help:      "Number of mapper invocations currently in flight, by tier.",
		}, []string{"tier"}),
		Scheduled: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mapper",
			Name:      "scheduled_total",
			Help:      "Total mapper invocations scheduled, by tier.",
		}, []string{"tier"}),
		Completed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mapper",
			Name:      "completed_total",
			Help:      "Total mapper invocations completed, by tier and outcome.",
		}, []string{"tier", "outcome"}),
	}
}
