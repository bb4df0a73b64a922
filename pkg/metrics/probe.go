package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ProbeMetrics instruments the property-file probe (C2) and its memoization
// cache (either an in-process LRU or a shared Redis backend).
type ProbeMetrics struct {
	DurationSeconds *prometheus.HistogramVec // Probe duration, by outcome (ok/empty/error).
	CacheHitsTotal  *prometheus.CounterVec    // Cache hits, by backend (memory/redis).
	CacheMissTotal  *prometheus.CounterVec    // Cache misses, by backend (memory/redis).
}

func newProbeMetrics(namespace string) *ProbeMetrics {
	return &ProbeMetrics{
		DurationSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "probe",
			Name:      "duration_seconds",
			Help:      "Property-file probe duration in seconds, by outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		CacheHitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "probe",
			Name:      "cache_hits_total",
			Help:      "Property-map cache hits, by backend.",
		}, []string{"backend"}),
		CacheMissTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "probe",
			Name:      "cache_misses_total",
			Help:      "Property-map cache misses, by backend.",
		}, []string{"backend"}),
	}
}
