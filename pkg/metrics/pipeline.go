package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PipelineMetrics instruments the module/release validation decision and the
// orchestrator's overall run.
type PipelineMetrics struct {
	SkipsTotal       *prometheus.CounterVec // Validation skips, by reason and level (module/release).
	ModulesAccepted  prometheus.Counter     // Modules accepted into the catalog.
	NotificationSent *prometheus.CounterVec // Notifications dispatched, by reason.
	RunDurationSecs  *prometheus.HistogramVec
	CatalogSize      prometheus.Gauge // Number of modules in the last written catalog.
}

func newPipelineMetrics(namespace string) *PipelineMetrics {
	return &PipelineMetrics{
		SkipsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "skips_total",
			Help:      "Validation skips, by reason and level.",
		}, []string{"reason", "level"}),
		ModulesAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "modules_accepted_total",
			Help:      "Modules accepted into the catalog.",
		}),
		NotificationSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "notifications_sent_total",
			Help:      "Author notifications dispatched, by skip reason.",
		}, []string{"reason"}),
		RunDurationSecs: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "run_duration_seconds",
			Help:      "Orchestrator run duration in seconds, by mode.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}, []string{"mode"}),
		CatalogSize: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "catalog_modules",
			Help:      "Number of modules in the most recently written catalog.",
		}),
	}
}
