// Package metrics provides centralized Prometheus instrumentation for the
// catalog builder.
//
// This package implements a unified taxonomy for Prometheus metrics:
//   - Mapper metrics: bounded-concurrency mapper scheduling and in-flight work
//   - Probe metrics: property-file probe duration and cache hit/miss rates
//   - Pipeline metrics: per-skip-reason counts, run duration, catalog size
//
// All metrics follow the naming convention:
// catalog_builder_<subsystem>_<metric_name>_<unit>
//
// Example:
//
//	registry := metrics.DefaultRegistry()
//	registry.Mapper().InFlight.WithLabelValues("outer").Inc()
package metrics

import "sync"

// Registry is the central registry for all Prometheus metrics. It provides
// organized access to metrics by subsystem (Mapper, Probe, Pipeline).
//
// Thread-safe: all Prometheus metrics are thread-safe by design.
type Registry struct {
	namespace string

	mapper   *MapperMetrics
	probe    *ProbeMetrics
	pipeline *PipelineMetrics

	mapperOnce   sync.Once
	probeOnce    sync.Once
	pipelineOnce sync.Once
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the global singleton Registry, initialized once on
// first call. Safe for concurrent use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry("catalog_builder")
	})
	return defaultRegistry
}

// NewRegistry creates a new Registry with the given namespace. Most callers
// should use DefaultRegistry instead.
func NewRegistry(namespace string) *Registry {
	if namespace == "" {
		namespace = "catalog_builder"
	}
	return &Registry{namespace: namespace}
}

// Mapper returns the bounded-mapper metrics, lazily initialized.
func (r *Registry) Mapper() *MapperMetrics {
	r.mapperOnce.Do(func() {
		r.mapper = newMapperMetrics(r.namespace)
	})
	return r.mapper
}

// Probe returns the property-file probe metrics, lazily initialized.
func (r *Registry) Probe() *ProbeMetrics {
	r.probeOnce.Do(func() {
		r.probe = newProbeMetrics(r.namespace)
	})
	return r.probe
}

// Pipeline returns the end-to-end ingestion pipeline metrics, lazily
// initialized.
func (r *Registry) Pipeline() *PipelineMetrics {
	r.pipelineOnce.Do(func() {
		r.pipeline = newPipelineMetrics(r.namespace)
	})
	return r.pipeline
}

// Namespace returns the configured Prometheus namespace for this registry.
func (r *Registry) Namespace() string {
	return r.namespace
}
