// Package mapper implements a bounded concurrent mapper: a generic fan-out
// over an ordered input with a cap on simultaneous in-flight work and an
// ordered, per-index result slice.
//
// Plain channels and a WaitGroup were kept over golang.org/x/sync/errgroup
// because errgroup's first-error cancellation would make one item's
// failure abort its siblings, which this mapper must never do.
package mapper

import (
	"context"
	"sync"

	"github.com/kernelsu-modules/catalog-builder/pkg/metrics"
)

// Result is the outcome of a single mapper invocation.
type Result[R any] struct {
	Value R
	Err   error
}

// Func is a single mapper invocation. It must respect ctx cancellation.
type Func[T, R any] func(ctx context.Context, item T, index int) (R, error)

// Mapper runs Func over an ordered slice of T with at most Cap concurrent
// invocations.
type Mapper[T, R any] struct {
	// Cap is the maximum number of concurrent in-flight invocations. Must
	// be a positive integer.
	Cap int

	// Tier labels this mapper instance in metrics ("outer" or "inner").
	Tier string

	// Metrics is optional; when nil, no metrics are recorded.
	Metrics *metrics.MapperMetrics
}

// New returns a Mapper with the given cap and tier label.
func New[T, R any](cap int, tier string, m *metrics.MapperMetrics) *Mapper[T, R] {
	if cap < 1 {
		cap = 1
	}
	return &Mapper[T, R]{Cap: cap, Tier: tier, Metrics: m}
}

// Map schedules fn over every element of items, at most m.Cap concurrently,
// and returns a result slice whose i-th entry corresponds to items[i]
// regardless of completion order.
//
// A single invocation's error never aborts the others: a failure is fatal
// only to its own entity, never to its peers. Callers inspect Result.Err
// per index.
func (m *Mapper[T, R]) Map(ctx context.Context, items []T, fn Func[T, R]) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, m.Cap)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		sem <- struct{}{}
		if m.Metrics != nil {
			m.Metrics.Scheduled.WithLabelValues(m.Tier).Inc()
			m.Metrics.InFlight.WithLabelValues(m.Tier).Inc()
		}

		go func(i int, item T) {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() {
				if m.Metrics != nil {
					m.Metrics.InFlight.WithLabelValues(m.Tier).Dec()
				}
			}()

			value, err := fn(ctx, item, i)
			results[i] = Result[R]{Value: value, Err: err}

			if m.Metrics != nil {
				outcome := "ok"
				if err != nil {
					outcome = "error"
				}
				m.Metrics.Completed.WithLabelValues(m.Tier, outcome).Inc()
			}
		}(i, item)
	}

	wg.Wait()
	return results
}
