package probe

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"github.com/kernelsu-modules/catalog-builder/pkg/metrics"
)

// maxPropertyBytes bounds how much of the extracted entry is read; beyond
// this, the read aborts and the probe yields an empty PropertyMap.
const maxPropertyBytes = 65536

// Prober extracts and parses module.prop from a release's zip asset.
// Extraction failures of any kind — subprocess error, truncated output, a
// missing entry — degrade to an empty PropertyMap rather than an error;
// classifying that as a missing-manifest skip happens one layer up, in
// the release validator.
type Prober struct {
	cache   Cache
	metrics *metrics.ProbeMetrics
	logger  *slog.Logger

	// runzip is overridable in tests.
	runzip func(ctx context.Context, url string) ([]byte, error)
}

// New builds a Prober. cache may be nil, in which case NopCache is used.
func New(cache Cache, m *metrics.ProbeMetrics, logger *slog.Logger) *Prober {
	if cache == nil {
		cache = NopCache{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Prober{
		cache:   cache,
		metrics: m,
		logger:  logger,
		runzip:  runRunzip,
	}
}

// Probe returns the PropertyMap found in module.prop inside the zip archive
// at downloadURL, or an empty PropertyMap on any failure.
func (p *Prober) Probe(ctx context.Context, downloadURL string) PropertyMap {
	start := time.Now()
	outcome := "ok"
	defer func() {
		if p.metrics != nil {
			p.metrics.DurationSeconds.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
		}
	}()

	if cached, ok := p.cache.Get(ctx, downloadURL); ok {
		p.recordCacheHit()
		return cached
	}
	p.recordCacheMiss()

	data, err := p.runzip(ctx, downloadURL)
	if err != nil {
		p.logger.Warn("property probe failed", "url", downloadURL, "error", err)
		outcome = "error"
		p.cache.Set(ctx, downloadURL, PropertyMap{})
		return PropertyMap{}
	}

	props := ParseProperties(data)
	if len(props) == 0 {
		outcome = "empty"
	}
	p.cache.Set(ctx, downloadURL, props)
	return props
}

func (p *Prober) recordCacheHit() {
	if p.metrics == nil {
		return
	}
	backend := "memory"
	if _, ok := p.cache.(*RedisCache); ok {
		backend = "redis"
	}
	p.metrics.CacheHitsTotal.WithLabelValues(backend).Inc()
}

func (p *Prober) recordCacheMiss() {
	if p.metrics == nil {
		return
	}
	backend := "memory"
	if _, ok := p.cache.(*RedisCache); ok {
		backend = "redis"
	}
	p.metrics.CacheMissTotal.WithLabelValues(backend).Inc()
}

// runRunzip shells out to the archive-extractor helper: "runzip -p <url>
// module.prop" emits the extracted entry to standard output. Non-zero
// exit or empty output is treated as extraction failure. The extractor
// itself is an external collaborator, not implemented by this package.
func runRunzip(ctx context.Context, url string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "runzip", "-p", url, "module.prop")
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	limited := io.LimitReader(stdout, maxPropertyBytes+1)
	var buf bytes.Buffer
	_, readErr := io.Copy(&buf, limited)

	waitErr := cmd.Wait()
	if readErr != nil {
		return nil, readErr
	}
	if waitErr != nil {
		return nil, waitErr
	}
	if buf.Len() > maxPropertyBytes {
		return nil, errTruncated
	}
	if buf.Len() == 0 {
		return nil, errEmptyOutput
	}
	return buf.Bytes(), nil
}
