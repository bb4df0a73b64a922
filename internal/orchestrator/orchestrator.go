// Package orchestrator implements the build orchestrator: mode selection,
// full and incremental builds, and catalog persistence.
package orchestrator

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kernelsu-modules/catalog-builder/internal/catalog"
	"github.com/kernelsu-modules/catalog-builder/internal/mapper"
	"github.com/kernelsu-modules/catalog-builder/internal/notify"
	"github.com/kernelsu-modules/catalog-builder/internal/platform"
	"github.com/kernelsu-modules/catalog-builder/internal/validate"
	"github.com/kernelsu-modules/catalog-builder/pkg/metrics"
)

const (
	graphqlSnapshotFile = "graphql.json"
	catalogFile         = "modules.json"
)

// PlatformClient is the subset of platform.Client the orchestrator needs,
// narrowed for testability.
type PlatformClient interface {
	ListOrganizationRepositories(ctx context.Context, org string) ([]platform.RawRepository, error)
	GetRepository(ctx context.Context, owner, name string) (platform.RawRepository, error)
}

// Orchestrator wires the platform client, validators, and notifier into
// the two build modes. The outer and inner bounded mappers are built
// internally from OuterCap/InnerCap so that callers never need to name
// the unexported per-module result type.
type Orchestrator struct {
	Platform PlatformClient
	Prober   validate.Prober
	Notifier *notify.Dispatcher
	OuterCap int
	InnerCap int
	Metrics  *metrics.Registry
	Logger   *slog.Logger

	Org          string
	CacheDir     string
	PlatformName string // base URL used for author links, e.g. "https://github.com"
}

func (o *Orchestrator) outerMapper() *mapper.Mapper[platform.RawRepository, moduleOutcome] {
	var m *metrics.MapperMetrics
	if o.Metrics != nil {
		m = o.Metrics.Mapper()
	}
	return mapper.New[platform.RawRepository, moduleOutcome](o.OuterCap, "outer", m)
}

func (o *Orchestrator) innerMapper() *mapper.Mapper[platform.RawRelease, validate.ReleaseOutcome] {
	var m *metrics.MapperMetrics
	if o.Metrics != nil {
		m = o.Metrics.Mapper()
	}
	return mapper.New[platform.RawRelease, validate.ReleaseOutcome](o.InnerCap, "inner", m)
}

func (o *Orchestrator) graphqlSnapshotPath() string {
	return filepath.Join(o.CacheDir, graphqlSnapshotFile)
}

func (o *Orchestrator) catalogPath() string {
	return filepath.Join(o.CacheDir, catalogFile)
}

// Run selects full or incremental mode: both a named repository and an
// existing catalog file must be present for incremental mode.
func (o *Orchestrator) Run(ctx context.Context, repo string) error {
	_, err := os.Stat(o.catalogPath())
	catalogExists := err == nil

	if repo != "" && catalogExists {
		return o.RunIncremental(ctx, repo)
	}
	return o.RunFull(ctx)
}

func loadCatalog(path string) (catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var c catalog.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func writeCatalog(path string, c catalog.Catalog) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data, 0o644)
}
