package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kernelsu-modules/catalog-builder/internal/catalog"
	"github.com/kernelsu-modules/catalog-builder/internal/platform"
	"github.com/kernelsu-modules/catalog-builder/internal/validate"
)

// moduleOutcome is one outer-mapper result in full mode: module is the
// assembled Module, or nil when the repository was skipped. Skips are
// dropped silently.
type moduleOutcome struct {
	repo   platform.RawRepository
	module *catalog.Module
}

// RunFull pages the platform newest-first until exhausted, snapshots the
// raw response, validates every repository under the outer bounded
// mapper, drops failures silently, sorts, and writes the catalog.
func (o *Orchestrator) RunFull(ctx context.Context) error {
	repos, err := o.Platform.ListOrganizationRepositories(ctx, o.Org)
	if err != nil {
		return fmt.Errorf("orchestrator: list repositories: %w", err)
	}

	if err := o.snapshotRaw(repos); err != nil {
		o.Logger.Warn("orchestrator: failed to write raw snapshot", "error", err)
	}

	innerMapper := o.innerMapper()
	outcomes := o.outerMapper().Map(ctx, repos, func(ctx context.Context, repo platform.RawRepository, _ int) (moduleOutcome, error) {
		result := validate.ValidateModule(ctx, o.Prober, innerMapper, repo)
		if result.Skip != nil {
			if o.Metrics != nil {
				o.Metrics.Pipeline().SkipsTotal.WithLabelValues(string(result.Skip.Reason), "module").Inc()
			}
			return moduleOutcome{repo: repo}, nil
		}
		m := catalog.Assemble(o.PlatformName, repo, result.Accepted)
		if o.Metrics != nil {
			o.Metrics.Pipeline().ModulesAccepted.Inc()
		}
		return moduleOutcome{repo: repo, module: &m}, nil
	})

	var modules catalog.Catalog
	for _, r := range outcomes {
		if r.Value.module != nil {
			modules = append(modules, *r.Value.module)
		}
	}
	catalog.SortCatalog(modules)

	if err := writeCatalog(o.catalogPath(), modules); err != nil {
		return fmt.Errorf("orchestrator: write catalog: %w", err)
	}
	if o.Metrics != nil {
		o.Metrics.Pipeline().CatalogSize.Set(float64(len(modules)))
	}
	return nil
}

// snapshotRaw writes the raw paginated response to <cache>/graphql.json,
// pretty-printed, for later incremental reuse.
func (o *Orchestrator) snapshotRaw(repos []platform.RawRepository) error {
	data, err := json.MarshalIndent(repos, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(o.graphqlSnapshotPath(), data, 0o644)
}
