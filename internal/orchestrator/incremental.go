package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/kernelsu-modules/catalog-builder/internal/catalog"
	"github.com/kernelsu-modules/catalog-builder/internal/validate"
)

// RunIncremental fetches a single repository, validates it, and either
// replaces its catalog entry (success) or dispatches a notification and
// exits non-zero (failure).
func (o *Orchestrator) RunIncremental(ctx context.Context, repoSpec string) error {
	owner, name := splitRepoSpec(repoSpec, o.Org)

	repo, err := o.Platform.GetRepository(ctx, owner, name)
	if err != nil {
		return fmt.Errorf("orchestrator: incremental repository not found: %w", err)
	}

	innerMapper := o.innerMapper()
	result := validate.ValidateModule(ctx, o.Prober, innerMapper, repo)

	if result.Skip != nil {
		if o.Metrics != nil {
			o.Metrics.Pipeline().SkipsTotal.WithLabelValues(string(result.Skip.Reason), "module").Inc()
		}
		if result.Skip.ShouldNotify && result.Skip.TagName != "" && o.Notifier != nil {
			o.Notifier.Notify(ctx, owner, name, result.Skip.TagName, result.Skip)
			if o.Metrics != nil {
				o.Metrics.Pipeline().NotificationSent.WithLabelValues(string(result.Skip.Reason)).Inc()
			}
		}
		return fmt.Errorf("orchestrator: incremental module %s failed validation: %s", repo.Identifier, result.Skip.Reason)
	}

	module := catalog.Assemble(o.PlatformName, repo, result.Accepted)
	if o.Metrics != nil {
		o.Metrics.Pipeline().ModulesAccepted.Inc()
	}

	existing, err := loadCatalog(o.catalogPath())
	if err != nil {
		return fmt.Errorf("orchestrator: load existing catalog: %w", err)
	}
	merged := replaceOrPrepend(existing, module)
	catalog.SortCatalog(merged)

	if err := writeCatalog(o.catalogPath(), merged); err != nil {
		return fmt.Errorf("orchestrator: write catalog: %w", err)
	}
	if o.Metrics != nil {
		o.Metrics.Pipeline().CatalogSize.Set(float64(len(merged)))
	}
	return nil
}

// replaceOrPrepend replaces the entry sharing module.ModuleID, or prepends
// module if no such entry exists.
func replaceOrPrepend(existing catalog.Catalog, module catalog.Module) catalog.Catalog {
	for i, m := range existing {
		if m.ModuleID == module.ModuleID {
			existing[i] = module
			return existing
		}
	}
	return append(catalog.Catalog{module}, existing...)
}

// splitRepoSpec accepts either "owner/name" or a bare "name", defaulting
// the owner to defaultOwner.
func splitRepoSpec(spec, defaultOwner string) (owner, name string) {
	if idx := strings.IndexByte(spec, '/'); idx >= 0 {
		return spec[:idx], spec[idx+1:]
	}
	return defaultOwner, spec
}
