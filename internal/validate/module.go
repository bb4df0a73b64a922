package validate

import (
	"context"
	"regexp"
	"strings"

	"github.com/kernelsu-modules/catalog-builder/internal/catalog"
	"github.com/kernelsu-modules/catalog-builder/internal/mapper"
	"github.com/kernelsu-modules/catalog-builder/internal/platform"
	"github.com/kernelsu-modules/catalog-builder/internal/skip"
)

var reservedIdentifiers = map[string]struct{}{
	".github":             {},
	"submission":          {},
	"developers":          {},
	"modules":             {},
	"org.kernelsu.example": {},
	"module_release":      {},
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._-]+$`)

// ReleaseOutcome pairs one release's tag with its validation result: a
// non-nil Skip means the release was rejected by deep validation.
type ReleaseOutcome struct {
	TagName  string
	Accepted *catalog.AcceptedRelease
	Skip     *skip.Info
}

// ModuleResult is the output of ValidateModule: either a module-level skip
// (identifier/description predicates failed, or no release survived), or a
// non-empty set of AcceptedReleases ready for catalog assembly.
type ModuleResult struct {
	Accepted []catalog.AcceptedRelease
	Skip     *skip.Info
}

// ValidateModule runs the module-level predicates and, if they pass, the
// release-set processing and decision logic. innerMapper bounds the
// concurrency of per-release probing and validation.
func ValidateModule(ctx context.Context, p Prober, innerMapper *mapper.Mapper[platform.RawRelease, ReleaseOutcome], repo platform.RawRepository) ModuleResult {
	if _, reserved := reservedIdentifiers[repo.Identifier]; reserved {
		return ModuleResult{Skip: skip.New(skip.ReasonReservedName).
			WithDetails(map[string]string{"identifier": repo.Identifier}).WithNotify(true)}
	}
	if !identifierPattern.MatchString(repo.Identifier) {
		return ModuleResult{Skip: skip.New(skip.ReasonInvalidName).
			WithDetails(map[string]string{"identifier": repo.Identifier}).WithNotify(true)}
	}
	if strings.TrimSpace(repo.Description) == "" {
		return ModuleResult{Skip: skip.New(skip.ReasonNoDescription).WithNotify(true)}
	}

	// repo.Releases already has the declared latest-release tag appended
	// if the platform's paginated list omitted it (internal/platform's
	// toRaw conversion).
	outcomes := innerMapper.Map(ctx, repo.Releases, func(ctx context.Context, release platform.RawRelease, _ int) (ReleaseOutcome, error) {
		if !EligibleForInspection(release) {
			return ReleaseOutcome{TagName: release.TagName}, nil
		}
		accepted, failure := ValidateRelease(ctx, p, repo.Identifier, release)
		if failure != nil {
			return ReleaseOutcome{TagName: release.TagName, Skip: failure}, nil
		}
		return ReleaseOutcome{TagName: release.TagName, Accepted: &accepted}, nil
	})

	var accepted []catalog.AcceptedRelease
	var failures []ReleaseOutcome
	anyEligible := false
	for _, r := range outcomes {
		o := r.Value
		switch {
		case o.Accepted != nil:
			accepted = append(accepted, *o.Accepted)
			anyEligible = true
		case o.Skip != nil:
			failures = append(failures, o)
			anyEligible = true
		}
	}

	if len(accepted) > 0 {
		return ModuleResult{Accepted: accepted}
	}
	if !anyEligible {
		return ModuleResult{Skip: skip.New(skip.ReasonNoValidReleases).WithNotify(true)}
	}

	latestTag := repo.LatestReleaseTag
	for _, f := range failures {
		if latestTag != "" && f.TagName == latestTag {
			return ModuleResult{Skip: f.Skip.WithNotify(true).WithTagName(latestTag)}
		}
	}
	return ModuleResult{Skip: skip.New(skip.ReasonNoValidReleases).WithNotify(false)}
}
