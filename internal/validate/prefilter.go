// Package validate implements the release validator and module validator.
package validate

import (
	"regexp"

	"github.com/kernelsu-modules/catalog-builder/internal/platform"
)

const zipContentType = "application/zip"

// StrictTagPattern additionally requires the release tag to match
// strictTagPatternRegexp as part of the pre-filter. Default false (see
// DESIGN.md for the rationale).
var StrictTagPattern = false

var strictTagPatternRegexp = regexp.MustCompile(`^\d+-.+$`)

// EligibleForInspection reports whether release passes the pre-filter: not
// a draft, immutable, and carrying at least one zip asset. Releases that
// fail this check are silently dropped, with no SkipInfo emitted.
func EligibleForInspection(release platform.RawRelease) bool {
	if release.IsDraft || !release.IsImmutable {
		return false
	}
	if StrictTagPattern && !strictTagPatternRegexp.MatchString(release.TagName) {
		return false
	}
	return firstZipAsset(release) != nil
}

func firstZipAsset(release platform.RawRelease) *platform.Asset {
	for i := range release.Assets {
		if release.Assets[i].ContentType == zipContentType {
			return &release.Assets[i]
		}
	}
	return nil
}
