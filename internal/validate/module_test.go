package validate

import (
	"context"
	"testing"
	"time"

	"github.com/kernelsu-modules/catalog-builder/internal/mapper"
	"github.com/kernelsu-modules/catalog-builder/internal/platform"
	"github.com/kernelsu-modules/catalog-builder/internal/probe"
	"github.com/kernelsu-modules/catalog-builder/internal/skip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInnerMapper() *mapper.Mapper[platform.RawRelease, ReleaseOutcome] {
	return mapper.New[platform.RawRelease, ReleaseOutcome](100, "inner", nil)
}

func goodModuleProp(id string) probe.PropertyMap {
	return probe.PropertyMap{"id": id, "version": "1.0", "versionCode": "1"}
}

func TestValidateModuleReservedName(t *testing.T) {
	repo := platform.RawRepository{Identifier: "submission", Description: "x"}
	result := ValidateModule(context.Background(), fakeProber{}, newInnerMapper(), repo)
	require.NotNil(t, result.Skip)
	assert.Equal(t, skip.ReasonReservedName, result.Skip.Reason)
	assert.True(t, result.Skip.ShouldNotify)
}

func TestValidateModuleInvalidName(t *testing.T) {
	repo := platform.RawRepository{Identifier: "a", Description: "x"}
	result := ValidateModule(context.Background(), fakeProber{}, newInnerMapper(), repo)
	require.NotNil(t, result.Skip)
	assert.Equal(t, skip.ReasonInvalidName, result.Skip.Reason)
}

func TestValidateModuleNoDescription(t *testing.T) {
	repo := platform.RawRepository{Identifier: "good.name", Description: ""}
	result := ValidateModule(context.Background(), fakeProber{}, newInnerMapper(), repo)
	require.NotNil(t, result.Skip)
	assert.Equal(t, skip.ReasonNoDescription, result.Skip.Reason)
}

func TestValidateModuleHappyPathOneRelease(t *testing.T) {
	repo := platform.RawRepository{
		Identifier:       "foo.bar",
		Description:      "Foo Bar",
		LatestReleaseTag: "1-v1",
		Releases:         []platform.RawRelease{zipRelease("1-v1", "https://x/1.zip")},
	}
	p := fakeProber{"https://x/1.zip": goodModuleProp("foo.bar")}

	result := ValidateModule(context.Background(), p, newInnerMapper(), repo)
	require.Nil(t, result.Skip)
	require.Len(t, result.Accepted, 1)
	assert.Equal(t, "1-v1", result.Accepted[0].TagName)
}

func TestValidateModuleOnlyDraftReleases(t *testing.T) {
	draft := zipRelease("1-v1", "https://x/1.zip")
	draft.IsDraft = true
	repo := platform.RawRepository{
		Identifier:  "foo.bar",
		Description: "Foo Bar",
		Releases:    []platform.RawRelease{draft},
	}

	result := ValidateModule(context.Background(), fakeProber{}, newInnerMapper(), repo)
	require.NotNil(t, result.Skip)
	assert.Equal(t, skip.ReasonNoValidReleases, result.Skip.Reason)
	assert.True(t, result.Skip.ShouldNotify)
}

func TestValidateModuleBrokenLatestGoodOlder(t *testing.T) {
	older := zipRelease("1-v1", "https://x/1.zip")
	older.PublishedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	latest := zipRelease("2-v2", "https://x/2.zip")
	latest.PublishedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	repo := platform.RawRepository{
		Identifier:       "foo.bar",
		Description:      "Foo Bar",
		LatestReleaseTag: "2-v2",
		Releases:         []platform.RawRelease{latest, older},
	}
	p := fakeProber{
		"https://x/1.zip": goodModuleProp("foo.bar"),
		// latest release has no module.prop at all -> MISSING_MODULE_PROP
	}

	result := ValidateModule(context.Background(), p, newInnerMapper(), repo)
	require.NotNil(t, result.Skip)
	assert.Equal(t, skip.ReasonMissingModuleProp, result.Skip.Reason)
	assert.True(t, result.Skip.ShouldNotify)
	assert.Equal(t, "2-v2", result.Skip.TagName)
}

func TestValidateModuleBrokenOlderGoodLatest(t *testing.T) {
	older := zipRelease("1-v1", "https://x/1.zip")
	older.PublishedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	latest := zipRelease("2-v2", "https://x/2.zip")
	latest.PublishedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	repo := platform.RawRepository{
		Identifier:       "foo.bar",
		Description:      "Foo Bar",
		LatestReleaseTag: "2-v2",
		Releases:         []platform.RawRelease{latest, older},
	}
	p := fakeProber{
		"https://x/2.zip": goodModuleProp("foo.bar"),
		// older release has no module.prop -> MISSING_MODULE_PROP, but it is
		// not the latest, so no notification.
	}

	result := ValidateModule(context.Background(), p, newInnerMapper(), repo)
	require.Nil(t, result.Skip)
	require.Len(t, result.Accepted, 1)
	assert.Equal(t, "2-v2", result.Accepted[0].TagName)
}

func TestValidateModuleIDMismatchOnLatest(t *testing.T) {
	repo := platform.RawRepository{
		Identifier:       "foo.bar",
		Description:      "Foo Bar",
		LatestReleaseTag: "1-v1",
		Releases:         []platform.RawRelease{zipRelease("1-v1", "https://x/1.zip")},
	}
	p := fakeProber{"https://x/1.zip": probe.PropertyMap{
		"id": "foo.baz", "version": "1.0", "versionCode": "1",
	}}

	result := ValidateModule(context.Background(), p, newInnerMapper(), repo)
	require.NotNil(t, result.Skip)
	assert.Equal(t, skip.ReasonModuleIDMismatch, result.Skip.Reason)
	assert.True(t, result.Skip.ShouldNotify)
	assert.Equal(t, "1-v1", result.Skip.TagName)
	assert.Equal(t, "foo.bar", result.Skip.Details["repoName"])
	assert.Equal(t, "foo.baz", result.Skip.Details["moduleId"])
}
