package validate

import (
	"context"
	"testing"
	"time"

	"github.com/kernelsu-modules/catalog-builder/internal/platform"
	"github.com/kernelsu-modules/catalog-builder/internal/probe"
	"github.com/kernelsu-modules/catalog-builder/internal/skip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProber map[string]probe.PropertyMap

func (f fakeProber) Probe(ctx context.Context, url string) probe.PropertyMap {
	return f[url]
}

func zipRelease(tag, url string) platform.RawRelease {
	return platform.RawRelease{
		TagName:     tag,
		URL:         "https://github.com/acme/" + tag,
		IsDraft:     false,
		IsImmutable: true,
		PublishedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Assets: []platform.Asset{
			{Name: "module.zip", ContentType: "application/zip", DownloadURL: url},
		},
	}
}

func TestEligibleForInspection(t *testing.T) {
	assert.True(t, EligibleForInspection(zipRelease("1-v1", "https://x/1.zip")))

	draft := zipRelease("1-v1", "https://x/1.zip")
	draft.IsDraft = true
	assert.False(t, EligibleForInspection(draft))

	mutable := zipRelease("1-v1", "https://x/1.zip")
	mutable.IsImmutable = false
	assert.False(t, EligibleForInspection(mutable))

	noZip := zipRelease("1-v1", "https://x/1.zip")
	noZip.Assets = nil
	assert.False(t, EligibleForInspection(noZip))
}

func TestValidateReleaseHappyPath(t *testing.T) {
	release := zipRelease("1-v1", "https://x/1.zip")
	p := fakeProber{"https://x/1.zip": probe.PropertyMap{
		"id": "foo.bar", "version": "1.0", "versionCode": "1",
	}}

	accepted, failure := ValidateRelease(context.Background(), p, "foo.bar", release)
	require.Nil(t, failure)
	assert.Equal(t, "1-v1", accepted.TagName)
	assert.Equal(t, "https://github.com/acme/1-v1", accepted.URL)
	assert.Equal(t, "1.0", accepted.Version)
	assert.Equal(t, "1", accepted.VersionCode)
}

func TestValidateReleaseNoZipAsset(t *testing.T) {
	release := zipRelease("1-v1", "https://x/1.zip")
	release.Assets = nil

	_, failure := ValidateRelease(context.Background(), fakeProber{}, "foo.bar", release)
	require.NotNil(t, failure)
	assert.Equal(t, skip.ReasonNoZipAsset, failure.Reason)
}

func TestValidateReleaseMissingModuleProp(t *testing.T) {
	release := zipRelease("1-v1", "https://x/1.zip")
	_, failure := ValidateRelease(context.Background(), fakeProber{}, "foo.bar", release)
	require.NotNil(t, failure)
	assert.Equal(t, skip.ReasonMissingModuleProp, failure.Reason)
}

func TestValidateReleaseModuleIDMismatch(t *testing.T) {
	release := zipRelease("1-v1", "https://x/1.zip")
	p := fakeProber{"https://x/1.zip": probe.PropertyMap{
		"id": "foo.baz", "version": "1.0", "versionCode": "1",
	}}

	_, failure := ValidateRelease(context.Background(), p, "foo.bar", release)
	require.NotNil(t, failure)
	assert.Equal(t, skip.ReasonModuleIDMismatch, failure.Reason)
	assert.Equal(t, "foo.bar", failure.Details["repoName"])
	assert.Equal(t, "foo.baz", failure.Details["moduleId"])
}

func TestValidateReleaseMissingVersion(t *testing.T) {
	release := zipRelease("1-v1", "https://x/1.zip")
	p := fakeProber{"https://x/1.zip": probe.PropertyMap{
		"id": "foo.bar", "version": "1.0",
	}}

	_, failure := ValidateRelease(context.Background(), p, "foo.bar", release)
	require.NotNil(t, failure)
	assert.Equal(t, skip.ReasonMissingVersion, failure.Reason)
}
