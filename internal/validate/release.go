package validate

import (
	"context"

	"github.com/kernelsu-modules/catalog-builder/internal/catalog"
	"github.com/kernelsu-modules/catalog-builder/internal/platform"
	"github.com/kernelsu-modules/catalog-builder/internal/probe"
	"github.com/kernelsu-modules/catalog-builder/internal/skip"
)

// Prober extracts a release's module.prop contents, used by ValidateRelease
// for step 2 of the deep-validation sequence.
type Prober interface {
	Probe(ctx context.Context, downloadURL string) probe.PropertyMap
}

// ValidateRelease runs the five-step deep-validation sequence against a
// release that has already passed EligibleForInspection. The caller
// supplies repoIdentifier for the module-ID-mismatch comparison.
func ValidateRelease(ctx context.Context, p Prober, repoIdentifier string, release platform.RawRelease) (catalog.AcceptedRelease, *skip.Info) {
	asset := firstZipAsset(release)
	if asset == nil {
		return catalog.AcceptedRelease{}, skip.New(skip.ReasonNoZipAsset).
			WithTagName(release.TagName).
			WithDetails(map[string]string{"tagName": release.TagName})
	}

	props := p.Probe(ctx, asset.DownloadURL)
	if len(props) == 0 {
		return catalog.AcceptedRelease{}, skip.New(skip.ReasonMissingModuleProp).
			WithTagName(release.TagName).
			WithDetails(map[string]string{"tagName": release.TagName})
	}

	if moduleID := props["id"]; moduleID != repoIdentifier {
		return catalog.AcceptedRelease{}, skip.New(skip.ReasonModuleIDMismatch).
			WithTagName(release.TagName).
			WithDetails(map[string]string{
				"tagName":  release.TagName,
				"repoName": repoIdentifier,
				"moduleId": moduleID,
			})
	}

	version, versionCode := props["version"], props["versionCode"]
	if version == "" || versionCode == "" {
		return catalog.AcceptedRelease{}, skip.New(skip.ReasonMissingVersion).
			WithTagName(release.TagName).
			WithDetails(map[string]string{
				"tagName":     release.TagName,
				"version":     version,
				"versionCode": versionCode,
			})
	}

	accepted := catalog.AcceptedRelease{
		TagName:         release.TagName,
		Name:            release.Name,
		URL:             release.URL,
		DescriptionHTML: RewritePrivateImageURLs(release.Description, release.DescriptionHTML),
		CreatedAt:       release.CreatedAt,
		PublishedAt:     release.PublishedAt,
		UpdatedAt:       release.UpdatedAt,
		IsPrerelease:    release.IsPrerelease,
		Version:         version,
		VersionCode:     versionCode,
	}
	for _, a := range release.Assets {
		accepted.Assets = append(accepted.Assets, catalog.Asset{
			Name:          a.Name,
			ContentType:   a.ContentType,
			DownloadURL:   a.DownloadURL,
			DownloadCount: a.DownloadCount,
			Size:          a.Size,
		})
	}
	return accepted, nil
}
