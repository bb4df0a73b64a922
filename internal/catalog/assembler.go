package catalog

import "github.com/kernelsu-modules/catalog-builder/internal/platform"

// Assemble builds a Module record from a validated repository and its
// accepted releases, given newest-first.
func Assemble(platformName string, repo platform.RawRepository, accepted []AcceptedRelease) Module {
	readmeHTML, readmeRaw := RenderREADME(repo.README)
	releaseTime, betaTime, snapshotTime, latestName := LatestByKind(accepted)

	return Module{
		ModuleID:    repo.Identifier,
		ModuleName:  repo.Description,
		URL:         repo.URL,
		HomepageURL: repo.HomepageURL,

		Authors: ResolveAuthors(platformName, repo.Collaborators, repo.AuxiliaryManifest),

		LatestReleaseName: latestName,

		LatestReleaseTime:         releaseTime,
		LatestBetaReleaseTime:     betaTime,
		LatestSnapshotReleaseTime: snapshotTime,

		Releases: accepted,

		README:     readmeRaw,
		READMEHTML: readmeHTML,

		Summary:   ExtractSummary(repo.AuxiliaryManifest),
		SourceURL: ExtractSourceURL(repo.AuxiliaryManifest),

		CreatedAt: repo.CreatedAt,
		UpdatedAt: repo.UpdatedAt,

		StargazerCount: repo.StargazerCount,
		Metamodule:     ExtractMetamodule(repo.AuxiliaryManifest),
	}
}
