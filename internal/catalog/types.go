// Package catalog holds the output data model and the assembler that turns
// validated repositories into Module records.
package catalog

import "time"

// Author is a single catalog-entry author, either a direct collaborator or
// an entry contributed by a repository's auxiliary manifest.
type Author struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// AcceptedRelease is a release that survived the release validator (C3).
type AcceptedRelease struct {
	TagName         string    `json:"tagName"`
	Name            string    `json:"name"`
	URL             string    `json:"url"`
	DescriptionHTML string    `json:"descriptionHtml"`
	CreatedAt       time.Time `json:"createdAt"`
	PublishedAt     time.Time `json:"publishedAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	IsPrerelease    bool      `json:"isPrerelease"`

	Assets []Asset `json:"assets"`

	Version     string `json:"version"`
	VersionCode string `json:"versionCode"`
}

// Asset mirrors platform.Asset verbatim in the catalog's wire shape.
type Asset struct {
	Name          string `json:"name"`
	ContentType   string `json:"contentType"`
	DownloadURL   string `json:"downloadUrl"`
	DownloadCount int    `json:"downloadCount"`
	Size          int64  `json:"size"`
}

// epochZero is the default catalog timestamp when a latest-by-kind
// selection has no candidate release.
var epochZero = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// Module is a single catalog entry: a validated, accepted repository.
type Module struct {
	ModuleID    string `json:"moduleId"`
	ModuleName  string `json:"moduleName"`
	URL         string `json:"url"`
	HomepageURL string `json:"homepageUrl,omitempty"`

	Authors []Author `json:"authors"`

	LatestReleaseName string `json:"latestReleaseName,omitempty"`

	LatestReleaseTime         time.Time `json:"latestReleaseTime"`
	LatestBetaReleaseTime     time.Time `json:"latestBetaReleaseTime"`
	LatestSnapshotReleaseTime time.Time `json:"latestSnapshotReleaseTime"`

	Releases []AcceptedRelease `json:"releases"`

	README     string `json:"readme,omitempty"`
	READMEHTML string `json:"readmeHtml,omitempty"`

	Summary   string `json:"summary,omitempty"`
	SourceURL string `json:"sourceUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	StargazerCount int  `json:"stargazerCount"`
	Metamodule     bool `json:"metamodule"`
}

// SortKey returns the catalog sort key for m: the latest of the three kind
// timestamps.
func (m Module) SortKey() time.Time {
	key := m.LatestReleaseTime
	if m.LatestBetaReleaseTime.After(key) {
		key = m.LatestBetaReleaseTime
	}
	if m.LatestSnapshotReleaseTime.After(key) {
		key = m.LatestSnapshotReleaseTime
	}
	return key
}

// Catalog is the ordered, serialized output of a build.
type Catalog []Module
