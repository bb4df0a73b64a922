// Package platform holds the raw, wire-shaped types returned by the
// hosting-platform GraphQL API and the client used to fetch them.
//
// Every field here is explicitly optional (pointer or zero-value-safe):
// decode failures on leaf fields degrade to zero values, never to a
// decode error that aborts the whole listing.
package platform

import "time"

// Collaborator is a direct repository collaborator as returned by the
// platform.
type Collaborator struct {
	Login       string
	DisplayName string // optional; empty if not set
}

// Asset is a single file attached to a release.
type Asset struct {
	Name          string
	ContentType   string
	DownloadURL   string
	DownloadCount int
	Size          int64
}

// RawRelease is a release exactly as returned by the platform, before any
// validation or acceptance decision.
type RawRelease struct {
	TagName         string
	Name            string
	URL             string
	Description     string // markdown, optional
	DescriptionHTML string // pre-rendered HTML, optional

	CreatedAt   time.Time
	PublishedAt time.Time
	UpdatedAt   time.Time

	IsDraft      bool
	IsPrerelease bool
	IsImmutable  bool
	IsLatest     bool

	Assets []Asset

	// AuthorLogin is the release author's login, empty if the account was
	// deleted or the platform omitted it.
	AuthorLogin string
}

// RawRepository is a repository exactly as returned by the platform,
// before any validation.
type RawRepository struct {
	Identifier  string
	Description string // optional
	URL         string
	HomepageURL string // optional

	Collaborators []Collaborator

	README           string // optional
	AuxiliaryManifest string // optional, JSON text

	// LatestReleaseTag is the tag of the platform's notion of "latest
	// release", which is sometimes missing from the first page of
	// Releases.
	LatestReleaseTag string

	Releases []RawRelease

	StargazerCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
