package catalog

import (
	"regexp"
	"time"
)

var snapshotNamePattern = regexp.MustCompile(`(?i)^(snapshot|nightly).*`)

// LatestByKind selects the three kind-specific releases over
// AcceptedReleases in the order they are given (newest-first, per the
// data source), returning their publishedAt timestamps, defaulting to
// epoch zero when a kind has no candidate.
func LatestByKind(releases []AcceptedRelease) (releaseTime, betaTime, snapshotTime time.Time, latestName string) {
	releaseTime, betaTime, snapshotTime = epochZero, epochZero, epochZero

	var latestRelease, latestBeta, latestSnapshot *AcceptedRelease
	for i := range releases {
		r := &releases[i]
		if !r.IsPrerelease && latestRelease == nil {
			latestRelease = r
		}
		if r.IsPrerelease && !snapshotNamePattern.MatchString(r.Name) && latestBeta == nil {
			latestBeta = r
		}
		if r.IsPrerelease && snapshotNamePattern.MatchString(r.Name) && latestSnapshot == nil {
			latestSnapshot = r
		}
	}

	if latestBeta == nil {
		latestBeta = latestRelease
	}
	if latestSnapshot == nil {
		latestSnapshot = latestBeta
	}

	if latestRelease != nil {
		releaseTime = latestRelease.PublishedAt
		latestName = latestRelease.Name
	}
	if latestBeta != nil {
		betaTime = latestBeta.PublishedAt
	}
	if latestSnapshot != nil {
		snapshotTime = latestSnapshot.PublishedAt
	}
	return
}
