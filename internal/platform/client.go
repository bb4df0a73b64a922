package platform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// DefaultPageSize is the page size used when listing an organization's
// repositories.
const DefaultPageSize = 10

// Client fetches RawRepository/RawRelease data from the hosting platform's
// GraphQL API. It owns its own rate limiter, independent of any bounded
// concurrency the caller applies to in-process goroutines — this limiter
// bounds outbound requests against the platform's own rate limits.
type Client struct {
	gql     *githubv4.Client
	limiter *rate.Limiter
}

// NewClient builds a Client authenticated with a static GraphQL token.
func NewClient(token string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), src)
	return &Client{
		gql: githubv4.NewClient(httpClient),
		// 5000 GraphQL points/hour is the platform's common default; stay
		// well under it so pagination never trips a platform rate limit.
		// Retries are left to the caller.
		limiter: rate.NewLimiter(rate.Limit(1), 2),
	}
}

// NewClientWithHTTP is used by tests to inject a mock transport.
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{
		gql:     githubv4.NewClient(httpClient),
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

type repositoryNode struct {
	Name             githubv4.String
	Description      githubv4.String
	URL              githubv4.URI
	HomepageURL      githubv4.String
	StargazerCount   githubv4.Int
	CreatedAt        githubv4.DateTime
	UpdatedAt        githubv4.DateTime
	Object           *textBlobObject `graphql:"readme: object(expression: \"HEAD:README.md\")"`
	ManifestObject   *textBlobObject `graphql:"manifest: object(expression: \"HEAD:module.manifest.json\")"`
	// LatestRelease is fetched with the same shape as a releases-list node
	// so it can be appended whole when the paginated list omits it.
	LatestRelease *releaseNode
	Collaborators struct {
		Nodes []struct {
			Login githubv4.String
			Name  githubv4.String
		}
	} `graphql:"collaborators(affiliation: DIRECT, first: 100)"`
	Releases struct {
		Nodes []releaseNode
	} `graphql:"releases(first: 50, orderBy: {field: CREATED_AT, direction: DESC})"`
}

type textBlobObject struct {
	Blob struct {
		Text githubv4.String
	} `graphql:"... on Blob"`
}

type releaseNode struct {
	TagName         githubv4.String
	Name            githubv4.String
	URL             githubv4.URI
	Description     githubv4.String
	DescriptionHTML githubv4.String
	CreatedAt       githubv4.DateTime
	PublishedAt     githubv4.DateTime
	UpdatedAt       githubv4.DateTime
	IsDraft         githubv4.Boolean
	IsPrerelease    githubv4.Boolean
	IsImmutable     githubv4.Boolean
	IsLatest        githubv4.Boolean
	Author          *struct {
		Login githubv4.String
	}
	ReleaseAssets struct {
		Nodes []struct {
			Name          githubv4.String
			ContentType   githubv4.String
			DownloadURL   githubv4.String
			DownloadCount githubv4.Int
			Size          githubv4.Int
		}
	} `graphql:"releaseAssets(first: 20)"`
}

// uriString returns u as a string, or "" when the field was absent.
func uriString(u githubv4.URI) string {
	if u.URL == nil {
		return ""
	}
	return u.String()
}

func (n repositoryNode) toRaw() RawRepository {
	repo := RawRepository{
		Identifier:     string(n.Name),
		Description:    string(n.Description),
		URL:            uriString(n.URL),
		HomepageURL:    string(n.HomepageURL),
		StargazerCount: int(n.StargazerCount),
		CreatedAt:      n.CreatedAt.Time,
		UpdatedAt:      n.UpdatedAt.Time,
	}
	if n.Object != nil {
		repo.README = string(n.Object.Blob.Text)
	}
	if n.ManifestObject != nil {
		repo.AuxiliaryManifest = string(n.ManifestObject.Blob.Text)
	}
	for _, c := range n.Collaborators.Nodes {
		repo.Collaborators = append(repo.Collaborators, Collaborator{
			Login:       string(c.Login),
			DisplayName: string(c.Name),
		})
	}
	for _, r := range n.Releases.Nodes {
		repo.Releases = append(repo.Releases, r.toRaw())
	}
	if n.LatestRelease != nil {
		tag := string(n.LatestRelease.TagName)
		repo.LatestReleaseTag = tag
		found := false
		for _, r := range repo.Releases {
			if r.TagName == tag {
				found = true
				break
			}
		}
		if !found {
			repo.Releases = append(repo.Releases, n.LatestRelease.toRaw())
		}
	}
	return repo
}

func (n releaseNode) toRaw() RawRelease {
	rel := RawRelease{
		TagName:         string(n.TagName),
		Name:            string(n.Name),
		URL:             uriString(n.URL),
		Description:     string(n.Description),
		DescriptionHTML: string(n.DescriptionHTML),
		CreatedAt:       n.CreatedAt.Time,
		PublishedAt:     n.PublishedAt.Time,
		UpdatedAt:       n.UpdatedAt.Time,
		IsDraft:         bool(n.IsDraft),
		IsPrerelease:    bool(n.IsPrerelease),
		IsImmutable:     bool(n.IsImmutable),
		IsLatest:        bool(n.IsLatest),
	}
	if n.Author != nil {
		rel.AuthorLogin = string(n.Author.Login)
	}
	for _, a := range n.ReleaseAssets.Nodes {
		rel.Assets = append(rel.Assets, Asset{
			Name:          string(a.Name),
			ContentType:   string(a.ContentType),
			DownloadURL:   string(a.DownloadURL),
			DownloadCount: int(a.DownloadCount),
			Size:          int64(a.Size),
		})
	}
	return rel
}

type orgRepositoriesQuery struct {
	Organization struct {
		Repositories struct {
			PageInfo struct {
				EndCursor   githubv4.String
				HasNextPage bool
			}
			Nodes []repositoryNode
		} `graphql:"repositories(first: $pageSize, after: $cursor, orderBy: {field: UPDATED_AT, direction: DESC}, privacy: PUBLIC)"`
	} `graphql:"organization(login: $org)"`
}

// ListOrganizationRepositories pages through every public repository of
// org, newest-update-first. The returned slice preserves the platform's
// declared order.
func (c *Client) ListOrganizationRepositories(ctx context.Context, org string) ([]RawRepository, error) {
	var all []RawRepository
	var cursor *githubv4.String

	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		var q orgRepositoriesQuery
		vars := map[string]interface{}{
			"org":      githubv4.String(org),
			"pageSize": githubv4.Int(DefaultPageSize),
			"cursor":   cursor,
		}
		if err := c.gql.Query(ctx, &q, vars); err != nil {
			return nil, fmt.Errorf("list organization repositories: %w", err)
		}

		for _, n := range q.Organization.Repositories.Nodes {
			all = append(all, n.toRaw())
		}

		if !q.Organization.Repositories.PageInfo.HasNextPage {
			break
		}
		c := q.Organization.Repositories.PageInfo.EndCursor
		cursor = &c
	}

	return all, nil
}

type repositoryDetailQuery struct {
	Repository repositoryNode `graphql:"repository(owner: $owner, name: $name)"`
}

// GetRepository fetches the detail query for a single repository, used by
// incremental mode.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (RawRepository, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return RawRepository{}, fmt.Errorf("rate limiter: %w", err)
	}

	var q repositoryDetailQuery
	vars := map[string]interface{}{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(name),
	}
	if err := c.gql.Query(ctx, &q, vars); err != nil {
		return RawRepository{}, fmt.Errorf("get repository %s/%s: %w", owner, name, err)
	}
	return q.Repository.toRaw(), nil
}
