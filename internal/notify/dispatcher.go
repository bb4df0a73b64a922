// Package notify implements the notification dispatcher: resolving an
// addressee, assembling a message body from the skip taxonomy, resolving
// a tag to a commit, and posting a commit comment.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/v68/github"
	"github.com/kernelsu-modules/catalog-builder/internal/skip"
)

var botLogins = map[string]struct{}{
	"github-actions[bot]": {},
	"dependabot[bot]":     {},
	"renovate[bot]":       {},
}

func isBot(login string) bool {
	_, ok := botLogins[login]
	return ok
}

// Dispatcher posts commit comments for failing releases.
type Dispatcher struct {
	client *github.Client
	dryRun bool
	logger *slog.Logger
}

// New builds a Dispatcher. When dryRun is true, Notify logs the composed
// comment instead of posting it.
func New(client *github.Client, dryRun bool, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{client: client, dryRun: dryRun, logger: logger}
}

// Notify publishes a comment on the commit pointed to by tag, mentioning
// an appropriate addressee and describing info. Transient failures are
// logged and swallowed; no error propagates up.
func (d *Dispatcher) Notify(ctx context.Context, owner, repo, tag string, info *skip.Info) {
	mentions := d.resolveAddressees(ctx, owner, repo, tag)
	body := formatBody(mentions, info)

	sha, err := d.resolveCommitSHA(ctx, owner, repo, tag)
	if err != nil {
		d.logger.Error("notify: failed to resolve commit for tag", "owner", owner, "repo", repo, "tag", tag, "error", err)
		return
	}

	if d.dryRun {
		d.logger.Info("notify: dry run, comment not posted", "owner", owner, "repo", repo, "sha", sha, "body", body)
		return
	}

	comment := &github.RepositoryComment{Body: github.String(body)}
	if _, _, err := d.client.Repositories.CreateComment(ctx, owner, repo, sha, comment); err != nil {
		d.logger.Error("notify: failed to post commit comment", "owner", owner, "repo", repo, "sha", sha, "error", err)
	}
}

// resolveAddressees implements a three-step fallback: release author,
// then direct collaborators, then no mentions.
func (d *Dispatcher) resolveAddressees(ctx context.Context, owner, repo, tag string) []string {
	release, _, err := d.client.Repositories.GetReleaseByTag(ctx, owner, repo, tag)
	if err == nil && release.GetAuthor() != nil {
		login := release.GetAuthor().GetLogin()
		if login != "" && !isBot(login) {
			return []string{login}
		}
	}

	collaborators, _, err := d.client.Repositories.ListCollaborators(ctx, owner, repo, &github.ListCollaboratorsOptions{
		Affiliation: "direct",
	})
	if err != nil {
		return nil
	}
	var logins []string
	for _, c := range collaborators {
		login := c.GetLogin()
		if login != "" && !isBot(login) {
			logins = append(logins, login)
		}
	}
	return logins
}

// resolveCommitSHA resolves tags/{tag} to a commit SHA, dereferencing
// annotated tag objects once.
func (d *Dispatcher) resolveCommitSHA(ctx context.Context, owner, repo, tag string) (string, error) {
	ref, _, err := d.client.Git.GetRef(ctx, owner, repo, "tags/"+tag)
	if err != nil {
		return "", fmt.Errorf("get ref: %w", err)
	}
	obj := ref.GetObject()
	if obj.GetType() != "tag" {
		return obj.GetSHA(), nil
	}

	tagObj, _, err := d.client.Git.GetTag(ctx, owner, repo, obj.GetSHA())
	if err != nil {
		return "", fmt.Errorf("get tag: %w", err)
	}
	return tagObj.GetObject().GetSHA(), nil
}

func formatBody(mentions []string, info *skip.Info) string {
	var sb strings.Builder
	if len(mentions) > 0 {
		for i, m := range mentions {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('@')
			sb.WriteString(m)
		}
		sb.WriteString("\n\n")
	}
	sb.WriteString(info.Body())
	sb.WriteString("\n\n---\n*This comment was posted automatically by the module catalog builder.*")
	return sb.String()
}
