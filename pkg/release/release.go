// Package release turns a version tag and its changelog into a draft release
// and publishes it.
package release

import (
	"context"
	"fmt"
	"text/template"

	"github.com/draft-release-action/pkg/version"
	"github.com/draft-release-action/pkg/vcs"
)

// Options control how a release is assembled.
type Options struct {
	// Draft keeps the release unpublished. Callers normally set it.
	Draft bool
	// NamePrefix is prepended to the version in the release title.
	NamePrefix string
	// BodyTemplate is a text/template with .Tag, .Version and .Changelog.
	BodyTemplate string
}

// ClientFactory builds a release client authenticated with token.
type ClientFactory func(token string) (vcs.ReleaseClient, error)

// RepoResolver names the repository releases are created in. It is called
// only when a release is actually published.
type RepoResolver func() (owner, repo string, err error)

// Publisher creates releases in a single repository.
type Publisher struct {
	resolveRepo RepoResolver
	opts        Options
	body        *template.Template
	newClient   ClientFactory
}

// NewPublisher validates opts and returns a Publisher for the repository
// named by resolveRepo.
func NewPublisher(resolveRepo RepoResolver, opts Options, newClient ClientFactory) (*Publisher, error) {
	body, err := parseBodyTemplate(opts.BodyTemplate)
	if err != nil {
		return nil, err
	}
	return &Publisher{
		resolveRepo: resolveRepo,
		opts:        opts,
		body:        body,
		newClient:   newClient,
	}, nil
}

// Build assembles the release for tag without publishing it.
func (p *Publisher) Build(tag, changelog string) (vcs.Release, error) {
	v := version.RemovePrefix(tag)
	body, err := renderBody(p.body, templateData{Tag: tag, Version: v, Changelog: changelog})
	if err != nil {
		return vcs.Release{}, err
	}
	return vcs.Release{
		TagName:    tag,
		Name:       p.opts.NamePrefix + v,
		Body:       body,
		Draft:      p.opts.Draft,
		Prerelease: version.IsPrerelease(tag),
	}, nil
}

// Publish creates rel with a client authenticated by token and returns the
// release URL.
func (p *Publisher) Publish(ctx context.Context, token string, rel vcs.Release) (string, error) {
	owner, repo, err := p.resolveRepo()
	if err != nil {
		return "", err
	}
	client, err := p.newClient(token)
	if err != nil {
		return "", fmt.Errorf("create release client: %w", err)
	}
	return client.CreateRelease(ctx, owner, repo, rel)
}
