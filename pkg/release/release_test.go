package release

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draft-release-action/pkg/vcs"
)

type fakeClient struct {
	owner, repo string
	release     vcs.Release
	url         string
	err         error
}

func (f *fakeClient) CreateRelease(_ context.Context, owner, repo string, release vcs.Release) (string, error) {
	f.owner, f.repo, f.release = owner, repo, release
	return f.url, f.err
}

func factoryFor(client *fakeClient, gotToken *string) ClientFactory {
	return func(token string) (vcs.ReleaseClient, error) {
		*gotToken = token
		return client, nil
	}
}

func staticRepo(owner, repo string) RepoResolver {
	return func() (string, string, error) { return owner, repo, nil }
}

func TestPublish(t *testing.T) {
	client := &fakeClient{url: "https://example.com/release"}
	var token string
	p, err := NewPublisher(staticRepo("octo", "widgets"), Options{Draft: true}, factoryFor(client, &token))
	require.NoError(t, err)

	rel, err := p.Build("v1.0.0", "- First commit")
	require.NoError(t, err)

	url, err := p.Publish(context.Background(), "secret", rel)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/release", url)
	assert.Equal(t, "secret", token)
	assert.Equal(t, "octo", client.owner)
	assert.Equal(t, "widgets", client.repo)
	assert.Equal(t, vcs.Release{
		TagName: "v1.0.0",
		Name:    "1.0.0",
		Body:    "- First commit",
		Draft:   true,
	}, client.release)
}

func TestBuildMarksPrereleases(t *testing.T) {
	p, err := NewPublisher(staticRepo("o", "r"), Options{Draft: true}, nil)
	require.NoError(t, err)

	rel, err := p.Build("v2.0.0-rc.1", "")
	require.NoError(t, err)
	assert.True(t, rel.Prerelease)
	assert.Equal(t, "2.0.0-rc.1", rel.Name)

	rel, err = p.Build("v2.0.0+build.7", "")
	require.NoError(t, err)
	assert.False(t, rel.Prerelease)
	assert.Equal(t, "2.0.0", rel.Name, "build metadata is not part of the title")
}

func TestBuildWithTemplateAndPrefix(t *testing.T) {
	p, err := NewPublisher(staticRepo("o", "r"), Options{
		NamePrefix:   "Widgets ",
		BodyTemplate: "## {{ .Version }} ({{ .Tag }})\n\n{{ .Changelog }}",
	}, nil)
	require.NoError(t, err)

	rel, err := p.Build("v1.2.3", "- Fix")
	require.NoError(t, err)
	assert.Equal(t, "Widgets 1.2.3", rel.Name)
	assert.Equal(t, "## 1.2.3 (v1.2.3)\n\n- Fix", rel.Body)
	assert.False(t, rel.Draft)
}

func TestNewPublisherRejectsBadTemplate(t *testing.T) {
	_, err := NewPublisher(staticRepo("o", "r"), Options{BodyTemplate: "{{ .Changelog "}, nil)
	require.Error(t, err)
}

func TestBuildDoesNotResolveRepo(t *testing.T) {
	calls := 0
	resolve := func() (string, string, error) {
		calls++
		return "", "", vcs.ErrNoRepository
	}
	p, err := NewPublisher(resolve, Options{}, nil)
	require.NoError(t, err)

	_, err = p.Build("v1.0.0", "- x")
	require.NoError(t, err)
	assert.Zero(t, calls)

	_, err = p.Publish(context.Background(), "t", vcs.Release{TagName: "v1.0.0"})
	assert.ErrorIs(t, err, vcs.ErrNoRepository)
	assert.Equal(t, 1, calls)
}

func TestPublishPropagatesErrors(t *testing.T) {
	boom := errors.New("failed to create the release: 500")
	client := &fakeClient{err: boom}
	var token string
	p, err := NewPublisher(staticRepo("o", "r"), Options{}, factoryFor(client, &token))
	require.NoError(t, err)

	_, err = p.Publish(context.Background(), "t", vcs.Release{TagName: "v1.0.0"})
	assert.ErrorIs(t, err, boom)

	p.newClient = func(string) (vcs.ReleaseClient, error) { return nil, errors.New("bad api url") }
	_, err = p.Publish(context.Background(), "t", vcs.Release{TagName: "v1.0.0"})
	assert.ErrorContains(t, err, "bad api url")
}
