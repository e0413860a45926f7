package vcs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-github/v60/github"
)

type GitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

func NewGitHubClient(client *github.Client, logger *slog.Logger) *GitHubClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &GitHubClient{
		client: client,
		logger: logger,
	}
}

// NewClient returns a go-github client authenticated with token. apiURL
// points it at a GitHub Enterprise server when set.
func NewClient(token, apiURL string) (*github.Client, error) {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	if apiURL == "" {
		return client, nil
	}
	client, err := client.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("configure api url %s: %w", apiURL, err)
	}
	return client, nil
}

func (g *GitHubClient) CreateRelease(ctx context.Context, owner, repo string, release Release) (string, error) {
	created, resp, err := g.client.Repositories.CreateRelease(ctx, owner, repo, &github.RepositoryRelease{
		TagName:    github.String(release.TagName),
		Name:       github.String(release.Name),
		Body:       github.String(release.Body),
		Draft:      github.Bool(release.Draft),
		Prerelease: github.Bool(release.Prerelease),
	})
	if err != nil {
		var errResp *github.ErrorResponse
		if errors.As(err, &errResp) && errResp.Response != nil {
			return "", fmt.Errorf("failed to create the release: %d: %w", errResp.Response.StatusCode, err)
		}
		return "", fmt.Errorf("create release %s in %s/%s: %w", release.TagName, owner, repo, err)
	}
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("failed to create the release: %d", resp.StatusCode)
	}

	g.logger.InfoContext(ctx, fmt.Sprintf("Created release draft %s", created.GetName()))
	return created.GetHTMLURL(), nil
}

func ParseGitHubRepo(repoURL string) (owner, repo string, err error) {
	repoURL = strings.TrimPrefix(repoURL, "https://")
	repoURL = strings.TrimPrefix(repoURL, "http://")
	repoURL = strings.TrimPrefix(repoURL, "ssh://")
	repoURL = strings.TrimPrefix(repoURL, "git@")
	repoURL = strings.TrimPrefix(repoURL, "github.com/")
	repoURL = strings.TrimPrefix(repoURL, "github.com:")
	repoURL = strings.TrimSuffix(repoURL, "/")
	repoURL = strings.TrimSuffix(repoURL, ".git")

	parts := strings.SplitN(repoURL, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot parse GitHub repo from %q", repoURL)
	}
	return parts[0], parts[1], nil
}
