package vcs

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// ErrNoRepository is returned when neither the environment nor the local
// clone names the GitHub repository.
var ErrNoRepository = errors.New("cannot determine the GitHub repository; set GITHUB_REPOSITORY or --repo")

// ResolveRepo returns owner and repo from slug ("owner/repo") when given, and
// from the origin remote of the clone at dir otherwise.
func ResolveRepo(slug, dir string) (owner, repo string, err error) {
	if slug != "" {
		return ParseGitHubRepo(slug)
	}
	return RepoFromRemote(dir, "origin")
}

// RepoFromRemote parses owner and repo from the first URL of the named remote.
func RepoFromRemote(dir, remote string) (owner, repo string, err error) {
	if dir == "" {
		dir = "."
	}
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", fmt.Errorf("%w: open %s: %v", ErrNoRepository, dir, err)
	}

	rem, err := r.Remote(remote)
	if err != nil {
		return "", "", fmt.Errorf("%w: remote %s: %v", ErrNoRepository, remote, err)
	}
	urls := rem.Config().URLs
	if len(urls) == 0 {
		return "", "", fmt.Errorf("%w: remote %s has no URL", ErrNoRepository, remote)
	}
	return ParseGitHubRepo(urls[0])
}
