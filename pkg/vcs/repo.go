package vcs

import "context"

// Release describes a release to be created on the hosting platform.
type Release struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Body       string `json:"body"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
}

type ReleaseClient interface {
	// CreateRelease creates the release and returns its HTML URL.
	CreateRelease(ctx context.Context, owner, repo string, release Release) (string, error)
}
