// Package app drives a single run: from the triggering event to the
// release-url output.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/draft-release-action/pkg/event"
	"github.com/draft-release-action/pkg/markdown"
	"github.com/draft-release-action/pkg/vcs"
	"github.com/draft-release-action/pkg/version"
)

// OutputReleaseURL is the step output carrying the created release URL.
const OutputReleaseURL = "release-url"

// ChangelogSource lists the commit summaries a tag introduces.
type ChangelogSource interface {
	ChangesIntroducedByTag(ctx context.Context, tag string) (string, error)
}

// Publisher assembles and creates releases. The release passed to Publish
// carries the tag and the formatted changelog as its body.
type Publisher interface {
	Build(tag, changelog string) (vcs.Release, error)
	Publish(ctx context.Context, token string, rel vcs.Release) (string, error)
}

// Outputs receives the results of a run.
type Outputs interface {
	SetOutput(name, value string) error
	SetFailed(msg string)
}

// Reporter renders a run summary.
type Reporter interface {
	Report(s Summary) error
}

// Summary describes what a run did.
type Summary struct {
	Tag        string       `json:"tag,omitempty"`
	Skipped    string       `json:"skipped,omitempty"`
	Release    *vcs.Release `json:"release,omitempty"`
	ReleaseURL string       `json:"release_url"`
	DryRun     bool         `json:"dry_run"`
}

// Runner holds the collaborators of a run.
type Runner struct {
	Event     event.Event
	Token     string
	Changelog ChangelogSource
	Publisher Publisher
	DryRun    bool
	Logger    *slog.Logger
}

// Run drafts a release for the tag created by r.Event. A run that has nothing
// to do returns a summary with an empty ReleaseURL and no error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	logger := r.logger()
	summary := Summary{DryRun: r.DryRun}

	tag, ok := event.CreatedTag(ctx, logger, r.Event)
	if !ok {
		summary.Skipped = "no tag was created"
		return summary, nil
	}
	summary.Tag = tag

	if !version.IsSemVer(tag) {
		logger.InfoContext(ctx, fmt.Sprintf("The tag %s is not a semantic version", tag))
		summary.Skipped = "not a semantic version"
		return summary, nil
	}

	changes, err := r.Changelog.ChangesIntroducedByTag(ctx, tag)
	if err != nil {
		return summary, err
	}
	changelog := markdown.ToUnorderedList(changes)

	rel, err := r.Publisher.Build(tag, changelog)
	if err != nil {
		return summary, err
	}
	summary.Release = &rel

	if r.DryRun {
		logger.InfoContext(ctx, "dry-run: release not created", "tag", tag)
		return summary, nil
	}

	url, err := r.Publisher.Publish(ctx, r.Token, rel)
	if err != nil {
		return summary, err
	}
	summary.ReleaseURL = url
	return summary, nil
}

// Execute runs r and reports the outcome. On success the release URL, or an
// empty string, is set as the release-url output. Any failure, including one
// while reporting, is passed to SetFailed and no output is set after it.
func (r *Runner) Execute(ctx context.Context, out Outputs, rep Reporter) {
	if err := r.execute(ctx, out, rep); err != nil {
		out.SetFailed(err.Error())
	}
}

func (r *Runner) execute(ctx context.Context, out Outputs, rep Reporter) error {
	summary, err := r.Run(ctx)
	if err != nil {
		return err
	}
	if rep != nil {
		if err := rep.Report(summary); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	return out.SetOutput(OutputReleaseURL, summary.ReleaseURL)
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
