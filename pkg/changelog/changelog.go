// Package changelog derives the commit summaries introduced by a version tag.
//
// The previous version tag is searched on the first-parent line starting from
// the tag's parent, so tags that only exist on merged-in branches are never
// picked. The commit range itself is not restricted to first parents: commits
// brought in by a merge show up in the changelog.
package changelog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/draft-release-action/pkg/command"
)

const (
	// DefaultMatch selects version tags only.
	DefaultMatch = "v[0-9]*"

	// ExitNoTags is the status git describe exits with when no tag matches.
	// Every other non-zero status is a real failure.
	ExitNoTags = 128
)

// Resolver queries a git repository through a command.Runner.
type Resolver struct {
	runner command.Runner
	git    string
	match  string
	tags   bool
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithGitBinary overrides the git executable, "git" by default.
func WithGitBinary(path string) Option {
	return func(r *Resolver) {
		if path != "" {
			r.git = path
		}
	}
}

// WithMatch overrides the glob used to recognise version tags.
func WithMatch(pattern string) Option {
	return func(r *Resolver) {
		if pattern != "" {
			r.match = pattern
		}
	}
}

// WithLightweightTags lets the previous-tag search consider lightweight tags.
// By default git describe only sees annotated tags.
func WithLightweightTags(enabled bool) Option {
	return func(r *Resolver) {
		r.tags = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver returns a Resolver that runs git through runner.
func NewResolver(runner command.Runner, opts ...Option) *Resolver {
	r := &Resolver{
		runner: runner,
		git:    "git",
		match:  DefaultMatch,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ChangesIntroducedByTag returns the newline-joined commit summaries reachable
// from tag but not from the previous version tag. When there is no previous
// version tag the whole history reachable from tag is returned.
func (r *Resolver) ChangesIntroducedByTag(ctx context.Context, tag string) (string, error) {
	previous, found, err := r.PreviousVersionTag(ctx, tag)
	if err != nil {
		return "", err
	}
	if found {
		return r.CommitMessagesBetween(ctx, previous, tag)
	}
	return r.CommitMessagesFrom(ctx, tag)
}

// PreviousVersionTag returns the nearest version tag on the first-parent line
// of tag's parent. found is false when no such tag exists.
func (r *Resolver) PreviousVersionTag(ctx context.Context, tag string) (previous string, found bool, err error) {
	args := []string{"describe", "--match", r.match, "--abbrev=0", "--first-parent"}
	if r.tags {
		args = append(args, "--tags")
	}
	args = append(args, tag+"^")

	res, err := r.run(ctx, args)
	if err != nil {
		return "", false, err
	}

	switch res.ExitCode {
	case 0:
		previous = strings.TrimSpace(res.Stdout)
		r.logger.DebugContext(ctx, "found previous version tag", "tag", tag, "previous", previous)
		return previous, true, nil
	case ExitNoTags:
		r.logger.DebugContext(ctx, "no previous version tag", "tag", tag)
		return "", false, nil
	default:
		return "", false, newGitError(args, res)
	}
}

// CommitMessagesBetween returns the summaries of the commits reachable from to
// but not from from, in git log order.
func (r *Resolver) CommitMessagesBetween(ctx context.Context, from, to string) (string, error) {
	messages, err := r.log(ctx, fmt.Sprintf("%s..%s", from, to))
	if err != nil {
		return "", err
	}
	r.logger.DebugContext(ctx, "collected commit messages", "from", from, "to", to, "messages", messages)
	return messages, nil
}

// CommitMessagesFrom returns the summaries of every commit reachable from ref.
func (r *Resolver) CommitMessagesFrom(ctx context.Context, ref string) (string, error) {
	messages, err := r.log(ctx, ref)
	if err != nil {
		return "", err
	}
	r.logger.DebugContext(ctx, "collected commit messages", "from", ref, "messages", messages)
	return messages, nil
}

func (r *Resolver) log(ctx context.Context, revisions string) (string, error) {
	args := []string{"log", "--format=%s", revisions}

	res, err := r.run(ctx, args)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", newGitError(args, res)
	}
	return strings.TrimSpace(res.Stdout), nil
}

func (r *Resolver) run(ctx context.Context, args []string) (*command.Result, error) {
	res, err := r.runner.Run(ctx, r.git, args...)
	if err != nil {
		return nil, fmt.Errorf("git %s: %w", args[0], err)
	}
	return res, nil
}
