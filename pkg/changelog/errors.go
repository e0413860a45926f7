package changelog

import (
	"fmt"
	"strings"

	"github.com/draft-release-action/pkg/command"
)

// GitError is returned when a git query exits with an unexpected status.
type GitError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func newGitError(args []string, res *command.Result) *GitError {
	return &GitError{
		Args:     args,
		ExitCode: res.ExitCode,
		Stderr:   strings.TrimSpace(res.Stderr),
	}
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}
