package reporter

import (
	"fmt"
	"io"

	"github.com/draft-release-action/pkg/app"
)

// TextReporter prints a short status line followed by the release body.
type TextReporter struct {
	w io.Writer
}

func (r *TextReporter) Report(s app.Summary) error {
	if s.Skipped != "" {
		_, err := fmt.Fprintf(r.w, "No release drafted: %s.\n", s.Skipped)
		return err
	}

	if s.DryRun {
		fmt.Fprintf(r.w, "Would draft release %s for tag %s", s.Release.Name, s.Tag)
	} else {
		fmt.Fprintf(r.w, "Drafted release %s for tag %s: %s", s.Release.Name, s.Tag, s.ReleaseURL)
	}
	if s.Release.Prerelease {
		fmt.Fprint(r.w, " (prerelease)")
	}
	_, err := fmt.Fprintf(r.w, "\n\n%s\n", valueOr(s.Release.Body, "(no changes)"))
	return err
}
