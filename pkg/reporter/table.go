package reporter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/draft-release-action/pkg/app"
)

type TableReporter struct {
	w io.Writer
}

func (r *TableReporter) Report(s app.Summary) error {
	w := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tNAME\tPRERELEASE\tCHANGES\tSTATUS\tURL")
	fmt.Fprintln(w, "---\t----\t----------\t-------\t------\t---")

	name, prerelease, changes := "-", "-", "0"
	if s.Release != nil {
		name = s.Release.Name
		prerelease = fmt.Sprintf("%t", s.Release.Prerelease)
		changes = fmt.Sprintf("%d", countEntries(s.Release.Body))
	}

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		valueOr(s.Tag, "(none)"),
		name,
		prerelease,
		changes,
		status(s),
		valueOr(s.ReleaseURL, "-"),
	)
	return w.Flush()
}

func countEntries(body string) int {
	n := 0
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "- ") {
			n++
		}
	}
	return n
}

func status(s app.Summary) string {
	switch {
	case s.Skipped != "":
		return "skipped: " + s.Skipped
	case s.DryRun:
		return "dry-run"
	default:
		return "created"
	}
}

func valueOr(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return val
}
