package reporter

import (
	"io"

	"github.com/draft-release-action/pkg/app"
)

type Reporter interface {
	Report(s app.Summary) error
}

func New(format string, w io.Writer) Reporter {
	switch format {
	case "json":
		return &JSONReporter{w: w}
	case "table":
		return &TableReporter{w: w}
	default:
		return &TextReporter{w: w}
	}
}
