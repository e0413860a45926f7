package reporter

import (
	"encoding/json"
	"io"

	"github.com/draft-release-action/pkg/app"
)

type JSONReporter struct {
	w io.Writer
}

func (r *JSONReporter) Report(s app.Summary) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
