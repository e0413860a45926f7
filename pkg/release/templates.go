package release

import (
	"bytes"
	"fmt"
	"text/template"
)

// DefaultBodyTemplate renders the changelog as the whole release body.
const DefaultBodyTemplate = "{{ .Changelog }}"

type templateData struct {
	Tag       string
	Version   string
	Changelog string
}

func parseBodyTemplate(text string) (*template.Template, error) {
	if text == "" {
		text = DefaultBodyTemplate
	}
	tmpl, err := template.New("body").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse body template: %w", err)
	}
	return tmpl, nil
}

func renderBody(tmpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render body template: %w", err)
	}
	return buf.String(), nil
}
