// Package action implements the GitHub Actions side of a run: reading
// inputs, setting outputs and reporting failure through workflow commands.
package action

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
)

var errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()

// Action exposes the runner environment of a single run.
type Action struct {
	getenv func(string) string
	stdout io.Writer
	stderr io.Writer
	failed bool
}

// New returns an Action backed by the given environment and writers.
func New(getenv func(string) string, stdout, stderr io.Writer) *Action {
	return &Action{getenv: getenv, stdout: stdout, stderr: stderr}
}

// FromOS returns an Action backed by the process environment.
func FromOS() *Action {
	return New(os.Getenv, os.Stdout, os.Stderr)
}

// InActions reports whether the process runs inside a GitHub Actions runner.
func (a *Action) InActions() bool {
	return a.getenv("GITHUB_ACTIONS") == "true"
}

// Debug reports whether step debug logging was requested for the run.
func (a *Action) Debug() bool {
	return a.getenv("RUNNER_DEBUG") == "1"
}

// Input returns the value of the named action input, trimmed.
func (a *Action) Input(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	return strings.TrimSpace(a.getenv(key))
}

// SetOutput records a step output. It appends to the GITHUB_OUTPUT file when
// the runner provides one and falls back to the set-output command otherwise.
func (a *Action) SetOutput(name, value string) error {
	path := a.getenv("GITHUB_OUTPUT")
	if path == "" {
		_, err := fmt.Fprintf(a.stdout, "::set-output name=%s::%s\n", escapeProperty(name), escapeData(value))
		return err
	}

	delimiter, err := newDelimiter()
	if err != nil {
		return err
	}
	if strings.Contains(name, delimiter) || strings.Contains(value, delimiter) {
		return fmt.Errorf("output %s contains the delimiter %s", name, delimiter)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter); err != nil {
		return fmt.Errorf("write output %s: %w", name, err)
	}
	return nil
}

// SetFailed reports msg as an error and marks the run as failed.
func (a *Action) SetFailed(msg string) {
	a.failed = true
	if a.InActions() {
		fmt.Fprintf(a.stdout, "::error::%s\n", escapeData(msg))
		return
	}
	fmt.Fprintf(a.stderr, "%s: %s\n", errorLabel("Error"), msg)
}

// ExitCode is 1 once SetFailed has been called and 0 otherwise.
func (a *Action) ExitCode() int {
	if a.failed {
		return 1
	}
	return 0
}

// NewLogger returns a text logger on stderr. Debug records are only emitted
// when debug is set or the runner asked for step debug logging.
func (a *Action) NewLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug || a.Debug() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

func newDelimiter() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate output delimiter: %w", err)
	}
	return "ghadelimiter_" + hex.EncodeToString(b), nil
}

func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

func escapeProperty(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	return strings.ReplaceAll(s, ",", "%2C")
}
