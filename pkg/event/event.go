// Package event reads the workflow event that triggered the run.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/go-github/v60/github"
)

const (
	// NameCreate is the event GitHub emits when a branch or tag is created.
	NameCreate = "create"
	// RefTypeTag marks a created tag, as opposed to "branch".
	RefTypeTag = "tag"
)

// Event holds the parts of a workflow event that matter for drafting releases.
type Event struct {
	Name    string
	RefType string
	Ref     string
}

// Load reads the event name from GITHUB_EVENT_NAME and, for create events,
// the reference from the JSON payload at GITHUB_EVENT_PATH.
func Load(getenv func(string) string) (Event, error) {
	ev := Event{Name: getenv("GITHUB_EVENT_NAME")}
	if ev.Name != NameCreate {
		return ev, nil
	}

	path := getenv("GITHUB_EVENT_PATH")
	if path == "" {
		return ev, fmt.Errorf("GITHUB_EVENT_PATH is not set for %s event", ev.Name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ev, fmt.Errorf("read event payload: %w", err)
	}

	var payload github.CreateEvent
	if err := json.Unmarshal(data, &payload); err != nil {
		return ev, fmt.Errorf("parse event payload %s: %w", path, err)
	}
	ev.RefType = payload.GetRefType()
	ev.Ref = payload.GetRef()
	return ev, nil
}

// TagCreated builds the event a pushed tag would produce. It is used when the
// tag is given on the command line instead of by a workflow.
func TagCreated(tag string) Event {
	return Event{Name: NameCreate, RefType: RefTypeTag, Ref: tag}
}

// CreatedTag returns the tag created by ev. ok is false for any other event,
// which is logged and is not an error.
func CreatedTag(ctx context.Context, logger *slog.Logger, ev Event) (tag string, ok bool) {
	if logger == nil {
		logger = slog.Default()
	}
	if ev.Name != NameCreate {
		logger.InfoContext(ctx, fmt.Sprintf("The event name was %s", ev.Name))
		return "", false
	}
	if ev.RefType != RefTypeTag {
		logger.InfoContext(ctx, "The created reference was a branch, not a tag", "ref_type", ev.RefType)
		return "", false
	}
	return ev.Ref, true
}
