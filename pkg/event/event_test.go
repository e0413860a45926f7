package event

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func writePayload(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCreateTagEvent(t *testing.T) {
	path := writePayload(t, `{"ref": "v1.0.0", "ref_type": "tag", "master_branch": "main"}`)

	ev, err := Load(envMap(map[string]string{
		"GITHUB_EVENT_NAME": "create",
		"GITHUB_EVENT_PATH": path,
	}))
	require.NoError(t, err)
	assert.Equal(t, Event{Name: "create", RefType: "tag", Ref: "v1.0.0"}, ev)
}

func TestLoadOtherEventSkipsPayload(t *testing.T) {
	ev, err := Load(envMap(map[string]string{
		"GITHUB_EVENT_NAME": "push",
		"GITHUB_EVENT_PATH": "/does/not/exist.json",
	}))
	require.NoError(t, err)
	assert.Equal(t, Event{Name: "push"}, ev)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := Load(envMap(map[string]string{"GITHUB_EVENT_NAME": "create"}))
		require.Error(t, err)
	})

	t.Run("malformed payload", func(t *testing.T) {
		path := writePayload(t, `{"ref": `)
		_, err := Load(envMap(map[string]string{
			"GITHUB_EVENT_NAME": "create",
			"GITHUB_EVENT_PATH": path,
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse event payload")
	})
}

func TestCreatedTag(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := context.Background()

	tag, ok := CreatedTag(ctx, logger, TagCreated("v1.0.0"))
	assert.True(t, ok)
	assert.Equal(t, "v1.0.0", tag)

	_, ok = CreatedTag(ctx, logger, Event{Name: "create", RefType: "branch", Ref: "feature"})
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "branch, not a tag")

	buf.Reset()
	_, ok = CreatedTag(ctx, logger, Event{Name: "push"})
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "The event name was push")
}
