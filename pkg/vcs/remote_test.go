package vcs

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRepoPrefersSlug(t *testing.T) {
	owner, repo, err := ResolveRepo("octo/widgets", "/nonexistent")
	require.NoError(t, err)
	assert.Equal(t, "octo", owner)
	assert.Equal(t, "widgets", repo)
}

func TestResolveRepoFromOrigin(t *testing.T) {
	dir := t.TempDir()
	r, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	_, err = r.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:octo/widgets.git"},
	})
	require.NoError(t, err)

	owner, repo, err := ResolveRepo("", dir)
	require.NoError(t, err)
	assert.Equal(t, "octo", owner)
	assert.Equal(t, "widgets", repo)
}

func TestResolveRepoWithoutRemote(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, _, err = ResolveRepo("", dir)
	assert.ErrorIs(t, err, ErrNoRepository)
}

func TestResolveRepoOutsideRepository(t *testing.T) {
	_, _, err := ResolveRepo("", t.TempDir())
	assert.ErrorIs(t, err, ErrNoRepository)
}
