package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	ws, err := NewWorkspace(filepath.Join(t.TempDir(), "work"))
	require.NoError(t, err)
	return ws
}

func TestWorkspace_CreateSaveRemove(t *testing.T) {
	ws := newTestWorkspace(t)

	dir, err := ws.Create("standup_1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(ws.Root(), "standup_1"), dir)

	path, n, err := ws.Save("standup_1", "original.m4a", strings.NewReader("audio bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("audio bytes")), n)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "normalized.wav"), []byte("x"), 0o640))

	require.NoError(t, ws.Remove("standup_1"))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestWorkspace_CreateTwiceFails(t *testing.T) {
	ws := newTestWorkspace(t)

	_, err := ws.Create("standup_1")
	require.NoError(t, err)
	_, err = ws.Create("standup_1")
	assert.Error(t, err)
}

func TestWorkspace_RemoveIsIdempotent(t *testing.T) {
	ws := newTestWorkspace(t)

	_, err := ws.Create("standup_1")
	require.NoError(t, err)

	assert.NoError(t, ws.Remove("standup_1"))
	assert.NoError(t, ws.Remove("standup_1"))
	assert.NoError(t, ws.Remove("standup_never_created"))
}

func TestWorkspace_RemoveLeavesOtherJobsAlone(t *testing.T) {
	ws := newTestWorkspace(t)

	_, err := ws.Create("standup_a")
	require.NoError(t, err)
	_, err = ws.Create("standup_b")
	require.NoError(t, err)
	other, _, err := ws.Save("standup_b", "original.wav", strings.NewReader("keep me"))
	require.NoError(t, err)

	require.NoError(t, ws.Remove("standup_a"))

	data, err := os.ReadFile(other)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestWorkspace_RejectsUnscopedIDs(t *testing.T) {
	ws := newTestWorkspace(t)
	sibling := filepath.Join(filepath.Dir(ws.Root()), "precious.txt")
	require.NoError(t, os.WriteFile(sibling, []byte("x"), 0o640))

	for _, id := range []string{"", ".", "..", "../precious.txt", "a/b", "/etc"} {
		t.Run(id, func(t *testing.T) {
			assert.ErrorIs(t, ws.Remove(id), ErrUnscopedPath)
			_, err := ws.Create(id)
			assert.ErrorIs(t, err, ErrUnscopedPath)
		})
	}

	_, err := os.Stat(sibling)
	assert.NoError(t, err)
}

func TestWorkspace_RemoveDoesNotFollowSymlinks(t *testing.T) {
	ws := newTestWorkspace(t)
	outside := t.TempDir()
	kept := filepath.Join(outside, "kept.txt")
	require.NoError(t, os.WriteFile(kept, []byte("x"), 0o640))
	require.NoError(t, os.Symlink(outside, filepath.Join(ws.Root(), "standup_link")))

	require.NoError(t, ws.Remove("standup_link"))

	_, err := os.Stat(kept)
	assert.NoError(t, err)
	_, err = os.Lstat(filepath.Join(ws.Root(), "standup_link"))
	assert.True(t, os.IsNotExist(err))
}

func TestWorkspace_SaveRejectsPathNames(t *testing.T) {
	ws := newTestWorkspace(t)
	_, err := ws.Create("standup_1")
	require.NoError(t, err)

	_, _, err = ws.Save("standup_1", "../escape.wav", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnscopedPath)
}

func TestWorkspace_StaleDirs(t *testing.T) {
	ws := newTestWorkspace(t)
	oldDir, err := ws.Create("standup_old")
	require.NoError(t, err)
	_, err = ws.Create("standup_new")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(ws.Root(), "stray.txt"), nil, 0o640))

	past := time.Now().Add(-3 * time.Hour)
	require.NoError(t, os.Chtimes(oldDir, past, past))

	ids, err := ws.StaleDirs(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{"standup_old"}, ids)
}
