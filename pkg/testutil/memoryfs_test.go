package testutil

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS_FilesAndDirs(t *testing.T) {
	m := NewMemoryFS()

	err := m.WriteFile("/a/b.txt", []byte("x"), 0644)
	assert.ErrorIs(t, err, fs.ErrNotExist, "parent must exist")

	require.NoError(t, m.MkdirAll("/a/sub", 0755))
	require.NoError(t, m.WriteFile("/a/b.txt", []byte("x"), 0644))

	data, err := m.ReadFile("/a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	entries, err := m.ReadDir("/a")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b.txt", entries[0].Name())
	assert.True(t, entries[1].IsDir())

	assert.Error(t, m.Remove("/a"), "non-empty directory")
	require.NoError(t, m.RemoveAll("/a"))
	_, err = m.Lstat("/a/b.txt")
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, m.RemoveAll("/missing"))
}

func TestMemoryFS_Symlinks(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/d", 0755))
	require.NoError(t, m.WriteFile("/d/target", []byte("t"), 0644))
	require.NoError(t, m.Symlink("/d/target", "/d/link"))

	info, err := m.Lstat("/d/link")
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	info, err = m.Stat("/d/link")
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&os.ModeSymlink, "Stat follows links")

	data, err := m.ReadFile("/d/link")
	require.NoError(t, err)
	assert.Equal(t, "t", string(data))

	err = m.Symlink("/d/target", "/d/link")
	assert.ErrorIs(t, err, fs.ErrExist)

	err = m.Symlink("/d/target", "/nope/link")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = m.Readlink("/d/target")
	assert.Error(t, err, "not a link")

	require.NoError(t, m.Remove("/d/link"))
	_, err = m.Stat("/d/target")
	assert.NoError(t, err, "removing a link keeps its target")

	require.NoError(t, m.Symlink("/d/gone", "/d/dangling"))
	_, err = m.Stat("/d/dangling")
	assert.True(t, os.IsNotExist(err))
	_, err = m.Lstat("/d/dangling")
	assert.NoError(t, err)
}

func TestMemoryFS_ErrorInjection(t *testing.T) {
	boom := errors.New("boom")
	m := NewMemoryFS().WithError(OpSymlink, "/x/link", boom)
	require.NoError(t, m.MkdirAll("/x", 0755))

	err := m.Symlink("/x/t", "/x/link")
	assert.ErrorIs(t, err, boom)

	require.NoError(t, m.WriteFile("/x/f", nil, 0644), "other operations are unaffected")

	m.ClearErrors()
	assert.NoError(t, m.Symlink("/x/t", "/x/link"))

	_, writes := m.Stats()
	assert.Equal(t, 3, writes)
}
