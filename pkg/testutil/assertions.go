package testutil

import (
	"os"
	"testing"

	"github.com/arthur-debert/dotstash/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSymlink checks that link is a symlink pointing exactly at target
func AssertSymlink(t *testing.T, fs types.FS, link, target string) {
	t.Helper()
	info, err := fs.Lstat(link)
	require.NoError(t, err, "expected symlink at %s", link)
	require.NotZero(t, info.Mode()&os.ModeSymlink, "%s should be a symlink", link)

	got, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got, "symlink %s target", link)
}

// AssertPlainFile checks that path is a regular file with the given content
func AssertPlainFile(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	info, err := fs.Lstat(path)
	require.NoError(t, err, "expected file at %s", path)
	assert.Zero(t, info.Mode()&os.ModeSymlink, "%s should not be a symlink", path)
	assert.False(t, info.IsDir(), "%s should not be a directory", path)

	AssertFileContent(t, fs, path, content)
}

// AssertFileContent checks the content at path, following symlinks
func AssertFileContent(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	assert.Equal(t, content, string(data), "content of %s", path)
}

// AssertNotExists checks that nothing, not even a dangling link, is at path
func AssertNotExists(t *testing.T, fs types.FS, path string) {
	t.Helper()
	_, err := fs.Lstat(path)
	assert.True(t, os.IsNotExist(err), "%s should not exist (err=%v)", path, err)
}
