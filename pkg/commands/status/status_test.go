package status

import (
	"testing"

	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/testutil"
	"github.com/arthur-debert/dotstash/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	path := env.WriteTrackedConfig(`{
  "vim": {".vimrc": "~/.vimrc"},
  "shell": {".zshrc": "~/.zshrc"},
  "git": {".gitconfig": "~/.gitconfig"}
}`)
	env.WriteFile(env.BackupPath("vim", ".vimrc"), "v")
	env.Symlink(env.BackupPath("vim", ".vimrc"), env.HomePath(".vimrc"))
	env.WriteFile(env.HomePath(".zshrc"), "z")
	_, writesBefore := env.Memory.Stats()

	result, err := Status(StatusOptions{
		Root:       env.Root,
		ConfigPath: path,
		Home:       env.HomeDir,
		FileSystem: env.FS,
	})
	require.NoError(t, err)

	assert.Equal(t, env.Root, result.Root)
	assert.Equal(t, path, result.ConfigPath)
	require.Len(t, result.Entries, 3)

	assert.Equal(t, types.StateLinkedCurrent, result.Entries[0].State)
	assert.True(t, result.Entries[0].BackupExists)
	assert.Equal(t, types.OutcomePlanned, result.Entries[0].Restore.Status)

	assert.Equal(t, types.StatePlainFile, result.Entries[1].State)
	assert.Equal(t, types.OutcomePlanned, result.Entries[1].Collect.Status)

	assert.Equal(t, types.StateUntracked, result.Entries[2].State)
	assert.Equal(t, types.SkipOriginalAbsent, result.Entries[2].Collect.Reason)
	assert.Equal(t, types.SkipBackupAbsent, result.Entries[2].Restore.Reason)

	_, writesAfter := env.Memory.Stats()
	assert.Equal(t, writesBefore, writesAfter)
}

func TestStatus_ConfigError(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	path := env.WriteTrackedConfig(`{"s": {"k": "relative"}}`)

	_, err := Status(StatusOptions{Root: env.Root, ConfigPath: path, Home: env.HomeDir, FileSystem: env.FS})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfig))
}
