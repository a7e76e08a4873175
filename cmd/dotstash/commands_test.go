package dotstash

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes a fresh root command and returns its stdout
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCollectThenRestore(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteTrackedConfig(`{"vim": {".vimrc": "~/.vimrc"}}`)
	env.WriteFile(env.HomePath(".vimrc"), "set nocompatible")

	out, err := runCmd(t, "collect", "--root", env.Root, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "collected")
	assert.Contains(t, out, "vim/.vimrc")
	testutil.AssertSymlink(t, env.FS, env.HomePath(".vimrc"), env.BackupPath("vim", ".vimrc"))
	testutil.AssertPlainFile(t, env.FS, env.BackupPath("vim", ".vimrc"), "set nocompatible")

	out, err = runCmd(t, "restore", "--root", env.Root, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "restored")
	testutil.AssertPlainFile(t, env.FS, env.HomePath(".vimrc"), "set nocompatible")
	testutil.AssertPlainFile(t, env.FS, env.BackupPath("vim", ".vimrc"), "set nocompatible")
}

func TestCollect_DryRunChangesNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteTrackedConfig(`{"shell": {"zshrc": "~/.zshrc"}}`)
	env.WriteFile(env.HomePath(".zshrc"), "export A=1")

	out, err := runCmd(t, "collect", "--dry-run", "--root", env.Root, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "would collect")
	testutil.AssertPlainFile(t, env.FS, env.HomePath(".zshrc"), "export A=1")
	testutil.AssertNotExists(t, env.FS, env.BackupPath("shell", "zshrc"))
}

func TestCollect_RootFromEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteTrackedConfig(`{"git": {"gitconfig": "~/.gitconfig"}}`)
	env.WriteFile(env.HomePath(".gitconfig"), "[user]")
	t.Setenv("DOTFILES", env.Root)

	_, err := runCmd(t, "collect", "--format", "json")
	require.NoError(t, err)
	testutil.AssertSymlink(t, env.FS, env.HomePath(".gitconfig"), env.BackupPath("git", "gitconfig"))
}

func TestCollect_ConflictAbortsBeforeChanges(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteTrackedConfig(`{"app": {"conf": "~/.app", "conf-inner": "~/.app/inner"}}`)
	env.WriteFile(env.HomePath(".app", "inner"), "x")

	_, err := runCmd(t, "collect", "--root", env.Root)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConflict))
	testutil.AssertPlainFile(t, env.FS, env.HomePath(".app", "inner"), "x")
	testutil.AssertNotExists(t, env.FS, filepath.Join(env.Root, "app"))
}

func TestCollect_MissingTrackedConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, err := runCmd(t, "collect", "--root", env.Root)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "dotstash init")
}

func TestRestore_ForeignSymlinkIsIntegrityError(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteTrackedConfig(`{"vim": {".vimrc": "~/.vimrc"}}`)
	env.WriteFile(env.BackupPath("vim", ".vimrc"), "backup")
	elsewhere := env.HomePath("elsewhere")
	env.WriteFile(elsewhere, "other")
	env.Symlink(elsewhere, env.HomePath(".vimrc"))

	out, err := runCmd(t, "restore", "--root", env.Root, "--format", "text")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIntegrity))
	assert.Contains(t, out, "failed")
	testutil.AssertSymlink(t, env.FS, env.HomePath(".vimrc"), elsewhere)
}

func TestRestore_PlainFileNeedsForce(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteTrackedConfig(`{"vim": {".vimrc": "~/.vimrc"}}`)
	env.WriteFile(env.BackupPath("vim", ".vimrc"), "backup")
	env.WriteFile(env.HomePath(".vimrc"), "local edit")

	out, err := runCmd(t, "restore", "--root", env.Root, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "use --force")
	testutil.AssertPlainFile(t, env.FS, env.HomePath(".vimrc"), "local edit")

	_, err = runCmd(t, "restore", "--force", "--root", env.Root, "--format", "text")
	require.NoError(t, err)
	testutil.AssertPlainFile(t, env.FS, env.HomePath(".vimrc"), "backup")
}

func TestStatus_JSON(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteTrackedConfig(`{"vim": {".vimrc": "~/.vimrc"}, "git": {"gitconfig": "~/.gitconfig"}}`)
	env.WriteFile(env.HomePath(".vimrc"), "set nu")

	out, err := runCmd(t, "status", "--root", env.Root, "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		Root    string `json:"root"`
		Entries []struct {
			State   string `json:"state"`
			Collect struct {
				Status string `json:"status"`
			} `json:"collect"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, env.Root, decoded.Root)
	require.Len(t, decoded.Entries, 2)
	assert.Equal(t, "plain", decoded.Entries[0].State)
	assert.Equal(t, "planned", decoded.Entries[0].Collect.Status)
	assert.Equal(t, "untracked", decoded.Entries[1].State)

	testutil.AssertPlainFile(t, env.FS, env.HomePath(".vimrc"), "set nu")
}

func TestInit(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	path := filepath.Join(env.Root, testutil.TrackedConfigName)

	out, err := runCmd(t, "init", "--root", env.Root, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "created")
	testutil.AssertFileContent(t, env.FS, path, "{}\n")

	require.NoError(t, os.WriteFile(path, []byte(`{"vim": {}}`), 0644))
	out, err = runCmd(t, "init", "--root", env.Root, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "exists")
	testutil.AssertFileContent(t, env.FS, path, `{"vim": {}}`)
}

func TestGenConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := runCmd(t, "genconfig", "--root", env.Root)
	require.NoError(t, err)
	assert.Contains(t, out, "root = '"+env.Root+"'")
	assert.Contains(t, out, "[output]")
}

func TestUnknownFormat(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteTrackedConfig(`{}`)

	_, err := runCmd(t, "status", "--root", env.Root, "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestVersionAndNoCommand(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dotstash version")

	_, err = runCmd(t)
	assert.EqualError(t, err, MsgErrNoCommand)
}

func TestHelpTopics(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := runCmd(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "recovery")
	assert.Contains(t, out, "tracked-config")
	assert.Contains(t, out, "--force")

	out, err = runCmd(t, "help", "recovery")
	require.NoError(t, err)
	assert.Contains(t, out, "Recovering")
}
