package core_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/dotstash/pkg/config"
	"github.com/arthur-debert/dotstash/pkg/core"
	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/linkstate"
	"github.com/arthur-debert/dotstash/pkg/testutil"
	"github.com/arthur-debert/dotstash/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadOpts(env *testutil.TestEnvironment, configPath string) core.LoadOptions {
	return core.LoadOptions{
		Root:       env.Root,
		ConfigPath: configPath,
		Home:       env.HomeDir,
		FS:         env.FS,
	}
}

func newMachine(env *testutil.TestEnvironment, dryRun bool) *linkstate.Machine {
	logger := zerolog.Nop()
	return linkstate.New(linkstate.Options{FS: env.FS, DryRun: dryRun, Logger: &logger})
}

func TestLoadTrackedSet(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	path := env.WriteTrackedConfig(`{
  "shell": {".zshrc": "~/.zshrc", "env/profile": "~/.profile"},
  "system": {"hosts": "/etc/hosts"}
}`)

	set, err := core.LoadTrackedSet(loadOpts(env, path))
	require.NoError(t, err)

	assert.Equal(t, env.Root, set.Root)
	assert.Equal(t, []types.TrackedEntry{
		{Scope: "shell", Key: ".zshrc", OriginalPath: env.HomePath(".zshrc"), BackupPath: env.BackupPath("shell", ".zshrc")},
		{Scope: "shell", Key: "env/profile", OriginalPath: env.HomePath(".profile"), BackupPath: env.BackupPath("shell", "env/profile")},
		{Scope: "system", Key: "hosts", OriginalPath: "/etc/hosts", BackupPath: env.BackupPath("system", "hosts")},
	}, set.Entries)
}

func TestLoadTrackedSet_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		home    string
		code    errors.ErrorCode
	}{
		{"relative_original", `{"s": {"k": "relative/path"}}`, "/virtual/home", errors.ErrConfig},
		{"home_unknown", `{"s": {"k": "~/.k"}}`, "", errors.ErrConfig},
		{"nested_originals", `{"a": {"cfg": "~/.config"}, "b": {"nvim": "~/.config/nvim"}}`, "/virtual/home", errors.ErrConflict},
		{"original_inside_backup_root", `{"a": {"k": "/virtual/dotfiles/a/k/inner"}}`, "/virtual/home", errors.ErrConflict},
		{"malformed", `{"a": [`, "/virtual/home", errors.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
			path := env.WriteTrackedConfig(tt.content)
			opts := loadOpts(env, path)
			opts.Home = tt.home

			_, err := core.LoadTrackedSet(opts)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}

	t.Run("relative_root", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		opts := loadOpts(env, env.WriteTrackedConfig(`{}`))
		opts.Root = "dots"
		_, err := core.LoadTrackedSet(opts)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfig))
	})
}

func TestBuildTrackedSet_EntryDetails(t *testing.T) {
	cfg, err := config.ParseTracked([]byte("{\n  \"s\": {\"k\": \"rel\"}\n}"), "c.json")
	require.NoError(t, err)

	_, err = core.BuildTrackedSet(cfg, "/dots", "/home/u")
	require.Error(t, err)
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "s", details[errors.DetailScope])
	assert.Equal(t, "k", details[errors.DetailKey])
	assert.Equal(t, 2, details[errors.DetailLine])
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	set := types.TrackedSet{Root: env.Root, Entries: []types.TrackedEntry{
		env.Entry("a", "one", "one"),
		env.Entry("b", "two", "two"),
		env.Entry("c", "three", "three"),
	}}
	for _, e := range set.Entries {
		env.WriteFile(e.OriginalPath, e.Key)
	}
	env.Memory.WithError(testutil.OpWrite, set.Entries[1].BackupPath, stderrors.New("disk full"))

	result, err := core.Run(newMachine(env, false), set, types.ActionCollect, core.Collect)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	require.Len(t, result.Outcomes, 2)
	assert.Equal(t, types.OutcomeDone, result.Outcomes[0].Status)
	assert.Equal(t, types.OutcomeFailed, result.Outcomes[1].Status)
	assert.Equal(t, types.StepCopy, result.Outcomes[1].Step)

	testutil.AssertSymlink(t, env.FS, set.Entries[0].OriginalPath, set.Entries[0].BackupPath)
	testutil.AssertPlainFile(t, env.FS, set.Entries[2].OriginalPath, "three")
}

func TestRun_CollectRestoreRoundTrip(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	set := types.TrackedSet{Root: env.Root, Entries: []types.TrackedEntry{
		env.Entry("vim", ".vimrc", ".vimrc"),
		env.Entry("git", ".gitconfig", ".gitconfig"),
	}}
	env.WriteFile(set.Entries[0].OriginalPath, "set nu")
	m := newMachine(env, false)

	collected, err := core.Run(m, set, types.ActionCollect, core.Collect)
	require.NoError(t, err)
	assert.Equal(t, 1, collected.Count(types.OutcomeDone))
	assert.Equal(t, 1, collected.Count(types.OutcomeSkipped))
	assert.Equal(t, types.ActionCollect, collected.Action)

	restored, err := core.Run(m, set, types.ActionRestore, core.Restore(false))
	require.NoError(t, err)
	assert.Equal(t, 1, restored.Count(types.OutcomeDone))
	assert.Equal(t, types.SkipBackupAbsent, restored.Outcomes[1].Reason)
	testutil.AssertPlainFile(t, env.FS, set.Entries[0].OriginalPath, "set nu")
}

func TestDescribe(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	plain := env.Entry("a", "plain", ".plain")
	linked := env.Entry("b", "linked", ".linked")
	foreign := env.Entry("c", "foreign", ".foreign")
	env.WriteFile(plain.OriginalPath, "p")
	env.WriteFile(linked.BackupPath, "l")
	env.Symlink(linked.BackupPath, linked.OriginalPath)
	env.WriteFile(foreign.BackupPath, "f")
	env.Symlink("/elsewhere", foreign.OriginalPath)
	set := types.TrackedSet{Root: env.Root, Entries: []types.TrackedEntry{plain, linked, foreign}}
	_, writesBefore := env.Memory.Stats()

	statuses, err := core.Describe(newMachine(env, true), set)
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	assert.Equal(t, types.StatePlainFile, statuses[0].State)
	assert.False(t, statuses[0].BackupExists)
	assert.Equal(t, types.OutcomePlanned, statuses[0].Collect.Status)
	assert.Equal(t, types.SkipBackupAbsent, statuses[0].Restore.Reason)

	assert.Equal(t, types.StateLinkedCurrent, statuses[1].State)
	assert.Equal(t, types.SkipAlreadyLinked, statuses[1].Collect.Reason)
	assert.Equal(t, types.OutcomePlanned, statuses[1].Restore.Status)

	assert.Equal(t, types.StateLinkedStale, statuses[2].State)
	assert.True(t, statuses[2].Restore.Failed())
	assert.True(t, errors.IsErrorCode(statuses[2].Restore.Err, errors.ErrIntegrity))

	_, writesAfter := env.Memory.Stats()
	assert.Equal(t, writesBefore, writesAfter)

	_, err = core.Describe(newMachine(env, false), set)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}
