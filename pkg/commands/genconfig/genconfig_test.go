package genconfig

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotstash/pkg/config"
	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/filesystem"
	"github.com/arthur-debert/dotstash/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settings() *config.Settings {
	return &config.Settings{
		Root:       "/home/u/dotfiles",
		ConfigFile: config.DefaultConfigFile,
		Output:     config.OutputSettings{Format: "auto"},
	}
}

func TestGenConfig_Stdout(t *testing.T) {
	result, err := GenConfig(GenConfigOptions{Settings: settings()})
	require.NoError(t, err)
	assert.Contains(t, result.Content, "root = '/home/u/dotfiles'")
	assert.Empty(t, result.Path)
}

func TestGenConfig_Write(t *testing.T) {
	// Settings files are regular files, so afero's in-memory fs is enough
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	path := "/virtual/xdg/dotstash/config.toml"

	result, err := GenConfig(GenConfigOptions{Settings: settings(), Write: true, Path: path, FileSystem: fsys})
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
	testutil.AssertFileContent(t, fsys, path, result.Content)

	_, err = GenConfig(GenConfigOptions{Settings: settings(), Write: true, Path: path, FileSystem: fsys})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "refuses to overwrite without force")

	_, err = GenConfig(GenConfigOptions{Settings: settings(), Write: true, Path: path, Force: true, FileSystem: fsys})
	assert.NoError(t, err)
}

func TestGenConfig_DefaultPath(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	result, err := GenConfig(GenConfigOptions{Settings: settings(), Write: true})
	require.NoError(t, err)
	assert.Equal(t, config.SettingsPath(), result.Path)
	assert.Equal(t, "config.toml", filepath.Base(result.Path))
}

func TestGenConfig_NoSettings(t *testing.T) {
	_, err := GenConfig(GenConfigOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
