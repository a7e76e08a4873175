package config

import (
	"bytes"
	"path/filepath"

	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# dotstash settings
# Generated by 'dotstash genconfig'. Values here are overridden by DOTFILES,
# DOTSTASH_* environment variables and command-line flags.

`

// GenerateSettingsContent renders s as a settings file
func GenerateSettingsContent(s *Settings) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(s); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode settings")
	}
	return buf.Bytes(), nil
}

// ParseSettingsContent decodes a settings file written by
// GenerateSettingsContent
func ParseSettingsContent(data []byte) (*Settings, error) {
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to parse settings")
	}
	return &s, nil
}

// WriteSettingsFile writes content to path, creating parent directories. An
// existing file is only replaced when force is set.
func WriteSettingsFile(fs types.FS, path string, content []byte, force bool) error {
	if _, err := fs.Lstat(path); err == nil && !force {
		return errors.Newf(errors.ErrInvalidInput, "%s already exists (use --force to overwrite)", path).
			WithDetail(errors.DetailPath, path)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create %s", filepath.Dir(path))
	}
	if err := fs.WriteFile(path, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return nil
}
