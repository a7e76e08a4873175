package genconfig

import (
	"github.com/arthur-debert/dotstash/pkg/config"
	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/filesystem"
	"github.com/arthur-debert/dotstash/pkg/logging"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Settings are rendered as the file content
	Settings *config.Settings
	// Write saves the content to Path instead of only returning it
	Write bool
	// Path defaults to the XDG settings file
	Path       string
	Force      bool
	FileSystem types.FS
}

// GenConfig renders the effective settings and optionally writes them
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	if opts.Settings == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no settings to render")
	}

	content, err := config.GenerateSettingsContent(opts.Settings)
	if err != nil {
		return nil, err
	}
	result := &types.GenConfigResult{Content: string(content)}

	if !opts.Write {
		logger.Debug().Msg("Outputting settings to stdout")
		return result, nil
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	path := opts.Path
	if path == "" {
		path = config.SettingsPath()
	}

	if err := config.WriteSettingsFile(fs, path, content, opts.Force); err != nil {
		return nil, err
	}
	logger.Info().Str("path", path).Msg("Written settings file")
	result.Path = path
	return result, nil
}
