package initialize

import (
	"path/filepath"

	"github.com/arthur-debert/dotstash/pkg/config"
	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/filesystem"
	"github.com/arthur-debert/dotstash/pkg/logging"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// InitOptions defines the options for the Init command.
type InitOptions struct {
	// ConfigPath is the tracked config file to create
	ConfigPath string
	FileSystem types.FS
}

// Init creates an empty tracked config. An existing file is left untouched.
func Init(opts InitOptions) (*types.InitResult, error) {
	log := logging.GetLogger("commands.initialize")
	log.Debug().Str("command", "Init").Str("config", opts.ConfigPath).Msg("Executing command")

	if opts.ConfigPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "config path cannot be empty")
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	dir := filepath.Dir(opts.ConfigPath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to create %s", dir)
	}

	created, err := config.WriteEmpty(fs, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if created {
		log.Info().Str("config", opts.ConfigPath).Msg("Created tracked config")
	} else {
		log.Info().Str("config", opts.ConfigPath).Msg("Tracked config already exists")
	}
	return &types.InitResult{ConfigPath: opts.ConfigPath, Created: created}, nil
}
