package status

import (
	"github.com/arthur-debert/dotstash/pkg/core"
	"github.com/arthur-debert/dotstash/pkg/filesystem"
	"github.com/arthur-debert/dotstash/pkg/linkstate"
	"github.com/arthur-debert/dotstash/pkg/logging"
	"github.com/arthur-debert/dotstash/pkg/types"
	"github.com/rs/zerolog"
)

// StatusOptions holds options for the status command
type StatusOptions struct {
	Root       string
	ConfigPath string
	Home       string
	FileSystem types.FS // Allow injecting a filesystem for testing
}

// Status reports the state of every tracked entry without changing anything
func Status(opts StatusOptions) (*types.StatusResult, error) {
	logger := logging.GetLogger("commands.status")
	logger.Debug().Str("command", "Status").Str("root", opts.Root).Msg("Executing command")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	set, err := core.LoadTrackedSet(core.LoadOptions{
		Root:       opts.Root,
		ConfigPath: opts.ConfigPath,
		Home:       opts.Home,
		FS:         fs,
	})
	if err != nil {
		return nil, err
	}

	// Planned outcomes are reported, not logged
	quiet := zerolog.Nop()
	planner := linkstate.New(linkstate.Options{FS: fs, DryRun: true, Logger: &quiet})
	entries, err := core.Describe(planner, set)
	if err != nil {
		return nil, err
	}

	return &types.StatusResult{
		Root:       set.Root,
		ConfigPath: opts.ConfigPath,
		Entries:    entries,
	}, nil
}
