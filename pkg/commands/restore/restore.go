package restore

import (
	"github.com/arthur-debert/dotstash/pkg/commands/internal"
	"github.com/arthur-debert/dotstash/pkg/core"
	"github.com/arthur-debert/dotstash/pkg/logging"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// RestoreOptions holds options for the restore command
type RestoreOptions struct {
	Root       string
	ConfigPath string
	Home       string
	// Force allows overwriting plain files at original paths
	Force      bool
	DryRun     bool
	FileSystem types.FS // Allow injecting a filesystem for testing
}

// RestoreAll replaces every link to a backup with a real copy of it
func RestoreAll(opts RestoreOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("commands.restore")
	logger.Debug().
		Str("command", "RestoreAll").
		Str("root", opts.Root).
		Bool("force", opts.Force).
		Msg("Executing command")

	return internal.RunPipeline(internal.PipelineOptions{
		Root:       opts.Root,
		ConfigPath: opts.ConfigPath,
		Home:       opts.Home,
		DryRun:     opts.DryRun,
		Action:     types.ActionRestore,
		Entry:      core.Restore(opts.Force),
		FileSystem: opts.FileSystem,
	})
}
