package collect

import (
	"github.com/arthur-debert/dotstash/pkg/commands/internal"
	"github.com/arthur-debert/dotstash/pkg/core"
	"github.com/arthur-debert/dotstash/pkg/logging"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// CollectOptions holds options for the collect command
type CollectOptions struct {
	// Root is the absolute backup root
	Root string
	// ConfigPath is the tracked config file
	ConfigPath string
	// Home is what ~/ expands to in original paths
	Home       string
	DryRun     bool
	FileSystem types.FS // Allow injecting a filesystem for testing
}

// CollectAll moves every tracked file into the backup root and links it back
// to where it was.
func CollectAll(opts CollectOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("commands.collect")
	logger.Debug().Str("command", "CollectAll").Str("root", opts.Root).Msg("Executing command")

	return internal.RunPipeline(internal.PipelineOptions{
		Root:       opts.Root,
		ConfigPath: opts.ConfigPath,
		Home:       opts.Home,
		DryRun:     opts.DryRun,
		Action:     types.ActionCollect,
		Entry:      core.Collect,
		FileSystem: opts.FileSystem,
	})
}
