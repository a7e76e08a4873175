package internal

import (
	"github.com/arthur-debert/dotstash/pkg/core"
	"github.com/arthur-debert/dotstash/pkg/filesystem"
	"github.com/arthur-debert/dotstash/pkg/linkstate"
	"github.com/arthur-debert/dotstash/pkg/logging"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// PipelineOptions contains options for running the load -> validate -> run pipeline
type PipelineOptions struct {
	Root       string
	ConfigPath string
	Home       string
	DryRun     bool
	Action     types.Action
	Entry      core.EntryFunc
	FileSystem types.FS
}

// RunPipeline loads the tracked set, rejects conflicts and runs every entry.
// Load errors come back with a nil result; a failed entry comes back with
// the outcomes up to and including it.
func RunPipeline(opts PipelineOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("commands.internal.pipeline")
	logger.Debug().
		Str("root", opts.Root).
		Str("config", opts.ConfigPath).
		Str("action", string(opts.Action)).
		Bool("dryRun", opts.DryRun).
		Msg("Starting pipeline")

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

	machine := linkstate.New(linkstate.Options{FS: fs, DryRun: opts.DryRun})
	return core.Run(machine, set, opts.Action, opts.Entry)
}
