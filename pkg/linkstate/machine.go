package linkstate

import (
	stderrors "errors"

	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/logging"
	"github.com/arthur-debert/dotstash/pkg/pathops"
	"github.com/arthur-debert/dotstash/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the state machine
type Options struct {
	// FS defaults to the OS filesystem
	FS     types.FS
	DryRun bool
	// Logger defaults to the "linkstate" component logger
	Logger *zerolog.Logger
}

// Machine runs collect and restore for single entries
type Machine struct {
	fs     types.FS
	ops    *pathops.Ops
	dryRun bool
	logger zerolog.Logger
}

// New creates a new state machine
func New(opts Options) *Machine {
	logger := logging.GetLogger("linkstate")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	ops := pathops.New(opts.FS)
	return &Machine{
		fs:     ops.FS(),
		ops:    ops,
		dryRun: opts.DryRun,
		logger: logger,
	}
}

// DryRun reports whether the machine only plans changes
func (m *Machine) DryRun() bool {
	return m.dryRun
}

// Inspect returns the live state of entry
func (m *Machine) Inspect(entry types.TrackedEntry) (types.LinkState, error) {
	return Inspect(m.fs, entry.OriginalPath, entry.BackupPath)
}

// BackupExists reports whether entry's backup is present
func (m *Machine) BackupExists(entry types.TrackedEntry) (bool, error) {
	return m.ops.Exists(entry.BackupPath)
}

// Collect converts a plain file at the entry's original path into a symlink
// to its backup. Missing originals and existing symlinks of any kind are
// skipped.
func (m *Machine) Collect(entry types.TrackedEntry) types.Outcome {
	out := types.Outcome{Entry: entry, Action: types.ActionCollect}

	state, err := m.Inspect(entry)
	out.State = state
	if err != nil {
		return m.fail(out, types.StepInspect, err)
	}

	switch state {
	case types.StateUntracked:
		return m.skip(out, types.SkipOriginalAbsent)
	case types.StateLinkedCurrent, types.StateLinkedStale:
		return m.skip(out, types.SkipAlreadyLinked)
	}

	if m.dryRun {
		return m.plan(out)
	}

	backupExists, err := m.ops.Exists(entry.BackupPath)
	if err != nil {
		return m.fail(out, types.StepInspect, err)
	}
	if backupExists {
		m.logger.Warn().
			Str("entry", entry.Name()).
			Str("backup", entry.BackupPath).
			Msg("Overwriting existing backup")
		if err := m.ops.Remove(entry.BackupPath); err != nil {
			return m.fail(out, types.StepCopy, err)
		}
	}

	if err := m.ops.Copy(entry.OriginalPath, entry.BackupPath); err != nil {
		return m.fail(out, types.StepCopy, err)
	}
	if err := m.ops.Remove(entry.OriginalPath); err != nil {
		return m.fail(out, types.StepRemove, err)
	}
	if err := m.ops.CreateSymlink(entry.BackupPath, entry.OriginalPath); err != nil {
		out.Critical = true
		return m.fail(out, types.StepSymlink, err)
	}

	return m.done(out)
}

// Restore converts the symlink at the entry's original path back into a
// plain copy of the backup. A plain file is only overwritten when force is
// set. A missing original is recreated from the backup.
func (m *Machine) Restore(entry types.TrackedEntry, force bool) types.Outcome {
	out := types.Outcome{Entry: entry, Action: types.ActionRestore}

	state, err := m.Inspect(entry)
	out.State = state
	if err != nil {
		return m.fail(out, types.StepInspect, err)
	}

	backupExists, err := m.ops.Exists(entry.BackupPath)
	if err != nil {
		return m.fail(out, types.StepInspect, err)
	}
	if !backupExists {
		return m.skip(out, types.SkipBackupAbsent)
	}

	switch state {
	case types.StatePlainFile:
		if !force {
			return m.skip(out, types.SkipNeedsForce)
		}
	case types.StateLinkedCurrent, types.StateLinkedStale:
		target, err := m.ops.ReadLinkTarget(entry.OriginalPath)
		if err != nil {
			return m.fail(out, types.StepReadlink, err)
		}
		if !SameTarget(entry.OriginalPath, target, entry.BackupPath) {
			err := errors.Newf(errors.ErrIntegrity,
				"%s links to %s, expected %s", entry.OriginalPath, target, entry.BackupPath).
				WithDetail("target", target)
			return m.fail(out, types.StepReadlink, err)
		}
	}

	if m.dryRun {
		return m.plan(out)
	}

	if state != types.StateUntracked {
		if err := m.ops.Remove(entry.OriginalPath); err != nil {
			return m.fail(out, types.StepRemove, err)
		}
	}
	if err := m.ops.Copy(entry.BackupPath, entry.OriginalPath); err != nil {
		return m.fail(out, types.StepCopy, err)
	}

	return m.done(out)
}

func (m *Machine) skip(out types.Outcome, reason types.SkipReason) types.Outcome {
	out.Status = types.OutcomeSkipped
	out.Reason = reason

	event := m.logger.Info().
		Str("action", string(out.Action)).
		Str("entry", out.Entry.Name()).
		Str("state", out.State.String()).
		Str("reason", string(reason))
	if reason == types.SkipNeedsForce {
		event = event.Str("hint", "use --force to overwrite the existing file")
	}
	event.Msg("Skipped")
	return out
}

func (m *Machine) plan(out types.Outcome) types.Outcome {
	out.Status = types.OutcomePlanned
	m.logger.Info().
		Str("action", string(out.Action)).
		Str("entry", out.Entry.Name()).
		Str("state", out.State.String()).
		Msg("Dry run - no changes made")
	return out
}

func (m *Machine) done(out types.Outcome) types.Outcome {
	out.Status = types.OutcomeDone
	m.logger.Info().
		Str("action", string(out.Action)).
		Str("entry", out.Entry.Name()).
		Str("original", out.Entry.OriginalPath).
		Str("backup", out.Entry.BackupPath).
		Msg("Entry converted")
	return out
}

// fail records the failed step and attaches the entry's coordinates to err
func (m *Machine) fail(out types.Outcome, step types.Step, err error) types.Outcome {
	out.Status = types.OutcomeFailed
	out.Step = step

	details := map[string]interface{}{
		errors.DetailScope:    out.Entry.Scope,
		errors.DetailKey:      out.Entry.Key,
		errors.DetailStep:     string(step),
		errors.DetailOriginal: out.Entry.OriginalPath,
		errors.DetailBackup:   out.Entry.BackupPath,
	}
	var stashErr *errors.StashError
	if stderrors.As(err, &stashErr) {
		out.Err = stashErr.WithDetails(details)
	} else {
		out.Err = errors.Wrapf(err, errors.ErrIO, "%s %s failed", out.Action, out.Entry.Name()).
			WithDetails(details)
	}

	event := m.logger.Error().
		Err(out.Err).
		Str("action", string(out.Action)).
		Str("entry", out.Entry.Name()).
		Str("step", string(step))
	if out.Critical {
		event.
			Bool("critical", true).
			Str("original", out.Entry.OriginalPath).
			Str("backup", out.Entry.BackupPath).
			Msg("Original removed but symlink not created; content is only in the backup")
		return out
	}
	event.Msg("Step failed")
	return out
}
