package core

import (
	"github.com/arthur-debert/dotstash/pkg/linkstate"
	"github.com/arthur-debert/dotstash/pkg/logging"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// EntryFunc runs one entry through the state machine
type EntryFunc func(m *linkstate.Machine, entry types.TrackedEntry) types.Outcome

// Collect is the EntryFunc for collect
func Collect(m *linkstate.Machine, entry types.TrackedEntry) types.Outcome {
	return m.Collect(entry)
}

// Restore returns the EntryFunc for restore with the given force flag
func Restore(force bool) EntryFunc {
	return func(m *linkstate.Machine, entry types.TrackedEntry) types.Outcome {
		return m.Restore(entry, force)
	}
}

// Run applies fn to every entry in order. It stops at the first failed
// outcome and returns that outcome's error along with the outcomes so far,
// the failed one included.
func Run(m *linkstate.Machine, set types.TrackedSet, action types.Action, fn EntryFunc) (*types.RunResult, error) {
	logger := logging.GetLogger("core.run")
	done := logging.LogOperationStart(logger, string(action))
	defer done()

	result := &types.RunResult{
		Action:   action,
		Root:     set.Root,
		DryRun:   m.DryRun(),
		Outcomes: make([]types.Outcome, 0, set.Len()),
	}

	for i, entry := range set.Entries {
		out := fn(m, entry)
		result.Outcomes = append(result.Outcomes, out)

		if out.Failed() {
			logger.Debug().
				Int("remaining", set.Len()-i-1).
				Str("entry", entry.Name()).
				Msg("Stopping after failed entry")
			return result, out.Err
		}
	}

	logger.Info().
		Str("action", string(action)).
		Int("done", result.Count(types.OutcomeDone)).
		Int("skipped", result.Count(types.OutcomeSkipped)).
		Int("planned", result.Count(types.OutcomePlanned)).
		Msg("Run complete")
	return result, nil
}
