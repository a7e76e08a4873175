package core

import (
	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/linkstate"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// Describe reports every entry's state and the outcome collect and restore
// would have. planner must be a dry-run machine.
func Describe(planner *linkstate.Machine, set types.TrackedSet) ([]types.EntryStatus, error) {
	if !planner.DryRun() {
		return nil, errors.New(errors.ErrInternal, "describe needs a dry-run machine")
	}

	statuses := make([]types.EntryStatus, 0, set.Len())
	for _, entry := range set.Entries {
		state, err := planner.Inspect(entry)
		if err != nil {
			return statuses, err
		}
		backupExists, err := planner.BackupExists(entry)
		if err != nil {
			return statuses, err
		}

		statuses = append(statuses, types.EntryStatus{
			Entry:        entry,
			State:        state,
			BackupExists: backupExists,
			Collect:      planner.Collect(entry),
			Restore:      planner.Restore(entry, false),
		})
	}
	return statuses, nil
}
