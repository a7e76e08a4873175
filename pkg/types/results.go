package types

// Action names the operation an outcome belongs to
type Action string

const (
	ActionCollect Action = "collect"
	ActionRestore Action = "restore"
	ActionStatus  Action = "status"
)

// OutcomeStatus is the result category of one entry
type OutcomeStatus string

const (
	// OutcomeDone means the entry was converted
	OutcomeDone OutcomeStatus = "done"
	// OutcomeSkipped means there was nothing to do; not an error
	OutcomeSkipped OutcomeStatus = "skipped"
	// OutcomePlanned means a dry run would have converted the entry
	OutcomePlanned OutcomeStatus = "planned"
	// OutcomeFailed means a step failed; Err and Step are set
	OutcomeFailed OutcomeStatus = "failed"
)

// SkipReason explains why an entry was skipped
type SkipReason string

const (
	SkipNone           SkipReason = ""
	SkipOriginalAbsent SkipReason = "original-missing"
	SkipAlreadyLinked  SkipReason = "already-linked"
	SkipBackupAbsent   SkipReason = "backup-missing"
	SkipNeedsForce     SkipReason = "needs-force"
)

// Step names the filesystem step an outcome failed in
type Step string

const (
	StepNone     Step = ""
	StepInspect  Step = "inspect"
	StepReadlink Step = "readlink"
	StepCopy     Step = "copy"
	StepRemove   Step = "remove"
	StepSymlink  Step = "symlink"
)

// Outcome is the explicit result value of running one entry through
// collect or restore.
type Outcome struct {
	Entry  TrackedEntry  `json:"entry"`
	Action Action        `json:"action"`
	Status OutcomeStatus `json:"status"`
	// State is the link state observed before acting
	State  LinkState  `json:"state"`
	Reason SkipReason `json:"reason,omitempty"`
	Step   Step       `json:"step,omitempty"`
	// Critical marks the partial state where the original was removed but
	// the symlink could not be created; only the backup holds the content
	Critical bool  `json:"critical,omitempty"`
	Err      error `json:"-"`
}

// Failed reports whether the outcome is a failure
func (o Outcome) Failed() bool {
	return o.Status == OutcomeFailed
}

// RunResult aggregates the outcomes of one collect or restore run
type RunResult struct {
	Action   Action    `json:"action"`
	Root     string    `json:"root"`
	DryRun   bool      `json:"dryRun"`
	Outcomes []Outcome `json:"outcomes"`
}

// Count returns how many outcomes have the given status
func (r *RunResult) Count(status OutcomeStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// FirstFailure returns the first failed outcome, if any
func (r *RunResult) FirstFailure() (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Failed() {
			return o, true
		}
	}
	return Outcome{}, false
}

// EntryStatus is the read-only view of one entry: its live state and what
// collect and restore would do with it
type EntryStatus struct {
	Entry        TrackedEntry `json:"entry"`
	State        LinkState    `json:"state"`
	BackupExists bool         `json:"backupExists"`
	Collect      Outcome      `json:"collect"`
	Restore      Outcome      `json:"restore"`
}

// StatusResult is the output of the status command
type StatusResult struct {
	Root       string        `json:"root"`
	ConfigPath string        `json:"config"`
	Entries    []EntryStatus `json:"entries"`
}

// InitResult is the output of the init command
type InitResult struct {
	ConfigPath string `json:"config"`
	Created    bool   `json:"created"`
}

// GenConfigResult is the output of the genconfig command
type GenConfigResult struct {
	Content string `json:"content"`
	// Path is set when the content was written to a file
	Path string `json:"path,omitempty"`
}
