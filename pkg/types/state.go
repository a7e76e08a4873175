package types

// LinkState is the observable state of an entry's original path. It is
// always derived from the live filesystem, never stored.
type LinkState int

const (
	// StateUntracked means the original path does not exist
	StateUntracked LinkState = iota
	// StateLinkedCurrent means the original path is a symlink to the backup path
	StateLinkedCurrent
	// StateLinkedStale means the original path is a symlink to somewhere else
	StateLinkedStale
	// StatePlainFile means the original path exists and is not a symlink
	StatePlainFile
)

// String returns the string representation of the state
func (s LinkState) String() string {
	switch s {
	case StateUntracked:
		return "untracked"
	case StateLinkedCurrent:
		return "linked"
	case StateLinkedStale:
		return "stale-link"
	case StatePlainFile:
		return "plain"
	default:
		return "unknown"
	}
}

// IsLink reports whether the original path is a symlink of any kind
func (s LinkState) IsLink() bool {
	return s == StateLinkedCurrent || s == StateLinkedStale
}

// MarshalText renders the state name in JSON output
func (s LinkState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
