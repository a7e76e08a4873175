package types

// TrackedEntry binds one dotfile location to its place in the backup root.
type TrackedEntry struct {
	// Scope is the subdirectory of the backup root the entry lives under
	Scope string `json:"scope"`
	// Key is the relative path of the backup under its scope directory
	Key string `json:"key"`
	// OriginalPath is where the file normally lives, home-expanded and absolute
	OriginalPath string `json:"original"`
	// BackupPath is backupRoot/scope/key
	BackupPath string `json:"backup"`
}

// Name returns the scope-qualified key used in logs and output
func (e TrackedEntry) Name() string {
	return e.Scope + "/" + e.Key
}

// TrackedSet is every entry loaded for one run, in configuration order.
type TrackedSet struct {
	Root    string         `json:"root"`
	Entries []TrackedEntry `json:"entries"`
}

// ManagedPaths returns every original and backup path in the set
func (s TrackedSet) ManagedPaths() []string {
	paths := make([]string, 0, len(s.Entries)*2)
	for _, e := range s.Entries {
		paths = append(paths, e.OriginalPath, e.BackupPath)
	}
	return paths
}

// Len returns the number of entries
func (s TrackedSet) Len() int {
	return len(s.Entries)
}
