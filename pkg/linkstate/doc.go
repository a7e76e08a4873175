// Package linkstate decides, for one tracked entry at a time, whether it is
// safe to turn a plain file into a backed-up symlink (collect) or to turn the
// symlink back into a plain file (restore).
//
// The state of an entry is never stored. Inspect derives it from the live
// filesystem on every call:
//
//	untracked   original path does not exist
//	linked      original path is a symlink to the backup path
//	stale-link  original path is a symlink to somewhere else
//	plain       original path exists and is not a symlink
//
// Machine turns that state into an explicit types.Outcome. Skips are not
// errors; failures carry the step that failed and the entry's paths so the
// operator can tell how far a conversion got.
package linkstate
