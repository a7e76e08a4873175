// Package core builds the tracked set for a run and drives entries through
// the link state machine.
//
// Every command follows the same pipeline:
//
//	LoadTrackedSet   read the tracked config, expand ~/, build backup paths
//	conflict check   reject nested paths before anything is touched
//	Run              one entry at a time, in config order, stop at first failure
//
// Configuration and conflict errors abort before any mutation. A failed
// entry stops the run; entries after it are not attempted.
package core
