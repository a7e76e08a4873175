// Package testutil provides utilities for testing dotstash components.
//
// Key components:
//   - TestEnvironment: test orchestrator with a backup root, a home directory
//     and a filesystem, in memory or in an isolated temp directory
//   - MemoryFS: in-memory types.FS with real symlink semantics and
//     per-operation error injection, used to drive failure paths
//   - FS-aware assertions for links and file content
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when the code under test must
//     talk to the real OS (config loading, CLI)
//   - Define test data inline
package testutil
