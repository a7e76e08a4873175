// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with a backup root, a home and a filesystem

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotstash/pkg/filesystem"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TrackedConfigName is the tracked config filename used by test environments
const TrackedConfigName = "dotfiles.config.json"

// TestEnvironment provides a backup root, a home directory and a filesystem
type TestEnvironment struct {
	// Root is the backup root holding scope directories and the tracked config
	Root    string
	HomeDir string

	FS types.FS
	// Memory is set for EnvMemoryOnly so tests can inject errors
	Memory *MemoryFS

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:    t,
		Type: envType,
	}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual/dotfiles"
		env.HomeDir = "/virtual/home"
		env.Memory = NewMemoryFS()
		env.FS = env.Memory
	case EnvIsolated:
		tempDir := t.TempDir()
		env.Root = filepath.Join(tempDir, "dotfiles")
		env.HomeDir = filepath.Join(tempDir, "home")
		env.FS = filesystem.NewOS()

		t.Setenv("HOME", env.HomeDir)
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg-config"))
		t.Setenv("XDG_STATE_HOME", filepath.Join(tempDir, "xdg-state"))
		t.Setenv("DOTFILES", "")
	}

	env.mkdir(env.Root)
	env.mkdir(env.HomeDir)

	return env
}

func (env *TestEnvironment) mkdir(path string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("failed to create %s: %v", path, err)
	}
}

// HomePath joins elements under the home directory
func (env *TestEnvironment) HomePath(elem ...string) string {
	return filepath.Join(append([]string{env.HomeDir}, elem...)...)
}

// BackupPath joins a scope and key under the backup root
func (env *TestEnvironment) BackupPath(scope, key string) string {
	return filepath.Join(env.Root, scope, key)
}

// Entry builds a tracked entry for a file under the home directory
func (env *TestEnvironment) Entry(scope, key, homeRel string) types.TrackedEntry {
	return types.TrackedEntry{
		Scope:        scope,
		Key:          key,
		OriginalPath: env.HomePath(homeRel),
		BackupPath:   env.BackupPath(scope, key),
	}
}

// WriteFile writes content to path, creating parent directories
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()
	env.mkdir(filepath.Dir(path))
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("failed to write %s: %v", path, err)
	}
}

// Symlink creates a link at link pointing to target, creating parents
func (env *TestEnvironment) Symlink(target, link string) {
	env.t.Helper()
	env.mkdir(filepath.Dir(link))
	if err := env.FS.Symlink(target, link); err != nil {
		env.t.Fatalf("failed to link %s -> %s: %v", link, target, err)
	}
}

// WriteTrackedConfig writes the tracked config file under the backup root
func (env *TestEnvironment) WriteTrackedConfig(content string) string {
	env.t.Helper()
	path := filepath.Join(env.Root, TrackedConfigName)
	env.WriteFile(path, content)
	return path
}
