package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotstash/pkg/errors"
)

// ValidatePath performs basic validation on a path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Common filesystem limit
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidateScopeName ensures a scope name is valid for use as a directory
// under the backup root.
// Scope names must:
// - Not be empty
// - Not contain path separators
// - Not be reserved names (. or ..)
// - Not contain control characters
func ValidateScopeName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "scope name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "scope name %q cannot contain path separators", name)
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrInvalidInput, "scope name cannot be '.' or '..'")
	}

	for _, r := range name {
		if r < 32 {
			return errors.Newf(errors.ErrInvalidInput, "scope name %q contains control characters", name)
		}
	}

	return nil
}

// ValidateBackupKey ensures a backup key is a relative path that stays
// inside its scope directory.
func ValidateBackupKey(key string) error {
	if err := ValidatePath(key); err != nil {
		return err
	}

	if filepath.IsAbs(key) {
		return errors.Newf(errors.ErrInvalidInput, "backup key %q must be relative", key)
	}

	cleaned := filepath.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return errors.Newf(errors.ErrInvalidInput, "backup key %q escapes its scope", key)
	}

	return nil
}
