// Package conflict rejects tracked sets whose managed paths nest inside one
// another. Collecting a directory and a file inside it would back the file up
// twice and leave one of the links pointing into the other's backup, so the
// whole set is checked once before anything is mutated.
package conflict

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// Validate fails with a CONFLICT error naming the first pair of managed paths
// where one equals the other or is an ancestor directory of it. /a/b and
// /a/bc do not conflict.
func Validate(set types.TrackedSet) error {
	return ValidatePaths(set.ManagedPaths())
}

// ValidatePaths applies the nesting check to a plain list of paths
func ValidatePaths(managed []string) error {
	paths := make([]string, len(managed))
	for i, p := range managed {
		paths[i] = filepath.Clean(p)
	}
	sort.SliceStable(paths, func(i, j int) bool {
		return len(paths[i]) < len(paths[j])
	})

	for i, shorter := range paths {
		prefix := shorter
		if !strings.HasSuffix(prefix, string(filepath.Separator)) {
			prefix += string(filepath.Separator)
		}
		for _, longer := range paths[i+1:] {
			if longer == shorter || strings.HasPrefix(longer, prefix) {
				return errors.Newf(errors.ErrConflict, "tracked paths overlap: %s and %s", shorter, longer).
					WithDetail("first", shorter).
					WithDetail("second", longer)
			}
		}
	}
	return nil
}
