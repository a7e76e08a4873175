package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotstash/pkg/errors"
)

// HomePrefix is the placeholder for the home directory in tracked paths
const HomePrefix = "~/"

// ExpandHome replaces a leading "~/" with home. Paths without the prefix are
// returned unchanged. Fails with a CONFIG error when expansion is needed but
// home is empty.
func ExpandHome(pathLike, home string) (string, error) {
	if !strings.HasPrefix(pathLike, HomePrefix) {
		return pathLike, nil
	}
	if home == "" {
		return "", errors.Newf(errors.ErrConfig,
			"cannot expand %q: home directory is not set", pathLike).
			WithDetail(errors.DetailPath, pathLike)
	}
	return filepath.Join(home, pathLike[len(HomePrefix):]), nil
}

// Normalize cleans a path. Empty input stays empty.
func Normalize(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

// IsWithin reports whether child equals parent or lies below it, comparing at
// path-segment boundaries. Both paths are normalized first.
func IsWithin(parent, child string) bool {
	parent = Normalize(parent)
	child = Normalize(child)
	if parent == "" || child == "" {
		return false
	}
	if parent == child {
		return true
	}
	prefix := parent
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(child, prefix)
}
