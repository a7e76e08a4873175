package linkstate

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// Inspect reads the state of originalPath relative to backupPath. It never
// modifies the filesystem. Relative link targets are resolved against the
// link's directory before comparison.
func Inspect(fs types.FS, originalPath, backupPath string) (types.LinkState, error) {
	info, err := fs.Lstat(originalPath)
	if err != nil {
		if os.IsNotExist(err) {
			return types.StateUntracked, nil
		}
		return types.StateUntracked, errors.Wrapf(err, errors.ErrIO, "inspect %s", originalPath).
			WithDetail(errors.DetailPath, originalPath)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return types.StatePlainFile, nil
	}

	target, err := fs.Readlink(originalPath)
	if err != nil {
		return types.StateUntracked, errors.Wrapf(err, errors.ErrIO, "readlink %s", originalPath).
			WithDetail(errors.DetailPath, originalPath)
	}

	if SameTarget(originalPath, target, backupPath) {
		return types.StateLinkedCurrent, nil
	}
	return types.StateLinkedStale, nil
}

// SameTarget reports whether the link at linkPath, pointing at target,
// resolves to want.
func SameTarget(linkPath, target, want string) bool {
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(linkPath), target)
	}
	return filepath.Clean(target) == filepath.Clean(want)
}
