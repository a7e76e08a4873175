package pathops

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/filesystem"
	"github.com/arthur-debert/dotstash/pkg/types"
)

const dirPerm = 0755

// Ops performs primitive filesystem operations against a types.FS
type Ops struct {
	fs types.FS
}

// New creates Ops over fs, defaulting to the OS filesystem
func New(fsys types.FS) *Ops {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Ops{fs: fsys}
}

// FS returns the underlying filesystem
func (o *Ops) FS() types.FS {
	return o.fs
}

// Exists reports whether anything, including a dangling symlink, is at path
func (o *Ops) Exists(path string) (bool, error) {
	_, err := o.fs.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, ioErr(err, "stat", path)
}

// IsSymlink reports whether path is a symlink. A missing path is not a link.
func (o *Ops) IsSymlink(path string) (bool, error) {
	info, err := o.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, ioErr(err, "stat", path)
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

// ReadLinkTarget returns the target of the symlink at path. It fails when
// path is not a symlink.
func (o *Ops) ReadLinkTarget(path string) (string, error) {
	info, err := o.fs.Lstat(path)
	if err != nil {
		return "", ioErr(err, "stat", path)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return "", errors.Newf(errors.ErrIO, "%s is not a symlink", path).
			WithDetail(errors.DetailPath, path)
	}
	target, err := o.fs.Readlink(path)
	if err != nil {
		return "", ioErr(err, "readlink", path)
	}
	return target, nil
}

// CreateSymlink creates a symlink at linkPath pointing to target. It fails if
// linkPath already exists or its parent directory is missing.
func (o *Ops) CreateSymlink(target, linkPath string) error {
	if err := o.fs.Symlink(target, linkPath); err != nil {
		return ioErr(err, "symlink", linkPath).WithDetail("target", target)
	}
	return nil
}

// Remove deletes a file or symlink, recursively deletes a directory, and does
// nothing when target does not exist. A symlink is removed itself; whatever
// it points at is left alone.
func (o *Ops) Remove(target string) error {
	info, err := o.fs.Lstat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return ioErr(err, "stat", target)
	}

	if info.IsDir() {
		err = o.fs.RemoveAll(target)
	} else {
		err = o.fs.Remove(target)
	}
	if err != nil {
		return ioErr(err, "remove", target)
	}
	return nil
}

// Copy recursively copies the file or directory at from to to, creating the
// parent directories of to first. Regular file permissions are kept and
// symlinks inside a copied tree are recreated as symlinks. from is never
// modified.
func (o *Ops) Copy(from, to string) error {
	if err := o.fs.MkdirAll(filepath.Dir(to), dirPerm); err != nil {
		return ioErr(err, "mkdir", filepath.Dir(to))
	}
	return o.copy(from, to)
}

func (o *Ops) copy(from, to string) error {
	info, err := o.fs.Lstat(from)
	if err != nil {
		return ioErr(err, "stat", from)
	}

	switch {
	case info.IsDir():
		return o.copyDir(from, to, info.Mode().Perm())
	case info.Mode()&os.ModeSymlink != 0:
		return o.copyLink(from, to)
	case info.Mode().IsRegular():
		return o.copyFile(from, to, info.Mode().Perm())
	default:
		return errors.Newf(errors.ErrIO, "cannot copy %s: unsupported file type %s", from, info.Mode().Type()).
			WithDetail(errors.DetailPath, from)
	}
}

func (o *Ops) copyDir(from, to string, perm fs.FileMode) error {
	if err := o.fs.MkdirAll(to, perm|0700); err != nil {
		return ioErr(err, "mkdir", to)
	}
	entries, err := o.fs.ReadDir(from)
	if err != nil {
		return ioErr(err, "readdir", from)
	}
	for _, entry := range entries {
		if err := o.copy(filepath.Join(from, entry.Name()), filepath.Join(to, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (o *Ops) copyFile(from, to string, perm fs.FileMode) error {
	data, err := o.fs.ReadFile(from)
	if err != nil {
		return ioErr(err, "read", from)
	}
	if err := o.fs.WriteFile(to, data, perm); err != nil {
		return ioErr(err, "write", to)
	}
	return nil
}

func (o *Ops) copyLink(from, to string) error {
	target, err := o.fs.Readlink(from)
	if err != nil {
		return ioErr(err, "readlink", from)
	}
	if err := o.Remove(to); err != nil {
		return err
	}
	return o.CreateSymlink(target, to)
}

func ioErr(err error, op, path string) *errors.StashError {
	return errors.Wrapf(err, errors.ErrIO, "%s %s", op, path).
		WithDetail(errors.DetailPath, path)
}
