// Package filesystem provides filesystem implementations for dotstash.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem and an afero-backed adapter. The adapter only
// supports symlinks when the wrapped afero.Fs does (OsFs, BasePathFs).
package filesystem
