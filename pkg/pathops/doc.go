// Package pathops implements the primitive filesystem operations collect and
// restore are built from: recursive copy, recursive remove, symlink creation
// and inspection. The operations carry no policy; deciding when to call them
// is the job of pkg/linkstate.
//
// All operations go through an injected types.FS and report failures as IO
// coded errors. Home expansion lives in pkg/paths.
package pathops
