package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Operation names accepted by MemoryFS.WithError
const (
	OpStat     = "stat"
	OpLstat    = "lstat"
	OpRead     = "read"
	OpWrite    = "write"
	OpMkdir    = "mkdir"
	OpReadDir  = "readdir"
	OpSymlink  = "symlink"
	OpReadlink = "readlink"
	OpRemove   = "remove"
)

const maxLinkHops = 40

// MemoryFS implements types.FS interface with in-memory storage
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode
	umask os.FileMode

	// Error injection, keyed by operation then path
	errorPaths map[string]map[string]error

	// Statistics
	readCount  int
	writeCount int
}

// fileNode represents a file, directory or symlink in memory
type fileNode struct {
	name     string
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	isDir    bool
	isLink   bool
	linkDest string
	children map[string]*fileNode
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	root := &fileNode{
		name:     "/",
		mode:     0755 | os.ModeDir,
		modTime:  time.Now(),
		isDir:    true,
		children: make(map[string]*fileNode),
	}

	return &MemoryFS{
		files:      map[string]*fileNode{"/": root},
		umask:      0022,
		errorPaths: make(map[string]map[string]error),
	}
}

// WithError configures the filesystem to return err when op is applied to path
func (m *MemoryFS) WithError(op, path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.errorPaths[op] == nil {
		m.errorPaths[op] = make(map[string]error)
	}
	m.errorPaths[op][normalizePath(path)] = err
	return m
}

// ClearErrors removes all injected errors
func (m *MemoryFS) ClearErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths = make(map[string]map[string]error)
}

// Stats returns filesystem operation statistics
func (m *MemoryFS) Stats() (reads, writes int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readCount, m.writeCount
}

// normalizePath converts a path to clean absolute form
func normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join("/", path)
	}
	return filepath.Clean(path)
}

func (m *MemoryFS) injected(op, path string) error {
	if byPath, ok := m.errorPaths[op]; ok {
		if err, ok := byPath[path]; ok {
			return &fs.PathError{Op: op, Path: path, Err: err}
		}
	}
	return nil
}

// lookup retrieves the node at path without following a final symlink
func (m *MemoryFS) lookup(op, path string) (*fileNode, error) {
	node, exists := m.files[path]
	if !exists {
		return nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
	}
	return node, nil
}

// resolve follows symlinks until it reaches a non-link node
func (m *MemoryFS) resolve(op, path string) (*fileNode, error) {
	for i := 0; i < maxLinkHops; i++ {
		node, err := m.lookup(op, path)
		if err != nil {
			return nil, err
		}
		if !node.isLink {
			return node, nil
		}
		target := node.linkDest
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = filepath.Clean(target)
	}
	return nil, &fs.PathError{Op: op, Path: path, Err: errors.New("too many levels of symbolic links")}
}

// parentOf returns the directory node that will hold path
func (m *MemoryFS) parentOf(op, path string) (*fileNode, error) {
	dir := filepath.Dir(path)
	parent, err := m.resolve(op, dir)
	if err != nil {
		return nil, err
	}
	if !parent.isDir {
		return nil, &fs.PathError{Op: op, Path: dir, Err: errors.New("not a directory")}
	}
	return parent, nil
}

// ReadFile reads the entire file content, following symlinks
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readCount++
	path := normalizePath(name)
	if err := m.injected(OpRead, path); err != nil {
		return nil, err
	}

	node, err := m.resolve("read", path)
	if err != nil {
		return nil, err
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}

	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// WriteFile writes data to a file. Like os.WriteFile, the parent directory
// must exist.
func (m *MemoryFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeCount++
	path := normalizePath(name)
	if err := m.injected(OpWrite, path); err != nil {
		return err
	}

	parent, err := m.parentOf("open", path)
	if err != nil {
		return err
	}

	if existing, ok := m.files[path]; ok {
		if existing.isDir {
			return &fs.PathError{Op: "open", Path: name, Err: errors.New("is a directory")}
		}
		if existing.isLink {
			target, err := m.resolve("open", path)
			if err != nil {
				return err
			}
			target.content = append([]byte(nil), data...)
			target.modTime = time.Now()
			return nil
		}
	}

	node := &fileNode{
		name:    filepath.Base(path),
		mode:    perm &^ m.umask,
		modTime: time.Now(),
		content: append([]byte(nil), data...),
	}
	parent.children[node.name] = node
	m.files[path] = node
	return nil
}

// Stat returns file info, following symlinks
func (m *MemoryFS) Stat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := normalizePath(name)
	if err := m.injected(OpStat, path); err != nil {
		return nil, err
	}
	node, err := m.resolve("stat", path)
	if err != nil {
		return nil, err
	}
	return &fileInfo{node: node, name: filepath.Base(path)}, nil
}

// Lstat returns file info without following symlinks
func (m *MemoryFS) Lstat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := normalizePath(name)
	if err := m.injected(OpLstat, path); err != nil {
		return nil, err
	}
	node, err := m.lookup("lstat", path)
	if err != nil {
		return nil, err
	}
	return &fileInfo{node: node, name: filepath.Base(path)}, nil
}

// Remove removes a file, symlink or empty directory
func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if err := m.injected(OpRemove, path); err != nil {
		return err
	}

	node, err := m.lookup("remove", path)
	if err != nil {
		return err
	}
	if node.isDir && len(node.children) > 0 {
		return &fs.PathError{Op: "remove", Path: name, Err: errors.New("directory not empty")}
	}

	m.detach(path)
	return nil
}

// RemoveAll removes a path and any children. A missing path is not an error.
func (m *MemoryFS) RemoveAll(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if err := m.injected(OpRemove, path); err != nil {
		return err
	}

	if _, ok := m.files[path]; !ok {
		return nil
	}

	for p := range m.files {
		if strings.HasPrefix(p, path+"/") {
			delete(m.files, p)
		}
	}
	m.detach(path)
	return nil
}

func (m *MemoryFS) detach(path string) {
	delete(m.files, path)
	if parent, ok := m.files[filepath.Dir(path)]; ok && parent.isDir {
		delete(parent.children, filepath.Base(path))
	}
}

// MkdirAll creates a directory and all necessary parents
func (m *MemoryFS) MkdirAll(name string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if err := m.injected(OpMkdir, path); err != nil {
		return err
	}

	current := "/"
	currentNode := m.files["/"]
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		next := filepath.Join(current, part)

		if _, exists := currentNode.children[part]; exists {
			child, err := m.resolve("mkdir", next)
			if err != nil {
				return err
			}
			if !child.isDir {
				return &fs.PathError{Op: "mkdir", Path: next, Err: errors.New("not a directory")}
			}
			currentNode = child
			current = next
			continue
		}

		newDir := &fileNode{
			name:     part,
			mode:     perm | os.ModeDir,
			modTime:  time.Now(),
			isDir:    true,
			children: make(map[string]*fileNode),
		}
		currentNode.children[part] = newDir
		m.files[next] = newDir
		currentNode = newDir
		current = next
	}

	return nil
}

// Readlink returns the destination of a symbolic link
func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := normalizePath(name)
	if err := m.injected(OpReadlink, path); err != nil {
		return "", err
	}
	node, err := m.lookup("readlink", path)
	if err != nil {
		return "", err
	}
	if !node.isLink {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: errors.New("invalid argument")}
	}
	return node.linkDest, nil
}

// Symlink creates a symbolic link at link pointing to target
func (m *MemoryFS) Symlink(target, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeCount++
	path := normalizePath(link)
	if err := m.injected(OpSymlink, path); err != nil {
		return err
	}

	if _, exists := m.files[path]; exists {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: fs.ErrExist}
	}

	parent, err := m.parentOf("symlink", path)
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: fs.ErrNotExist}
	}

	node := &fileNode{
		name:     filepath.Base(path),
		mode:     0777 | os.ModeSymlink,
		modTime:  time.Now(),
		isLink:   true,
		linkDest: target,
	}
	parent.children[node.name] = node
	m.files[path] = node
	return nil
}

// ReadDir reads a directory and returns its entries sorted by name
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := normalizePath(name)
	if err := m.injected(OpReadDir, path); err != nil {
		return nil, err
	}
	node, err := m.resolve("readdir", path)
	if err != nil {
		return nil, err
	}
	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	entries := make([]fs.DirEntry, 0, len(node.children))
	for childName, child := range node.children {
		entries = append(entries, fs.FileInfoToDirEntry(&fileInfo{node: child, name: childName}))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return nil }
