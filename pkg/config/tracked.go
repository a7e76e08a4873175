package config

import (
	"os"

	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/paths"
	"github.com/arthur-debert/dotstash/pkg/types"
	"gopkg.in/yaml.v3"
)

// emptyTracked is what init writes
const emptyTracked = "{}\n"

// TrackedConfig is the parsed scope -> key -> original path mapping, in the
// order it was written.
type TrackedConfig struct {
	Path   string
	Scopes []ScopeConfig
}

// ScopeConfig is one scope and its keys
type ScopeConfig struct {
	Name    string
	Line    int
	Mapping []KeyMapping
}

// KeyMapping binds a backup key to the original path as written (before
// home expansion)
type KeyMapping struct {
	Key      string
	Original string
	Line     int
}

// Len returns the total number of keys across scopes
func (c *TrackedConfig) Len() int {
	n := 0
	for _, s := range c.Scopes {
		n += len(s.Mapping)
	}
	return n
}

// ReadTracked reads and validates the tracked config at path
func ReadTracked(fs types.FS, path string) (*TrackedConfig, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfig, "tracked config %s not found (run 'dotstash init')", path).
				WithDetail(errors.DetailConfig, path)
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read %s", path).
			WithDetail(errors.DetailConfig, path)
	}
	return ParseTracked(data, path)
}

// ParseTracked parses tracked config content. path is only used in errors.
func ParseTracked(data []byte, path string) (*TrackedConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfig, "failed to parse %s", path).
			WithDetail(errors.DetailConfig, path)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, configErr(path, 0, "%s is empty, expected an object like {}", path)
	}

	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, configErr(path, top.Line, "top level must be an object of scopes")
	}

	cfg := &TrackedConfig{Path: path}
	seenScopes := make(map[string]bool)
	for i := 0; i+1 < len(top.Content); i += 2 {
		nameNode, body := top.Content[i], top.Content[i+1]
		name, err := scalarString(nameNode, path, "scope name")
		if err != nil {
			return nil, err
		}
		if seenScopes[name] {
			return nil, configErr(path, nameNode.Line, "duplicate scope %q", name)
		}
		seenScopes[name] = true
		if err := paths.ValidateScopeName(name); err != nil {
			return nil, wrapValidation(err, path, nameNode.Line)
		}
		if body.Kind != yaml.MappingNode {
			return nil, configErr(path, body.Line, "scope %q must be an object of backup keys", name).
				WithDetail(errors.DetailScope, name)
		}

		scope := ScopeConfig{Name: name, Line: nameNode.Line}
		seenKeys := make(map[string]bool)
		for j := 0; j+1 < len(body.Content); j += 2 {
			keyNode, valueNode := body.Content[j], body.Content[j+1]
			key, err := scalarString(keyNode, path, "backup key")
			if err != nil {
				return nil, err
			}
			if seenKeys[key] {
				return nil, configErr(path, keyNode.Line, "duplicate key %q in scope %q", key, name)
			}
			seenKeys[key] = true
			if err := paths.ValidateBackupKey(key); err != nil {
				return nil, wrapValidation(err, path, keyNode.Line).
					WithDetail(errors.DetailScope, name)
			}

			original, err := scalarString(valueNode, path, "original path")
			if err != nil {
				return nil, err
			}
			if err := paths.ValidatePath(original); err != nil {
				return nil, wrapValidation(err, path, valueNode.Line).
					WithDetail(errors.DetailScope, name).
					WithDetail(errors.DetailKey, key)
			}

			scope.Mapping = append(scope.Mapping, KeyMapping{Key: key, Original: original, Line: keyNode.Line})
		}
		cfg.Scopes = append(cfg.Scopes, scope)
	}

	return cfg, nil
}

// WriteEmpty creates an empty tracked config at path unless one exists. It
// reports whether a file was written.
func WriteEmpty(fs types.FS, path string) (bool, error) {
	if _, err := fs.Lstat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrIO, "failed to check %s", path).
			WithDetail(errors.DetailConfig, path)
	}

	if err := fs.WriteFile(path, []byte(emptyTracked), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrIO, "failed to write %s", path).
			WithDetail(errors.DetailConfig, path)
	}
	return true, nil
}

// scalarString accepts only string scalars; numbers, booleans and nulls are
// rejected even though YAML would coerce them.
func scalarString(n *yaml.Node, path, what string) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Tag != "!!str" {
		return "", configErr(path, n.Line, "%s must be a string", what)
	}
	return n.Value, nil
}

func configErr(path string, line int, format string, args ...interface{}) *errors.StashError {
	err := errors.Newf(errors.ErrConfig, format, args...).
		WithDetail(errors.DetailConfig, path)
	if line > 0 {
		err.WithDetail(errors.DetailLine, line)
	}
	return err
}

func wrapValidation(err error, path string, line int) *errors.StashError {
	wrapped := errors.Wrapf(err, errors.ErrConfig, "invalid entry in %s", path).
		WithDetail(errors.DetailConfig, path)
	if line > 0 {
		wrapped.WithDetail(errors.DetailLine, line)
	}
	return wrapped
}
