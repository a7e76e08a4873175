package core

import (
	"path/filepath"

	"github.com/arthur-debert/dotstash/pkg/config"
	"github.com/arthur-debert/dotstash/pkg/conflict"
	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/logging"
	"github.com/arthur-debert/dotstash/pkg/paths"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// LoadOptions locate the tracked config and resolve its paths
type LoadOptions struct {
	// Root is the backup root; backup paths are Root/scope/key
	Root string
	// ConfigPath is the tracked config file
	ConfigPath string
	// Home is what a leading ~/ in original paths expands to
	Home string
	FS   types.FS
}

// LoadTrackedSet reads the tracked config and returns the validated set of
// entries in config order.
func LoadTrackedSet(opts LoadOptions) (types.TrackedSet, error) {
	logger := logging.GetLogger("core.loader")

	if !filepath.IsAbs(opts.Root) {
		return types.TrackedSet{}, errors.Newf(errors.ErrConfig, "backup root %q must be absolute", opts.Root)
	}

	cfg, err := config.ReadTracked(opts.FS, opts.ConfigPath)
	if err != nil {
		return types.TrackedSet{}, err
	}

	set, err := BuildTrackedSet(cfg, opts.Root, opts.Home)
	if err != nil {
		return types.TrackedSet{}, err
	}

	if err := conflict.Validate(set); err != nil {
		return types.TrackedSet{}, err
	}

	logger.Debug().
		Str("root", set.Root).
		Str("config", opts.ConfigPath).
		Int("entries", set.Len()).
		Msg("Loaded tracked set")
	return set, nil
}

// BuildTrackedSet expands a parsed tracked config into entries
func BuildTrackedSet(cfg *config.TrackedConfig, root, home string) (types.TrackedSet, error) {
	root = filepath.Clean(root)
	set := types.TrackedSet{Root: root, Entries: make([]types.TrackedEntry, 0, cfg.Len())}

	for _, scope := range cfg.Scopes {
		for _, m := range scope.Mapping {
			original, err := paths.ExpandHome(m.Original, home)
			if err != nil {
				return types.TrackedSet{}, entryErr(err, cfg.Path, scope.Name, m)
			}
			if !filepath.IsAbs(original) {
				err := errors.Newf(errors.ErrConfig, "original path %q for %s/%s must be absolute or start with ~/",
					m.Original, scope.Name, m.Key)
				return types.TrackedSet{}, entryErr(err, cfg.Path, scope.Name, m)
			}

			set.Entries = append(set.Entries, types.TrackedEntry{
				Scope:        scope.Name,
				Key:          m.Key,
				OriginalPath: filepath.Clean(original),
				BackupPath:   filepath.Join(root, scope.Name, m.Key),
			})
		}
	}
	return set, nil
}

func entryErr(err error, configPath, scope string, m config.KeyMapping) error {
	return errors.Wrapf(err, errors.ErrConfig, "invalid entry %s/%s", scope, m.Key).
		WithDetail(errors.DetailConfig, configPath).
		WithDetail(errors.DetailLine, m.Line).
		WithDetail(errors.DetailScope, scope).
		WithDetail(errors.DetailKey, m.Key)
}
