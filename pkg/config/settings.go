package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/logging"
	"github.com/arthur-debert/dotstash/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every settings environment variable
	EnvPrefix = "DOTSTASH_"
	// EnvRoot is the legacy variable naming the backup root
	EnvRoot = "DOTFILES"

	DefaultConfigFile = "dotfiles.config.json"
	settingsFileName  = "config.toml"
)

// Settings is the effective configuration for one run
type Settings struct {
	// Root is the absolute backup root
	Root string `koanf:"root" toml:"root"`
	// Home is the directory "~/" expands to
	Home string `koanf:"home" toml:"home,omitempty"`
	// ConfigFile names the tracked config, relative to Root unless absolute
	ConfigFile string         `koanf:"config_file" toml:"config_file"`
	Output     OutputSettings `koanf:"output" toml:"output"`

	// SettingsFile is the user settings file that was merged, if any
	SettingsFile string `koanf:"-" toml:"-"`
}

// OutputSettings controls result rendering
type OutputSettings struct {
	Format  string `koanf:"format" toml:"format"`
	NoColor bool   `koanf:"no_color" toml:"no_color"`
}

// TrackedConfigPath returns the absolute path of the tracked config file
func (s *Settings) TrackedConfigPath() string {
	if filepath.IsAbs(s.ConfigFile) {
		return s.ConfigFile
	}
	return filepath.Join(s.Root, s.ConfigFile)
}

// LoadOptions tune where settings come from
type LoadOptions struct {
	// SettingsFile overrides the XDG settings file location
	SettingsFile string
	// Overrides are dotted keys applied last, e.g. {"root": "/dots"}
	Overrides map[string]interface{}
	// WorkingDir is the fallback root; defaults to the process working directory
	WorkingDir string
}

// SettingsPath returns the user settings file location under XDG_CONFIG_HOME
func SettingsPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, logging.AppName, settingsFileName)
}

// LoadSettings merges defaults, the settings file, the environment and
// overrides into Settings.
func LoadSettings(opts LoadOptions) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default settings")
	}

	// 2. User settings file
	settingsFile := opts.SettingsFile
	if settingsFile == "" {
		settingsFile = SettingsPath()
	}
	loadedFile := ""
	if _, err := os.Stat(settingsFile); err == nil {
		if err := k.Load(file.Provider(settingsFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfig, "failed to load settings from %s", settingsFile).
				WithDetail(errors.DetailConfig, settingsFile)
		}
		loadedFile = settingsFile
		logger.Debug().Str("path", settingsFile).Msg("Loaded settings file")
	}

	// 3. Environment
	if err := k.Load(env.ProviderWithValue("", ".", legacyEnvKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load legacy environment")
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load environment")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to load overrides")
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimSpaceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to decode settings")
	}
	s.SettingsFile = loadedFile

	if err := postProcess(&s, opts.WorkingDir); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", s.Root).
		Str("configFile", s.ConfigFile).
		Str("format", s.Output.Format).
		Msg("Settings loaded")
	return &s, nil
}

// legacyEnvKey maps the variables the tool has always honoured; empty
// values are ignored so they never mask a default.
func legacyEnvKey(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	switch key {
	case EnvRoot:
		return "root", value
	case "HOME":
		return "home", value
	}
	return "", nil
}

// envKey turns DOTSTASH_OUTPUT__FORMAT into output.format
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func trimSpaceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() == reflect.String && t.Kind() == reflect.String {
			return strings.TrimSpace(reflect.ValueOf(data).String()), nil
		}
		return data, nil
	}
}

func postProcess(s *Settings, workingDir string) error {
	if s.Root == "" {
		if workingDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, errors.ErrConfig, "cannot determine backup root")
			}
			workingDir = wd
		}
		s.Root = workingDir
	}

	root, err := paths.ExpandHome(s.Root, s.Home)
	if err != nil {
		return err
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfig, "invalid backup root %s", s.Root)
	}
	s.Root = root

	if s.ConfigFile == "" {
		s.ConfigFile = DefaultConfigFile
	}
	return nil
}
