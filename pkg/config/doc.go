// Package config loads the two configuration sources dotstash reads.
//
// Settings control how dotstash runs: where the backup root is, which file
// under it lists the tracked entries, and how results are printed. They are
// layered with koanf, lowest priority first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user settings file, $XDG_CONFIG_HOME/dotstash/config.toml
//  3. environment: DOTFILES and HOME, then DOTSTASH_* (DOTSTASH_ROOT,
//     DOTSTASH_CONFIG_FILE, DOTSTASH_OUTPUT__FORMAT, ...)
//  4. command-line overrides
//
// The tracked config (dotfiles.config.json by default) maps scopes to backup
// keys to original paths:
//
//	{
//	  "shell": {".zshrc": "~/.zshrc"},
//	  "editor": {"nvim": "~/.config/nvim"}
//	}
//
// It is read with the YAML node API, which accepts JSON and keeps the order
// entries were written in.
package config
