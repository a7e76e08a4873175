// Package commands provides high-level command implementations for dotstash.
//
// Each command is implemented in its own subdirectory:
//   - initialize/ - Init command
//   - collect/    - CollectAll command
//   - restore/    - RestoreAll command
//   - status/     - Status command
//   - genconfig/  - GenConfig command
//   - internal/   - Shared load and run pipeline
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"github.com/arthur-debert/dotstash/pkg/commands/collect"
	"github.com/arthur-debert/dotstash/pkg/commands/genconfig"
	"github.com/arthur-debert/dotstash/pkg/commands/initialize"
	"github.com/arthur-debert/dotstash/pkg/commands/restore"
	"github.com/arthur-debert/dotstash/pkg/commands/status"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// InitOptions defines the options for Init
type InitOptions = initialize.InitOptions

// Init creates an empty tracked config if none exists
func Init(opts InitOptions) (*types.InitResult, error) {
	return initialize.Init(opts)
}

// CollectOptions holds options for CollectAll
type CollectOptions = collect.CollectOptions

// CollectAll collects every tracked entry
func CollectAll(opts CollectOptions) (*types.RunResult, error) {
	return collect.CollectAll(opts)
}

// RestoreOptions holds options for RestoreAll
type RestoreOptions = restore.RestoreOptions

// RestoreAll restores every tracked entry
func RestoreAll(opts RestoreOptions) (*types.RunResult, error) {
	return restore.RestoreAll(opts)
}

// StatusOptions holds options for Status
type StatusOptions = status.StatusOptions

// Status reports every tracked entry's state
func Status(opts StatusOptions) (*types.StatusResult, error) {
	return status.Status(opts)
}

// GenConfigOptions holds options for GenConfig
type GenConfigOptions = genconfig.GenConfigOptions

// GenConfig renders or writes the settings file
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
