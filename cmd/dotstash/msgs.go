package dotstash

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep dotfiles in one backup directory, linked back into place"
	MsgInitShort       = "Create an empty tracked config in the backup root"
	MsgCollectShort    = "Move tracked files into the backup root and link them back"
	MsgRestoreShort    = "Replace links with copies of their backups"
	MsgStatusShort     = "Show the state of every tracked file"
	MsgGenConfigShort  = "Print or write the effective settings"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice   = "\nDRY RUN MODE - No changes were made"
	MsgVersionFormat  = "dotstash version %s\n  commit: %s\n  built:  %s\n"
	MsgCriticalNotice = "An original was removed but its link could not be created; the backup at %s is the only copy"

	// Error messages
	MsgErrLoadSettings = "failed to load settings: %w"
	MsgErrInit         = "failed to initialize tracked config: %w"
	MsgErrCollect      = "failed to collect: %w"
	MsgErrRestore      = "failed to restore: %w"
	MsgErrStatus       = "failed to get status: %w"
	MsgErrGenConfig    = "failed to generate settings: %w"
	MsgErrRender       = "failed to render output: %w"
	MsgErrNoCommand    = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagRoot    = "Backup root directory (default: $DOTFILES or the current directory)"
	MsgFlagConfig  = "Tracked config file, relative to the backup root"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagForce   = "Overwrite plain files at original locations"
	MsgFlagWrite   = "Write the settings file instead of printing it"
	MsgFlagForceGC = "Overwrite an existing settings file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/collect-long.txt
	msgCollectLongRaw string
	MsgCollectLong    = strings.TrimSpace(msgCollectLongRaw)

	//go:embed msgs/collect-example.txt
	msgCollectExampleRaw string
	MsgCollectExample    = strings.TrimRight(msgCollectExampleRaw, "\n")

	//go:embed msgs/restore-long.txt
	msgRestoreLongRaw string
	MsgRestoreLong    = strings.TrimSpace(msgRestoreLongRaw)

	//go:embed msgs/restore-example.txt
	msgRestoreExampleRaw string
	MsgRestoreExample    = strings.TrimRight(msgRestoreExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
