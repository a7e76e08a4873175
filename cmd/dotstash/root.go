package dotstash

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/dotstash/internal/version"
	"github.com/arthur-debert/dotstash/pkg/cobrax/topics"
	"github.com/arthur-debert/dotstash/pkg/config"
	"github.com/arthur-debert/dotstash/pkg/logging"
	"github.com/arthur-debert/dotstash/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		dryRun     bool
		root       string
		configFile string
		format     string
	)

	rootCmd := &cobra.Command{
		Use:     "dotstash",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(logging.Options{
				Verbosity: verbosity,
				Console:   cmd.ErrOrStderr(),
				NoColor:   os.Getenv("NO_COLOR") != "",
			})
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVarP(&root, "root", "r", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCollectCmd())
	rootCmd.AddCommand(newRestoreCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help: "dotstash help topics", "dotstash help recovery"
	source, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, source, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadSettings merges the global flags over the settings file and environment
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	flags := cmd.Root().PersistentFlags()
	overrides := map[string]interface{}{}

	for flag, key := range map[string]string{
		"root":   "root",
		"config": "config_file",
		"format": "output.format",
	} {
		if !flags.Changed(flag) {
			continue
		}
		value, err := flags.GetString(flag)
		if err != nil {
			return nil, err
		}
		overrides[key] = value
	}

	s, err := config.LoadSettings(config.LoadOptions{Overrides: overrides})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadSettings, err)
	}

	log.Debug().
		Str("root", s.Root).
		Str("config", s.TrackedConfigPath()).
		Msg("Using backup root")
	return s, nil
}

// newRenderer picks the output renderer from settings; no_color turns the
// styled terminal output into plain text
func newRenderer(cmd *cobra.Command, s *config.Settings) (ui.Renderer, error) {
	format, err := ui.ParseFormat(s.Output.Format)
	if err != nil {
		return nil, err
	}
	if s.Output.NoColor && (format == ui.FormatAuto || format == ui.FormatTerminal) {
		format = ui.FormatText
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

func dryRunFlag(cmd *cobra.Command) bool {
	dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	return dryRun
}
