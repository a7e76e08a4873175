package dotstash

import (
	"fmt"

	"github.com/arthur-debert/dotstash/internal/version"
	"github.com/arthur-debert/dotstash/pkg/commands"
	"github.com/arthur-debert/dotstash/pkg/types"
	"github.com/arthur-debert/dotstash/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, s)
			if err != nil {
				return err
			}

			result, err := commands.Init(commands.InitOptions{
				ConfigPath: s.TrackedConfigPath(),
			})
			if err != nil {
				return fmt.Errorf(MsgErrInit, err)
			}
			return render(renderer, result)
		},
	}
}

func newCollectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "collect",
		Short:   MsgCollectShort,
		Long:    MsgCollectLong,
		Example: MsgCollectExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, s)
			if err != nil {
				return err
			}
			dryRun := dryRunFlag(cmd)

			log.Info().
				Str("root", s.Root).
				Bool("dry_run", dryRun).
				Msg("Collecting into backup root")

			result, err := commands.CollectAll(commands.CollectOptions{
				Root:       s.Root,
				ConfigPath: s.TrackedConfigPath(),
				Home:       s.Home,
				DryRun:     dryRun,
			})
			return finishRun(cmd, renderer, result, err, MsgErrCollect)
		},
	}
}

func newRestoreCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "restore",
		Short:   MsgRestoreShort,
		Long:    MsgRestoreLong,
		Example: MsgRestoreExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, s)
			if err != nil {
				return err
			}
			dryRun := dryRunFlag(cmd)

			log.Info().
				Str("root", s.Root).
				Bool("dry_run", dryRun).
				Bool("force", force).
				Msg("Restoring from backup root")

			result, err := commands.RestoreAll(commands.RestoreOptions{
				Root:       s.Root,
				ConfigPath: s.TrackedConfigPath(),
				Home:       s.Home,
				Force:      force,
				DryRun:     dryRun,
			})
			return finishRun(cmd, renderer, result, err, MsgErrRestore)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, s)
			if err != nil {
				return err
			}

			result, err := commands.Status(commands.StatusOptions{
				Root:       s.Root,
				ConfigPath: s.TrackedConfigPath(),
				Home:       s.Home,
			})
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}
			return render(renderer, result)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			// Settings are TOML; JSON would only wrap them in a string
			renderer, err := ui.NewRenderer(ui.FormatText, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			result, err := commands.GenConfig(commands.GenConfigOptions{
				Settings: s,
				Write:    write,
				Force:    force,
			})
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}
			return render(renderer, result)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForceGC)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func render(renderer ui.Renderer, result interface{}) error {
	if err := renderer.RenderResult(result); err != nil {
		return fmt.Errorf(MsgErrRender, err)
	}
	return nil
}

// finishRun renders whatever a collect or restore run produced, including
// the outcomes before a failure, then returns the run error
func finishRun(cmd *cobra.Command, renderer ui.Renderer, result *types.RunResult, runErr error, errFormat string) error {
	if result != nil {
		if err := render(renderer, result); err != nil {
			return err
		}
		if result.DryRun {
			fmt.Fprintln(cmd.ErrOrStderr(), MsgDryRunNotice)
		}
		if failed, ok := result.FirstFailure(); ok && failed.Critical {
			fmt.Fprintf(cmd.ErrOrStderr(), MsgCriticalNotice+"\n", failed.Entry.BackupPath)
		}
	}
	if runErr != nil {
		return fmt.Errorf(errFormat, runErr)
	}
	return nil
}
