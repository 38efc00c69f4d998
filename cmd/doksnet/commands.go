package doksnet

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/doksnet/internal/version"
	"github.com/arthur-debert/doksnet/pkg/cobrax/topics"
	"github.com/arthur-debert/doksnet/pkg/config"
	"github.com/arthur-debert/doksnet/pkg/core"
	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/filesystem"
	"github.com/arthur-debert/doksnet/pkg/logging"
	"github.com/arthur-debert/doksnet/pkg/ui"
	"github.com/arthur-debert/doksnet/pkg/ui/prompt"
)

//go:embed topics/*.md
var topicFiles embed.FS

// app carries what every command needs: the filesystem, the prompt backend
// and the flags and config resolved before the command runs
type app struct {
	fs          afero.Fs
	asker       prompt.Asker
	interactive func() bool
	workDir     func() (string, error)

	verbosity int
	storePath string
	format    string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		fs:          filesystem.NewOS(),
		asker:       prompt.PtermAsker{},
		interactive: stdinIsTerminal,
		workDir:     os.Getwd,
	})
}

func newRootCmd(a *app) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "doksnet",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but report incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("doksnet %s (commit %s, built %s)\n",
		version.Version, version.Commit, version.Date))

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.storePath, "store", "", MsgFlagStore)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)

	// Disable automatic help command (replaced by the topics one below)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newNewCmd(a))
	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newEditCmd(a))
	rootCmd.AddCommand(newRemoveCmd(a))
	rootCmd.AddCommand(newRemoveFailedCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newTestCmd(a))
	rootCmd.AddCommand(newTestInteractiveCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help from the embedded markdown files
	if sub, err := fs.Sub(topicFiles, "topics"); err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewPlainMarkdownRenderer(),
		}
		if stdoutIsTerminal() {
			opts.Renderer = topics.NewGlamourRenderer()
		}
		if _, err := topics.Install(rootCmd, sub, opts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

// setup configures logging and loads the configuration. Logging starts
// console-only so that config loading is logged at the requested level; the
// log file is added once the config says whether to keep one.
func (a *app) setup(cmd *cobra.Command) error {
	logOpts := logging.Options{Verbosity: a.verbosity, Console: cmd.ErrOrStderr()}
	logging.SetupLoggerWithOptions(logOpts)

	dir, err := a.workDir()
	if err != nil {
		return errors.Wrap(err, errors.ErrIO, MsgErrWorkingDir)
	}

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = a.format
	}

	cfg, err := config.Load(config.LoadOptions{ProjectDir: dir, Overrides: overrides})
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Log.Persist {
		logOpts.Persist = true
		logging.SetupLoggerWithOptions(logOpts)
	}

	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

// renderer returns the renderer for command results, in the configured format
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRendererWithOptions(format, cmd.OutOrStdout(), ui.Options{PreviewLimit: a.cfg.Preview.Limit})
}

// console returns the interactive dialogs. Prompts always render for a
// human, whatever the configured output format.
func (a *app) console(cmd *cobra.Command) (*prompt.Console, error) {
	r, err := ui.NewRendererWithOptions(ui.FormatAuto, cmd.OutOrStdout(), ui.Options{PreviewLimit: a.cfg.Preview.Limit})
	if err != nil {
		return nil, err
	}
	return &prompt.Console{Asker: a.asker, Renderer: r}, nil
}

// openWorkspace loads the store named by --store, or the nearest one above
// the working directory
func (a *app) openWorkspace() (*core.Workspace, error) {
	dir, err := a.workDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, MsgErrWorkingDir)
	}
	return core.Open(a.fs, core.OpenOptions{
		StartDir: dir,
		FileName: a.cfg.Store.File,
		Path:     a.storePath,
	})
}

// optionalString returns the flag value when it was given, nil otherwise
func optionalString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Delegate to "help topics"
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return errors.New(errors.ErrInternal, "help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
