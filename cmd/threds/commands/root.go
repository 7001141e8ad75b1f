package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/threds/internal/app"
	"github.com/five82/threds/internal/printer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	prefsPath  string
	apiURL     string
}

func (f globalFlags) options() app.Options {
	return app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		APIURL:     f.apiURL,
		Version:    version,
	}
}

// stdoutIsTerminal reports whether the TUI can take over the terminal.
var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var (
		flags  globalFlags
		resume bool
	)

	root := &cobra.Command{
		Use:   "threds [path]",
		Short: "Threds - terminal client for the Threds boards",
		Long: `Threds is a terminal client for the Threds imageboard API.

Browse the Work, Random and Travel boards, read threads and post replies
with optional image attachments. The optional path argument opens a location
directly, for example /board/w or /board/w/thread/42.`,
		Version: versionString(),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdoutIsTerminal() {
				return printer.Error(cmd.ErrOrStderr(),
					"Not a terminal",
					"threds needs an interactive terminal for its user interface.",
					[]string{"Run `threds status` or `threds route <path>` for non-interactive use"},
				)
			}

			opts := flags.options()
			opts.Resume = resume
			if len(args) == 1 {
				opts.Path = args[0]
			}
			if err := app.Run(cmd.Context(), opts); err != nil {
				return printer.Error(cmd.ErrOrStderr(), "threds failed", err.Error(), nil)
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/threds/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/threds/prefs.toml)")
	pf.StringVar(&flags.apiURL, "api", "", "API base URL, overrides config and THREDS_API_URL")
	root.Flags().BoolVar(&resume, "resume", false, "start at the last visited location")

	root.AddCommand(newStatusCmd(&flags), newRouteCmd())
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}
