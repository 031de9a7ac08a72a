// Package cli provides the command-line interface for homecontrol.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/homecontrol/internal/config"
	"github.com/jmylchreest/homecontrol/internal/version"
)

// EnvLogLevel overrides the log level chosen by --verbose and --quiet.
const EnvLogLevel = "HOMECONTROL_LOG_LEVEL"

// app is the state shared by every command of one root command tree.
type app struct {
	configPath string
	verbose    bool
	quiet      bool

	logger hclog.Logger
	file   *config.File
}

// NewRootCmd builds the homecontrol command tree. Each call returns an
// independent tree, so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "homecontrol",
		Short: "Colour and level controls for home automation",
		Long: `homecontrol provides the colour selector and range slider used to pick a
light's colour and brightness.

It lists palettes with readable label colours, snaps free-form colours to a
palette, maps pointer positions on a slider track onto stepped values, and
offers an interactive terminal surface for both.

Widget settings can be loaded from a YAML file (--config or
HOMECONTROL_CONFIG).`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "widget file (default: $"+config.EnvConfig+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newContrastCmd(a),
		newPaletteCmd(a),
		newSliderCmd(a),
		newTUICmd(a),
	)

	return rootCmd
}

// Execute runs the root command and reports any error on stderr.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

// setup builds the logger and loads the widget file.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)

	path := config.ResolvePath(a.configPath)
	f, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := f.ApplyEnv(); err != nil {
		return fmt.Errorf("invalid environment configuration: %w", err)
	}
	if path != "" {
		a.logger.Debug("loaded widget file", "path", path)
	}
	a.file = f
	return nil
}

func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Off
	case verbose:
		level = hclog.Debug
	}
	if env := strings.TrimSpace(os.Getenv(EnvLogLevel)); env != "" {
		if l := hclog.LevelFromString(env); l != hclog.NoLevel {
			level = l
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "homecontrol",
		Output: w,
		Level:  level,
		Color:  hclog.AutoColor,
	})
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
