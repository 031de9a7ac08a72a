package cli

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/homecontrol/internal/colour"
	"github.com/jmylchreest/homecontrol/internal/config"
	"github.com/jmylchreest/homecontrol/internal/slider"
	"github.com/jmylchreest/homecontrol/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive colour and slider controls",
		Long: `Open an interactive terminal surface with the configured palette and one slider.

Click a swatch to select it. Press on the slider bar and drag to change the
value; arrow keys and +/- step it. Press q or Esc to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(cmd.OutOrStdout()) {
				return fmt.Errorf("tui requires an interactive terminal")
			}

			sel, err := a.file.NewSelector(colour.WithLogger(a.logger.Named("selector")))
			if err != nil {
				return err
			}
			defer sel.Dispose()

			cfg, err := a.file.Slider(name)
			if err != nil {
				return err
			}
			// The real track is set once the layout is known.
			sl, err := slider.New(cfg, slider.Track{Length: 1}, slider.WithLogger(a.logger.Named("slider")))
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialise screen: %w", err)
			}

			opts := []tui.Option{
				tui.WithLogger(a.logger.Named("tui")),
				tui.WithColumns(a.file.PaletteColumns()),
			}
			if a.file.Title != "" {
				opts = append(opts, tui.WithTitle(a.file.Title))
			}
			m := tui.New(screen, sel, sl, opts...)
			err = m.Run()
			screen.Fini()
			if err != nil {
				return err
			}

			if c, ok := sel.Selected(); ok && !a.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "colour=%s %s=%s\n", c.Hex(), displayName(name), formatNumber(sl.Value()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "slider", "", "slider name from the widget file (default brightness)")
	return cmd
}

func displayName(name string) string {
	if name == "" {
		return config.DefaultSlider
	}
	return name
}
