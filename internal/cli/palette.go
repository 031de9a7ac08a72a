package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/homecontrol/internal/colour"
	"github.com/jmylchreest/homecontrol/internal/config"
	"github.com/jmylchreest/homecontrol/internal/render"
)

// paletteFlags are shared by the palette command and its subcommands.
type paletteFlags struct {
	name     string
	colours  []string
	selected colourValue
	mode     string
}

// paletteFile returns a copy of the widget file with the palette flag
// overrides applied.
func (a *app) paletteFile(cmd *cobra.Command, pf *paletteFlags) *config.File {
	f := *a.file
	if cmd.Flags().Changed("palette") {
		f.Palette = pf.name
		f.Colours = nil
	}
	if cmd.Flags().Changed("colours") {
		f.Colours = pf.colours
	}
	if cmd.Flags().Changed("mode") {
		f.Contrast = pf.mode
	}
	if pf.selected.set {
		f.Selected = pf.selected.rgb.Hex()
	}
	return &f
}

// selector builds a Selector from the widget file with any flag overrides
// applied.
func (a *app) selector(cmd *cobra.Command, pf *paletteFlags) (*colour.Selector, error) {
	return a.paletteFile(cmd, pf).NewSelector(colour.WithLogger(a.logger.Named("selector")))
}

func newPaletteCmd(a *app) *cobra.Command {
	pf := &paletteFlags{}
	var (
		format  string
		preview string
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List palette options with their label colours",
		Long: `List the options of a colour selector in display order.

Each option shows its colour, the label colour drawn on it, and whether it is
the current selection. A selection outside the palette is accepted but marks
no option.

Examples:
  # List the default palette
  homecontrol palette

  # List the web palette with a selection, as JSON
  homecontrol palette --palette web --selected '#FF5500' --format json

  # Use an explicit palette
  homecontrol palette --colours '#ff0000,#00ff00,#0000ff'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := a.selector(cmd, pf)
			if err != nil {
				return err
			}
			defer sel.Dispose()

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				opts := make([]colour.Option, 0, sel.Palette().Len())
				for opt := range sel.Options() {
					opts = append(opts, opt)
				}
				data, err := json.MarshalIndent(opts, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode options: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			case "hex":
				for opt := range sel.Options() {
					marker := ""
					if opt.Selected {
						marker = " *"
					}
					fmt.Fprintf(out, "%s%s\n", opt.Colour.Hex(), marker)
				}
				return nil
			case "table":
			default:
				return fmt.Errorf("invalid format %q (expected table, hex or json)", format)
			}

			show, err := previewMode(preview).enabled(cmd)
			if err != nil {
				return err
			}

			headers := []string{"#", "COLOUR", "FOREGROUND", "SELECTED"}
			if show {
				headers = append(headers, "PREVIEW")
			}
			tbl := NewTable(headers...)
			i := 0
			for opt := range sel.Options() {
				i++
				selected := ""
				if opt.Selected {
					selected = "yes"
				}
				row := []string{strconv.Itoa(i), opt.Colour.Hex(), opt.Foreground.Hex(), selected}
				if show {
					row = append(row, colour.Swatch(opt.Colour, opt.Colour.Hex(), 9, sel.Mode()))
				}
				tbl.AddRow(row...)
			}
			if err := tbl.Write(out); err != nil {
				return err
			}

			if c, ok := sel.Selected(); ok && !sel.Palette().Contains(c) && !a.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: selection %s is not a palette member\n", c.Hex())
			}
			return nil
		},
	}

	pflags := cmd.PersistentFlags()
	pflags.StringVarP(&pf.name, "palette", "p", colour.DefaultPaletteName, "built-in palette name")
	pflags.StringSliceVar(&pf.colours, "colours", nil, "explicit palette colours (comma separated hex)")
	pflags.Var(&pf.selected, "selected", "current selection (hex)")
	pflags.StringVar(&pf.mode, "mode", string(colour.ContrastLegacy), "contrast mode (legacy, wcag)")
	cmd.MarkFlagsMutuallyExclusive("palette", "colours")

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, hex, json)")
	cmd.Flags().StringVar(&preview, "preview", string(previewAuto), "show colour swatches (auto, always, never)")

	cmd.AddCommand(
		newPaletteNamesCmd(),
		newPaletteNearestCmd(a, pf),
		newPaletteRenderCmd(a, pf),
	)

	return cmd
}

func newPaletteNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List built-in palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := NewTable("NAME", "COLOURS", "COLUMNS")
			for _, name := range colour.BuiltinPaletteNames() {
				p, err := colour.BuiltinPalette(name)
				if err != nil {
					return err
				}
				tbl.AddRow(name, strconv.Itoa(p.Len()), strconv.Itoa(colour.BuiltinColumns(name)))
			}
			return tbl.Write(cmd.OutOrStdout())
		},
	}
}

func newPaletteNearestCmd(a *app, pf *paletteFlags) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "nearest <colour>",
		Short: "Find the palette entry closest to a colour",
		Long: `Find the palette entry perceptually closest to a colour (CIEDE2000).

Examples:
  # Snap an arbitrary colour to the default palette
  homecontrol palette nearest '#7f3a10'

  # Snap to the web palette and print the resulting options
  homecontrol palette nearest --palette web --select 7f3a10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := colour.ParseHex(args[0])
			if err != nil {
				return err
			}
			sel, err := a.selector(cmd, pf)
			if err != nil {
				return err
			}
			defer sel.Dispose()

			i, c, ok := sel.Palette().Nearest(target)
			if !ok {
				return fmt.Errorf("palette is empty")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s -> %s (index %d, distance %.4f)\n",
				target.Hex(), c.Hex(), i+1, colour.Distance(target, c))

			if apply {
				sel.SelectRGB(c)
				for opt := range sel.Options() {
					if opt.Selected {
						fmt.Fprintf(out, "selected %s, label %s\n", opt.Colour.Hex(), opt.Foreground.Hex())
						break
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "select", false, "select the nearest entry and show its label colour")
	return cmd
}

func newPaletteRenderCmd(a *app, pf *paletteFlags) *cobra.Command {
	var (
		output  string
		columns int
		cell    int
		labels  bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the palette as a PNG swatch sheet",
		Long: `Render the palette as a PNG swatch sheet.

Each swatch is labelled with its hex value in its label colour. The selected
swatch is outlined.

Examples:
  homecontrol palette render -o palette.png
  homecontrol palette render --palette web --selected '#FF0000' --cell 48 -o web.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("--output is required")
			}
			sel, err := a.selector(cmd, pf)
			if err != nil {
				return err
			}
			defer sel.Dispose()

			if !cmd.Flags().Changed("columns") {
				columns = a.paletteFile(cmd, pf).PaletteColumns()
			}

			img, err := render.Sheet(sel, render.SheetOptions{Columns: columns, Cell: cell, Labels: labels})
			if err != nil {
				return err
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			if err := render.WritePNG(file, img); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}

			a.logger.Info("rendered swatch sheet", "path", output, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
			if !a.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG file")
	cmd.Flags().IntVar(&columns, "columns", render.DefaultColumns, "swatches per row (default: palette layout)")
	cmd.Flags().IntVar(&cell, "cell", render.DefaultCell, fmt.Sprintf("swatch size in pixels (%d-%d)", render.MinCell, render.MaxCell))
	cmd.Flags().BoolVar(&labels, "labels", true, "draw hex labels")

	return cmd
}
