package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/homecontrol/internal/slider"
)

// sliderFlags are shared by the slider subcommands.
type sliderFlags struct {
	name     string
	start    float64
	end      float64
	step     float64
	vertical bool
	rtl      bool
}

// sliderConfig returns the named slider from the widget file with any flag
// overrides applied, validated.
func (a *app) sliderConfig(cmd *cobra.Command, sf *sliderFlags) (slider.Config, error) {
	cfg, err := a.file.Slider(sf.name)
	if err != nil {
		return slider.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Start = sf.start
	}
	if flags.Changed("end") {
		cfg.End = sf.end
	}
	if flags.Changed("step") {
		cfg.Step = sf.step
	}
	if flags.Changed("vertical") {
		cfg.Vertical = sf.vertical
	}
	if flags.Changed("rtl") {
		cfg.RTL = sf.rtl
	}

	if err := cfg.Validate(); err != nil {
		return slider.Config{}, err
	}
	return cfg, nil
}

func newSliderCmd(a *app) *cobra.Command {
	sf := &sliderFlags{}

	cmd := &cobra.Command{
		Use:   "slider",
		Short: "Map slider positions onto stepped values",
		Long: `Map slider positions onto stepped values.

A slider covers [start, end] in increments of step. Positions are fractions
of the track in [0, 1]; a remainder of half a step or more rounds up.

The range comes from the named slider in the widget file (default
"brightness": 0-100 step 1) and can be overridden with --start, --end and
--step.`,
	}

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&sf.name, "slider", "", "slider name from the widget file (default brightness)")
	pflags.Float64Var(&sf.start, "start", 0, "range start")
	pflags.Float64Var(&sf.end, "end", 100, "range end")
	pflags.Float64Var(&sf.step, "step", 1, "step size")
	pflags.BoolVar(&sf.vertical, "vertical", false, "vertical track (top is the range end)")
	pflags.BoolVar(&sf.rtl, "rtl", false, "right-to-left horizontal track")

	cmd.AddCommand(
		newSliderValueCmd(a, sf),
		newSliderPercentCmd(a, sf),
		newSliderPositionCmd(a, sf),
		newSliderDragCmd(a, sf),
	)
	return cmd
}

func newSliderValueCmd(a *app, sf *sliderFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "value <fraction>",
		Short: "Convert a track fraction into a stepped value",
		Long: `Convert a track fraction into a stepped value.

Examples:
  # 0.25 of a 0-100 slider in steps of 10 rounds half-up to 30
  homecontrol slider value --step 10 0.25`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.sliderConfig(cmd, sf)
			if err != nil {
				return err
			}
			f, err := parseFloatArg("fraction", args[0])
			if err != nil {
				return err
			}
			v, err := slider.FractionToValue(f, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(v))
			return nil
		},
	}
}

func newSliderPercentCmd(a *app, sf *sliderFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "percent <value>",
		Short: "Convert a value into its fraction of the range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.sliderConfig(cmd, sf)
			if err != nil {
				return err
			}
			v, err := parseFloatArg("value", args[0])
			if err != nil {
				return err
			}
			pct, err := slider.NormalizedPercentage(v, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(pct))
			return nil
		},
	}
}

func newSliderPositionCmd(a *app, sf *sliderFlags) *cobra.Command {
	var (
		origin float64
		length float64
		invert bool
	)

	cmd := &cobra.Command{
		Use:   "position <raw>",
		Short: "Convert a pointer coordinate into a fraction and value",
		Long: `Convert a raw pointer coordinate on a track into a fraction and a stepped value.

The fraction is clamped to [0, 1]. Vertical and right-to-left tracks are
measured from the far end unless --invert is given explicitly.

Examples:
  # Pointer at x=150 on a bar starting at x=100 that is 200 wide
  homecontrol slider position --origin 100 --length 200 150`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.sliderConfig(cmd, sf)
			if err != nil {
				return err
			}
			raw, err := parseFloatArg("coordinate", args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("invert") {
				invert = cfg.Inverted()
			}
			f, err := slider.ClampPosition(raw, origin, length, invert)
			if err != nil {
				return err
			}
			v, err := slider.FractionToValue(f, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fraction=%s value=%s\n", formatNumber(f), formatNumber(v))
			return nil
		},
	}

	cmd.Flags().Float64Var(&origin, "origin", 0, "track origin coordinate")
	cmd.Flags().Float64Var(&length, "length", 100, "track length")
	cmd.Flags().BoolVar(&invert, "invert", false, "measure from the far end of the track")
	return cmd
}

func newSliderDragCmd(a *app, sf *sliderFlags) *cobra.Command {
	var (
		events string
		track  slider.Track
	)

	cmd := &cobra.Command{
		Use:   "drag",
		Short: "Replay pointer events against a slider",
		Long: `Replay pointer events against a slider and print every value change.

Events are read one per line from --events or stdin:

  down         pointer pressed on the handle
  move <raw>   pointer moved to a coordinate along the track
  up           pointer released

Blank lines and lines starting with '#' are ignored. Moves outside a drag
are ignored, as are presses while a drag is in progress.

Examples:
  printf 'down\nmove 25\nmove 80\nup\n' | homecontrol slider drag --length 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.sliderConfig(cmd, sf)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if events != "" && events != "-" {
				file, err := os.Open(events)
				if err != nil {
					return fmt.Errorf("failed to open events: %w", err)
				}
				defer file.Close()
				in = file
			}

			out := cmd.OutOrStdout()
			sl, err := slider.New(cfg, track, slider.WithLogger(a.logger.Named("slider")))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "initial value=%s offset=%s progress=%s%%\n",
				formatNumber(sl.Value()), formatNumber(sl.HandleOffset()), formatNumber(sl.Progress()))

			return replayDrag(sl, in, out)
		},
	}

	cmd.Flags().StringVar(&events, "events", "", "event file (default: stdin)")
	cmd.Flags().Float64Var(&track.Origin, "origin", 0, "track origin coordinate")
	cmd.Flags().Float64Var(&track.Length, "length", 100, "track length")
	cmd.Flags().Float64Var(&track.HandleLength, "handle", 0, "handle length")
	return cmd
}

// replayDrag feeds event lines to sl and reports each value change.
func replayDrag(sl *slider.Slider, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		switch strings.ToLower(fields[0]) {
		case "down":
			if len(fields) != 1 {
				return fmt.Errorf("line %d: down takes no arguments", line)
			}
			if !sl.PointerDown() {
				fmt.Fprintf(out, "line %d: down ignored (%s)\n", line, sl.State())
			}
		case "move":
			if len(fields) != 2 {
				return fmt.Errorf("line %d: move takes one coordinate", line)
			}
			raw, err := parseFloatArg("coordinate", fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			if v, changed := sl.PointerMove(raw); changed {
				fmt.Fprintf(out, "value=%s offset=%s progress=%s%%\n",
					formatNumber(v), formatNumber(sl.HandleOffset()), formatNumber(sl.Progress()))
			}
		case "up":
			if len(fields) != 1 {
				return fmt.Errorf("line %d: up takes no arguments", line)
			}
			sl.PointerUp()
		default:
			return fmt.Errorf("line %d: unknown event %q", line, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read events: %w", err)
	}

	fmt.Fprintf(out, "final value=%s\n", formatNumber(sl.Value()))
	return nil
}
