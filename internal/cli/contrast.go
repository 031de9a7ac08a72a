package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/homecontrol/internal/colour"
)

type contrastResult struct {
	Colour          colour.RGB `json:"colour"`
	Foreground      colour.RGB `json:"foreground"`
	LegacyLuminance float64    `json:"legacy_luminance"`
	Luminance       float64    `json:"luminance"`
	ContrastRatio   float64    `json:"contrast_ratio"`
}

func newContrastCmd(a *app) *cobra.Command {
	var (
		mode    string
		format  string
		preview string
	)

	cmd := &cobra.Command{
		Use:   "contrast <colour>...",
		Short: "Compute the readable label colour for backgrounds",
		Long: `Compute the black or white label colour for each background colour.

Colours are six hex digits with an optional leading '#', in either case.

The legacy mode weights the raw 0-255 channels and switches to white only for
near-black backgrounds. The wcag mode picks whichever of black or white has
the higher WCAG 2.0 contrast ratio.

Examples:
  # Label colour for a single background
  homecontrol contrast '#FF8800'

  # Several colours as JSON using WCAG contrast
  homecontrol contrast --mode wcag --format json 000080 ffff00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.contrastMode(cmd, mode)
			if err != nil {
				return err
			}

			results := make([]contrastResult, 0, len(args))
			for _, arg := range args {
				c, err := colour.ParseHex(arg)
				if err != nil {
					return err
				}
				fg := colour.ContrastFor(m, c)
				results = append(results, contrastResult{
					Colour:          c,
					Foreground:      fg,
					LegacyLuminance: colour.LegacyLuminance(c),
					Luminance:       colour.Luminance(c),
					ContrastRatio:   colour.ContrastRatio(c, fg),
				})
			}
			a.logger.Debug("computed contrast", "mode", m, "count", len(results))

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode results: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			case "text":
			default:
				return fmt.Errorf("invalid format %q (expected text or json)", format)
			}

			show, err := previewMode(preview).enabled(cmd)
			if err != nil {
				return err
			}

			headers := []string{"COLOUR", "FOREGROUND", "LEGACY", "LUMINANCE", "RATIO"}
			if show {
				headers = append(headers, "PREVIEW")
			}
			tbl := NewTable(headers...)
			for _, r := range results {
				row := []string{
					r.Colour.Hex(),
					r.Foreground.Hex(),
					fmt.Sprintf("%.3f", r.LegacyLuminance),
					fmt.Sprintf("%.4f", r.Luminance),
					fmt.Sprintf("%.2f:1", r.ContrastRatio),
				}
				if show {
					row = append(row, colour.Swatch(r.Colour, "Aa", 8, m))
				}
				tbl.AddRow(row...)
			}
			return tbl.Write(out)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(colour.ContrastLegacy), "contrast mode (legacy, wcag)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVar(&preview, "preview", string(previewAuto), "show colour swatches (auto, always, never)")

	return cmd
}
