package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/homecontrol/internal/colour"
)

// colourValue is a pflag.Value holding a hex colour.
type colourValue struct {
	rgb colour.RGB
	set bool
}

var _ pflag.Value = (*colourValue)(nil)

func (v *colourValue) String() string {
	if !v.set {
		return ""
	}
	return v.rgb.Hex()
}

func (v *colourValue) Set(s string) error {
	c, err := colour.ParseHex(s)
	if err != nil {
		return err
	}
	v.rgb, v.set = c, true
	return nil
}

func (v *colourValue) Type() string {
	return "colour"
}

// previewMode controls ANSI swatches in table output.
type previewMode string

const (
	previewAuto   previewMode = "auto"
	previewAlways previewMode = "always"
	previewNever  previewMode = "never"
)

func (p previewMode) enabled(cmd *cobra.Command) (bool, error) {
	switch p {
	case previewAuto:
		return isTerminal(cmd.OutOrStdout()), nil
	case previewAlways:
		return true, nil
	case previewNever:
		return false, nil
	}
	return false, fmt.Errorf("invalid preview mode %q (expected auto, always or never)", p)
}

// contrastMode returns the --mode flag when set, otherwise the widget file's
// contrast mode.
func (a *app) contrastMode(cmd *cobra.Command, flagValue string) (colour.ContrastMode, error) {
	if cmd.Flags().Changed("mode") {
		return colour.ParseContrastMode(flagValue)
	}
	return a.file.ContrastMode()
}

func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected a number", name, s)
	}
	return v, nil
}

// formatNumber prints floats without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
