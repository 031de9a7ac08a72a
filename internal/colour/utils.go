package colour

import (
	"fmt"
	"math"
	"strings"
)

// Channel weights used by the legacy contrast rule.
const (
	legacyWeightR = 0.212671
	legacyWeightG = 0.715160
	legacyWeightB = 0.072169

	legacyThreshold = 0.5
)

// ContrastMode selects how a foreground colour is chosen for a background.
type ContrastMode string

const (
	// ContrastLegacy weights the raw 0-255 channels and compares the sum with
	// 0.5. Only near-black backgrounds get a white label under this rule.
	ContrastLegacy ContrastMode = "legacy"

	// ContrastWCAG picks whichever of black and white has the higher WCAG 2.0
	// contrast ratio against the background.
	ContrastWCAG ContrastMode = "wcag"
)

// ParseContrastMode parses a contrast mode name. The empty string selects
// ContrastLegacy.
func ParseContrastMode(s string) (ContrastMode, error) {
	switch ContrastMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ContrastLegacy:
		return ContrastLegacy, nil
	case ContrastWCAG:
		return ContrastWCAG, nil
	}
	return "", fmt.Errorf("unknown contrast mode %q (expected legacy or wcag)", s)
}

// LegacyLuminance returns 0.212671*R + 0.715160*G + 0.072169*B over the raw
// channel values, giving a value in [0, 255].
func LegacyLuminance(c RGB) float64 {
	return legacyWeightR*float64(c.R) + legacyWeightG*float64(c.G) + legacyWeightB*float64(c.B)
}

// Contrast returns the label colour for a background using the legacy rule:
// white when LegacyLuminance is below 0.5, black otherwise.
func Contrast(c RGB) RGB {
	if LegacyLuminance(c) < legacyThreshold {
		return White
	}
	return Black
}

// ContrastFor returns the label colour for c under the given mode. Unknown
// modes fall back to ContrastLegacy.
func ContrastFor(mode ContrastMode, c RGB) RGB {
	if mode == ContrastWCAG {
		if ContrastRatio(Black, c) >= ContrastRatio(White, c) {
			return Black
		}
		return White
	}
	return Contrast(c)
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	rf := gammaCorrect(float64(c.R) / 255.0)
	gf := gammaCorrect(float64(c.G) / 255.0)
	bf := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}
