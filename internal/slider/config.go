// Package slider converts pointer positions on a bounded track into stepped
// values and tracks the drag state of a single slider widget.
package slider

import (
	"fmt"
	"math"
)

// RangeError reports a degenerate slider configuration or track.
type RangeError struct {
	Start  float64
	End    float64
	Step   float64
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%g, %g] step %g: %s", e.Start, e.End, e.Step, e.Reason)
}

// Config is the immutable discretisation of a slider.
type Config struct {
	Start float64 `yaml:"start" json:"start"`
	End   float64 `yaml:"end" json:"end"`
	Step  float64 `yaml:"step" json:"step"`

	// Initial is the value before any interaction. When nil the midpoint,
	// snapped down to the step grid, is used.
	Initial *float64 `yaml:"initial,omitempty" json:"initial,omitempty"`

	// Vertical tracks grow upwards: the top of the bar is End.
	Vertical bool `yaml:"vertical,omitempty" json:"vertical,omitempty"`

	// RTL mirrors horizontal tracks for right-to-left layouts. It has no
	// effect on vertical tracks.
	RTL bool `yaml:"rtl,omitempty" json:"rtl,omitempty"`

	// Disabled sliders ignore pointer input.
	Disabled bool `yaml:"disabled,omitempty" json:"disabled,omitempty"`
}

// DefaultConfig returns the 0-100 range with a step of 1.
func DefaultConfig() Config {
	return Config{Start: 0, End: 100, Step: 1}
}

// Validate checks that End > Start and Step > 0.
func (c Config) Validate() error {
	switch {
	case !finite(c.Start) || !finite(c.End) || !finite(c.Step):
		return c.rangeError("bounds and step must be finite")
	case c.End == c.Start:
		return c.rangeError("end equals start")
	case c.End < c.Start:
		return c.rangeError("end is below start")
	case c.Step <= 0:
		return c.rangeError("step must be positive")
	}
	if c.Initial != nil && !finite(*c.Initial) {
		return c.rangeError("initial value must be finite")
	}
	return nil
}

// InitialValue returns Initial when set, otherwise the midpoint of the range
// snapped down to the step grid.
func (c Config) InitialValue() float64 {
	if c.Initial != nil {
		return *c.Initial
	}
	return math.Floor((c.End-c.Start)*0.5/c.Step)*c.Step + c.Start
}

// Inverted reports whether the track runs from End to Start in surface
// coordinates: vertical tracks, and horizontal tracks in RTL layouts.
func (c Config) Inverted() bool {
	return c.Vertical || c.RTL
}

// Range returns End - Start.
func (c Config) Range() float64 {
	return c.End - c.Start
}

func (c Config) rangeError(reason string) *RangeError {
	return &RangeError{Start: c.Start, End: c.End, Step: c.Step, Reason: reason}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
