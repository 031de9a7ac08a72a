package slider

import (
	"math"
	"strconv"
	"strings"
)

// NormalizedPercentage maps value to its fractional position in the range,
// (value-start)/(end-start), clamped to [0, 1].
func NormalizedPercentage(value float64, cfg Config) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	return limitTo((value-cfg.Start)/cfg.Range(), 0, 1), nil
}

// FractionToValue maps a fraction of the track to a value on the step grid.
// The fraction is clamped to [0, 1]. A remainder of at least half a step
// rounds up to the next step.
func FractionToValue(fraction float64, cfg Config) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	fraction = limitTo(fraction, 0, 1)

	point := fraction * cfg.Range()
	steps := math.Floor(point / cfg.Step)
	remainder := math.Mod(point, cfg.Step)

	round := 0.0
	if remainder >= cfg.Step*0.5 {
		round = cfg.Step
	}

	return trimToStep(steps*cfg.Step+round+cfg.Start, cfg), nil
}

// ClampPosition converts a raw pointer coordinate into a fraction of a track
// that begins at origin and is length long. With invert set the fraction is
// measured from the far end.
func ClampPosition(raw, origin, length float64, invert bool) (float64, error) {
	if err := validateTrack(origin, length); err != nil {
		return 0, err
	}
	f := limitTo((raw-origin)/length, 0, 1)
	if invert {
		f = 1 - f
	}
	return f, nil
}

// validateTrack rejects tracks with a non-finite origin or a length that is
// not a positive finite number.
func validateTrack(origin, length float64) error {
	switch {
	case !finite(origin):
		return &RangeError{Start: origin, End: origin + length, Step: length, Reason: "track origin must be finite"}
	case !finite(length) || length <= 0:
		return &RangeError{Start: origin, End: origin + length, Step: length, Reason: "track length must be positive and finite"}
	}
	return nil
}

func limitTo(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// trimToStep rounds v to the number of decimals needed to express Start and
// Step, dropping float noise such as 0.30000000000000004.
func trimToStep(v float64, cfg Config) float64 {
	d := max(decimals(cfg.Step), decimals(cfg.Start))
	if d == 0 {
		return math.Round(v)
	}
	p := math.Pow(10, float64(d))
	if math.IsInf(p, 0) {
		return v
	}
	return math.Round(v*p) / p
}

func decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
