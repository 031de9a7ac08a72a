package slider

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizedPercentage(t *testing.T) {
	cfg := Config{Start: 0, End: 100, Step: 1}

	tests := []struct {
		value float64
		want  float64
	}{
		{value: 0, want: 0},
		{value: 25, want: 0.25},
		{value: 100, want: 1},
		{value: 150, want: 1},
		{value: -20, want: 0},
	}

	for _, tt := range tests {
		got, err := NormalizedPercentage(tt.value, cfg)
		if err != nil {
			t.Fatalf("NormalizedPercentage(%v) error: %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("NormalizedPercentage(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestNormalizedPercentageMonotonic(t *testing.T) {
	cfg := Config{Start: 0, End: 100, Step: 1}

	prev := -1.0
	for v := -50.0; v <= 250; v += 0.5 {
		got, err := NormalizedPercentage(v, cfg)
		if err != nil {
			t.Fatalf("NormalizedPercentage(%v) error: %v", v, err)
		}
		if got < prev {
			t.Fatalf("NormalizedPercentage(%v) = %v decreased from %v", v, got, prev)
		}
		if v >= 100 && got != 1 {
			t.Fatalf("NormalizedPercentage(%v) = %v, want 1", v, got)
		}
		prev = got
	}
}

func TestNormalizedPercentageDegenerate(t *testing.T) {
	_, err := NormalizedPercentage(5, Config{Start: 10, End: 10, Step: 1})
	var rerr *RangeError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want *RangeError", err)
	}
}

func TestFractionToValue(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		fraction float64
		want     float64
	}{
		{name: "start", cfg: DefaultConfig(), fraction: 0, want: 0},
		{name: "end", cfg: DefaultConfig(), fraction: 1, want: 100},
		{name: "half step rounds up", cfg: DefaultConfig(), fraction: 0.125, want: 13},
		{name: "tie at step ten", cfg: Config{Start: 0, End: 100, Step: 10}, fraction: 0.25, want: 30},
		{name: "above half rounds up", cfg: Config{Start: 0, End: 100, Step: 10}, fraction: 0.375, want: 40},
		{name: "below half keeps", cfg: Config{Start: 0, End: 100, Step: 10}, fraction: 0.3125, want: 30},
		{name: "offset start", cfg: Config{Start: 20, End: 30, Step: 0.5}, fraction: 0.5, want: 25},
		{name: "offset start tie", cfg: Config{Start: 20, End: 30, Step: 0.5}, fraction: 0.125, want: 21.5},
		{name: "decimal step", cfg: Config{Start: 0, End: 1, Step: 0.1}, fraction: 0.3, want: 0.3},
		{name: "negative start", cfg: Config{Start: -50, End: 50, Step: 5}, fraction: 0.5, want: 0},
		{name: "clamped below", cfg: DefaultConfig(), fraction: -0.5, want: 0},
		{name: "clamped above", cfg: DefaultConfig(), fraction: 3, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FractionToValue(tt.fraction, tt.cfg)
			if err != nil {
				t.Fatalf("FractionToValue() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FractionToValue(%v) = %v, want %v", tt.fraction, got, tt.want)
			}
		})
	}
}

func TestFractionToValueOnGrid(t *testing.T) {
	cfg := Config{Start: 0, End: 100, Step: 1}
	for i := 0; i <= 1000; i++ {
		f := float64(i) / 1000
		v, err := FractionToValue(f, cfg)
		if err != nil {
			t.Fatalf("FractionToValue(%v) error: %v", f, err)
		}
		if v != math.Trunc(v) {
			t.Fatalf("FractionToValue(%v) = %v is not on the step grid", f, v)
		}
		if v < cfg.Start || v > cfg.End {
			t.Fatalf("FractionToValue(%v) = %v outside range", f, v)
		}
	}
}

func TestFractionToValueDegenerate(t *testing.T) {
	for _, cfg := range []Config{
		{Start: 0, End: 0, Step: 1},
		{Start: 0, End: 10, Step: 0},
	} {
		if _, err := FractionToValue(0.5, cfg); err == nil {
			t.Errorf("FractionToValue() with %+v expected error", cfg)
		}
	}
}

func TestClampPosition(t *testing.T) {
	tests := []struct {
		name   string
		raw    float64
		invert bool
		want   float64
	}{
		{name: "origin", raw: 100, want: 0},
		{name: "quarter", raw: 150, want: 0.25},
		{name: "quarter inverted", raw: 150, invert: true, want: 0.75},
		{name: "end", raw: 300, want: 1},
		{name: "far before", raw: -1e9, want: 0},
		{name: "far after", raw: 1e9, want: 1},
		{name: "far after inverted", raw: 1e9, invert: true, want: 0},
		{name: "nan", raw: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClampPosition(tt.raw, 100, 200, tt.invert)
			if err != nil {
				t.Fatalf("ClampPosition() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ClampPosition(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClampPositionBounded(t *testing.T) {
	for raw := -1000.0; raw <= 1000; raw += 7.3 {
		for _, invert := range []bool{false, true} {
			f, err := ClampPosition(raw, 10, 37, invert)
			if err != nil {
				t.Fatalf("ClampPosition() error: %v", err)
			}
			if f < 0 || f > 1 {
				t.Fatalf("ClampPosition(%v, invert=%v) = %v outside [0,1]", raw, invert, f)
			}
		}
	}
}

func TestClampPositionZeroLength(t *testing.T) {
	for _, length := range []float64{0, -10, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ClampPosition(5, 0, length, false)
		var rerr *RangeError
		if !errors.As(err, &rerr) {
			t.Errorf("ClampPosition(length=%v) error = %v, want *RangeError", length, err)
		}
	}
}

func TestClampPositionNonFiniteOrigin(t *testing.T) {
	for _, origin := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ClampPosition(5, origin, 10, false)
		var rerr *RangeError
		if !errors.As(err, &rerr) {
			t.Errorf("ClampPosition(origin=%v) error = %v, want *RangeError", origin, err)
		}
	}
}

func TestFractionToValueSubnormalStep(t *testing.T) {
	cfg := Config{End: 1e-300, Step: 5e-324}
	got, err := FractionToValue(0.5, cfg)
	if err != nil {
		t.Fatalf("FractionToValue() error: %v", err)
	}
	if math.IsNaN(got) || got < cfg.Start || got > cfg.End {
		t.Errorf("FractionToValue(0.5) = %v, want a value in [%v, %v]", got, cfg.Start, cfg.End)
	}
}
