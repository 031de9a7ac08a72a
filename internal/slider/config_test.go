package slider

import (
	"errors"
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default", cfg: DefaultConfig()},
		{name: "fractional step", cfg: Config{Start: -1, End: 1, Step: 0.25}},
		{name: "end equals start", cfg: Config{Start: 5, End: 5, Step: 1}, wantErr: true},
		{name: "end below start", cfg: Config{Start: 10, End: 0, Step: 1}, wantErr: true},
		{name: "zero step", cfg: Config{Start: 0, End: 10, Step: 0}, wantErr: true},
		{name: "negative step", cfg: Config{Start: 0, End: 10, Step: -1}, wantErr: true},
		{name: "nan end", cfg: Config{Start: 0, End: math.NaN(), Step: 1}, wantErr: true},
		{name: "infinite start", cfg: Config{Start: math.Inf(-1), End: 0, Step: 1}, wantErr: true},
		{name: "nan initial", cfg: Config{Start: 0, End: 1, Step: 1, Initial: ptr(math.NaN())}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var rerr *RangeError
				if !errors.As(err, &rerr) {
					t.Errorf("Validate() error %T is not *RangeError", err)
				}
			}
		})
	}
}

func TestConfigInitialValue(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want float64
	}{
		{name: "default midpoint", cfg: DefaultConfig(), want: 50},
		{name: "midpoint snaps down", cfg: Config{Start: 0, End: 10, Step: 3}, want: 3},
		{name: "offset start", cfg: Config{Start: 10, End: 20, Step: 4}, want: 14},
		{name: "explicit initial", cfg: Config{Start: 0, End: 100, Step: 1, Initial: ptr(72)}, want: 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.InitialValue(); got != tt.want {
				t.Errorf("InitialValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigInverted(t *testing.T) {
	tests := []struct {
		vertical, rtl bool
		want          bool
	}{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, true},
	}
	for _, tt := range tests {
		cfg := Config{Vertical: tt.vertical, RTL: tt.rtl}
		if got := cfg.Inverted(); got != tt.want {
			t.Errorf("Inverted() vertical=%v rtl=%v = %v, want %v", tt.vertical, tt.rtl, got, tt.want)
		}
	}
}

func TestRangeErrorMessage(t *testing.T) {
	err := Config{Start: 1, End: 1, Step: 1}.Validate()
	want := "invalid range [1, 1] step 1: end equals start"
	if err == nil || err.Error() != want {
		t.Errorf("Error() = %v, want %q", err, want)
	}
}
