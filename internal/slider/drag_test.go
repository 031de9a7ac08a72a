package slider

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from  State
		event Event
		want  State
	}{
		{Idle, PointerDown, Dragging},
		{Idle, PointerMove, Idle},
		{Idle, PointerUp, Idle},
		{Dragging, PointerDown, Dragging},
		{Dragging, PointerMove, Dragging},
		{Dragging, PointerUp, Idle},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.event.String(), func(t *testing.T) {
			if got := Transition(tt.from, tt.event); got != tt.want {
				t.Errorf("Transition(%v, %v) = %v, want %v", tt.from, tt.event, got, tt.want)
			}
		})
	}
}

func TestNewRejectsDegenerate(t *testing.T) {
	var rerr *RangeError

	_, err := New(Config{Start: 1, End: 1, Step: 1}, Track{Length: 10})
	if !errors.As(err, &rerr) {
		t.Errorf("New() with degenerate config error = %v, want *RangeError", err)
	}

	for _, track := range []Track{
		{Length: 0},
		{Length: math.Inf(1)},
		{Length: math.NaN()},
		{Origin: math.Inf(-1), Length: 10},
	} {
		_, err = New(DefaultConfig(), track)
		if !errors.As(err, &rerr) {
			t.Errorf("New() with track %+v error = %v, want *RangeError", track, err)
		}
	}
}

func TestSliderDrag(t *testing.T) {
	var changes []float64
	s, err := New(DefaultConfig(), Track{Origin: 0, Length: 100},
		WithLogger(hclog.NewNullLogger()),
		WithOnChange(func(v float64) { changes = append(changes, v) }),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if s.Value() != 50 || s.State() != Idle {
		t.Fatalf("initial value/state = %v/%v, want 50/idle", s.Value(), s.State())
	}

	// Moves before pointer-down are ignored.
	if v, changed := s.PointerMove(10); changed || v != 50 {
		t.Errorf("PointerMove() while idle = %v, %v", v, changed)
	}

	if !s.PointerDown() {
		t.Fatal("PointerDown() returned false")
	}
	if s.PointerDown() {
		t.Error("second PointerDown() should be ignored")
	}
	if s.State() != Dragging {
		t.Fatalf("State() = %v, want dragging", s.State())
	}

	if v, changed := s.PointerMove(25); !changed || v != 25 {
		t.Errorf("PointerMove(25) = %v, %v", v, changed)
	}
	if v, changed := s.PointerMove(25.25); changed || v != 25 {
		t.Errorf("PointerMove(25.25) = %v, %v, want unchanged", v, changed)
	}
	if v, _ := s.PointerMove(25.75); v != 26 {
		t.Errorf("PointerMove(25.75) = %v, want 26", v)
	}
	if v, _ := s.PointerMove(500); v != 100 {
		t.Errorf("PointerMove(500) = %v, want 100", v)
	}

	s.PointerUp()
	if s.State() != Idle {
		t.Fatalf("State() after PointerUp() = %v", s.State())
	}
	if _, changed := s.PointerMove(0); changed {
		t.Error("PointerMove() after PointerUp() changed the value")
	}

	want := []float64{25, 26, 100}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Errorf("OnChange values mismatch (-want +got):\n%s", diff)
	}
}

func TestSliderVerticalDrag(t *testing.T) {
	cfg := Config{Start: 0, End: 10, Step: 1, Vertical: true}
	s, err := New(cfg, Track{Origin: 20, Length: 100, HandleLength: 10})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	s.PointerDown()
	if v, _ := s.PointerMove(20); v != 10 {
		t.Errorf("top of vertical track = %v, want 10", v)
	}
	if v, _ := s.PointerMove(120); v != 0 {
		t.Errorf("bottom of vertical track = %v, want 0", v)
	}
	if got := s.HandleOffset(); got != 92 {
		t.Errorf("HandleOffset() at start = %v, want 92", got)
	}
	if got := s.Progress(); got != 0 {
		t.Errorf("Progress() = %v, want 0", got)
	}
}

func TestSliderDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Disabled = true
	s, err := New(cfg, Track{Length: 100})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if s.PointerDown() {
		t.Error("PointerDown() on a disabled slider returned true")
	}
	if _, changed := s.PointerMove(10); changed {
		t.Error("disabled slider changed value")
	}
}

func TestSliderSetValue(t *testing.T) {
	s, err := New(Config{Start: 0, End: 100, Step: 5}, Track{Length: 100})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		in   float64
		want float64
	}{
		{in: 33, want: 35},
		{in: 32, want: 30},
		{in: 150, want: 100},
		{in: -5, want: 0},
	}
	for _, tt := range tests {
		if got := s.SetValue(tt.in); got != tt.want {
			t.Errorf("SetValue(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if s.Value() != tt.want {
			t.Errorf("Value() after SetValue(%v) = %v", tt.in, s.Value())
		}
	}
}

func TestSliderSetTrack(t *testing.T) {
	s, err := New(DefaultConfig(), Track{Length: 100})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	for _, bad := range []Track{{Length: -1}, {Length: math.Inf(1)}, {Origin: math.NaN(), Length: 10}} {
		if err := s.SetTrack(bad); err == nil {
			t.Errorf("SetTrack(%+v) expected error", bad)
		}
	}
	if got := s.Track(); got.Length != 100 {
		t.Errorf("track after rejected SetTrack = %+v, want the previous track", got)
	}
	if err := s.SetTrack(Track{Origin: 10, Length: 50}); err != nil {
		t.Fatalf("SetTrack() error: %v", err)
	}
	s.PointerDown()
	if v, _ := s.PointerMove(35); v != 50 {
		t.Errorf("PointerMove(35) on resized track = %v, want 50", v)
	}
}
