package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/jmylchreest/homecontrol/internal/colour"
	"github.com/jmylchreest/homecontrol/internal/slider"
)

func newTestModel(t *testing.T, cfg slider.Config) (*Model, *colour.Selector, *slider.Slider) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	p := colour.NewPalette(colour.White, colour.RGB{R: 255}, colour.RGB{G: 255}, colour.Black)
	sel := colour.NewSelector(p)
	sl, err := slider.New(cfg, slider.Track{Length: 1})
	if err != nil {
		t.Fatalf("slider.New() error: %v", err)
	}

	return New(screen, sel, sl, WithColumns(2)), sel, sl
}

func click(m *Model, x, y int) {
	m.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	m.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func TestLayout(t *testing.T) {
	m, _, sl := newTestModel(t, slider.DefaultConfig())

	if m.layout.gridRows != 2 {
		t.Errorf("gridRows = %d, want 2", m.layout.gridRows)
	}
	// Two rows of two-cell-high swatches start at gridTop, then a blank line.
	if want := gridTop + 2*swatchHeight + 1; m.layout.barY != want {
		t.Errorf("barY = %d, want %d", m.layout.barY, want)
	}
	if m.layout.barLength != 76 {
		t.Errorf("barLength = %d, want 76", m.layout.barLength)
	}
	if got := sl.Track(); got.Origin != marginX || got.Length != 75 {
		t.Errorf("slider track = %+v", got)
	}
}

func TestClickSelectsSwatch(t *testing.T) {
	m, sel, _ := newTestModel(t, slider.DefaultConfig())

	// Second column, second row: black.
	click(m, marginX+swatchWidth+1, gridTop+swatchHeight)

	got, ok := sel.Selected()
	if !ok || got != colour.Black {
		t.Errorf("Selected() = %v, %v, want black", got, ok)
	}

	// Clicking outside the grid leaves the selection alone.
	click(m, 70, gridTop)
	if got, _ := sel.Selected(); got != colour.Black {
		t.Errorf("selection changed by a click outside the grid: %v", got)
	}
}

func TestDragSlider(t *testing.T) {
	m, _, sl := newTestModel(t, slider.DefaultConfig())
	y := m.layout.barY

	m.HandleEvent(tcell.NewEventMouse(marginX, y, tcell.Button1, tcell.ModNone))
	if sl.State() != slider.Dragging {
		t.Fatalf("State() after press on bar = %v", sl.State())
	}
	if sl.Value() != 0 {
		t.Errorf("Value() at bar origin = %v, want 0", sl.Value())
	}

	// Motion off the bar still drives the drag.
	m.HandleEvent(tcell.NewEventMouse(marginX+75, y+3, tcell.Button1, tcell.ModNone))
	if sl.Value() != 100 {
		t.Errorf("Value() at bar end = %v, want 100", sl.Value())
	}

	m.HandleEvent(tcell.NewEventMouse(marginX+75, y+3, tcell.ButtonNone, tcell.ModNone))
	if sl.State() != slider.Idle {
		t.Errorf("State() after release = %v", sl.State())
	}

	// Motion after release is ignored.
	m.HandleEvent(tcell.NewEventMouse(marginX, y, tcell.ButtonNone, tcell.ModNone))
	if sl.Value() != 100 {
		t.Errorf("Value() changed after release: %v", sl.Value())
	}
}

func TestPressOffBarDoesNotDrag(t *testing.T) {
	m, _, sl := newTestModel(t, slider.DefaultConfig())

	m.HandleEvent(tcell.NewEventMouse(marginX, gridTop, tcell.Button1, tcell.ModNone))
	m.HandleEvent(tcell.NewEventMouse(marginX+40, m.layout.barY, tcell.Button1, tcell.ModNone))
	if sl.State() != slider.Idle || sl.Value() != 50 {
		t.Errorf("slider moved by a drag that started on a swatch: %v %v", sl.State(), sl.Value())
	}
}

func TestVerticalSlider(t *testing.T) {
	cfg := slider.Config{Start: 0, End: 10, Step: 1, Vertical: true}
	m, _, sl := newTestModel(t, cfg)

	x := m.layout.barX
	m.HandleEvent(tcell.NewEventMouse(x, m.layout.barY, tcell.Button1, tcell.ModNone))
	if sl.Value() != 10 {
		t.Errorf("top of vertical bar = %v, want 10", sl.Value())
	}
	m.HandleEvent(tcell.NewEventMouse(x, m.layout.barY+m.layout.barLength-1, tcell.Button1, tcell.ModNone))
	if sl.Value() != 0 {
		t.Errorf("bottom of vertical bar = %v, want 0", sl.Value())
	}
}

func TestKeys(t *testing.T) {
	m, _, sl := newTestModel(t, slider.DefaultConfig())

	m.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if sl.Value() != 51 {
		t.Errorf("Value() after right = %v, want 51", sl.Value())
	}
	m.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	m.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	if sl.Value() != 49 {
		t.Errorf("Value() after two '-' = %v, want 49", sl.Value())
	}

	if !m.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("'q' did not request quit")
	}
	if !m.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc did not request quit")
	}
}

func TestDrawDoesNotPanic(t *testing.T) {
	for _, cfg := range []slider.Config{
		slider.DefaultConfig(),
		{Start: 0, End: 10, Step: 1, Vertical: true},
		{Start: 0, End: 10, Step: 1, RTL: true},
	} {
		m, sel, _ := newTestModel(t, cfg)
		sel.SelectRGB(colour.White)
		m.Draw()
	}
}

func TestTitle(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	sl, err := slider.New(slider.DefaultConfig(), slider.Track{Length: 1})
	if err != nil {
		t.Fatalf("slider.New() error: %v", err)
	}
	m := New(screen, colour.NewSelector(colour.NewPalette(colour.Black)), sl, WithTitle("Lamp"))
	m.Draw()

	var got []rune
	for x := marginX; x < marginX+4; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		got = append(got, r)
	}
	if string(got) != "Lamp" {
		t.Errorf("title row = %q, want %q", string(got), "Lamp")
	}
}
