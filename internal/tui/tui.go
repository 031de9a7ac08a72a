// Package tui is an interactive terminal surface for one colour selector and
// one slider. Mouse presses on a swatch select it; pressing on the slider bar
// starts a drag that follows motion until the button is released.
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/homecontrol/internal/colour"
	"github.com/jmylchreest/homecontrol/internal/slider"
)

const (
	swatchWidth  = 6
	swatchHeight = 2
	marginX      = 2
	gridTop      = 2
	minBarLength = 2
)

// Model is the terminal widget state. It owns no goroutines; Run polls the
// screen on the calling goroutine.
type Model struct {
	screen  tcell.Screen
	sel     *colour.Selector
	slider  *slider.Slider
	columns int
	title   string
	logger  hclog.Logger

	layout  layout
	pressed bool
	status  string
}

type layout struct {
	width, height int
	gridRows      int
	barX, barY    int
	barLength     int
	vertical      bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithColumns sets how many swatches are drawn per row.
func WithColumns(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.columns = n
		}
	}
}

// WithTitle sets the heading line.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// New creates a model drawing on screen. The screen must already be
// initialised.
func New(screen tcell.Screen, sel *colour.Selector, sl *slider.Slider, opts ...Option) *Model {
	m := &Model{
		screen:  screen,
		sel:     sel,
		slider:  sl,
		columns: 8,
		title:   "Choose a colour...",
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Resize()
	return m
}

// Resize recomputes the layout from the screen size and moves the slider
// track to the new bar position.
func (m *Model) Resize() {
	w, h := m.screen.Size()
	cols := m.columns
	if fit := (w - 2*marginX) / swatchWidth; fit > 0 && fit < cols {
		cols = fit
	}
	m.columns = max(cols, 1)

	n := m.sel.Palette().Len()
	l := layout{
		width:    w,
		height:   h,
		gridRows: (n + m.columns - 1) / m.columns,
		vertical: m.slider.Config().Vertical,
	}

	if l.vertical {
		l.barX = marginX + m.columns*swatchWidth + 2
		l.barY = gridTop
		l.barLength = max(h-gridTop-3, minBarLength)
	} else {
		l.barX = marginX
		l.barY = gridTop + l.gridRows*swatchHeight + 1
		l.barLength = max(w-2*marginX, minBarLength)
	}
	m.layout = l

	// Cells run from the bar origin to origin+length-1.
	track := slider.Track{
		Origin:       float64(l.barX),
		Length:       float64(l.barLength - 1),
		HandleLength: 1,
	}
	if l.vertical {
		track.Origin = float64(l.barY)
	}
	if err := m.slider.SetTrack(track); err != nil {
		m.logger.Warn("invalid slider track", "error", err)
	}
}

// swatchAt returns the palette index under a cell, or -1.
func (m *Model) swatchAt(x, y int) int {
	if x < marginX || y < gridTop {
		return -1
	}
	col := (x - marginX) / swatchWidth
	row := (y - gridTop) / swatchHeight
	if col >= m.columns || row >= m.layout.gridRows {
		return -1
	}
	i := row*m.columns + col
	if i >= m.sel.Palette().Len() {
		return -1
	}
	return i
}

// onBar reports whether a cell lies on the slider bar.
func (m *Model) onBar(x, y int) bool {
	l := m.layout
	if l.vertical {
		return x == l.barX && y >= l.barY && y < l.barY+l.barLength
	}
	return y == l.barY && x >= l.barX && x < l.barX+l.barLength
}

// barCoordinate returns the raw pointer coordinate along the bar axis.
func (m *Model) barCoordinate(x, y int) float64 {
	if m.layout.vertical {
		return float64(y)
	}
	return float64(x)
}

// HandleEvent applies one event. It reports true when the user asked to quit.
func (m *Model) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		m.screen.Sync()
		m.Resize()
	case *tcell.EventKey:
		return m.handleKey(ev)
	case *tcell.EventMouse:
		m.handleMouse(ev)
	}
	return false
}

func (m *Model) handleKey(ev *tcell.EventKey) bool {
	step := m.slider.Config().Step
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRight, tcell.KeyUp:
		m.nudge(step)
	case tcell.KeyLeft, tcell.KeyDown:
		m.nudge(-step)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case '+':
			m.nudge(step)
		case '-':
			m.nudge(-step)
		}
	}
	return false
}

func (m *Model) nudge(delta float64) {
	v := m.slider.SetValue(m.slider.Value() + delta)
	m.status = fmt.Sprintf("value %g", v)
}

func (m *Model) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !m.pressed:
		m.pressed = true
		if m.onBar(x, y) {
			if m.slider.PointerDown() {
				m.slider.PointerMove(m.barCoordinate(x, y))
			}
			return
		}
		if i := m.swatchAt(x, y); i >= 0 {
			c, _ := m.sel.Palette().At(i)
			m.sel.SelectRGB(c)
			m.status = "selected " + c.Hex()
		}
	case down && m.pressed:
		if m.slider.State() == slider.Dragging {
			m.slider.PointerMove(m.barCoordinate(x, y))
		}
	case !down && m.pressed:
		m.pressed = false
		m.slider.PointerUp()
	}
}

// Draw renders the whole surface and shows it.
func (m *Model) Draw() {
	m.screen.Clear()
	base := tcell.StyleDefault

	m.drawText(marginX, 0, m.title, base.Bold(true))
	m.drawGrid()
	m.drawBar()
	m.drawStatus(base)

	m.screen.Show()
}

func (m *Model) drawGrid() {
	i := 0
	for opt := range m.sel.Options() {
		x := marginX + (i%m.columns)*swatchWidth
		y := gridTop + (i/m.columns)*swatchHeight
		style := tcell.StyleDefault.
			Background(toTcell(opt.Colour)).
			Foreground(toTcell(opt.Foreground))

		for dy := 0; dy < swatchHeight; dy++ {
			for dx := 0; dx < swatchWidth; dx++ {
				r := ' '
				if opt.Selected && dy == 0 && dx == swatchWidth/2-1 {
					r = '✓'
				}
				m.screen.SetContent(x+dx, y+dy, r, nil, style)
			}
		}
		i++
	}
}

func (m *Model) drawBar() {
	l := m.layout
	fill := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	empty := tcell.StyleDefault.Foreground(tcell.ColorGray)
	handle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	cfg := m.slider.Config()
	pct := m.slider.Progress() / 100
	pos := int(math.Round(pct * float64(l.barLength-1)))
	if cfg.Inverted() {
		pos = l.barLength - 1 - pos
	}

	for i := 0; i < l.barLength; i++ {
		r, style := '─', empty
		if l.vertical {
			r = '│'
		}
		active := i <= pos
		if cfg.Inverted() {
			active = i >= pos
		}
		if active {
			style = fill
		}
		if i == pos {
			r, style = '●', handle
		}
		if l.vertical {
			m.screen.SetContent(l.barX, l.barY+i, r, nil, style)
		} else {
			m.screen.SetContent(l.barX+i, l.barY, r, nil, style)
		}
	}
}

func (m *Model) drawStatus(style tcell.Style) {
	line := fmt.Sprintf("value %g  [%s]", m.slider.Value(), m.slider.State())
	if c, ok := m.sel.Selected(); ok {
		line = fmt.Sprintf("colour %s  %s", c.Hex(), line)
	}
	if m.status != "" {
		line += "  " + m.status
	}
	m.drawText(marginX, m.layout.height-1, line+"  (q to quit)", style)
}

func (m *Model) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= m.layout.width {
			return
		}
		m.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run draws and processes events until the user quits or the screen is
// finalised.
func (m *Model) Run() error {
	m.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	defer m.screen.DisableMouse()

	for {
		m.Draw()
		ev := m.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if m.HandleEvent(ev) {
			m.logger.Debug("quit requested")
			return nil
		}
	}
}

func toTcell(c colour.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
