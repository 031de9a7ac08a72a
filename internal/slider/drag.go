package slider

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// State is the drag state of a slider.
type State int

const (
	// Idle means no pointer is holding the handle.
	Idle State = iota
	// Dragging means the handle follows pointer moves.
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Event is a pointer input relevant to the drag state.
type Event int

const (
	PointerDown Event = iota
	PointerMove
	PointerUp
)

func (e Event) String() string {
	switch e {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Transition returns the state after e. Pointer-down starts a drag from
// Idle, pointer-up always ends one, and moves never change state.
func Transition(s State, e Event) State {
	switch e {
	case PointerDown:
		if s == Idle {
			return Dragging
		}
	case PointerUp:
		return Idle
	}
	return s
}

// Slider is the state of one slider widget: its configuration, track
// geometry, current value and drag state. It is not safe for concurrent use.
type Slider struct {
	cfg      Config
	track    Track
	value    float64
	state    State
	logger   hclog.Logger
	onChange func(float64)
}

// Option configures a Slider.
type Option func(*Slider)

// WithLogger sets the logger used for drag transitions.
func WithLogger(logger hclog.Logger) Option {
	return func(s *Slider) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOnChange registers fn to be called whenever pointer input or SetValue
// changes the value.
func WithOnChange(fn func(float64)) Option {
	return func(s *Slider) {
		s.onChange = fn
	}
}

// New creates a slider positioned at cfg.InitialValue(). It returns a
// *RangeError for a degenerate config or a track without positive length.
func New(cfg Config, track Track, opts ...Option) (*Slider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := track.Validate(); err != nil {
		return nil, err
	}

	s := &Slider{
		cfg:    cfg,
		track:  track,
		value:  cfg.InitialValue(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the slider's configuration.
func (s *Slider) Config() Config {
	return s.cfg
}

// Track returns the slider's track geometry.
func (s *Slider) Track() Track {
	return s.track
}

// SetTrack replaces the track geometry, for example after a resize. Tracks
// rejected by Track.Validate leave the current track in place.
func (s *Slider) SetTrack(t Track) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.track = t
	return nil
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// State returns the current drag state.
func (s *Slider) State() State {
	return s.state
}

// PointerDown starts a drag. It reports false when the slider is disabled or
// a drag is already in progress.
func (s *Slider) PointerDown() bool {
	if s.cfg.Disabled || s.state != Idle {
		return false
	}
	s.state = Transition(s.state, PointerDown)
	s.logger.Trace("drag started", "value", s.value)
	return true
}

// PointerMove recomputes the value from a raw pointer coordinate. Moves are
// ignored unless a drag is in progress. It returns the current value and
// whether the move changed it.
func (s *Slider) PointerMove(raw float64) (float64, bool) {
	if s.state != Dragging {
		return s.value, false
	}
	s.state = Transition(s.state, PointerMove)

	f, err := s.track.Fraction(raw, s.cfg)
	if err != nil {
		s.logger.Warn("pointer move ignored", "raw", raw, "error", err)
		return s.value, false
	}
	v, err := FractionToValue(f, s.cfg)
	if err != nil {
		s.logger.Warn("pointer move ignored", "raw", raw, "error", err)
		return s.value, false
	}
	return v, s.update(v)
}

// PointerUp ends any drag in progress.
func (s *Slider) PointerUp() {
	if s.state == Dragging {
		s.logger.Trace("drag ended", "value", s.value)
	}
	s.state = Transition(s.state, PointerUp)
}

// SetValue moves the slider to v snapped onto the step grid and clamped to
// the range. It returns the value actually set.
func (s *Slider) SetValue(v float64) float64 {
	pct, _ := NormalizedPercentage(v, s.cfg)
	snapped, _ := FractionToValue(pct, s.cfg)
	s.update(snapped)
	return snapped
}

// HandleOffset returns the handle translation for the current value.
func (s *Slider) HandleOffset() float64 {
	offset, _ := s.track.HandleOffset(s.value, s.cfg)
	return offset
}

// Progress returns the active segment share, in percent, for the current
// value.
func (s *Slider) Progress() float64 {
	p, _ := s.track.Progress(s.value, s.cfg)
	return p
}

func (s *Slider) update(v float64) bool {
	if v == s.value {
		return false
	}
	s.logger.Debug("value changed", "from", s.value, "to", v, "state", s.state)
	s.value = v
	if s.onChange != nil {
		s.onChange(v)
	}
	return true
}
