package colour

import (
	"iter"
	"slices"

	"github.com/hashicorp/go-hclog"
)

// Option is one entry of the list a Selector presents.
type Option struct {
	Colour     RGB  `json:"colour"`
	Foreground RGB  `json:"foreground"`
	Selected   bool `json:"selected"`
}

// Selector holds a palette and the current selection for a single colour
// widget. Each widget owns its own Selector; there is no shared instance.
//
// A Selector is not safe for concurrent use. It is driven by the one event
// loop that owns the widget.
type Selector struct {
	palette  *Palette
	mode     ContrastMode
	logger   hclog.Logger
	selected RGB
	has      bool

	nextID    int
	listeners []listener
	disposed  bool
}

type listener struct {
	id int
	fn func(RGB)
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithLogger sets the logger used for selection changes.
func WithLogger(logger hclog.Logger) SelectorOption {
	return func(s *Selector) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithContrastMode sets how option foregrounds are computed.
func WithContrastMode(mode ContrastMode) SelectorOption {
	return func(s *Selector) {
		s.mode = mode
	}
}

// WithInitial preselects a colour without notifying subscribers.
func WithInitial(c RGB) SelectorOption {
	return func(s *Selector) {
		s.selected = c
		s.has = true
	}
}

// NewSelector creates a selector over p. A nil palette behaves as empty.
func NewSelector(p *Palette, opts ...SelectorOption) *Selector {
	if p == nil {
		p = NewPalette()
	}
	s := &Selector{
		palette: p,
		mode:    ContrastLegacy,
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Palette returns the palette the selector presents.
func (s *Selector) Palette() *Palette {
	return s.palette
}

// Mode returns the contrast mode used for option foregrounds.
func (s *Selector) Mode() ContrastMode {
	return s.mode
}

// Select parses a hex colour and makes it the current selection. Colours
// outside the palette are accepted. A malformed string returns a
// *ValidationError and leaves the selection unchanged.
func (s *Selector) Select(hex string) error {
	c, err := ParseHex(hex)
	if err != nil {
		s.logger.Debug("rejected colour", "input", hex, "error", err)
		return err
	}
	s.SelectRGB(c)
	return nil
}

// SelectRGB makes c the current selection and notifies subscribers when the
// value changed.
func (s *Selector) SelectRGB(c RGB) {
	changed := !s.has || s.selected != c
	s.selected = c
	s.has = true
	if !changed {
		return
	}

	s.logger.Debug("colour selected", "colour", c.Hex(), "in_palette", s.palette.Contains(c))
	for _, l := range slices.Clone(s.listeners) {
		l.fn(c)
	}
}

// Selected returns the current selection, if any.
func (s *Selector) Selected() (RGB, bool) {
	return s.selected, s.has
}

// Clear removes the current selection.
func (s *Selector) Clear() {
	s.selected = RGB{}
	s.has = false
}

// Foreground returns the label colour for the current selection.
func (s *Selector) Foreground() (RGB, bool) {
	if !s.has {
		return RGB{}, false
	}
	return ContrastFor(s.mode, s.selected), true
}

// Options returns the palette as a sequence of options in display order.
// An option is marked selected when it exactly equals the current selection.
// The sequence is evaluated lazily and can be ranged over repeatedly; each
// pass reflects the selection at the time it runs.
func (s *Selector) Options() iter.Seq[Option] {
	return func(yield func(Option) bool) {
		for _, c := range s.palette.All() {
			opt := Option{
				Colour:     c,
				Foreground: ContrastFor(s.mode, c),
				Selected:   s.has && c == s.selected,
			}
			if !yield(opt) {
				return
			}
		}
	}
}

// Subscribe registers fn to be called after each selection change. The
// returned function removes the subscription. After Dispose, Subscribe
// registers nothing and returns a no-op.
func (s *Selector) Subscribe(fn func(RGB)) (cancel func()) {
	if s.disposed || fn == nil {
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener) bool {
			return l.id == id
		})
	}
}

// Dispose releases every subscription. It is safe to call more than once.
func (s *Selector) Dispose() {
	if s.disposed {
		return
	}
	s.logger.Trace("disposing selector", "subscriptions", len(s.listeners))
	s.listeners = nil
	s.disposed = true
}
