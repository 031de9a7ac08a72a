// Package colour provides the colour selector core: hex parsing, palettes,
// contrast computation and the per-widget selection state.
package colour

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// RGB represents a colour as a 24-bit RGB triple. Text encodings (JSON,
// YAML) use the "#rrggbb" form.
type RGB struct {
	R, G, B uint8
}

// Pure black and white, the only values Contrast returns.
var (
	Black = RGB{R: 0, G: 0, B: 0}
	White = RGB{R: 255, G: 255, B: 255}
)

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (rgb RGB) MarshalText() ([]byte, error) {
	return []byte(rgb.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same
// forms as ParseHex.
func (rgb *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*rgb = parsed
	return nil
}

// Palette is an ordered sequence of colours. Insertion order is display
// order and duplicates are allowed.
type Palette struct {
	colours []RGB
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colours ...RGB) *Palette {
	return &Palette{colours: slices.Clone(colours)}
}

// ParsePalette builds a palette from hex strings. The first malformed entry
// aborts the parse and its ValidationError is returned.
func ParsePalette(hexColours []string) (*Palette, error) {
	colours := make([]RGB, 0, len(hexColours))
	for i, h := range hexColours {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		colours = append(colours, c)
	}
	return &Palette{colours: colours}, nil
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.colours)
}

// At returns the colour at index i.
// Returns an error if the index is out of bounds.
func (p *Palette) At(i int) (RGB, error) {
	if i < 0 || i >= p.Len() {
		return RGB{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", i, p.Len())
	}
	return p.colours[i], nil
}

// Index returns the position of the first entry equal to c, or -1.
func (p *Palette) Index(c RGB) int {
	if p == nil {
		return -1
	}
	return slices.Index(p.colours, c)
}

// Contains reports whether c is a palette member.
func (p *Palette) Contains(c RGB) bool {
	return p.Index(c) >= 0
}

// All returns an iterator over the palette in display order.
func (p *Palette) All() iter.Seq2[int, RGB] {
	return func(yield func(int, RGB) bool) {
		if p == nil {
			return
		}
		for i, c := range p.colours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Hex converts the palette colours to hex strings.
func (p *Palette) Hex() []string {
	out := make([]string, 0, p.Len())
	for _, c := range p.All() {
		out = append(out, c.Hex())
	}
	return out
}

// MarshalJSON encodes the palette as an array of hex strings.
func (p *Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Hex())
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if p.Len() == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", p.Len())
	for i, c := range p.All() {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return result
}
