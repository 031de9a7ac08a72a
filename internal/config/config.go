// Package config loads the widget file that describes the colour selector
// and the named sliders an embedding application exposes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/homecontrol/internal/colour"
	"github.com/jmylchreest/homecontrol/internal/slider"
)

// Environment variables consulted by ApplyEnv and ResolvePath.
const (
	EnvConfig   = "HOMECONTROL_CONFIG"
	EnvPalette  = "HOMECONTROL_PALETTE"
	EnvContrast = "HOMECONTROL_CONTRAST"
)

// DefaultSlider is the slider name used when none is given.
const DefaultSlider = "brightness"

// File is the widget file.
type File struct {
	// Palette names a built-in palette. Ignored when Colours is set.
	Palette string `yaml:"palette,omitempty"`

	// Colours is an explicit palette in display order.
	Colours []string `yaml:"colours,omitempty"`

	// Columns is the row width used when laying the palette out.
	Columns int `yaml:"columns,omitempty"`

	// Selected is the initial selection.
	Selected string `yaml:"selected,omitempty"`

	// Contrast is the contrast mode: legacy or wcag.
	Contrast string `yaml:"contrast,omitempty"`

	// Title is the heading shown above the palette on interactive surfaces.
	Title string `yaml:"title,omitempty"`

	Sliders map[string]slider.Config `yaml:"sliders,omitempty"`
}

// Default returns the configuration used without a widget file.
func Default() *File {
	return &File{
		Palette:  colour.DefaultPaletteName,
		Contrast: string(colour.ContrastLegacy),
		Sliders: map[string]slider.Config{
			DefaultSlider: slider.DefaultConfig(),
		},
	}
}

// ResolvePath returns the widget file path: the flag value when set,
// otherwise HOMECONTROL_CONFIG. An empty result means no file.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfig)
}

// Load reads and validates a widget file. An empty path returns Default.
// Sections missing from the file keep their default values.
func Load(path string) (*File, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a widget file from YAML. Unknown keys are
// rejected.
func Parse(data []byte) (*File, error) {
	f := Default()
	f.Sliders = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(f.Sliders) == 0 {
		f.Sliders = Default().Sliders
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// ApplyEnv overrides the palette and contrast mode from HOMECONTROL_PALETTE
// and HOMECONTROL_CONTRAST. A palette from the environment replaces any
// explicit colour list.
func (f *File) ApplyEnv() error {
	return f.applyEnv(os.Getenv)
}

func (f *File) applyEnv(getenv func(string) string) error {
	if p := strings.TrimSpace(getenv(EnvPalette)); p != "" {
		f.Palette = p
		f.Colours = nil
	}
	if c := strings.TrimSpace(getenv(EnvContrast)); c != "" {
		f.Contrast = c
	}
	return f.Validate()
}

// Validate checks every section of the file.
func (f *File) Validate() error {
	if _, err := f.BuildPalette(); err != nil {
		return err
	}
	if _, _, err := f.Selection(); err != nil {
		return err
	}
	if _, err := f.ContrastMode(); err != nil {
		return err
	}
	if f.Columns < 0 {
		return fmt.Errorf("columns must not be negative, got %d", f.Columns)
	}
	for _, name := range f.SliderNames() {
		if err := f.Sliders[name].Validate(); err != nil {
			return fmt.Errorf("slider %q: %w", name, err)
		}
	}
	return nil
}

// BuildPalette returns the configured palette: the explicit colour list when
// present, otherwise the named built-in.
func (f *File) BuildPalette() (*colour.Palette, error) {
	if len(f.Colours) > 0 {
		return colour.ParsePalette(f.Colours)
	}
	name := f.Palette
	if name == "" {
		name = colour.DefaultPaletteName
	}
	return colour.BuiltinPalette(name)
}

// PaletteColumns returns the row width for the palette layout.
func (f *File) PaletteColumns() int {
	if f.Columns > 0 {
		return f.Columns
	}
	if len(f.Colours) == 0 {
		if n := colour.BuiltinColumns(f.Palette); n > 0 {
			return n
		}
	}
	return 8
}

// Selection returns the configured initial selection, if any.
func (f *File) Selection() (colour.RGB, bool, error) {
	if f.Selected == "" {
		return colour.RGB{}, false, nil
	}
	c, err := colour.ParseHex(f.Selected)
	if err != nil {
		return colour.RGB{}, false, fmt.Errorf("selected: %w", err)
	}
	return c, true, nil
}

// ContrastMode returns the configured contrast mode.
func (f *File) ContrastMode() (colour.ContrastMode, error) {
	return colour.ParseContrastMode(f.Contrast)
}

// Slider returns the named slider configuration.
func (f *File) Slider(name string) (slider.Config, error) {
	if name == "" {
		name = DefaultSlider
	}
	cfg, ok := f.Sliders[name]
	if !ok {
		return slider.Config{}, fmt.Errorf("unknown slider %q (available: %v)", name, f.SliderNames())
	}
	return cfg, nil
}

// SliderNames returns the configured slider names in sorted order.
func (f *File) SliderNames() []string {
	names := make([]string, 0, len(f.Sliders))
	for name := range f.Sliders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSelector builds a Selector from the file's palette, contrast mode and
// initial selection.
func (f *File) NewSelector(opts ...colour.SelectorOption) (*colour.Selector, error) {
	p, err := f.BuildPalette()
	if err != nil {
		return nil, err
	}
	mode, err := f.ContrastMode()
	if err != nil {
		return nil, err
	}
	all := []colour.SelectorOption{colour.WithContrastMode(mode)}
	if c, ok, err := f.Selection(); err != nil {
		return nil, err
	} else if ok {
		all = append(all, colour.WithInitial(c))
	}
	return colour.NewSelector(p, append(all, opts...)...), nil
}
