package colour

import (
	"fmt"
	"sort"
)

// DefaultPaletteName is the palette used when none is configured.
const DefaultPaletteName = "grid"

// gridColours is eight tints per hue row, ending in a grey ramp.
var gridColours = []string{
	"#FFFFFF", "#FFFFDD", "#FFFFBB", "#FFFF99", "#FFFF77", "#FFFF55", "#FFFF33", "#FFFF11",
	"#FFEEEE", "#FFCCCC", "#FFAAAA", "#FF8888", "#FF6666", "#FF4444", "#FF2222", "#FF1111",
	"#EEFFEE", "#CCFFCC", "#AAFFAA", "#88FF88", "#66FF66", "#44FF44", "#22FF22", "#00FF00",
	"#EEEEFF", "#CCCCFF", "#AAAAFF", "#8888FF", "#6666FF", "#4444FF", "#2222FF", "#0000FF",
	"#FFEEFF", "#FFCCFF", "#FFAAFF", "#FF88FF", "#FF66FF", "#FF44FF", "#FF22FF", "#FF00FF",
	"#EEFFFF", "#CCFFFF", "#AAFFFF", "#88FFFF", "#66FFFF", "#44FFFF", "#22FFFF", "#00FFFF",
	"#EEEEEE", "#CCCCCC", "#AAAAAA", "#888888", "#666666", "#444444", "#222222", "#000000",
}

// webColours steps each channel through 00, 55, AA and FF. Black is omitted.
var webColours = []string{
	"#FFFFFF", "#FFFFAA", "#FFFF55", "#FFFF00",
	"#FFAAFF", "#FFAAAA", "#FFAA55", "#FFAA00",
	"#FF55FF", "#FF55AA", "#FF5555", "#FF5500",
	"#FF00FF", "#FF00AA", "#FF0055", "#FF0000",
	"#AAFFFF", "#AAFFAA", "#AAFF55", "#AAFF00",
	"#AAAAFF", "#AAAAAA", "#AAAA55", "#AAAA00",
	"#AA55FF", "#AA55AA", "#AA5555", "#AA5500",
	"#AA00FF", "#AA00AA", "#AA0055", "#AA0000",
	"#55FFFF", "#55FFAA", "#55FF55", "#55FF00",
	"#55AAFF", "#55AAAA", "#55AA55", "#55AA00",
	"#5555FF", "#5555AA", "#555555", "#555500",
	"#5500FF", "#5500AA", "#550055", "#550000",
	"#00FFFF", "#00FFAA", "#00FF55", "#00FF00",
	"#00AAFF", "#00AAAA", "#00AA55", "#00AA00",
	"#0055FF", "#0055AA", "#005555", "#005500",
	"#0000FF", "#0000AA", "#000055",
}

type builtinPalette struct {
	colours []string
	columns int
}

var builtins = map[string]builtinPalette{
	"grid": {colours: gridColours, columns: 8},
	"web":  {colours: webColours, columns: 4},
}

// BuiltinPalette returns a fresh copy of a named built-in palette.
func BuiltinPalette(name string) (*Palette, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (available: %v)", name, BuiltinPaletteNames())
	}
	colours := make([]RGB, len(b.colours))
	for i, h := range b.colours {
		colours[i] = MustParseHex(h)
	}
	return &Palette{colours: colours}, nil
}

// BuiltinColumns returns the row width a built-in palette is laid out with,
// or 0 for unknown names.
func BuiltinColumns(name string) int {
	return builtins[name].columns
}

// BuiltinPaletteNames returns the built-in palette names in sorted order.
func BuiltinPaletteNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
