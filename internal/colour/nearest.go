package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// toColorful converts an RGB value into go-colorful's float representation.
func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Distance returns the CIEDE2000 perceptual distance between two colours.
func Distance(a, b RGB) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b))
}

// Nearest returns the index and value of the palette entry perceptually
// closest to c. Ties resolve to the earliest entry. The boolean is false for
// an empty palette.
func (p *Palette) Nearest(c RGB) (int, RGB, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, candidate := range p.All() {
		if candidate == c {
			return i, candidate, true
		}
		if d := Distance(c, candidate); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return -1, RGB{}, false
	}
	return best, p.colours[best], true
}
