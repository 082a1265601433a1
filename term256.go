package ansinator

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// term256 is the xterm 256-color palette: 16 system colors, a 6x6x6
// color cube, and a 24-step grayscale ramp.
var term256 = buildTerm256()

func buildTerm256() [256]colorful.Color {
	var p [256]colorful.Color

	system := [16][3]uint8{
		{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
		{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
		{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	for i, c := range system {
		p[i] = rgbColor(c[0], c[1], c[2])
	}

	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	i := 16
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				p[i] = rgbColor(r, g, b)
				i++
			}
		}
	}

	for g := 0; g < 24; g++ {
		v := uint8(8 + 10*g)
		p[232+g] = rgbColor(v, v, v)
	}

	return p
}

func rgbColor(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

// TermColorIndex returns the palette index closest to the given RGB
// triple under Euclidean RGB distance. Ties keep the lowest index.
func TermColorIndex(r, g, b uint8) uint8 {
	target := rgbColor(r, g, b)

	best := 0
	bestDist := math.MaxFloat64
	for i, c := range term256 {
		if d := target.DistanceRgb(c); d < bestDist {
			bestDist = d
			best = i
		}
	}

	return uint8(best)
}
