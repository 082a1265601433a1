package ansinator

import (
	"math"
	"sort"
)

// Glyph pairs a character with a 5x7 bitmap of 35 intensity samples in
// row-major order. Catalog glyphs hold 255 for set pixels and 0 for
// unset pixels; probe glyphs built from image windows carry raw luma.
type Glyph struct {
	Char   rune
	Bitmap [35]uint8
}

// GlyphFor returns the catalog glyph for ch. Characters outside the
// printable ASCII range map to the space glyph.
func GlyphFor(ch rune) Glyph {
	var g Glyph
	g.Char = ' '
	if ch < ' ' || ch > '~' {
		return g
	}

	cols := asciiFont[ch-' ']
	for y := 0; y < 7; y++ {
		for x := 0; x < 5; x++ {
			if cols[x]&(1<<y) != 0 {
				g.Bitmap[y*5+x] = 255
			}
		}
	}
	g.Char = ch
	return g
}

// SampleGlyph wraps raw window samples as a probe for matching against
// catalog glyphs.
func SampleGlyph(samples []uint8) Glyph {
	g := Glyph{Char: ' '}
	copy(g.Bitmap[:], samples)
	return g
}

// Quadrance returns the sum of squared per-sample differences between
// the two bitmaps. Identical bitmaps give 0; fully opposite bitmaps
// give 35*255*255.
func (g Glyph) Quadrance(other Glyph) float64 {
	var s float64
	for i := range g.Bitmap {
		d := float64(g.Bitmap[i]) - float64(other.Bitmap[i])
		s += d * d
	}
	return s
}

// StructuralSimilarity returns the single-scale SSIM of the two bitmaps
// over a dynamic range of 255, in [-1, 1]. Identical bitmaps give 1.
func (g Glyph) StructuralSimilarity(other Glyph) float64 {
	const dynamicRange = 255.0
	c1 := 0.01 * dynamicRange * 0.01 * dynamicRange
	c2 := 0.03 * dynamicRange * 0.03 * dynamicRange

	n := float64(len(g.Bitmap))
	var ux, uy float64
	for i := range g.Bitmap {
		ux += float64(g.Bitmap[i])
		uy += float64(other.Bitmap[i])
	}
	ux /= n
	uy /= n

	// Sample variance and covariance, n-1 divisor.
	var varx, vary, cov float64
	for i := range g.Bitmap {
		dx := float64(g.Bitmap[i]) - ux
		dy := float64(other.Bitmap[i]) - uy
		varx += dx * dx
		vary += dy * dy
		cov += dx * dy
	}
	varx /= n - 1
	vary /= n - 1
	cov /= n - 1

	return (2*ux*uy + c1) * (2*cov + c2) / ((ux*ux + uy*uy + c1) * (varx + vary + c2))
}

// NewFontSet builds the matching candidate set for charset: every rune
// maps to its catalog glyph, then the set is sorted and deduplicated so
// repeated characters cost nothing during matching.
func NewFontSet(charset string) []Glyph {
	set := make([]Glyph, 0, len(charset))
	for _, ch := range charset {
		set = append(set, GlyphFor(ch))
	}

	sort.Slice(set, func(i, j int) bool {
		if set[i].Char != set[j].Char {
			return set[i].Char < set[j].Char
		}
		for k := range set[i].Bitmap {
			if set[i].Bitmap[k] != set[j].Bitmap[k] {
				return set[i].Bitmap[k] < set[j].Bitmap[k]
			}
		}
		return false
	})

	out := set[:0]
	for _, g := range set {
		if len(out) == 0 || out[len(out)-1] != g {
			out = append(out, g)
		}
	}
	return out
}

// MinQuadrance returns the character of the candidate with the smallest
// quadrance to probe. Ties keep the earliest candidate in set order; an
// empty set yields a space.
func MinQuadrance(probe Glyph, set []Glyph) rune {
	min := math.MaxFloat64
	ch := ' '

	for _, g := range set {
		if q := probe.Quadrance(g); q < min {
			min = q
			ch = g.Char
		}
	}
	return ch
}

// MaxStructuralSimilarity returns the character of the candidate with
// the largest SSIM to probe. Ties keep the earliest candidate in set
// order; an empty set yields a space.
func MaxStructuralSimilarity(probe Glyph, set []Glyph) rune {
	max := -2.0 // below the SSIM range
	ch := ' '

	for _, g := range set {
		if s := probe.StructuralSimilarity(g); s > max {
			max = s
			ch = g.Char
		}
	}
	return ch
}

// GradientChar maps a luma sample onto an ordered character ramp. The
// ramp is used as given, duplicates and all; an empty ramp yields a
// space.
func GradientChar(luma uint8, ramp []rune) rune {
	if len(ramp) == 0 {
		return ' '
	}
	return ramp[int(luma)*(len(ramp)-1)/255]
}
