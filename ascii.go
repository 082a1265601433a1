package ansinator

import "image"

// convertAscii renders the three ASCII modes. A luma buffer at the
// scaled working size drives glyph selection; a second RGB buffer at
// cell resolution drives per-cell coloring.
func (c Config) convertAscii(img image.Image, cols, rows int) (*Result, error) {
	work := c.workingImage(img, cols, rows, c.invert)
	luma := toGray(work)
	rgb := resizeRGBA(work, cols, rows, c.filter)

	var glyph func(col, row int) rune
	switch c.mode {
	case ModeAsciiGradient:
		ramp := []rune(c.charset)
		glyph = func(col, row int) rune {
			return GradientChar(luma.GrayAt(col, row).Y, ramp)
		}
	default:
		grid, err := NewWindowGridExact(luma, c.scaleX, c.scaleY)
		if err != nil {
			return nil, err
		}
		set := NewFontSet(c.charset)
		ssim := c.mode == ModeAsciiPatternSSIM
		glyph = func(col, row int) rune {
			probe := SampleGlyph(grid.At(col, row).Samples())
			if ssim {
				return MaxStructuralSimilarity(probe, set)
			}
			return MinQuadrance(probe, set)
		}
	}

	res := &Result{}
	renderRows(res, rows, func(row int) []StyledCell {
		cells := make([]StyledCell, 0, cols+1)
		for col := 0; col < cols; col++ {
			px := rgb.RGBAAt(col, row)
			cells = append(cells, StyledCell{
				Text:  string(glyph(col, row)),
				Style: c.style(px.R, px.G, px.B),
			})
		}
		return append(cells, StyledCell{Text: "\n"})
	})
	return res, nil
}
