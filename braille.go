package ansinator

import "image"

// brailleDots maps a bit position of the Braille pattern offset to its
// window coordinate, following the dot numbering of the Unicode block:
// dots 1-3 down the left column, 4-6 down the right, 7 and 8 on the
// bottom row.
var brailleDots = [8][2]int{
	{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {0, 3}, {1, 3},
}

// BrailleRune returns the Braille pattern whose raised dots are the
// window samples equal to 255. The window must be 2x4 and binarized;
// an all-white window gives U+28FF, an all-black one U+2800.
func BrailleRune(w *Window) rune {
	var offset rune
	for bit, d := range brailleDots {
		if w.At(d[0], d[1]) == 255 {
			offset |= 1 << bit
		}
	}
	return 0x2800 + offset
}

// convertBraille renders binarized 2x4 windows as Braille cells. The
// fixed style paints every cell and the row terminators.
func (c Config) convertBraille(img image.Image, cols, rows int) (*Result, error) {
	luma := c.binarized(img, cols, rows)
	grid, err := NewWindowGridExact(luma, c.scaleX, c.scaleY)
	if err != nil {
		return nil, err
	}

	style := c.fixedStyle()
	res := &Result{}
	renderRows(res, rows, func(row int) []StyledCell {
		cells := make([]StyledCell, 0, cols+1)
		for col := 0; col < cols; col++ {
			ch := BrailleRune(grid.At(col, row))
			cells = append(cells, StyledCell{Text: string(ch), Style: style})
		}
		return append(cells, StyledCell{Text: "\n", Style: style})
	})
	return res, nil
}
