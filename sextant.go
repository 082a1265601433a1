package ansinator

import "image"

// SextantRune returns the legacy-computing sextant whose filled cells
// are the window samples equal to 255, reading the 2x3 window row by
// row. The window must be binarized.
func SextantRune(w *Window) rune {
	offset := 0
	bit := 0
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			if w.At(x, y) == 255 {
				offset |= 1 << bit
			}
			bit++
		}
	}
	return sextantChar(offset)
}

// sextantChar maps a 6-bit fill pattern to its character. The sextant
// block has no codes for the empty, half and full fills, so those
// offsets take the matching block elements instead; offsets 21 and 42
// both yield the left half block.
func sextantChar(offset int) rune {
	switch {
	case offset == 0:
		return ' '
	case offset < 21:
		return 0x1FB00 + rune(offset) - 1
	case offset == 21:
		return '▌'
	case offset < 42:
		return 0x1FB14 + rune(offset) - 22
	case offset == 42:
		return '▌'
	case offset < 63:
		return 0x1FB27 + rune(offset) - 42
	default:
		return '█'
	}
}

// convertSextant renders binarized 2x3 windows as sextant cells with
// the fixed style. Row terminators stay unstyled.
func (c Config) convertSextant(img image.Image, cols, rows int) (*Result, error) {
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
			ch := SextantRune(grid.At(col, row))
			cells = append(cells, StyledCell{Text: string(ch), Style: style})
		}
		return append(cells, StyledCell{Text: "\n"})
	})
	return res, nil
}
