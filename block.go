package ansinator

import (
	"image"
	"image/color"
)

const upperHalfBlock = "▀"

// blockColor converts a sampled pixel to the configured color space.
func (c Config) blockColor(px color.RGBA) StyleColor {
	if c.color == Color256 {
		return Indexed256(TermColorIndex(px.R, px.G, px.B))
	}
	return RGB(px.R, px.G, px.B)
}

// convertBlock renders colored blocks. Half mode pairs two vertically
// adjacent pixels into the fore- and background of an upper half
// block; whole mode paints one pixel as a space's background. Each row
// terminator carries the style of the row's last cell.
func (c Config) convertBlock(img image.Image, cols, rows int) (*Result, error) {
	work := c.workingImage(img, cols, rows, c.invert)
	grid, err := NewRGBAWindowGridExact(work, c.scaleX, c.scaleY)
	if err != nil {
		return nil, err
	}

	half := c.mode == ModeBlockHalf
	res := &Result{}
	renderRows(res, rows, func(row int) []StyledCell {
		cells := make([]StyledCell, 0, cols+1)
		var style Style
		for col := 0; col < cols; col++ {
			w := grid.At(col, row)
			style = Style{}
			text := " "
			if half {
				style = style.Foreground(c.blockColor(w.At(0, 0)))
				style = style.Background(c.blockColor(w.At(0, 1)))
				text = upperHalfBlock
			} else {
				style = style.Background(c.blockColor(w.At(0, 0)))
			}
			style.Bold = c.bold
			style.Blink = c.blink
			style.Underline = c.underline
			cells = append(cells, StyledCell{Text: text, Style: style})
		}
		return append(cells, StyledCell{Text: "\n", Style: style})
	})
	return res, nil
}
