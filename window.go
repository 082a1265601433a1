package ansinator

import (
	"errors"
	"image"
	"image/color"
)

// Window is a rectangular copy of grayscale samples cut out of a larger
// image, addressed by window-local coordinates. Windows never alias the
// source image.
type Window struct {
	Width  int
	Height int
	pix    []uint8
}

// At returns the sample at (x, y). Coordinates outside the window are a
// programming error and panic.
func (w *Window) At(x, y int) uint8 {
	if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
		panic("ansinator: window sample out of range")
	}
	return w.pix[y*w.Width+x]
}

// AtChecked returns the sample at (x, y) and reports whether the
// coordinates fall inside the window.
func (w *Window) AtChecked(x, y int) (uint8, bool) {
	if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
		return 0, false
	}
	return w.pix[y*w.Width+x], true
}

// Samples returns the window contents as a flat row-major vector.
func (w *Window) Samples() []uint8 {
	return w.pix
}

// WindowGrid holds the non-overlapping windows of one image partition in
// row-major order.
type WindowGrid struct {
	Cols    int
	Rows    int
	Windows []Window
}

// At returns the window in the given grid column and row.
func (g *WindowGrid) At(col, row int) *Window {
	return &g.Windows[row*g.Cols+col]
}

// Row returns the windows of one grid row, left to right.
func (g *WindowGrid) Row(row int) []Window {
	return g.Windows[row*g.Cols : (row+1)*g.Cols]
}

// NewWindowGrid partitions img into w by h pixel windows, discarding any
// trailing pixels that do not fill a whole window.
func NewWindowGrid(img *image.Gray, w, h int) (*WindowGrid, error) {
	imgW, imgH := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= 0 || h <= 0 || w > imgW || h > imgH {
		return nil, errors.New("ansinator: window size exceeds image size")
	}

	grid := &WindowGrid{
		Cols: (imgW-w)/w + 1,
		Rows: (imgH-h)/h + 1,
	}
	grid.Windows = make([]Window, 0, grid.Cols*grid.Rows)

	min := img.Bounds().Min
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			win := Window{
				Width:  w,
				Height: h,
				pix:    make([]uint8, w*h),
			}
			for dy := 0; dy < h; dy++ {
				for dx := 0; dx < w; dx++ {
					win.pix[dy*w+dx] = img.GrayAt(min.X+col*w+dx, min.Y+row*h+dy).Y
				}
			}
			grid.Windows = append(grid.Windows, win)
		}
	}

	return grid, nil
}

// NewWindowGridExact partitions img into w by h pixel windows covering
// every pixel. The image dimensions must be exact multiples of the
// window dimensions.
func NewWindowGridExact(img *image.Gray, w, h int) (*WindowGrid, error) {
	imgW, imgH := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= 0 || imgW%w != 0 {
		return nil, errors.New("ansinator: image width must be a multiple of the window width")
	}
	if h <= 0 || imgH%h != 0 {
		return nil, errors.New("ansinator: image height must be a multiple of the window height")
	}

	return NewWindowGrid(img, w, h)
}

// RGBAWindow is the color counterpart of Window, holding RGB samples.
type RGBAWindow struct {
	Width  int
	Height int
	pix    []uint8
}

// At returns the color at (x, y). Coordinates outside the window are a
// programming error and panic.
func (w *RGBAWindow) At(x, y int) color.RGBA {
	if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
		panic("ansinator: window sample out of range")
	}
	i := (y*w.Width + x) * 3
	return color.RGBA{R: w.pix[i], G: w.pix[i+1], B: w.pix[i+2], A: 255}
}

// AtChecked returns the color at (x, y) and reports whether the
// coordinates fall inside the window.
func (w *RGBAWindow) AtChecked(x, y int) (color.RGBA, bool) {
	if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
		return color.RGBA{}, false
	}
	return w.At(x, y), true
}

// RGBAWindowGrid holds the color windows of one image partition in
// row-major order.
type RGBAWindowGrid struct {
	Cols    int
	Rows    int
	Windows []RGBAWindow
}

// At returns the window in the given grid column and row.
func (g *RGBAWindowGrid) At(col, row int) *RGBAWindow {
	return &g.Windows[row*g.Cols+col]
}

// Row returns the windows of one grid row, left to right.
func (g *RGBAWindowGrid) Row(row int) []RGBAWindow {
	return g.Windows[row*g.Cols : (row+1)*g.Cols]
}

// NewRGBAWindowGrid partitions img into w by h pixel color windows,
// discarding any trailing pixels that do not fill a whole window.
func NewRGBAWindowGrid(img *image.RGBA, w, h int) (*RGBAWindowGrid, error) {
	imgW, imgH := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= 0 || h <= 0 || w > imgW || h > imgH {
		return nil, errors.New("ansinator: window size exceeds image size")
	}

	grid := &RGBAWindowGrid{
		Cols: (imgW-w)/w + 1,
		Rows: (imgH-h)/h + 1,
	}
	grid.Windows = make([]RGBAWindow, 0, grid.Cols*grid.Rows)

	min := img.Bounds().Min
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			win := RGBAWindow{
				Width:  w,
				Height: h,
				pix:    make([]uint8, w*h*3),
			}
			for dy := 0; dy < h; dy++ {
				for dx := 0; dx < w; dx++ {
					c := img.RGBAAt(min.X+col*w+dx, min.Y+row*h+dy)
					i := (dy*w + dx) * 3
					win.pix[i] = c.R
					win.pix[i+1] = c.G
					win.pix[i+2] = c.B
				}
			}
			grid.Windows = append(grid.Windows, win)
		}
	}

	return grid, nil
}

// NewRGBAWindowGridExact partitions img into w by h pixel color windows
// covering every pixel. The image dimensions must be exact multiples of
// the window dimensions.
func NewRGBAWindowGridExact(img *image.RGBA, w, h int) (*RGBAWindowGrid, error) {
	imgW, imgH := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= 0 || imgW%w != 0 {
		return nil, errors.New("ansinator: image width must be a multiple of the window width")
	}
	if h <= 0 || imgH%h != 0 {
		return nil, errors.New("ansinator: image height must be a multiple of the window height")
	}

	return NewRGBAWindowGrid(img, w, h)
}
