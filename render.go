package ansinator

import (
	"errors"
	"image"
	"math"
	"runtime"
	"strings"

	"github.com/disintegration/gift"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// Filter selects the resampling kernel used when resizing the source
// image.
type Filter int

const (
	FilterNearest Filter = iota
	FilterCatmullRom
	FilterGaussian
	FilterLanczos
	FilterTriangle
)

// ParseFilter maps a filter name to its Filter, case-insensitively.
// Unknown names select FilterNearest.
func ParseFilter(name string) Filter {
	switch strings.ToUpper(name) {
	case "CATMULLROM":
		return FilterCatmullRom
	case "GAUSSIAN":
		return FilterGaussian
	case "LANCZOS":
		return FilterLanczos
	case "TRIANGLE":
		return FilterTriangle
	default:
		return FilterNearest
	}
}

var (
	gaussianKernel = &draw.Kernel{Support: 3, At: func(t float64) float64 {
		const sigma = 0.5
		return math.Exp(-t * t / (2 * sigma * sigma))
	}}

	lanczosKernel = &draw.Kernel{Support: 3, At: func(t float64) float64 {
		if t >= 3 {
			return 0
		}
		return sinc(t) * sinc(t/3)
	}}
)

func sinc(t float64) float64 {
	if t == 0 {
		return 1
	}
	t *= math.Pi
	return math.Sin(t) / t
}

func (f Filter) scaler() draw.Scaler {
	switch f {
	case FilterCatmullRom:
		return draw.CatmullRom
	case FilterGaussian:
		return gaussianKernel
	case FilterLanczos:
		return lanczosKernel
	case FilterTriangle:
		return draw.BiLinear
	default:
		return draw.NearestNeighbor
	}
}

// Convert renders img according to the configuration.
func (c Config) Convert(img image.Image) (*Result, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New("ansinator: image has zero dimensions")
	}
	cols, rows := c.ResolveSize(b.Dx(), b.Dy())

	switch c.mode {
	case ModeAsciiGradient, ModeAsciiPatternQuadrance, ModeAsciiPatternSSIM:
		return c.convertAscii(img, cols, rows)
	case ModeBraille:
		return c.convertBraille(img, cols, rows)
	case ModeSextant:
		return c.convertSextant(img, cols, rows)
	case ModeBlockHalf, ModeBlockWhole:
		return c.convertBlock(img, cols, rows)
	}
	return nil, errors.New("ansinator: unknown render mode")
}

// workingImage resizes the source to the scaled cell grid and applies
// the contrast and brightness adjustments, inverting afterwards when
// requested.
func (c Config) workingImage(img image.Image, cols, rows int, invert bool) *image.RGBA {
	work := resizeRGBA(img, cols*c.scaleX, rows*c.scaleY, c.filter)

	filters := []gift.Filter{
		gift.Contrast(c.contrast),
		gift.Brightness(float32(c.brightness) * 100 / 255),
	}
	if invert {
		filters = append(filters, gift.Invert())
	}
	g := gift.New(filters...)
	out := image.NewRGBA(g.Bounds(work.Bounds()))
	g.Draw(out, work)
	return out
}

// binarized produces the black-and-white working luma for the dot
// modes: resize and adjust without inverting, binarize by the manual
// threshold or Otsu's method, then invert the binary image when
// requested.
func (c Config) binarized(img image.Image, cols, rows int) *image.Gray {
	work := c.workingImage(img, cols, rows, false)
	luma := toGray(work)

	if c.hasThreshold {
		Binarize(luma, c.threshold)
	} else {
		BinarizeOtsu(luma)
	}
	if c.invert {
		InvertGray(luma)
	}
	return luma
}

func resizeRGBA(src image.Image, w, h int, f Filter) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	f.scaler().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func toGray(img image.Image) *image.Gray {
	g := image.NewGray(img.Bounds())
	draw.Draw(g, g.Bounds(), img, img.Bounds().Min, draw.Src)
	return g
}

// renderRows fills res with the cells of every output row, computing
// rows in parallel while keeping row order. Each fn result must end
// with the row's newline cell.
func renderRows(res *Result, rows int, fn func(row int) []StyledCell) {
	out := make([][]StyledCell, rows)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for row := 0; row < rows; row++ {
		row := row
		g.Go(func() error {
			out[row] = fn(row)
			return nil
		})
	}
	g.Wait() // row workers never fail

	for _, cells := range out {
		res.cells = append(res.cells, cells...)
	}
}
