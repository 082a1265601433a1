// Package ansinator converts raster images to styled terminal text:
// ASCII characters matched against a 5x7 font, Braille 8-dot cells,
// Unicode sextant blocks, and half or whole colored blocks, all carried
// as ANSI escape sequences.
package ansinator

// Mode selects the rendering family and glyph algorithm.
type Mode int

const (
	// ModeAsciiPatternQuadrance matches 5x7 luma windows against the
	// font catalog by quadrance.
	ModeAsciiPatternQuadrance Mode = iota
	// ModeAsciiGradient maps single luma samples onto a character ramp.
	ModeAsciiGradient
	// ModeAsciiPatternSSIM matches 5x7 luma windows against the font
	// catalog by structural similarity.
	ModeAsciiPatternSSIM
	// ModeBraille packs binarized 2x4 windows into Braille cells.
	ModeBraille
	// ModeSextant packs binarized 2x3 windows into sextant blocks.
	ModeSextant
	// ModeBlockHalf renders pixel pairs with the upper-half block.
	ModeBlockHalf
	// ModeBlockWhole renders single pixels as colored spaces.
	ModeBlockWhole
)

// ColorMode selects how cell colors are produced.
type ColorMode int

const (
	// ColorFixed emits the configured foreground/background colors, or
	// the terminal default style when neither is set.
	ColorFixed ColorMode = iota
	// ColorTrue passes sampled pixels through as 24-bit colors.
	ColorTrue
	// Color256 quantizes sampled pixels to the 256-color palette.
	Color256
)

// DefaultCharSet is the full printable ASCII range used by the ASCII
// modes when no character set is given.
const DefaultCharSet = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// Config is the immutable description of one conversion: output
// geometry, image adjustments, glyph mode, styling, and color policy.
// Every With method returns a modified copy; a Config is never mutated
// in place.
type Config struct {
	mode Mode

	width  int
	height int
	scaleX int
	scaleY int

	filter     Filter
	contrast   float32
	brightness int
	invert     bool

	bold      bool
	blink     bool
	underline bool

	color ColorMode
	hasFg bool
	hasBg bool
	fg    [3]uint8
	bg    [3]uint8

	hasThreshold bool
	threshold    uint8

	charset string
}

func newConfig(mode Mode) Config {
	c := Config{
		mode:      mode,
		threshold: 127,
		charset:   DefaultCharSet,
	}
	c.scaleX, c.scaleY = mode.scale()
	return c
}

// NewAscii returns the configuration for ASCII rendering, defaulting to
// the pattern-quadrance mode, the full printable character set, and the
// terminal's default colors.
func NewAscii() Config {
	return newConfig(ModeAsciiPatternQuadrance)
}

// NewBraille returns the configuration for Braille 8-dot rendering,
// defaulting to automatic Otsu binarization.
func NewBraille() Config {
	return newConfig(ModeBraille)
}

// NewSextant returns the configuration for sextant block rendering,
// defaulting to automatic Otsu binarization.
func NewSextant() Config {
	return newConfig(ModeSextant)
}

// NewBlock returns the configuration for colored block rendering,
// defaulting to half blocks in true color.
func NewBlock() Config {
	c := newConfig(ModeBlockHalf)
	c.color = ColorTrue
	return c
}

// scale returns the per-cell pixel sampling scale of a mode.
func (m Mode) scale() (int, int) {
	switch m {
	case ModeAsciiGradient:
		return 1, 1
	case ModeAsciiPatternQuadrance, ModeAsciiPatternSSIM:
		return 5, 7
	case ModeBraille:
		return 2, 4
	case ModeSextant:
		return 2, 3
	case ModeBlockHalf:
		return 1, 2
	default:
		return 1, 1
	}
}

func (c Config) withMode(m Mode) Config {
	c.mode = m
	c.scaleX, c.scaleY = m.scale()
	return c
}

// Gradient switches an ASCII configuration to gradient mapping.
func (c Config) Gradient() Config {
	return c.withMode(ModeAsciiGradient)
}

// PatternQuadrance switches an ASCII configuration to quadrance font
// matching.
func (c Config) PatternQuadrance() Config {
	return c.withMode(ModeAsciiPatternQuadrance)
}

// PatternSSIM switches an ASCII configuration to structural-similarity
// font matching.
func (c Config) PatternSSIM() Config {
	return c.withMode(ModeAsciiPatternSSIM)
}

// Half switches a block configuration to half blocks.
func (c Config) Half() Config {
	return c.withMode(ModeBlockHalf)
}

// Whole switches a block configuration to whole blocks.
func (c Config) Whole() Config {
	return c.withMode(ModeBlockWhole)
}

// WithSize sets the requested output size in cells. A zero component is
// derived from the source aspect ratio at conversion time.
func (c Config) WithSize(width, height int) Config {
	c.width = width
	c.height = height
	return c
}

// WithFilter sets the resampling filter used for resizing.
func (c Config) WithFilter(f Filter) Config {
	c.filter = f
	return c
}

// WithContrast adjusts the image contrast by a percentage in [-100,
// 100]. Negative values decrease the contrast.
func (c Config) WithContrast(percentage float32) Config {
	c.contrast = percentage
	return c
}

// WithBrighten adds n to every color channel before rendering. Negative
// values darken the image.
func (c Config) WithBrighten(n int) Config {
	c.brightness = n
	return c
}

// WithInvert inverts the image: ASCII and block modes invert the
// resized source, Braille and sextant modes invert after binarization.
func (c Config) WithInvert() Config {
	c.invert = true
	return c
}

// WithBold renders every cell bold.
func (c Config) WithBold() Config {
	c.bold = true
	return c
}

// WithBlink renders every cell blinking.
func (c Config) WithBlink() Config {
	c.blink = true
	return c
}

// WithUnderline renders every cell underlined.
func (c Config) WithUnderline() Config {
	c.underline = true
	return c
}

// WithTrueColor colors cells with the sampled 24-bit pixel values.
func (c Config) WithTrueColor() Config {
	c.color = ColorTrue
	return c
}

// WithTermColor colors cells with the nearest of the 256 terminal
// palette colors.
func (c Config) WithTermColor() Config {
	c.color = Color256
	return c
}

// WithForeground fixes the cell foreground color.
func (c Config) WithForeground(r, g, b uint8) Config {
	c.color = ColorFixed
	c.hasFg = true
	c.fg = [3]uint8{r, g, b}
	return c
}

// WithBackground fixes the cell background color.
func (c Config) WithBackground(r, g, b uint8) Config {
	c.color = ColorFixed
	c.hasBg = true
	c.bg = [3]uint8{r, g, b}
	return c
}

// WithThreshold selects manual binarization with the given threshold
// instead of Otsu's method.
func (c Config) WithThreshold(t uint8) Config {
	c.hasThreshold = true
	c.threshold = t
	return c
}

// WithCharSet sets the character set used by the ASCII modes. Pattern
// matching deduplicates it; gradient mapping uses it as given.
func (c Config) WithCharSet(charset string) Config {
	c.charset = charset
	return c
}

// ResolveSize returns the output size in cells for a source image of
// the given dimensions. A zero requested component is derived from the
// source aspect ratio, truncating toward zero but never below one cell;
// a fully zero request keeps the source dimensions.
func (c Config) ResolveSize(srcW, srcH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return c.width, c.height
	}

	aspect := float64(srcW) / float64(srcH)
	switch {
	case c.width == 0 && c.height == 0:
		return srcW, srcH
	case c.width == 0:
		return atLeastOne(int(aspect * float64(c.height))), c.height
	case c.height == 0:
		return c.width, atLeastOne(int(float64(c.width) / aspect))
	default:
		return c.width, c.height
	}
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// style returns the cell style for a sampled pixel under the configured
// color policy and style flags.
func (c Config) style(r, g, b uint8) Style {
	var s Style

	switch c.color {
	case ColorTrue:
		s = s.Foreground(RGB(r, g, b))
	case Color256:
		s = s.Foreground(Indexed256(TermColorIndex(r, g, b)))
	case ColorFixed:
		if c.hasFg {
			s = s.Foreground(RGB(c.fg[0], c.fg[1], c.fg[2]))
		}
		if c.hasBg {
			s = s.Background(RGB(c.bg[0], c.bg[1], c.bg[2]))
		}
	}

	s.Bold = c.bold
	s.Blink = c.blink
	s.Underline = c.underline
	return s
}

// fixedStyle returns the style shared by every cell of the modes that
// only honor fixed colors.
func (c Config) fixedStyle() Style {
	var s Style
	if c.hasFg {
		s = s.Foreground(RGB(c.fg[0], c.fg[1], c.fg[2]))
	}
	if c.hasBg {
		s = s.Background(RGB(c.bg[0], c.bg[1], c.bg[2]))
	}
	s.Bold = c.bold
	s.Blink = c.blink
	s.Underline = c.underline
	return s
}
