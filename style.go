package ansinator

import (
	"strconv"
	"strings"
)

const sgrReset = "\x1b[0m"

// StyleColor is one color attribute: a 24-bit RGB triple or an index
// into the 256-color terminal palette.
type StyleColor struct {
	Indexed bool
	Index   uint8
	R, G, B uint8
}

// RGB returns a 24-bit color attribute.
func RGB(r, g, b uint8) StyleColor {
	return StyleColor{R: r, G: g, B: b}
}

// Indexed256 returns a 256-color palette attribute.
func Indexed256(index uint8) StyleColor {
	return StyleColor{Indexed: true, Index: index}
}

// Style carries the ANSI attributes of one rendered cell. The zero
// value renders text without any escape sequences.
type Style struct {
	HasFg bool
	HasBg bool
	Fg    StyleColor
	Bg    StyleColor

	Bold      bool
	Blink     bool
	Underline bool
}

// Foreground returns a copy of s with the foreground color set.
func (s Style) Foreground(c StyleColor) Style {
	s.HasFg = true
	s.Fg = c
	return s
}

// Background returns a copy of s with the background color set.
func (s Style) Background(c StyleColor) Style {
	s.HasBg = true
	s.Bg = c
	return s
}

// render writes text to b wrapped in the SGR prefix and reset for s.
// The zero style writes text bare.
func (s Style) render(b *strings.Builder, text string) {
	if s == (Style{}) {
		b.WriteString(text)
		return
	}

	b.WriteString("\x1b[")
	first := true
	param := func(p string) {
		if !first {
			b.WriteByte(';')
		}
		b.WriteString(p)
		first = false
	}

	if s.Bold {
		param("1")
	}
	if s.Underline {
		param("4")
	}
	if s.Blink {
		param("5")
	}
	if s.HasFg {
		param(s.Fg.sgr(38))
	}
	if s.HasBg {
		param(s.Bg.sgr(48))
	}
	b.WriteByte('m')

	b.WriteString(text)
	b.WriteString(sgrReset)
}

// sgr returns the color parameter list for the given ground (38 for
// foreground, 48 for background).
func (c StyleColor) sgr(ground int) string {
	if c.Indexed {
		return strconv.Itoa(ground) + ";5;" + strconv.Itoa(int(c.Index))
	}
	return strconv.Itoa(ground) + ";2;" +
		strconv.Itoa(int(c.R)) + ";" +
		strconv.Itoa(int(c.G)) + ";" +
		strconv.Itoa(int(c.B))
}
