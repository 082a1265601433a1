package ansinator

import (
	"image"
	"image/color"
	"testing"
)

// glyphImage draws a catalog glyph as a 5x7 grayscale image.
func glyphImage(ch rune) *image.RGBA {
	g := GlyphFor(ch)
	img := image.NewRGBA(image.Rect(0, 0, 5, 7))
	for y := 0; y < 7; y++ {
		for x := 0; x < 5; x++ {
			v := g.Bitmap[y*5+x]
			img.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}

func TestConvertPatternBlackCell(t *testing.T) {
	res, err := NewAscii().WithSize(1, 1).Convert(uniformRGBA(5, 7, black))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got := res.String(); got != " \n" {
		t.Fatalf("black cell rendered %q, want a space", got)
	}
}

func TestConvertPatternQuadranceRoundTrip(t *testing.T) {
	for _, ch := range "!#8B~" {
		res, err := NewAscii().WithSize(1, 1).Convert(glyphImage(ch))
		if err != nil {
			t.Fatalf("Convert(%q): %v", ch, err)
		}
		if got := res.String(); got != string(ch)+"\n" {
			t.Errorf("glyph %q rendered as %q", ch, got)
		}
	}
}

func TestConvertPatternSSIMRoundTrip(t *testing.T) {
	for _, ch := range "!#8B~" {
		res, err := NewAscii().PatternSSIM().WithSize(1, 1).Convert(glyphImage(ch))
		if err != nil {
			t.Fatalf("Convert(%q): %v", ch, err)
		}
		if got := res.String(); got != string(ch)+"\n" {
			t.Errorf("glyph %q rendered as %q", ch, got)
		}
	}
}

func TestConvertPatternRestrictedCharset(t *testing.T) {
	res, err := NewAscii().WithCharSet("@").WithSize(1, 1).Convert(uniformRGBA(5, 7, black))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got := res.String(); got != "@\n" {
		t.Fatalf("single-candidate charset rendered %q, want the @ glyph", got)
	}
}

func TestConvertPatternBackgroundOnly(t *testing.T) {
	res, err := NewAscii().WithBackground(50, 255, 155).WithSize(1, 1).Convert(uniformRGBA(5, 7, black))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want := "\x1b[48;2;50;255;155m \x1b[0m\n"
	if got := res.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConvertPatternPerCellColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 7))
	for y := 0; y < 7; y++ {
		for x := 0; x < 5; x++ {
			img.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
		}
		for x := 5; x < 10; x++ {
			img.SetRGBA(x, y, color.RGBA{0, 0, 255, 255})
		}
	}

	res, err := NewAscii().WithTrueColor().WithSize(2, 1).Convert(img)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	cells := res.Cells()
	if len(cells) != 3 {
		t.Fatalf("got %d cells, want 2 glyphs and a terminator", len(cells))
	}
	wantLeft := Style{}.Foreground(RGB(255, 0, 0))
	wantRight := Style{}.Foreground(RGB(0, 0, 255))
	if cells[0].Style != wantLeft {
		t.Errorf("left cell style = %+v, want red foreground", cells[0].Style)
	}
	if cells[1].Style != wantRight {
		t.Errorf("right cell style = %+v, want blue foreground", cells[1].Style)
	}
	if cells[2].Text != "\n" || cells[2].Style != (Style{}) {
		t.Errorf("terminator = %+v, want bare newline", cells[2])
	}
}
