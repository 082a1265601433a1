package ansinator

import (
	"image"
	"testing"
)

func grayOf(values [][]uint8) *image.Gray {
	h := len(values)
	w := len(values[0])
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y, row := range values {
		for x, v := range row {
			img.SetGray(x, y, gray(v))
		}
	}
	return img
}

func grayPixels(img *image.Gray) []uint8 {
	b := img.Bounds()
	out := make([]uint8, 0, b.Dx()*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		out = append(out, img.Pix[y*img.Stride:y*img.Stride+b.Dx()]...)
	}
	return out
}

func TestHistogram(t *testing.T) {
	img := grayOf([][]uint8{
		{0, 0, 10},
		{10, 10, 255},
	})
	hist := Histogram(img)
	if hist[0] != 2 || hist[10] != 3 || hist[255] != 1 {
		t.Errorf("hist[0]=%d hist[10]=%d hist[255]=%d, want 2, 3, 1", hist[0], hist[10], hist[255])
	}
	total := 0
	for _, c := range hist {
		total += c
	}
	if total != 6 {
		t.Errorf("histogram total = %d, want 6", total)
	}
}

func TestOtsuThresholdBimodal(t *testing.T) {
	// Half the pixels at 10, half at 240: the threshold must fall
	// strictly between the modes.
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				img.SetGray(x, y, gray(10))
			} else {
				img.SetGray(x, y, gray(240))
			}
		}
	}

	got := OtsuThreshold(img)
	if got <= 10 || got >= 240 {
		t.Fatalf("OtsuThreshold() = %d, want strictly between 10 and 240", got)
	}
	// Equal scores tie toward the earliest threshold.
	if got != 11 {
		t.Errorf("OtsuThreshold() = %d, want 11", got)
	}
}

func TestOtsuThresholdUniform(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetGray(x, y, gray(77))
		}
	}
	if got := OtsuThreshold(img); got != 0 {
		t.Errorf("OtsuThreshold(uniform) = %d, want 0", got)
	}
}

func TestOtsuSeparatesModes(t *testing.T) {
	img := grayOf([][]uint8{
		{10, 10, 240, 240},
		{10, 10, 240, 240},
	})
	BinarizeOtsu(img)
	want := []uint8{0, 0, 255, 255, 0, 0, 255, 255}
	got := grayPixels(img)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixels = %v, want %v", got, want)
		}
	}
}

func TestBinarizeManual(t *testing.T) {
	img := grayOf([][]uint8{{99, 100, 101, 255, 0}})
	Binarize(img, 100)
	want := []uint8{0, 0, 255, 255, 0}
	got := grayPixels(img)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Binarize(100) = %v, want %v", got, want)
		}
	}
}

func TestInvertGray(t *testing.T) {
	img := grayOf([][]uint8{{0, 1, 128, 254, 255}})
	InvertGray(img)
	want := []uint8{255, 254, 127, 1, 0}
	got := grayPixels(img)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("InvertGray() = %v, want %v", got, want)
		}
	}
}

func TestBinarizeInvertOrderMatters(t *testing.T) {
	src := [][]uint8{{40, 120, 200}}

	a := grayOf(src)
	Binarize(a, 100)
	InvertGray(a)

	b := grayOf(src)
	InvertGray(b)
	Binarize(b, 100)

	wantA := []uint8{255, 0, 0}
	wantB := []uint8{255, 255, 0}
	gotA := grayPixels(a)
	gotB := grayPixels(b)
	for i := range wantA {
		if gotA[i] != wantA[i] {
			t.Errorf("binarize then invert = %v, want %v", gotA, wantA)
			break
		}
	}
	for i := range wantB {
		if gotB[i] != wantB[i] {
			t.Errorf("invert then binarize = %v, want %v", gotB, wantB)
			break
		}
	}
}
