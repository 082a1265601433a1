package ansinator

import "image"

// Histogram counts the pixel intensities of img into 256 bins.
func Histogram(img *image.Gray) [256]int {
	var hist [256]int
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()]
		for _, p := range row {
			hist[p]++
		}
	}
	return hist
}

// OtsuThreshold returns the threshold that maximizes the inter-class
// variance between the pixels at or below it and the pixels above it.
// When several thresholds score equally the earliest one wins; an image
// with a single intensity yields 0.
func OtsuThreshold(img *image.Gray) uint8 {
	hist := Histogram(img)
	b := img.Bounds()
	total := float64(b.Dx() * b.Dy())

	var sum float64
	for t, c := range hist {
		sum += float64(t * c)
	}

	var bgSum, bgWeight float64
	var maxVariance float64
	var best uint8

	for t, c := range hist {
		fgWeight := total - bgWeight
		if bgWeight > 0 && fgWeight > 0 {
			bgMean := bgSum / bgWeight
			fgMean := (sum - bgSum) / fgWeight
			val := bgWeight * fgWeight * (bgMean - fgMean)
			val *= val
			if val > maxVariance {
				best = uint8(t)
				maxVariance = val
			}
		}
		bgWeight += float64(c)
		bgSum += float64(t * c)
	}

	return best
}

// Binarize maps every pixel strictly above threshold to 255 and the
// rest to 0, in place.
func Binarize(img *image.Gray, threshold uint8) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()]
		for x, p := range row {
			if p > threshold {
				row[x] = 255
			} else {
				row[x] = 0
			}
		}
	}
}

// BinarizeOtsu binarizes img with its Otsu threshold.
func BinarizeOtsu(img *image.Gray) {
	Binarize(img, OtsuThreshold(img))
}

// InvertGray flips every pixel p to 255-p, in place.
func InvertGray(img *image.Gray) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()]
		for x, p := range row {
			row[x] = 255 - p
		}
	}
}
