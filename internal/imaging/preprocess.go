package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// minOCRSide is the shortest acceptable longest-side length before
	// upscaling kicks in. Tesseract degrades sharply below ~300 DPI
	// equivalents; doubling small screenshots recovers most of that.
	minOCRSide = 900

	// contrastBoost is the percentage passed to the contrast stretch.
	contrastBoost = 20

	// binarizeLevel is the grayscale cutoff for the final threshold pass.
	// The contrast stretch beforehand pushes tile text and background far
	// enough apart that a fixed midpoint level is reliable.
	binarizeLevel = 128

	// luminanceSampleStep is the pixel stride used when estimating mean
	// luminance. Sampling keeps the estimate cheap on large screenshots.
	luminanceSampleStep = 8
)

// PrepareForOCR transforms a puzzle screenshot into the high-contrast
// black-on-white form Tesseract reads best.
//
// The pipeline is: grayscale, contrast stretch, upscale when the image is
// small, invert when the capture is light-on-dark, then binarize. The
// function is deterministic and never fails; any image yields some output.
func PrepareForOCR(img image.Image) image.Image {
	out := imaging.Grayscale(img)
	out = imaging.AdjustContrast(out, contrastBoost)

	if w, h := out.Bounds().Dx(), out.Bounds().Dy(); max(w, h) < minOCRSide {
		out = imaging.Resize(out, w*2, h*2, imaging.Lanczos)
	}

	// Dark-mode screenshots are light text on a dark board; Tesseract
	// wants the opposite.
	if meanLuminance(out) < 0.5 {
		out = imaging.Invert(out)
	}

	return segment.Threshold(out, binarizeLevel)
}

// meanLuminance estimates the average perceptual lightness of an image by
// sampling a coarse pixel grid. Returns a value in [0, 1].
func meanLuminance(img image.Image) float64 {
	bounds := img.Bounds()

	var sum float64
	var n int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += luminanceSampleStep {
		for x := bounds.Min.X; x < bounds.Max.X; x += luminanceSampleStep {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, _, _ := c.Lab()
			sum += l
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return sum / float64(n)
}
