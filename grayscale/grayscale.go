package grayscale

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"
)

// FromImage converts a decoded image into a grayscale intensity matrix.
//
// Parameters:
//   - img: Source image (color or grayscale).
//
// Returns:
//   - *mat.Dense: height x width matrix of luminance values in [0, 255],
//     computed with ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B).
//
// The matrix is indexed (row, col): row 0 is the topmost pixel row.
func FromImage(img image.Image) *mat.Dense {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	m := mat.NewDense(height, width, nil)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// R, G and B are equal after grayscale conversion.
			m.Set(y, x, float64(gray.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y).R))
		}
	}
	return m
}

// FromImageLab converts a decoded image into an intensity matrix using
// perceptual L* lightness (CIE L*a*b*) instead of BT.601 luminance.
//
// Parameters:
//   - img: Source image (color or grayscale).
//
// Returns:
//   - *mat.Dense: height x width matrix of lightness values scaled to
//     [0, 255]. Fully transparent pixels map to 0.
//
// L* tracks perceived brightness more closely than the luminance weighting,
// which can matter when descriptor contrast should follow what a viewer
// sees rather than sensor intensity.
func FromImageLab(img image.Image) *mat.Dense {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	m := mat.NewDense(height, width, nil)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c, ok := colorful.MakeColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			if !ok {
				continue
			}
			l, _, _ := c.Lab()
			m.Set(y, x, l*255)
		}
	}
	return m
}
