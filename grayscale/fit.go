package grayscale

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"
)

// CropToCells center-crops an image so both dimensions become exact
// multiples of cellSize, as required by hog.BuildCellHistograms.
//
// Parameters:
//   - img: Source image.
//   - cellSize: Cell side length in pixels. Must be positive.
//
// Returns:
//   - image.Image: The cropped image. If the image is already aligned it is
//     returned unchanged.
//   - error: Non-nil if cellSize is not positive or either dimension is
//     smaller than one cell.
//
// Cropping trims at most cellSize-1 pixels per dimension, split between the
// opposing edges, so image content stays centered.
func CropToCells(img image.Image, cellSize int) (image.Image, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}

	bounds := img.Bounds()
	width := bounds.Dx() / cellSize * cellSize
	height := bounds.Dy() / cellSize * cellSize
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%dx%d image smaller than one %d-pixel cell", bounds.Dx(), bounds.Dy(), cellSize)
	}
	if width == bounds.Dx() && height == bounds.Dy() {
		return img, nil
	}

	x0 := bounds.Min.X + (bounds.Dx()-width)/2
	y0 := bounds.Min.Y + (bounds.Dy()-height)/2
	return transform.Crop(img, image.Rect(x0, y0, x0+width, y0+height)), nil
}

// ScaleToCells rescales an image so both dimensions become the nearest
// nonzero multiples of cellSize.
//
// Parameters:
//   - img: Source image.
//   - cellSize: Cell side length in pixels. Must be positive.
//
// Returns:
//   - image.Image: The rescaled image (bilinear interpolation). If the
//     image is already aligned it is returned unchanged.
//   - error: Non-nil if cellSize is not positive.
//
// Unlike CropToCells this keeps all image content, at the cost of slight
// resampling distortion. Dimensions round to the nearest multiple but never
// below one cell.
func ScaleToCells(img image.Image, cellSize int) (image.Image, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}

	bounds := img.Bounds()
	width := nearestMultiple(bounds.Dx(), cellSize)
	height := nearestMultiple(bounds.Dy(), cellSize)
	if width == bounds.Dx() && height == bounds.Dy() {
		return img, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst, nil
}

// nearestMultiple rounds n to the closest multiple of step, never below step.
func nearestMultiple(n, step int) int {
	m := (n + step/2) / step * step
	if m < step {
		m = step
	}
	return m
}
