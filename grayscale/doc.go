// Package grayscale converts decoded images into the float64 intensity
// matrices consumed by the hog package.
//
// The package does not load or decode image files; it operates on
// already-decoded image.Image values. Two conversions are provided:
// FromImage uses ITU-R BT.601 luminance weights (0.299*R + 0.587*G +
// 0.114*B), and FromImageLab uses perceptual L* lightness. Both produce
// matrices with intensities in the 0-255 range, indexed (row, col).
//
// Because the hog pipeline requires image dimensions to be exact multiples
// of the cell size, CropToCells and ScaleToCells are provided to align an
// image before conversion, by center-cropping or rescaling respectively.
package grayscale
