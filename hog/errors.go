package hog

import "errors"

var (
	// ErrInvalidShape indicates an image too small for the 3x3 gradient kernels.
	ErrInvalidShape = errors.New("hog: image must have at least 3 rows and 3 columns")
	// ErrShapeMismatch indicates derivative fields with differing dimensions.
	ErrShapeMismatch = errors.New("hog: gradient fields have mismatched dimensions")
	// ErrUnalignedDimensions indicates image dimensions not divisible by the cell size.
	ErrUnalignedDimensions = errors.New("hog: image dimensions must be divisible by the cell size")
	// ErrInvalidCellSize indicates a non-positive cell size or one larger than the image.
	ErrInvalidCellSize = errors.New("hog: cell size must be positive and no larger than the image")
	// ErrInvalidBinCount indicates a non-positive histogram bin count.
	ErrInvalidBinCount = errors.New("hog: bin count must be positive")
	// ErrInvalidBlockConfig indicates a block or step size that does not fit the cell grid.
	ErrInvalidBlockConfig = errors.New("hog: block and step sizes must be positive and fit within the cell grid")
)
