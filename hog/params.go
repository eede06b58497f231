package hog

// Default pipeline settings, matching the common 8x8-cell, 8-bin, 2x2-block
// HOG configuration.
const (
	DefaultCellSize  = 8
	DefaultNumBins   = 8
	DefaultBlockSize = 2
	DefaultStepSize  = 1
)

// Params bundles the tunable settings of the full pipeline for
// ComputeDescriptor. The zero value is not valid; start from DefaultParams
// and override fields as needed.
type Params struct {
	// CellSize is the side length in pixels of one histogram cell. Both
	// image dimensions must be exact multiples of it.
	CellSize int

	// NumBins is the number of angular bins per cell histogram.
	NumBins int

	// BlockSize is the side length in cells of one descriptor block.
	BlockSize int

	// StepSize is the cell stride between consecutive block windows.
	StepSize int
}

// DefaultParams returns the default pipeline configuration.
func DefaultParams() Params {
	return Params{
		CellSize:  DefaultCellSize,
		NumBins:   DefaultNumBins,
		BlockSize: DefaultBlockSize,
		StepSize:  DefaultStepSize,
	}
}
