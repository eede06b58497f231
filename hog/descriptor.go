package hog

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// AssembleDescriptor slides a block window over the cell histogram grid and
// collects one L2-normalized vector per window position.
//
// Parameters:
//   - grid: Cell histogram grid from BuildCellHistograms.
//   - blockSize: Side length of the window in cells. Typical value:
//     DefaultBlockSize (2).
//   - stepSize: Cell stride between consecutive windows. Typical value:
//     DefaultStepSize (1).
//
// Returns:
//   - *DescriptorGrid: Grid of (R-(K-1))/S x (C-(K-1))/S block vectors,
//     where R x C are the cell grid dimensions, K is blockSize and S is
//     stepSize. Each vector is the window's histograms concatenated in
//     row-major cell order (bins innermost), length Bins*K*K, divided by
//     its Euclidean norm.
//   - error: ErrInvalidBlockConfig if blockSize or stepSize is not positive
//     or blockSize exceeds either grid dimension.
//
// A block whose concatenated vector has exactly zero norm represents a
// featureless region and is left all-zero rather than divided by zero.
func AssembleDescriptor(grid *HistogramGrid, blockSize, stepSize int) (*DescriptorGrid, error) {
	if blockSize <= 0 || stepSize <= 0 || blockSize > grid.rows || blockSize > grid.cols {
		return nil, fmt.Errorf("%w: block size %d, step size %d over %dx%d cell grid",
			ErrInvalidBlockConfig, blockSize, stepSize, grid.rows, grid.cols)
	}

	outRows := (grid.rows - (blockSize - 1)) / stepSize
	outCols := (grid.cols - (blockSize - 1)) / stepSize
	out := NewDescriptorGrid(outRows, outCols, grid.bins*blockSize*blockSize)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < outRows; i++ {
		i := i
		g.Go(func() error {
			for j := 0; j < outCols; j++ {
				vec := out.Block(i, j)
				n := 0
				for bi := 0; bi < blockSize; bi++ {
					for bj := 0; bj < blockSize; bj++ {
						n += copy(vec[n:], grid.Cell(i*stepSize+bi, j*stepSize+bj))
					}
				}
				if norm := floats.Norm(vec, 2); norm != 0 {
					floats.Scale(1/norm, vec)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// ComputeDescriptor runs the whole pipeline, from grayscale image to
// normalized block descriptor grid.
//
// Parameters:
//   - img: Grayscale image as a rows x cols matrix.
//   - p: Pipeline settings; use DefaultParams for the standard
//     configuration.
//
// Returns:
//   - *DescriptorGrid: The final descriptor artifact.
//   - error: Any validation error from the individual stages.
func ComputeDescriptor(img *mat.Dense, p Params) (*DescriptorGrid, error) {
	grid, _, err := BuildCellHistograms(img, p.CellSize, p.NumBins)
	if err != nil {
		return nil, err
	}
	return AssembleDescriptor(grid, p.BlockSize, p.StepSize)
}
