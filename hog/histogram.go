package hog

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Orientations are rounded to 5 decimal digits before binning so values
// sitting numerically on a bin boundary classify consistently.
const orientationScale = 1e5

// BinEdges returns numBins+1 evenly spaced histogram boundaries spanning a
// full 2*pi of orientation, from -pi-pi/8 to pi-pi/8.
//
// The -pi/8 offset keeps an orientation of exactly 0 (the most common value
// for flat regions, since atan2(0, 0) is 0) inside a bin rather than on an
// edge. The same edges are reused for every cell of an image.
func BinEdges(numBins int) []float64 {
	lo := -math.Pi - math.Pi/8
	hi := math.Pi - math.Pi/8
	step := (hi - lo) / float64(numBins)

	edges := make([]float64, numBins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*step
	}
	edges[numBins] = hi
	return edges
}

// binIndex places v into the half-open bin [edges[k], edges[k+1]). The last
// bin is closed on both ends. Returns -1 for values outside all edges;
// those contribute nothing to a histogram.
func binIndex(edges []float64, v float64) int {
	last := len(edges) - 1
	if v < edges[0] || v > edges[last] {
		return -1
	}
	for k := 1; k < last; k++ {
		if v < edges[k] {
			return k - 1
		}
	}
	return last - 1
}

// BuildCellHistograms partitions the image into non-overlapping square
// cells and computes one magnitude-weighted orientation histogram per cell.
//
// Parameters:
//   - img: Grayscale image as a rows x cols matrix. Both dimensions must be
//     exact multiples of cellSize.
//   - cellSize: Side length in pixels of one cell. Typical value:
//     DefaultCellSize (8).
//   - numBins: Number of angular bins per histogram. Typical value:
//     DefaultNumBins (8).
//
// Returns:
//   - *HistogramGrid: (rows/cellSize) x (cols/cellSize) grid of numBins-bin
//     histograms. Each pixel adds its squared gradient magnitude to the bin
//     holding its orientation, so histograms are weighted sums rather than
//     plain counts.
//   - []float64: The numBins+1 bin edges used, as returned by BinEdges.
//   - error: ErrInvalidBinCount, ErrInvalidCellSize, ErrUnalignedDimensions,
//     or a gradient-stage error.
//
// # Binning
//
// Orientations are rounded to 5 decimal digits, then placed with standard
// histogram semantics: half-open bins, a last bin closed on both ends, and
// values outside the edges silently dropped. Because atan2 ranges over
// (-pi, pi] while the edges stop at pi-pi/8, orientations in the sliver
// (pi-pi/8, pi] are dropped; in practice these occur only for pixels whose
// gradient points exactly along the negative x-axis.
func BuildCellHistograms(img *mat.Dense, cellSize, numBins int) (*HistogramGrid, []float64, error) {
	rows, cols := img.Dims()
	if numBins < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidBinCount, numBins)
	}
	if cellSize <= 0 || cellSize > rows || cellSize > cols {
		return nil, nil, fmt.Errorf("%w: cell size %d for %dx%d image", ErrInvalidCellSize, cellSize, rows, cols)
	}
	if rows%cellSize != 0 || cols%cellSize != 0 {
		return nil, nil, fmt.Errorf("%w: %dx%d image, cell size %d", ErrUnalignedDimensions, rows, cols, cellSize)
	}

	theta, mag, err := EstimateMagnitudeOrientation(img)
	if err != nil {
		return nil, nil, err
	}

	edges := BinEdges(numBins)
	grid := NewHistogramGrid(rows/cellSize, cols/cellSize, numBins)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < grid.rows; i++ {
		i := i
		g.Go(func() error {
			for j := 0; j < grid.cols; j++ {
				hist := grid.Cell(i, j)
				for r := i * cellSize; r < (i+1)*cellSize; r++ {
					for c := j * cellSize; c < (j+1)*cellSize; c++ {
						v := math.Round(theta.At(r, c)*orientationScale) / orientationScale
						if k := binIndex(edges, v); k >= 0 {
							hist[k] += mag.At(r, c)
						}
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return grid, edges, nil
}
