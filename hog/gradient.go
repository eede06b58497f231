package hog

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Fixed derivative kernels, applied as-is (cross-correlation, no flip).
var (
	kernelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	kernelY = [3][3]float64{
		{1, 2, 1},
		{0, 0, 0},
		{-1, -2, -1},
	}
)

// EstimateGradients convolves the image with fixed 3x3 Sobel-style kernels
// to estimate per-pixel intensity derivatives.
//
// Parameters:
//   - img: Grayscale image as a rows x cols matrix. Must be at least 3x3.
//
// Returns:
//   - ix: Partial derivatives w.r.t. the x-direction (columns), same shape
//     as img.
//   - iy: Partial derivatives w.r.t. the y-direction (rows), same shape
//     as img.
//   - error: ErrInvalidShape if img has fewer than 3 rows or columns.
//
// # Boundary Handling
//
// The convolution uses a one-pixel implicit zero border, so the output
// shape equals the input shape and edge pixels are estimated against zero
// neighbors. Border gradients are therefore an approximation: a uniform
// image yields exactly zero gradients everywhere except its outermost rows
// and columns. This zero-padding behavior is part of the contract; it is
// not replicate or reflect padding.
//
// The input is never modified; both outputs are freshly allocated.
func EstimateGradients(img *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	rows, cols := img.Dims()
	if rows < 3 || cols < 3 {
		return nil, nil, fmt.Errorf("%w: got %dx%d", ErrInvalidShape, rows, cols)
	}

	ix := mat.NewDense(rows, cols, nil)
	iy := mat.NewDense(rows, cols, nil)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for r := 0; r < rows; r++ {
		r := r
		g.Go(func() error {
			for c := 0; c < cols; c++ {
				var gx, gy float64
				for kr := -1; kr <= 1; kr++ {
					for kc := -1; kc <= 1; kc++ {
						pr := r + kr
						pc := c + kc
						if pr < 0 || pr >= rows || pc < 0 || pc >= cols {
							continue // implicit zero border
						}
						v := img.At(pr, pc)
						gx += v * kernelX[kr+1][kc+1]
						gy += v * kernelY[kr+1][kc+1]
					}
				}
				ix.Set(r, c, gx)
				iy.Set(r, c, gy)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return ix, iy, nil
}
