package hog

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MagnitudeOrientation derives per-pixel gradient orientation and magnitude
// from a pair of derivative fields.
//
// Parameters:
//   - ix: x-direction derivative field.
//   - iy: y-direction derivative field. Must have the same dimensions as ix.
//
// Returns:
//   - theta: Orientation field, atan2(iy, ix) in radians. Values lie in
//     (-pi, pi], with atan2(0, 0) defined as 0.
//   - mag: Magnitude field, ix^2 + iy^2. Always >= 0.
//   - error: ErrShapeMismatch if the two fields' dimensions differ.
//
// The magnitude is the squared gradient magnitude, not the Euclidean one.
// Downstream histogram weighting depends on this convention, so callers
// needing true Euclidean magnitudes must take the square root themselves.
func MagnitudeOrientation(ix, iy *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	xr, xc := ix.Dims()
	yr, yc := iy.Dims()
	if xr != yr || xc != yc {
		return nil, nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, xr, xc, yr, yc)
	}

	theta := mat.NewDense(xr, xc, nil)
	mag := mat.NewDense(xr, xc, nil)
	for r := 0; r < xr; r++ {
		for c := 0; c < xc; c++ {
			gx := ix.At(r, c)
			gy := iy.At(r, c)
			theta.Set(r, c, math.Atan2(gy, gx))
			mag.Set(r, c, gx*gx+gy*gy)
		}
	}

	return theta, mag, nil
}

// EstimateMagnitudeOrientation runs gradient estimation and the
// magnitude/orientation mapping in one call.
//
// Parameters:
//   - img: Grayscale image as a rows x cols matrix. Must be at least 3x3.
//
// Returns:
//   - theta: Orientation field in radians, same shape as img.
//   - mag: Squared magnitude field, same shape as img.
//   - error: ErrInvalidShape if the image is too small for the kernels.
func EstimateMagnitudeOrientation(img *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	ix, iy, err := EstimateGradients(img)
	if err != nil {
		return nil, nil, err
	}
	return MagnitudeOrientation(ix, iy)
}
