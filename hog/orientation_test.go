package hog

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMagnitudeOrientation(t *testing.T) {
	ix := mat.NewDense(1, 5, []float64{1, 0, -1, 0, 3})
	iy := mat.NewDense(1, 5, []float64{0, 2, 0, -2, 4})

	theta, mag, err := MagnitudeOrientation(ix, iy)
	if err != nil {
		t.Fatalf("MagnitudeOrientation failed: %v", err)
	}

	wantTheta := []float64{0, math.Pi / 2, math.Pi, -math.Pi / 2, math.Atan2(4, 3)}
	wantMag := []float64{1, 4, 1, 4, 25}
	for c := range wantTheta {
		if got := theta.At(0, c); got != wantTheta[c] {
			t.Errorf("theta[%d]: got %g, want %g", c, got, wantTheta[c])
		}
		if got := mag.At(0, c); got != wantMag[c] {
			t.Errorf("mag[%d]: got %g, want %g", c, got, wantMag[c])
		}
	}
}

func TestMagnitudeOrientation_ZeroGradient(t *testing.T) {
	ix := mat.NewDense(1, 1, []float64{0})
	iy := mat.NewDense(1, 1, []float64{0})

	theta, mag, err := MagnitudeOrientation(ix, iy)
	if err != nil {
		t.Fatalf("MagnitudeOrientation failed: %v", err)
	}

	if got := theta.At(0, 0); got != 0 {
		t.Errorf("atan2(0,0): got %g, want 0", got)
	}
	if got := mag.At(0, 0); got != 0 {
		t.Errorf("magnitude of zero gradient: got %g, want 0", got)
	}
}

func TestMagnitudeOrientation_SquaredConvention(t *testing.T) {
	// The magnitude field is ix^2 + iy^2, deliberately not square-rooted.
	ix := mat.NewDense(1, 1, []float64{3})
	iy := mat.NewDense(1, 1, []float64{4})

	_, mag, err := MagnitudeOrientation(ix, iy)
	if err != nil {
		t.Fatalf("MagnitudeOrientation failed: %v", err)
	}
	if got := mag.At(0, 0); got != 25 {
		t.Errorf("magnitude: got %g, want 25 (squared, not 5)", got)
	}
}

func TestMagnitudeOrientation_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name           string
		xr, xc, yr, yc int
	}{
		{"row mismatch", 3, 4, 4, 4},
		{"col mismatch", 3, 4, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := mat.NewDense(tt.xr, tt.xc, nil)
			iy := mat.NewDense(tt.yr, tt.yc, nil)
			_, _, err := MagnitudeOrientation(ix, iy)
			if !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("got %v, want ErrShapeMismatch", err)
			}
		})
	}
}

func TestEstimateMagnitudeOrientation_Ranges(t *testing.T) {
	theta, mag, err := EstimateMagnitudeOrientation(patternImage(12, 10))
	if err != nil {
		t.Fatalf("EstimateMagnitudeOrientation failed: %v", err)
	}

	rows, cols := theta.Dims()
	if rows != 12 || cols != 10 {
		t.Fatalf("theta dims: got %dx%d, want 12x10", rows, cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := theta.At(r, c)
			if v <= -math.Pi || v > math.Pi {
				t.Errorf("theta(%d,%d) = %g outside (-pi, pi]", r, c, v)
			}
			if m := mag.At(r, c); m < 0 {
				t.Errorf("mag(%d,%d) = %g, want >= 0", r, c, m)
			}
		}
	}
}

func TestEstimateMagnitudeOrientation_TooSmall(t *testing.T) {
	_, _, err := EstimateMagnitudeOrientation(constImage(2, 2, 1))
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("got %v, want ErrInvalidShape", err)
	}
}
