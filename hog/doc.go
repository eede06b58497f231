// Package hog computes Histogram-of-Oriented-Gradients feature descriptors
// from grayscale images.
//
// The descriptor is built by a four-stage pipeline, each stage a pure
// function over the previous stage's output:
//
//  1. Gradient estimation: the image is convolved with fixed 3x3 Sobel-style
//     kernels under an implicit one-pixel zero border, producing x- and
//     y-derivative fields of the same shape as the input.
//
//  2. Magnitude/orientation mapping: per-pixel orientation (atan2, in
//     (-pi, pi]) and squared gradient magnitude (Ix^2 + Iy^2, never rooted).
//
//  3. Cell histogramming: the image is partitioned into non-overlapping
//     square cells and each cell's orientations are binned into a fixed
//     number of angular bins, weighted by magnitude. Bin edges span a full
//     2*pi shifted down by pi/8 so an orientation of exactly 0 falls inside
//     a bin rather than on an edge.
//
//  4. Block assembly: a window slides over the cell grid, concatenating each
//     window of histograms into one vector and L2-normalizing it.
//
// # Data Representation
//
// Images and per-pixel fields are gonum *mat.Dense matrices indexed
// (row, col). Cell histograms and block descriptors use the HistogramGrid
// and DescriptorGrid types, which store a flat float64 slice plus
// dimensions. All arithmetic is float64 end-to-end so results are
// reproducible across calls.
//
// Use the grayscale package to turn a decoded image.Image into the
// *mat.Dense this package consumes.
//
// # Error Handling
//
// All errors are input-validation failures reported before any output is
// produced. Each maps to a sentinel (ErrInvalidShape, ErrShapeMismatch,
// ErrUnalignedDimensions, ErrInvalidCellSize, ErrInvalidBinCount,
// ErrInvalidBlockConfig) and is returned wrapped with the offending
// dimensions, so callers can match with errors.Is. The one non-error
// special case is a zero-norm block vector, which is passed through
// unnormalized.
//
// # Concurrency
//
// Every function is stateless and safe for concurrent use on distinct
// inputs. Internally the stages run a bounded parallel-for over rows, cell
// rows, or block rows; output regions are disjoint, and the result is
// identical to sequential evaluation.
package hog
