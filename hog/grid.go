package hog

// HistogramGrid holds one orientation histogram per image cell. Histograms
// are stored contiguously in a flat slice, indexed row-major by cell.
type HistogramGrid struct {
	rows int
	cols int
	bins int

	data []float64
}

// NewHistogramGrid creates a zeroed rows x cols grid of bins-sized histograms.
func NewHistogramGrid(rows, cols, bins int) *HistogramGrid {
	return &HistogramGrid{
		rows: rows,
		cols: cols,
		bins: bins,
		data: make([]float64, rows*cols*bins),
	}
}

func (g *HistogramGrid) idx(r, c int) int {
	return (r*g.cols + c) * g.bins
}

// Rows returns the number of cell rows in the grid.
func (g *HistogramGrid) Rows() int {
	return g.rows
}

// Cols returns the number of cell columns in the grid.
func (g *HistogramGrid) Cols() int {
	return g.cols
}

// Bins returns the number of angular bins per cell histogram.
func (g *HistogramGrid) Bins() int {
	return g.bins
}

// Cell returns the histogram of cell (r, c) as a slice sharing the grid's
// backing array. Writes through the slice modify the grid.
func (g *HistogramGrid) Cell(r, c int) []float64 {
	i := g.idx(r, c)
	return g.data[i : i+g.bins : i+g.bins]
}

// At returns the weight of bin b in cell (r, c).
func (g *HistogramGrid) At(r, c, b int) float64 {
	return g.data[g.idx(r, c)+b]
}

// DescriptorGrid holds one flattened, normalized block vector per block
// window position. Layout mirrors HistogramGrid.
type DescriptorGrid struct {
	rows     int
	cols     int
	blockLen int

	data []float64
}

// NewDescriptorGrid creates a zeroed rows x cols grid of blockLen-sized vectors.
func NewDescriptorGrid(rows, cols, blockLen int) *DescriptorGrid {
	return &DescriptorGrid{
		rows:     rows,
		cols:     cols,
		blockLen: blockLen,
		data:     make([]float64, rows*cols*blockLen),
	}
}

func (g *DescriptorGrid) idx(r, c int) int {
	return (r*g.cols + c) * g.blockLen
}

// Rows returns the number of block rows in the grid.
func (g *DescriptorGrid) Rows() int {
	return g.rows
}

// Cols returns the number of block columns in the grid.
func (g *DescriptorGrid) Cols() int {
	return g.cols
}

// BlockLen returns the length of one block vector.
func (g *DescriptorGrid) BlockLen() int {
	return g.blockLen
}

// Block returns the descriptor vector of block (r, c) as a slice sharing the
// grid's backing array.
func (g *DescriptorGrid) Block(r, c int) []float64 {
	i := g.idx(r, c)
	return g.data[i : i+g.blockLen : i+g.blockLen]
}
