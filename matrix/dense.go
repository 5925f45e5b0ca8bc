package matrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with the Dense method and indices
// that triggered it. Example message shape: "Dense.At(3,7): matrix: index
// out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major dense matrix: r, c are its dimensions and data holds
// r*c float64 elements in row-major order. modelstats.Sample allocates one
// per call to hold a pairwise DTW distance matrix over its sampled
// templates; DistanceMatrix.At and .Summary read it back.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, len == r*c
}

// Compile-time assertion: *Dense implements the Matrix interface.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zero distances.
// Returns ErrInvalidDimensions if rows or cols is non-positive.
// Complexity: O(r*c) for the zero-fill.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf validates (row, col) and computes its flat offset. It never
// panics; out-of-range indices produce ErrOutOfRange instead.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil // row-major offset
}

// At returns the distance stored at (row, col).
// Returns ErrOutOfRange on an invalid index.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[off], nil
}

// Set writes distance v at (row, col).
// Returns ErrOutOfRange on an invalid index, ErrNaNInf if v is NaN or ±Inf —
// a DTW distance is never either, so Set treats one as caller error rather
// than silently storing it.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy of the matrix; mutating the clone never
// affects the original's backing storage.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}
