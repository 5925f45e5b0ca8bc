package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/inkmatch/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures NewDense rejects non-positive
// dimensions, the shape modelstats.Sample would pass for an empty or
// negative-k sample.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies Rows/Cols match the requested sample size k.
func TestRowsCols(t *testing.T) {
	const k = 4
	m, err := matrix.NewDense(k, k)
	require.NoError(t, err)

	require.Equal(t, k, m.Rows())
	require.Equal(t, k, m.Cols())
}

// TestAtSetOutOfBounds ensures At/Set return ErrOutOfRange for an index
// outside the k×k sample grid.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet stores a DTW distance and reads it back, the pattern
// modelstats.Sample follows for each template pair.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	err = m.Set(1, 2, 17.5) // a scaled DTW distance between two templates
	require.NoError(t, err)

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 17.5, val)
}

// TestSetRejectsNaNInf verifies Set refuses a NaN or ±Inf distance, since
// dtwkernel.Kernel.DTW never legitimately produces one.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	err = m.Set(0, 0, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	err = m.Set(0, 1, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	err = m.Set(1, 0, math.Inf(-1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone returns a deep copy that does not
// share storage with the original distance matrix.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 3.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 1, 9.0))

	orig, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, orig)

	cp, err := clone.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, cp)
}

// TestSymmetricFill mirrors how modelstats.Sample populates a distance
// matrix: writing both (i,j) and (j,i) for each template pair, leaving the
// diagonal at its zero-initialized value (a template's distance to itself).
func TestSymmetricFill(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 5.0))
	require.NoError(t, m.Set(1, 0, 5.0))

	a, err := m.At(0, 1)
	require.NoError(t, err)
	b, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, a, b)

	diag, err := m.At(2, 2)
	require.NoError(t, err)
	require.Zero(t, diag)
}
