package character

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/inkmatch/model"
)

// ErrIndexOutOfRange is returned by SetValue when i is outside
// [0, n_vectors*DPad).
var ErrIndexOutOfRange = errors.New("character: index out of range")

// ErrInvalidNVectors is returned by New when n_vectors < 1.
var ErrInvalidNVectors = errors.New("character: n_vectors must be >= 1")

// Character is a caller-built handwritten character: a stroke count and
// a packed buffer of n_vectors feature vectors, each model.DPad floats
// wide. The buffer starts zeroed, so the caller sets only the lanes that
// carry feature values; padding lanes beyond the model's logical
// dimension stay zero unless SetValue overwrites them.
type Character struct {
	nVectors int
	nStrokes int
	points   []float32
}

// New allocates a Character with nVectors feature vectors and nStrokes
// strokes. The point buffer is zero-initialized, so padding lanes are
// already correct; callers only need to set the first Dimension lanes
// of each vector.
func New(nVectors, nStrokes int) (*Character, error) {
	if nVectors < 1 {
		return nil, ErrInvalidNVectors
	}
	return &Character{
		nVectors: nVectors,
		nStrokes: nStrokes,
		points:   make([]float32, nVectors*model.DPad),
	}, nil
}

// SetValue writes the i-th float of the packed point buffer
// (0 <= i < NVectors()*model.DPad).
func (c *Character) SetValue(i int, v float32) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("Character.SetValue(%d): %w", i, ErrIndexOutOfRange)
	}
	c.points[i] = v
	return nil
}

// Points returns the packed point buffer: NVectors() records of
// model.DPad floats each.
func (c *Character) Points() []float32 { return c.points }

// NVectors returns the number of feature vectors.
func (c *Character) NVectors() int { return c.nVectors }

// NStrokes returns the number of strokes.
func (c *Character) NStrokes() int { return c.nStrokes }
