// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. At and Set MUST return this, not panic, since modelstats
	// constructs indices from model.Reader data it does not re-validate.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals that Set was asked to store a NaN or ±Inf value,
	// which a DTW distance can never legitimately be.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
