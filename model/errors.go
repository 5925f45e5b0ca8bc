// Package model: sentinel error set.
// All failures returned by Open are one of these three sentinels,
// matching the MapError/FormatError/EmptyModelError taxonomy; callers
// use errors.Is to classify a failed Open.
package model

import "errors"

var (
	// ErrMapError is returned when the file cannot be mapped: missing,
	// permissions, or not a regular file.
	ErrMapError = errors.New("model: failed to map file")

	// ErrFormatError is returned when the header's magic number does not
	// match Magic.
	ErrFormatError = errors.New("model: bad magic number")

	// ErrEmptyModelError is returned when the header declares zero
	// characters or zero groups.
	ErrEmptyModelError = errors.New("model: empty model (no characters or no groups)")
)
