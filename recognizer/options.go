package recognizer

// DefaultWindowSize is the stroke-count window applied when no
// WithWindowSize option is given.
const DefaultWindowSize = 3

// Option configures a Recognizer at Open time, mirroring the teacher
// package's functional-option pattern (core.GraphOption).
type Option func(*Recognizer)

// WithWindowSize overrides the default stroke-count window.
func WithWindowSize(w int) Option {
	return func(r *Recognizer) { r.windowSize = w }
}
