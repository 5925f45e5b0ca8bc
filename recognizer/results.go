package recognizer

// Results is a length-Size() pair of parallel sequences (unicode
// code point, DTW distance), ordered by ascending distance.
// Immutable after construction.
type Results struct {
	unicode []uint32
	dist    []float32
}

// Size returns the number of results.
func (r *Results) Size() int { return len(r.unicode) }

// Unicode returns the i-th result's unicode code point.
func (r *Results) Unicode(i int) uint32 { return r.unicode[i] }

// Distance returns the i-th result's DTW distance.
func (r *Results) Distance(i int) float32 { return r.dist[i] }

// charDist is the scratch (unicode, distance) pair accumulated during
// one Recognize call, reused across calls.
type charDist struct {
	unicode uint32
	dist    float32
}
