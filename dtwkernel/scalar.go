package dtwkernel

import (
	"math"

	"github.com/katalvlaran/inkmatch/model"
)

// Kernel holds the two rolling DTW rows reused across calls to DTW and
// DTW4, sized once to a model's max_n_vectors so recognition never
// reallocates mid-call. A Kernel is not safe for concurrent use; each
// Recognizer owns one.
type Kernel struct {
	prev []float32 // row i-1, length capacity
	curr []float32 // row i

	prev4 []float32 // flattened 4-lane rows for DTW4: prev4[j*4+k]
	curr4 []float32
}

// NewKernel allocates rolling rows large enough for any template up to
// maxNVectors vectors long (see model.Reader.MaxNVectors).
func NewKernel(maxNVectors int) *Kernel {
	if maxNVectors < 1 {
		maxNVectors = 1
	}
	return &Kernel{
		prev:  make([]float32, maxNVectors),
		curr:  make([]float32, maxNVectors),
		prev4: make([]float32, maxNVectors*4),
		curr4: make([]float32, maxNVectors*4),
	}
}

// localCost is the L1 distance between the i-th vector of s and the
// j-th vector of t, summed over all DPad lanes. The accumulator starts
// at 0 (the historical C implementation this is ported from read an
// uninitialized accumulator here; this port always zero-initializes).
func localCost(s []float32, i int, t []float32, j int) float32 {
	var sum float32 = 0
	sOff := i * model.DPad
	tOff := j * model.DPad
	for d := 0; d < model.DPad; d++ {
		diff := t[tOff+d] - s[sOff+d]
		if diff < 0 {
			diff = -diff
		}
		sum += diff
	}
	return sum
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// DTW computes the DTW distance between input s (n packed vectors) and
// reference t (m packed vectors), using k's preallocated rolling rows
// (m must not exceed the maxNVectors the Kernel was built with).
//
// The matrix's row 0 and column 0 are boundary values: C[0,0]=0,
// C[i,0]=C[0,j]=+Inf for i,j>=1. Vectors effectively index from 1 in
// the cost recurrence; the result is C[n-1,m-1].
func (k *Kernel) DTW(s []float32, n int, t []float32, m int) float32 {
	prev, curr := k.prev[:m], k.curr[:m]

	prev[0] = 0
	for j := 1; j < m; j++ {
		prev[j] = float32(math.Inf(1))
	}

	for i := 1; i < n; i++ {
		curr[0] = float32(math.Inf(1))
		for j := 1; j < m; j++ {
			cost := localCost(s, i, t, j)
			curr[j] = cost + min3(prev[j-1], prev[j], curr[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m-1]
}

// DTW computes DTW(s,n,t,m) using freshly allocated rolling rows, for
// callers that do not need the reuse a Kernel provides.
func DTW(s []float32, n int, t []float32, m int) float32 {
	return NewKernel(m).DTW(s, n, t, m)
}
