package dtwkernel

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/katalvlaran/inkmatch/model"
)

// Ref is one of the four reference templates passed to DTW4: Data is
// its packed stroke buffer (M vectors of model.DPad floats), M its
// vector count.
type Ref struct {
	Data []float32
	M    int
}

// local4 computes, for the i-th input vector and column j, the 4-lane
// cost vector whose lane k is the L1 distance between s_i and
// refs[k]'s j-th vector. Each lane is produced by loading both packed
// vectors into a 4-wide hwy.Vec, subtracting, taking the absolute
// value, and reducing — the portable equivalent of Highway's
// subtract/abs/horizontal-transpose/add sequence, used one reference
// at a time as the library's own base-mode fallback does.
func local4(s []float32, i int, refs [4]Ref, j int) [4]float32 {
	sv := hwy.Load(s[i*model.DPad : i*model.DPad+model.DPad])

	var out [4]float32
	for k := 0; k < 4; k++ {
		tv := hwy.Load(refs[k].Data[j*model.DPad : j*model.DPad+model.DPad])
		diff := hwy.Abs(hwy.Sub(tv, sv))
		out[k] = hwy.ReduceSum(diff)
	}
	return out
}

// DTW4 computes four DTW distances against the same input s (n packed
// vectors) in parallel, one per reference in refs. Columns j in
// [1, common) — common = min of the four references' lengths — are
// updated with a single 4-lane SIMD min/add per row; columns beyond
// common for a shorter-lived reference fall back to scalar per-lane
// updates, since that reference's sequence has already ended.
func (k *Kernel) DTW4(s []float32, n int, refs [4]Ref) [4]float32 {
	m := [4]int{refs[0].M, refs[1].M, refs[2].M, refs[3].M}
	common, maxM := m[0], m[0]
	for _, mi := range m[1:] {
		if mi < common {
			common = mi
		}
		if mi > maxM {
			maxM = mi
		}
	}

	prev, curr := k.prev4[:maxM*4], k.curr4[:maxM*4]
	inf := float32(math.Inf(1))

	for lane := 0; lane < 4; lane++ {
		prev[lane] = 0
	}
	for j := 1; j < maxM; j++ {
		for lane := 0; lane < 4; lane++ {
			prev[j*4+lane] = inf
		}
	}

	for i := 1; i < n; i++ {
		for lane := 0; lane < 4; lane++ {
			curr[lane] = inf
		}

		for j := 1; j < common; j++ {
			cost := local4(s, i, refs, j)
			diag := hwy.Load(prev[(j-1)*4 : j*4])
			up := hwy.Load(prev[j*4 : (j+1)*4])
			left := hwy.Load(curr[(j-1)*4 : j*4])
			best := hwy.Min(hwy.Min(diag, up), left)
			res := hwy.Add(hwy.Load(cost[:]), best)
			hwy.Store(res, curr[j*4:(j+1)*4])
		}

		for lane := 0; lane < 4; lane++ {
			for j := common; j < m[lane]; j++ {
				cost := localCost(s, i, refs[lane].Data, j)
				curr[j*4+lane] = cost + min3(prev[(j-1)*4+lane], prev[j*4+lane], curr[(j-1)*4+lane])
			}
		}

		prev, curr = curr, prev
	}

	var out [4]float32
	for lane := 0; lane < 4; lane++ {
		out[lane] = prev[(m[lane]-1)*4+lane]
	}
	return out
}
