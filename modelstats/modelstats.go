package modelstats

import (
	"math"

	"github.com/katalvlaran/inkmatch/dtwkernel"
	"github.com/katalvlaran/inkmatch/matrix"
	"github.com/katalvlaran/inkmatch/model"
)

// DistanceMatrix pairs a dense pairwise DTW distance matrix with the
// unicode code point each row/column stands for.
type DistanceMatrix struct {
	dense    *matrix.Dense
	unicodes []uint32
}

// Size returns the number of templates the matrix was built over.
func (d *DistanceMatrix) Size() int { return len(d.unicodes) }

// Unicode returns the code point labeling row/column i.
func (d *DistanceMatrix) Unicode(i int) uint32 { return d.unicodes[i] }

// At returns the DTW distance between templates i and j.
func (d *DistanceMatrix) At(i, j int) (float64, error) { return d.dense.At(i, j) }

// Summary collects descriptive statistics over a DistanceMatrix's
// off-diagonal entries.
type Summary struct {
	Mean   float64
	StdDev float64
	Max    float64
}

// Summary reduces d's upper triangle (i<j, each unordered pair once)
// to a mean, population standard deviation, and maximum distance. A
// matrix of fewer than 2 templates has no pairs and returns a
// zero-valued Summary.
func (d *DistanceMatrix) Summary() Summary {
	n := d.Size()
	if n < 2 {
		return Summary{}
	}

	var sum, sumSq, max float64
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, _ := d.dense.At(i, j) // in-range by construction
			sum += v
			sumSq += v * v
			if v > max {
				max = v
			}
			count++
		}
	}

	mean := sum / float64(count)
	variance := sumSq/float64(count) - mean*mean
	if variance < 0 {
		variance = 0 // guard against floating-point underflow
	}

	return Summary{Mean: mean, StdDev: math.Sqrt(variance), Max: max}
}

// Sample picks up to k templates, evenly stride-sampled across the
// model's flat template order (every model.NCharacters()/k-th one,
// rather than the first k), and computes their full k×k scalar-DTW
// distance matrix. A nil *DistanceMatrix is never returned; a model
// with zero characters, or a non-positive k, yields a 0×0 matrix.
func Sample(reader *model.Reader, k int) *DistanceMatrix {
	unicodes, templates, nvs := strideSample(reader, k)
	n := len(unicodes)

	if n == 0 {
		return &DistanceMatrix{unicodes: unicodes}
	}

	kernel := dtwkernel.NewKernel(reader.MaxNVectors())
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		// n > 0 here; NewDense only rejects non-positive sizes.
		panic("modelstats: " + err.Error())
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var d float32
			if nvs[i] >= 2 && nvs[j] >= 2 {
				d = kernel.DTW(templates[i], nvs[i], templates[j], nvs[j])
			}
			_ = dense.Set(i, j, float64(d)) // in range by construction
			_ = dense.Set(j, i, float64(d))
		}
	}

	return &DistanceMatrix{dense: dense, unicodes: unicodes}
}

// strideSample walks reader's groups in flat order (the same cursor
// bookkeeping recognizer.Recognizer and confusion.BuildGraph use) and
// picks up to min(k, NCharacters) templates at a fixed stride, so the
// sample spans the whole character array instead of clustering at its
// start.
func strideSample(reader *model.Reader, k int) ([]uint32, [][]float32, []int) {
	total := reader.NCharacters()
	if k <= 0 || total == 0 {
		return nil, nil, nil
	}
	if k > total {
		k = total
	}

	stride := total / k
	if stride < 1 {
		stride = 1
	}

	unicodes := make([]uint32, 0, k)
	templates := make([][]float32, 0, k)
	nvs := make([]int, 0, k)

	charID := 0
	cursor := 0
	for _, g := range reader.Groups() {
		nChars := int(g.NChars)
		for i := 0; i < nChars; i++ {
			info := reader.CharacterInfoAt(charID)
			nv := int(info.NVectors)

			if len(unicodes) < k && charID%stride == 0 {
				unicodes = append(unicodes, info.Unicode)
				templates = append(templates, reader.Template(cursor, nv))
				nvs = append(nvs, nv)
			}

			cursor += nv * model.DPad
			charID++
		}
	}

	return unicodes, templates, nvs
}
