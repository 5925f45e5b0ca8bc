package recognizer

import (
	"sort"

	"github.com/katalvlaran/inkmatch/character"
	"github.com/katalvlaran/inkmatch/dtwkernel"
	"github.com/katalvlaran/inkmatch/model"
)

// Recognizer holds a mapped model and the scratch state one recognition
// call mutates: the CharDist scratch array and the DTW kernel's rolling
// rows. A Recognizer is not safe for concurrent Recognize calls; run
// one Recognizer per goroutine (they may share nothing, or the caller
// may open the same model path twice — each Open maps its own copy).
type Recognizer struct {
	reader     *model.Reader
	kernel     *dtwkernel.Kernel
	scratch    []charDist
	windowSize int
}

// Open maps the model file at path and builds scratch state sized to
// it. Returns the same sentinel errors as model.Open.
func Open(path string, opts ...Option) (*Recognizer, error) {
	reader, err := model.Open(path)
	if err != nil {
		return nil, err
	}

	r := &Recognizer{
		reader:     reader,
		kernel:     dtwkernel.NewKernel(reader.MaxNVectors()),
		scratch:    make([]charDist, reader.NCharacters()),
		windowSize: DefaultWindowSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close releases the underlying model mapping.
func (r *Recognizer) Close() error { return r.reader.Close() }

// WindowSize returns the current stroke-count window.
func (r *Recognizer) WindowSize() int { return r.windowSize }

// SetWindowSize overrides the stroke-count window.
func (r *Recognizer) SetWindowSize(w int) { r.windowSize = w }

// NCharacters returns the total number of template characters.
func (r *Recognizer) NCharacters() int { return r.reader.NCharacters() }

// Dimension returns the model's logical feature dimension.
func (r *Recognizer) Dimension() int { return r.reader.Dimension() }

// Recognize compares c against every template in stroke-count-window
// range and returns the min(measured, n) closest by DTW distance,
// ascending, ties broken by template order.
//
// If c has fewer than 2 feature vectors, the DTW recurrence has no
// interior cell to compute and Recognize returns an empty Results, per
// the documented contract for degenerate input.
func (r *Recognizer) Recognize(c *character.Character, n int) *Results {
	if c.NVectors() < 2 {
		return &Results{}
	}

	s := c.NStrokes()
	charID := 0
	cursor := 0
	measured := 0

	for _, g := range r.reader.Groups() {
		nStrokes := int(g.NStrokes)
		nChars := int(g.NChars)

		if s > r.windowSize && nStrokes > s+r.windowSize {
			break
		}
		if s > r.windowSize && nStrokes < s-r.windowSize {
			charID, cursor = r.skipGroup(charID, nChars, cursor)
			continue
		}

		charID, cursor, measured = r.measureGroup(c, charID, nChars, cursor, measured)
	}

	return r.topN(measured, n)
}

// skipGroup advances the character-array cursor and float cursor past
// an excluded group without measuring any of its templates.
func (r *Recognizer) skipGroup(charID, nChars, cursor int) (int, int) {
	for i := 0; i < nChars; i++ {
		nv := int(r.reader.CharacterInfoAt(charID + i).NVectors)
		cursor += nv * model.DPad
	}
	return charID + nChars, cursor
}

// measureGroup runs DTW-4 on consecutive quads and scalar DTW on the
// remainder, writing (unicode, distance) into the scratch array
// starting at measured.
func (r *Recognizer) measureGroup(c *character.Character, charID, nChars, cursor, measured int) (int, int, int) {
	i := 0
	for ; i+4 <= nChars; i += 4 {
		var refs [4]dtwkernel.Ref
		unicodes := [4]uint32{}
		for lane := 0; lane < 4; lane++ {
			info := r.reader.CharacterInfoAt(charID + i + lane)
			nv := int(info.NVectors)
			refs[lane] = dtwkernel.Ref{Data: r.reader.Template(cursor, nv), M: nv}
			unicodes[lane] = info.Unicode
			cursor += nv * model.DPad
		}
		dists := r.kernel.DTW4(c.Points(), c.NVectors(), refs)
		for lane := 0; lane < 4; lane++ {
			r.scratch[measured] = charDist{unicode: unicodes[lane], dist: dists[lane]}
			measured++
		}
	}

	for ; i < nChars; i++ {
		info := r.reader.CharacterInfoAt(charID + i)
		nv := int(info.NVectors)
		tmpl := r.reader.Template(cursor, nv)
		d := r.kernel.DTW(c.Points(), c.NVectors(), tmpl, nv)
		r.scratch[measured] = charDist{unicode: info.Unicode, dist: d}
		measured++
		cursor += nv * model.DPad
	}

	return charID + nChars, cursor, measured
}

// Templates reconstructs every template in the model as an owned
// Character paired with its unicode code point, in flat group order.
// Intended for callers that need to treat the model's own templates as
// recognition inputs (see confusion.BuildGraph) rather than mapped
// model data.
func (r *Recognizer) Templates() ([]uint32, []*character.Character, error) {
	n := r.reader.NCharacters()
	unicodes := make([]uint32, 0, n)
	chars := make([]*character.Character, 0, n)

	charID := 0
	cursor := 0
	for _, g := range r.reader.Groups() {
		nStrokes := int(g.NStrokes)
		nChars := int(g.NChars)

		for i := 0; i < nChars; i++ {
			info := r.reader.CharacterInfoAt(charID)
			nv := int(info.NVectors)
			tmpl := r.reader.Template(cursor, nv)

			c, err := character.New(nv, nStrokes)
			if err != nil {
				return nil, nil, err
			}
			for k, v := range tmpl {
				if err := c.SetValue(k, v); err != nil {
					return nil, nil, err
				}
			}

			unicodes = append(unicodes, info.Unicode)
			chars = append(chars, c)
			cursor += nv * model.DPad
			charID++
		}
	}

	return unicodes, chars, nil
}

// topN partial-sorts scratch[:measured] ascending by distance, stable
// by template order, and copies the first min(measured, n) into a
// fresh Results.
func (r *Recognizer) topN(measured, n int) *Results {
	view := r.scratch[:measured]
	sort.SliceStable(view, func(i, j int) bool {
		return view[i].dist < view[j].dist
	})

	size := measured
	if n < size {
		size = n
	}

	out := &Results{
		unicode: make([]uint32, size),
		dist:    make([]float32, size),
	}
	for i := 0; i < size; i++ {
		out.unicode[i] = view[i].unicode
		out.dist[i] = view[i].dist
	}
	return out
}
