package recognizer_test

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/inkmatch/character"
	"github.com/katalvlaran/inkmatch/recognizer"
)

type testChar struct {
	unicode uint32
	vectors [][2]float32 // (x, y); D=2, DPad=4
}

type testGroup struct {
	nStrokes uint32
	chars    []testChar
}

const (
	headerSize         = 20
	characterInfoSize  = 8
	characterGroupSize = 16
	dPad               = 4
)

func buildModel(t *testing.T, groups []testGroup) string {
	t.Helper()

	var infos []testChar
	for _, g := range groups {
		infos = append(infos, g.chars...)
	}
	nChars := len(infos)
	nGroups := len(groups)

	infosEnd := headerSize + nChars*characterInfoSize
	groupsEnd := infosEnd + nGroups*characterGroupSize

	strokeFloats := 0
	for _, c := range infos {
		strokeFloats += len(c.vectors) * dPad
	}

	buf := make([]byte, groupsEnd+strokeFloats*4)
	le := binary.LittleEndian
	le.PutUint32(buf[0:], 0x77778888)
	le.PutUint32(buf[4:], uint32(nChars))
	le.PutUint32(buf[8:], uint32(nGroups))
	le.PutUint32(buf[12:], 2)
	le.PutUint32(buf[16:], 0)

	infoOff := headerSize
	for _, c := range infos {
		le.PutUint32(buf[infoOff:], c.unicode)
		le.PutUint32(buf[infoOff+4:], uint32(len(c.vectors)))
		infoOff += characterInfoSize
	}

	groupOff := infosEnd
	strokeCursor := groupsEnd
	for _, g := range groups {
		le.PutUint32(buf[groupOff:], g.nStrokes)
		le.PutUint32(buf[groupOff+4:], uint32(len(g.chars)))
		le.PutUint32(buf[groupOff+8:], uint32(strokeCursor))
		le.PutUint32(buf[groupOff+12:], 0)
		groupOff += characterGroupSize

		for _, c := range g.chars {
			for _, v := range c.vectors {
				le.PutUint32(buf[strokeCursor:], math.Float32bits(v[0]))
				le.PutUint32(buf[strokeCursor+4:], math.Float32bits(v[1]))
				le.PutUint32(buf[strokeCursor+8:], 0)
				le.PutUint32(buf[strokeCursor+12:], 0)
				strokeCursor += 16
			}
		}
	}

	path := filepath.Join(t.TempDir(), "model.bin")
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func mustCharacter(t *testing.T, nStrokes int, vectors [][2]float32) *character.Character {
	t.Helper()
	c, err := character.New(len(vectors), nStrokes)
	require.NoError(t, err)
	for i, v := range vectors {
		require.NoError(t, c.SetValue(i*dPad+0, v[0]))
		require.NoError(t, c.SetValue(i*dPad+1, v[1]))
	}
	return c
}

func TestRecognize_IdentityMatch(t *testing.T) {
	path := buildModel(t, []testGroup{
		{nStrokes: 1, chars: []testChar{
			{unicode: 0x41, vectors: [][2]float32{{0, 0}, {1, 0}}},
		}},
	})
	r, err := recognizer.Open(path)
	require.NoError(t, err)
	defer r.Close()

	in := mustCharacter(t, 1, [][2]float32{{0, 0}, {1, 0}})
	res := r.Recognize(in, 1)
	require.Equal(t, 1, res.Size())
	require.EqualValues(t, 0x41, res.Unicode(0))
	require.InDelta(t, 0.0, res.Distance(0), 1e-6)
}

func TestRecognize_OrderedRanking(t *testing.T) {
	path := buildModel(t, []testGroup{
		{nStrokes: 1, chars: []testChar{
			{unicode: 'A', vectors: [][2]float32{{0, 0}, {1, 0}}},
			{unicode: 'B', vectors: [][2]float32{{0, 0}, {2, 0}}},
		}},
	})
	r, err := recognizer.Open(path)
	require.NoError(t, err)
	defer r.Close()

	in := mustCharacter(t, 1, [][2]float32{{0, 0}, {1, 0}})
	res := r.Recognize(in, 2)
	require.Equal(t, 2, res.Size())
	require.EqualValues(t, 'A', res.Unicode(0))
	require.InDelta(t, 0.0, res.Distance(0), 1e-6)
	require.EqualValues(t, 'B', res.Unicode(1))
	require.InDelta(t, 1.0, res.Distance(1), 1e-6)
}

func groupOfOne(nStrokes uint32, unicode uint32) testGroup {
	return testGroup{nStrokes: nStrokes, chars: []testChar{
		{unicode: unicode, vectors: [][2]float32{{0, 0}, {float32(nStrokes), 0}}},
	}}
}

func TestRecognize_StrokeWindowFilter(t *testing.T) {
	path := buildModel(t, []testGroup{
		groupOfOne(1, 1),
		groupOfOne(2, 2),
		groupOfOne(5, 5),
		groupOfOne(9, 9),
	})
	r, err := recognizer.Open(path)
	require.NoError(t, err)
	defer r.Close()
	r.SetWindowSize(1)

	in := mustCharacter(t, 5, [][2]float32{{0, 0}, {5, 0}})
	res := r.Recognize(in, 10)
	require.Equal(t, 1, res.Size())
	require.EqualValues(t, 5, res.Unicode(0))
}

func TestRecognize_WindowClampForSmallInputs(t *testing.T) {
	path := buildModel(t, []testGroup{
		groupOfOne(1, 1),
		groupOfOne(3, 3),
		groupOfOne(5, 5),
		groupOfOne(9, 9),
	})
	r, err := recognizer.Open(path)
	require.NoError(t, err)
	defer r.Close()
	r.SetWindowSize(3)

	in := mustCharacter(t, 2, [][2]float32{{0, 0}, {2, 0}})
	res := r.Recognize(in, 10)
	// S=2 does not exceed window_size=3, so the window filter is inert and
	// every group (including n_strokes=9) gets measured.
	require.Equal(t, 4, res.Size())
}

func TestRecognize_QuadPlusRemainder(t *testing.T) {
	chars := make([]testChar, 6)
	for i := range chars {
		chars[i] = testChar{unicode: uint32('a' + i), vectors: [][2]float32{{0, 0}, {float32(i), 0}}}
	}
	path := buildModel(t, []testGroup{{nStrokes: 1, chars: chars}})
	r, err := recognizer.Open(path)
	require.NoError(t, err)
	defer r.Close()

	in := mustCharacter(t, 1, [][2]float32{{0, 0}, {0, 0}})
	res := r.Recognize(in, 6)
	require.Equal(t, 6, res.Size())
	for i := 0; i < res.Size()-1; i++ {
		require.LessOrEqual(t, res.Distance(i), res.Distance(i+1))
	}
	// Closest template is the identical-to-input one (index 0, distance 0 vectors {0,0},{0,0}).
	require.InDelta(t, 0.0, res.Distance(0), 1e-6)
}

func TestRecognize_TopNTruncation(t *testing.T) {
	chars := make([]testChar, 100)
	for i := range chars {
		chars[i] = testChar{unicode: uint32(i), vectors: [][2]float32{{0, 0}, {float32(i), 0}}}
	}
	path := buildModel(t, []testGroup{{nStrokes: 1, chars: chars}})
	r, err := recognizer.Open(path)
	require.NoError(t, err)
	defer r.Close()

	in := mustCharacter(t, 1, [][2]float32{{0, 0}, {0, 0}})
	res := r.Recognize(in, 5)
	require.Equal(t, 5, res.Size())
	for i := 0; i < res.Size()-1; i++ {
		require.LessOrEqual(t, res.Distance(i), res.Distance(i+1))
	}
}

func TestRecognize_ShortInputReturnsEmpty(t *testing.T) {
	path := buildModel(t, []testGroup{groupOfOne(1, 1)})
	r, err := recognizer.Open(path)
	require.NoError(t, err)
	defer r.Close()

	in := mustCharacter(t, 1, [][2]float32{{0, 0}})
	res := r.Recognize(in, 5)
	require.Equal(t, 0, res.Size())
}

func TestRecognizer_Templates(t *testing.T) {
	path := buildModel(t, []testGroup{
		{nStrokes: 1, chars: []testChar{
			{unicode: 'A', vectors: [][2]float32{{0, 0}, {1, 0}}},
			{unicode: 'B', vectors: [][2]float32{{0, 0}, {2, 0}}},
		}},
		{nStrokes: 2, chars: []testChar{
			{unicode: 'C', vectors: [][2]float32{{0, 0}, {1, 0}, {2, 0}}},
		}},
	})
	r, err := recognizer.Open(path)
	require.NoError(t, err)
	defer r.Close()

	unicodes, chars, err := r.Templates()
	require.NoError(t, err)
	require.Len(t, unicodes, 3)
	require.Len(t, chars, 3)

	require.EqualValues(t, 'A', unicodes[0])
	require.Equal(t, 2, chars[0].NVectors())
	require.Equal(t, 1, chars[0].NStrokes())
	require.Equal(t, float32(1), chars[0].Points()[4])

	require.EqualValues(t, 'C', unicodes[2])
	require.Equal(t, 3, chars[2].NVectors())
	require.Equal(t, 2, chars[2].NStrokes())
}
