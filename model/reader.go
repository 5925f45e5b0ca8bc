package model

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Reader maps a model file read-only and exposes zero-copy typed views
// over its header, CharacterInfo array, CharacterGroup array, and
// stroke-data region. The mapping is kept alive for the Reader's
// lifetime; every view returned by Reader borrows it and must not
// outlive a call to Close.
//
// Reinterpreting mapped bytes as CharacterInfo/CharacterGroup/float32
// assumes a little-endian host, true of every platform this module
// targets (amd64, arm64).
type Reader struct {
	data []byte // the full mapping

	header   *Header
	infos    []CharacterInfo
	groups   []CharacterGroup
	strokes  []float32 // the stroke-data region, as packed DPad-wide vectors
	maxNVecs uint32
}

// Open maps path read-only and validates its header.
// Returns ErrMapError if the file cannot be opened or mapped,
// ErrFormatError if the magic number does not match Magic, or
// ErrEmptyModelError if the header declares zero characters or groups.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model.Open(%s): %w: %v", path, ErrMapError, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("model.Open(%s): %w: %v", path, ErrMapError, err)
	}
	size := st.Size()
	if size < headerSize {
		return nil, fmt.Errorf("model.Open(%s): %w: file too small for header", path, ErrFormatError)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("model.Open(%s): %w: %v", path, ErrMapError, err)
	}

	r, err := newReader(data)
	if err != nil {
		_ = unix.Munmap(data)
		return nil, err
	}
	return r, nil
}

// newReader validates header and builds the zero-copy views over an
// already-mapped byte slice. Split out from Open so tests can exercise
// header validation over an in-memory buffer without a real file.
func newReader(data []byte) (*Reader, error) {
	hdr := (*Header)(unsafe.Pointer(&data[0]))
	if hdr.Magic != Magic {
		return nil, fmt.Errorf("model: %w: got 0x%08x, want 0x%08x", ErrFormatError, hdr.Magic, Magic)
	}
	if hdr.NCharacters == 0 || hdr.NGroups == 0 {
		return nil, ErrEmptyModelError
	}

	infosEnd := headerSize + int(hdr.NCharacters)*characterInfoSize
	groupsEnd := infosEnd + int(hdr.NGroups)*characterGroupSize
	if len(data) < groupsEnd {
		return nil, fmt.Errorf("model: %w: file truncated before group table", ErrFormatError)
	}

	infos := unsafe.Slice((*CharacterInfo)(unsafe.Pointer(&data[headerSize])), hdr.NCharacters)
	groups := unsafe.Slice((*CharacterGroup)(unsafe.Pointer(&data[infosEnd])), hdr.NGroups)

	strokeOff := int(groups[0].Offset)
	if strokeOff < groupsEnd || strokeOff > len(data) {
		return nil, fmt.Errorf("model: %w: group[0].offset out of range", ErrFormatError)
	}
	nFloats := (len(data) - strokeOff) / 4
	var strokes []float32
	if nFloats > 0 {
		strokes = unsafe.Slice((*float32)(unsafe.Pointer(&data[strokeOff])), nFloats)
	}

	var maxNVecs uint32
	for i := range infos {
		if infos[i].NVectors > maxNVecs {
			maxNVecs = infos[i].NVectors
		}
	}

	return &Reader{
		data:     data,
		header:   hdr,
		infos:    infos,
		groups:   groups,
		strokes:  strokes,
		maxNVecs: maxNVecs,
	}, nil
}

// Close unmaps the underlying file. The Reader and every view it
// produced must not be used afterward.
func (r *Reader) Close() error {
	if r.data == nil {
		return nil
	}
	err := unix.Munmap(r.data)
	r.data = nil
	return err
}

// NCharacters returns the total number of template characters.
func (r *Reader) NCharacters() int { return int(r.header.NCharacters) }

// NGroups returns the number of stroke-count groups.
func (r *Reader) NGroups() int { return int(r.header.NGroups) }

// Dimension returns the model's logical feature dimension D.
func (r *Reader) Dimension() int { return int(r.header.Dimension) }

// DownsampleThreshold returns the informational downsample threshold
// recorded by whatever offline trainer produced this model; the
// recognizer never consults it.
func (r *Reader) DownsampleThreshold() int { return int(r.header.DownsampleThreshold) }

// MaxNVectors returns the largest CharacterInfo.NVectors across every
// template, the size callers must give their rolling DTW column
// buffers.
func (r *Reader) MaxNVectors() int { return int(r.maxNVecs) }

// Groups returns the zero-copy CharacterGroup array, sorted by
// NStrokes ascending.
func (r *Reader) Groups() []CharacterGroup { return r.groups }

// CharacterInfoAt returns the CharacterInfo for the template at the
// given index into the flat character array (group order).
func (r *Reader) CharacterInfoAt(idx int) CharacterInfo { return r.infos[idx] }

// Template returns a zero-copy view of one template's packed stroke
// data (nVectors*DPad floats) starting at cursor, the float offset of
// this template's data within the stroke-data region (the caller advances
// cursor by n_vectors*DPad between consecutive templates in a group).
func (r *Reader) Template(cursor, nVectors int) []float32 {
	return r.strokes[cursor : cursor+nVectors*DPad]
}
