package model

// Magic identifies a valid model file.
const Magic uint32 = 0x77778888

// DPad is the physical width of a packed feature vector, independent of
// the model's logical Dimension. Every stored vector occupies DPad
// floats so that one vector fills one 16-byte SIMD lane-group; trailing
// lanes beyond Dimension are zero.
const DPad = 4

// headerSize is the byte size of the five 32-bit header words.
const headerSize = 20

// characterInfoSize is the on-disk size of one CharacterInfo record.
const characterInfoSize = 8

// characterGroupSize is the on-disk size of one CharacterGroup record
// (8-byte aligned via an explicit trailing pad word).
const characterGroupSize = 16

// Header is the fixed five-word model file header.
type Header struct {
	Magic               uint32
	NCharacters         uint32
	NGroups             uint32
	Dimension           uint32
	DownsampleThreshold uint32
}

// CharacterInfo describes one template character: its unicode code point
// and the number of feature vectors (length) of its stroke data.
//
// Field order and width match the on-disk record exactly (8 bytes, no
// implicit padding), so a CharacterInfo array can be reinterpreted
// directly over mapped bytes.
type CharacterInfo struct {
	Unicode  uint32
	NVectors uint32
}

// CharacterGroup describes a contiguous run of templates sharing the
// same stroke count. Groups are sorted by NStrokes ascending; Offset is
// the byte offset from the start of the file where this group's stroke
// data begins.
//
// Field order and width match the on-disk record exactly (16 bytes),
// so a CharacterGroup array can be reinterpreted directly over mapped
// bytes. Pad exists only to keep the record 8-byte aligned on disk.
type CharacterGroup struct {
	NStrokes uint32
	NChars   uint32
	Offset   uint32
	Pad      uint32
}
