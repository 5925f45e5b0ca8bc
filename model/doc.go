// Package model reads the on-disk character-model file: a memory-mapped,
// read-only binary layout of stroke-count groups, per-character metadata,
// and packed feature-vector matrices.
//
// The file layout (little-endian, 32-bit words unless noted) is:
//
//	offset 0   magic (uint32)           = Magic
//	offset 4   n_characters (uint32)
//	offset 8   n_groups (uint32)
//	offset 12  dimension (uint32)       = D
//	offset 16  downsample_threshold (uint32)
//	offset 20  CharacterInfo[n_characters]  {unicode:u32, n_vectors:u32}
//	...        CharacterGroup[n_groups]     {n_strokes:u32, n_chars:u32, offset:u32, pad:u32}
//	groups[0].offset  stroke data: n_vectors records of DPad=4 floats, per
//	                  character, in group order
//
// Reader maps the file once and exposes zero-copy typed views over the
// CharacterInfo array, the CharacterGroup array, and the stroke-data
// region; no bytes are copied out of the mapping except distances, which
// the recognizer computes and returns as plain values.
package model
