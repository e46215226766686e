// Package huffman parses canonical Huffman table definitions and provides
// three independent decoders for them.
//
// # Wire Format
//
// A table definition is read from a bytestream.Cursor:
//
//	[16]  number of codes of each length 1..16
//	[N]   code values in canonical order, N = sum of the counts
//	[1]   full-decode flag (non-zero = set)
//	[...] tag-specific flags (Baseline: legacy DNG 16-bit bug flag)
//
// Byte consumption depends only on this format, so every implementation
// reads exactly the same number of bytes and accepts or rejects exactly the
// same definitions.
//
// # Implementations
//
//	Tree    binary tree, walked one bit at a time
//	Vector  flat canonical code list, scanned linearly per code length
//	Lookup  11-bit peek table with a max-code fallback for long codes
//
// All three report a bad code at the same code length: the first length at
// which the bits read so far are neither a code nor the prefix of one.
//
// # Full Decode
//
// For tags that support it, full-decode mode treats the code value as a
// JPEG difference length L and returns the sign-extended L-bit difference
// that follows the code. L = 16 yields -32768 without reading further bits,
// except that tables with the DNG bug flag skip 16 bits first.
package huffman
