// Package bitpump extracts MSB-first bits from a byte cursor under one of three
// buffering conventions:
//
//	MSB    refills one byte at a time
//	MSB32  refills a 32-bit big-endian word at a time
//	JPEG   refills one byte at a time, removing 0xFF/0x00 byte stuffing and
//	       stopping at the first marker (0xFF followed by anything else)
//
// All three yield the same bit sequence for input without 0xFF bytes; they
// differ only in refill cadence and stuffing handling.
//
// Past the end of the data a pump supplies zero bits. At most Padding zero
// bytes may be consumed; any Peek or Skip reaching further fails with a
// KindExhausted error. The limit is counted in consumed bits, so it does not
// depend on how far ahead a variant has buffered.
//
// Variants are registered in a fixed table indexed by a one-byte
// discriminator:
//
//	v, err := bitpump.Lookup(disc) // 0 = MSB, 1 = MSB32, 2 = JPEG
//	p := v.New(cursor)
//	bits, err := p.GetBits(5)
package bitpump
