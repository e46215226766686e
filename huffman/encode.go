package huffman

import (
	"math/bits"

	"github.com/wippyai/huffdual/bitpump"
	"github.com/wippyai/huffdual/errors"
)

// Encoder writes symbols of a definition as canonical codes. It is used to
// build seed inputs and test payloads.
type Encoder struct {
	def     *Definition
	byValue map[uint8]Code
}

// NewEncoder creates an encoder for def. When a value occurs more than once
// the first (shortest) code is used.
func NewEncoder(def *Definition) *Encoder {
	e := &Encoder{def: def, byValue: make(map[uint8]Code, len(def.Values))}
	for _, c := range def.Codes() {
		if _, ok := e.byValue[c.Value]; !ok {
			e.byValue[c.Value] = c
		}
	}
	return e
}

// Symbol writes the code for value.
func (e *Encoder) Symbol(w *bitpump.Writer, value uint8) error {
	c, ok := e.byValue[value]
	if !ok {
		return errors.InvalidInput(errors.PhaseEncode, "no code for value")
	}
	w.WriteBits(c.Code, c.Len)
	return nil
}

// Diff writes a full-decode difference: the code of its bit length followed
// by the difference bits. -32768 is written as length 16 with no extra bits
// (16 zero bits when the DNG bug flag is set).
func (e *Encoder) Diff(w *bitpump.Writer, diff int) error {
	if diff == -32768 {
		if err := e.Symbol(w, 16); err != nil {
			return err
		}
		if e.def.FixDNGBug16 {
			w.WriteBits(0, 16)
		}
		return nil
	}

	mag := diff
	if mag < 0 {
		mag = -mag
	}
	l := bits.Len(uint(mag))
	if l > 15 {
		return errors.InvalidInput(errors.PhaseEncode, "difference out of range")
	}
	if err := e.Symbol(w, uint8(l)); err != nil {
		return err
	}
	if l == 0 {
		return nil
	}
	v := diff
	if v < 0 {
		v += 1<<l - 1
	}
	w.WriteBits(uint32(v), l)
	return nil
}
