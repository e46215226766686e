package huffman

import (
	"github.com/wippyai/huffdual/errors"
)

// lookupDepth is the number of bits the fast path peeks at once.
const lookupDepth = 11

type entryKind uint8

const (
	entryLong entryKind = iota // prefix of a code longer than lookupDepth
	entryCode                  // complete code of len bits
	entryBad                   // no code, detected after len bits
)

type lutEntry struct {
	kind  entryKind
	len   uint8
	value uint8
}

// lookupTable follows the classic JPEG decoder layout: per-length min/max
// codes and value pointers, with a flat table in front for short codes.
type lookupTable struct {
	base
	lut       [1 << lookupDepth]lutEntry
	minCode   [MaxCodeLength + 1]int32
	maxCode   [MaxCodeLength + 1]int32 // -1 if no code has this length
	valPtr    [MaxCodeLength + 1]int
	maxPrefix [MaxCodeLength + 1]int64 // largest viable prefix, -1 if none
}

func newLookupTable(def *Definition) Table {
	t := &lookupTable{base: base{def: def, impl: Lookup}}

	var code int32
	k := 0
	for l := 1; l <= MaxCodeLength; l++ {
		n := int(def.Counts[l-1])
		if n == 0 {
			t.maxCode[l] = -1
		} else {
			t.valPtr[l] = k
			t.minCode[l] = code
			t.maxCode[l] = code + int32(n) - 1
		}
		code += int32(n)
		k += n
		code <<= 1
	}

	for l := range t.maxPrefix {
		t.maxPrefix[l] = -1
	}
	if maxLen := def.MaxLen(); maxLen > 0 {
		last := int64(t.maxCode[maxLen])
		for l := 1; l <= maxLen; l++ {
			t.maxPrefix[l] = last >> (maxLen - l)
		}
	}

	for p := range t.lut {
		t.lut[p] = t.classify(uint32(p))
	}
	return t
}

func (t *lookupTable) classify(p uint32) lutEntry {
	for l := 1; l <= lookupDepth; l++ {
		code := p >> (lookupDepth - l)
		if v, ok := t.match(code, l); ok {
			return lutEntry{kind: entryCode, len: uint8(l), value: v}
		}
		if int64(code) > t.maxPrefix[l] {
			return lutEntry{kind: entryBad, len: uint8(l)}
		}
	}
	return lutEntry{kind: entryLong}
}

func (t *lookupTable) match(code uint32, l int) (uint8, bool) {
	if t.maxCode[l] < 0 || int32(code) < t.minCode[l] || int32(code) > t.maxCode[l] {
		return 0, false
	}
	return t.def.Values[t.valPtr[l]+int(int32(code)-t.minCode[l])], true
}

func (t *lookupTable) Decode(bits BitSource, fullDecode bool) (int, error) {
	p, err := bits.Peek(lookupDepth)
	if err != nil {
		if errors.KindOf(err) != errors.KindExhausted {
			return 0, err
		}
		// too close to the end for a full window
		return t.decodeSlow(bits, 0, 0, fullDecode)
	}

	e := t.lut[p]
	switch e.kind {
	case entryBad:
		return 0, t.badCode(p>>(lookupDepth-int(e.len)), int(e.len))
	case entryLong:
		if err := bits.Skip(lookupDepth); err != nil {
			return 0, err
		}
		return t.decodeSlow(bits, p, lookupDepth, fullDecode)
	}

	// code and difference both inside the window
	if fullDecode && t.def.Tag.SupportsFullDecode {
		l := int(e.value)
		if l != 16 && int(e.len)+l <= lookupDepth {
			diff := p >> (lookupDepth - int(e.len) - l) & (1<<l - 1)
			if err := bits.Skip(int(e.len) + l); err != nil {
				return 0, err
			}
			if l == 0 {
				return 0, nil
			}
			return extend(diff, l), nil
		}
	}

	if err := bits.Skip(int(e.len)); err != nil {
		return 0, err
	}
	return t.finish(bits, e.value, fullDecode)
}

func (t *lookupTable) decodeSlow(bits BitSource, code uint32, l int, fullDecode bool) (int, error) {
	for l < MaxCodeLength {
		bit, err := bits.GetBits(1)
		if err != nil {
			return 0, err
		}
		code = code<<1 | bit
		l++
		if v, ok := t.match(code, l); ok {
			return t.finish(bits, v, fullDecode)
		}
		if int64(code) > t.maxPrefix[l] {
			return 0, t.badCode(code, l)
		}
	}
	return 0, t.badCode(code, MaxCodeLength)
}
