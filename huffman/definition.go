package huffman

import (
	"sort"

	"github.com/wippyai/huffdual/bytestream"
	"github.com/wippyai/huffdual/errors"
)

// Definition is a parsed table definition.
type Definition struct {
	Tag         Tag
	Counts      [MaxCodeLength]uint8 // Counts[i] is the number of codes of length i+1
	Values      []uint8
	FullDecode  bool
	FixDNGBug16 bool
}

// Code is one canonical code word.
type Code struct {
	Code  uint32
	Len   int
	Value uint8
}

// ReadDefinition parses a definition for tag from cur. On failure the cursor
// position is unspecified.
func ReadDefinition(cur *bytestream.Cursor, tag Tag) (*Definition, error) {
	counts, err := cur.GetBuffer(MaxCodeLength)
	if err != nil {
		return nil, errors.WrapConstruction(err, "read codes-per-length table")
	}

	d := &Definition{Tag: tag}
	copy(d.Counts[:], counts)
	if err := d.validateCounts(); err != nil {
		return nil, err
	}

	n := d.NumCodes()
	values, err := cur.GetBuffer(n)
	if err != nil {
		return nil, errors.WrapConstruction(err, "read code values")
	}
	d.Values = append([]uint8(nil), values...)
	if err := d.validateValues(); err != nil {
		return nil, err
	}

	full, err := cur.GetByte()
	if err != nil {
		return nil, errors.WrapConstruction(err, "read full-decode flag")
	}
	d.FullDecode = full != 0 && tag.SupportsFullDecode

	if tag.HasDNGBugFlag {
		fix, err := cur.GetByte()
		if err != nil {
			return nil, errors.WrapConstruction(err, "read DNG bug flag")
		}
		d.FixDNGBug16 = fix != 0
	}

	return d, nil
}

// FromLengths builds a definition from per-symbol code lengths. Symbols are
// ordered by length, ties keep their input order.
func FromLengths(tag Tag, values []uint8, lengths []int) (*Definition, error) {
	if len(values) != len(lengths) {
		return nil, errors.Construction("%d values for %d lengths", len(values), len(lengths))
	}
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return lengths[idx[a]] < lengths[idx[b]] })

	d := &Definition{Tag: tag, Values: make([]uint8, 0, len(values))}
	for _, i := range idx {
		l := lengths[i]
		if l < 1 || l > MaxCodeLength {
			return nil, errors.Construction("code length %d out of range", l)
		}
		if d.Counts[l-1] == 0xFF {
			return nil, errors.Construction("too many codes of length %d", l)
		}
		d.Counts[l-1]++
		d.Values = append(d.Values, values[i])
	}
	if err := d.validateCounts(); err != nil {
		return nil, err
	}
	if err := d.validateValues(); err != nil {
		return nil, err
	}
	return d, nil
}

// NumCodes returns the total number of codes.
func (d *Definition) NumCodes() int {
	n := 0
	for _, c := range d.Counts {
		n += int(c)
	}
	return n
}

// WireSize returns the number of bytes the definition occupies on the wire.
func (d *Definition) WireSize() int {
	return d.Tag.MinSize(d.NumCodes())
}

// AppendWire appends the wire form of d to dst.
func (d *Definition) AppendWire(dst []byte) []byte {
	dst = append(dst, d.Counts[:]...)
	dst = append(dst, d.Values...)
	dst = append(dst, boolByte(d.FullDecode))
	if d.Tag.HasDNGBugFlag {
		dst = append(dst, boolByte(d.FixDNGBug16))
	}
	return dst
}

// Codes returns the canonical code words in ascending length order.
func (d *Definition) Codes() []Code {
	codes := make([]Code, 0, len(d.Values))
	var code uint32
	k := 0
	for l := 1; l <= MaxCodeLength; l++ {
		for i := 0; i < int(d.Counts[l-1]); i++ {
			codes = append(codes, Code{Code: code, Len: l, Value: d.Values[k]})
			code++
			k++
		}
		code <<= 1
	}
	return codes
}

// MaxLen returns the longest code length in use, or 0 for an empty table.
func (d *Definition) MaxLen() int {
	for l := MaxCodeLength; l > 0; l-- {
		if d.Counts[l-1] != 0 {
			return l
		}
	}
	return 0
}

func (d *Definition) validateCounts() error {
	total := d.NumCodes()
	if total > d.Tag.MaxCodesCount {
		return errors.New(errors.PhaseConstruct, errors.KindConstruction).
			Value(total).
			Detail("%d codes exceed the maximum of %d", total, d.Tag.MaxCodesCount).
			Build()
	}

	// unused code words of the current length
	avail := 2
	for l := 1; l <= MaxCodeLength; l++ {
		n := int(d.Counts[l-1])
		if n > avail {
			return errors.Construction("can never have %d codes of length %d", n, l)
		}
		avail = (avail - n) * 2
	}
	return nil
}

func (d *Definition) validateValues() error {
	for i, v := range d.Values {
		if int(v) > d.Tag.MaxCodeValue {
			return errors.New(errors.PhaseConstruct, errors.KindConstruction).
				Value(v).
				Detail("code value %d at index %d exceeds %d", v, i, d.Tag.MaxCodeValue).
				Build()
		}
	}
	return nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
