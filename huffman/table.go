package huffman

import (
	"github.com/wippyai/huffdual/bytestream"
	"github.com/wippyai/huffdual/errors"
)

// BitSource is the bit reader a table decodes from. bitpump.Pump implements it.
type BitSource interface {
	Peek(n int) (uint32, error)
	Skip(n int) error
	GetBits(n int) (uint32, error)
}

// Table is a constructed, immutable decoding table.
type Table interface {
	// Impl reports which implementation built the table.
	Impl() Impl

	// IsFullDecode reports the full-decode flag of the definition.
	IsFullDecode() bool

	// NumCodes returns the number of codes in the definition.
	NumCodes() int

	// Decode reads one symbol. In full-decode mode it returns the
	// sign-extended difference instead of the code value.
	Decode(bits BitSource, fullDecode bool) (int, error)
}

// Impl identifies a table implementation.
type Impl uint8

const (
	Tree Impl = iota
	Vector
	Lookup
)

var implNames = [...]string{
	Tree:   "tree",
	Vector: "vector",
	Lookup: "lookup",
}

var builders = [...]func(*Definition) Table{
	Tree:   newTreeTable,
	Vector: newVectorTable,
	Lookup: newLookupTable,
}

// Impls returns every implementation.
func Impls() []Impl {
	out := make([]Impl, len(implNames))
	for i := range implNames {
		out[i] = Impl(i)
	}
	return out
}

// ParseImpl maps an implementation name to its Impl.
func ParseImpl(name string) (Impl, error) {
	for i, n := range implNames {
		if n == name {
			return Impl(i), nil
		}
	}
	return 0, errors.InvalidInput(errors.PhaseConfig, "unknown table implementation "+name)
}

func (i Impl) String() string {
	if int(i) < len(implNames) {
		return implNames[i]
	}
	return "unknown"
}

// New parses a definition for tag from cur and builds the table with this
// implementation.
func (i Impl) New(tag Tag, cur *bytestream.Cursor) (Table, error) {
	def, err := ReadDefinition(cur, tag)
	if err != nil {
		return nil, err
	}
	return i.Build(def), nil
}

// Build creates the table for an already parsed definition.
func (i Impl) Build(def *Definition) Table {
	return builders[i](def)
}

// base holds what every implementation shares: the definition and the
// difference post-processing of full-decode mode.
type base struct {
	def  *Definition
	impl Impl
}

func (b *base) Impl() Impl {
	return b.impl
}

func (b *base) IsFullDecode() bool {
	return b.def.FullDecode
}

func (b *base) NumCodes() int {
	return b.def.NumCodes()
}

func (b *base) badCode(code uint32, length int) error {
	return errors.BadCode(b.impl.String(), code, length)
}

// finish turns a decoded code value into the result for the given mode.
func (b *base) finish(bits BitSource, value uint8, fullDecode bool) (int, error) {
	if !fullDecode || !b.def.Tag.SupportsFullDecode {
		return int(value), nil
	}

	l := int(value)
	switch l {
	case 0:
		return 0, nil
	case 16:
		if b.def.FixDNGBug16 {
			if err := bits.Skip(16); err != nil {
				return 0, err
			}
		}
		return -32768, nil
	}

	diff, err := bits.GetBits(l)
	if err != nil {
		return 0, err
	}
	return extend(diff, l), nil
}

// extend sign-extends an l-bit JPEG difference.
func extend(diff uint32, l int) int {
	if diff&(1<<(l-1)) == 0 {
		return int(diff) - (1<<l - 1)
	}
	return int(diff)
}
