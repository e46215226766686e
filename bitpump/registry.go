package bitpump

import (
	"github.com/wippyai/huffdual/bytestream"
	"github.com/wippyai/huffdual/errors"
)

// Variant identifies a bit pump convention by its discriminator value.
type Variant uint8

const (
	MSB Variant = iota
	MSB32
	JPEG
)

type registration struct {
	name   string
	refill refillFunc
}

// registry is indexed by discriminator and never mutated.
var registry = [...]registration{
	MSB:   {name: "msb", refill: refillMSB},
	MSB32: {name: "msb32", refill: refillMSB32},
	JPEG:  {name: "jpeg", refill: refillJPEG},
}

// Lookup maps a discriminator byte to its registered variant.
func Lookup(disc byte) (Variant, error) {
	if int(disc) >= len(registry) {
		return 0, errors.UnknownPump(disc, len(registry))
	}
	return Variant(disc), nil
}

// ParseVariant maps a variant name to its variant.
func ParseVariant(name string) (Variant, error) {
	for i, r := range registry {
		if r.name == name {
			return Variant(i), nil
		}
	}
	return 0, errors.InvalidInput(errors.PhaseSelect, "unknown bit pump "+name)
}

// Variants returns every registered variant in discriminator order.
func Variants() []Variant {
	vs := make([]Variant, len(registry))
	for i := range registry {
		vs[i] = Variant(i)
	}
	return vs
}

func (v Variant) String() string {
	if int(v) < len(registry) {
		return registry[v].name
	}
	return "unknown"
}

// New creates a pump of this variant reading from cur.
func (v Variant) New(cur *bytestream.Cursor) *Pump {
	return newPump(cur, registry[v].refill)
}

// Select reads the discriminator from c0 and advances c1 past the same byte
// without inspecting it, keeping both cursors at the same offset.
func Select(c0, c1 *bytestream.Cursor) (Variant, error) {
	disc, err := c0.GetByte()
	if err != nil {
		return 0, err
	}
	if err := c1.SkipBytes(1); err != nil {
		return 0, err
	}
	return Lookup(disc)
}
