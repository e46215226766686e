package bitpump

import (
	"fmt"

	"github.com/wippyai/huffdual/bytestream"
	"github.com/wippyai/huffdual/errors"
)

const (
	// Padding is the number of zero bytes a pump may consume past the end.
	Padding = 8

	// MaxBits is the widest single Peek or GetBits request.
	MaxBits = 32
)

type refillFunc func(p *Pump)

// Pump is a bit reader over a cursor. It is not safe for concurrent use.
type Pump struct {
	cur    *bytestream.Cursor
	refill refillFunc

	cache    uint64
	fill     int // valid bits at the bottom of cache
	consumed int
	dataBits int // bits of real (unstuffed) input pushed so far
	eof      bool
}

func newPump(cur *bytestream.Cursor, refill refillFunc) *Pump {
	return &Pump{cur: cur, refill: refill}
}

// Position returns how many bytes the pump has pulled from its cursor.
func (p *Pump) Position() int {
	return p.cur.Position()
}

// BitsConsumed returns the number of bits skipped so far.
func (p *Pump) BitsConsumed() int {
	return p.consumed
}

// Peek returns the next n bits without consuming them.
func (p *Pump) Peek(n int) (uint32, error) {
	if n < 0 || n > MaxBits {
		panic(fmt.Sprintf("bitpump: peek of %d bits", n))
	}
	if n == 0 {
		return 0, nil
	}
	for p.fill < n {
		p.refill(p)
	}
	if p.eof && p.consumed+n > p.limit() {
		return 0, errors.BitsExhausted(p.consumed, p.limit(), n)
	}
	return uint32(p.cache>>(p.fill-n)) & (1<<n - 1), nil
}

// Skip consumes n bits.
func (p *Pump) Skip(n int) error {
	if _, err := p.Peek(n); err != nil {
		return err
	}
	p.fill -= n
	p.consumed += n
	return nil
}

// GetBits reads and consumes n bits.
func (p *Pump) GetBits(n int) (uint32, error) {
	v, err := p.Peek(n)
	if err != nil {
		return 0, err
	}
	p.fill -= n
	p.consumed += n
	return v, nil
}

func (p *Pump) limit() int {
	return p.dataBits + Padding*8
}

func (p *Pump) push(b byte, data bool) {
	p.cache = p.cache<<8 | uint64(b)
	p.fill += 8
	if data {
		p.dataBits += 8
	}
}

// nextByte returns the next input byte, or a padding zero once the cursor is
// drained.
func (p *Pump) nextByte() (byte, bool) {
	if p.eof {
		return 0, false
	}
	b, err := p.cur.GetByte()
	if err != nil {
		p.eof = true
		return 0, false
	}
	return b, true
}

func refillMSB(p *Pump) {
	b, data := p.nextByte()
	p.push(b, data)
}

func refillMSB32(p *Pump) {
	for i := 0; i < 4; i++ {
		b, data := p.nextByte()
		p.push(b, data)
	}
}

func refillJPEG(p *Pump) {
	b, data := p.nextByte()
	if data && b == 0xFF {
		next, err := p.cur.PeekByte(0)
		if err == nil && next == 0x00 {
			_ = p.cur.SkipBytes(1)
		} else {
			// marker (or a dangling 0xFF): the entropy-coded segment ends here
			p.eof = true
			b, data = 0, false
		}
	}
	p.push(b, data)
}
