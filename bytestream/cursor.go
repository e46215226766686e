package bytestream

import (
	"github.com/wippyai/huffdual/errors"
)

// Cursor reads forward through a shared buffer with position tracking.
type Cursor struct {
	buf []byte
	pos int
}

// New creates a Cursor at offset 0 over buf. The buffer must not be modified
// while any cursor over it is in use.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Fork returns an independent cursor over the same buffer at the same offset.
func (c *Cursor) Fork() *Cursor {
	return &Cursor{buf: c.buf, pos: c.pos}
}

// Position returns the current byte position.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Check reports whether at least n bytes remain.
func (c *Cursor) Check(n int) error {
	if n < 0 || c.Remaining() < n {
		return errors.Exhausted(errors.PhaseRead, c.pos, n-c.Remaining())
	}
	return nil
}

// GetByte reads a single byte and advances the position.
func (c *Cursor) GetByte() (byte, error) {
	if err := c.Check(1); err != nil {
		return 0, err
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// PeekByte returns the byte at offset n past the position without advancing.
func (c *Cursor) PeekByte(n int) (byte, error) {
	if err := c.Check(n + 1); err != nil {
		return 0, err
	}
	return c.buf[c.pos+n], nil
}

// GetBuffer returns the next n bytes and advances past them. The returned
// slice aliases the shared buffer and must be treated as read-only.
func (c *Cursor) GetBuffer(n int) ([]byte, error) {
	if err := c.Check(n); err != nil {
		return nil, err
	}
	b := c.buf[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

// SkipBytes advances the position by n bytes.
func (c *Cursor) SkipBytes(n int) error {
	if err := c.Check(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// Rest returns the unread bytes without advancing.
func (c *Cursor) Rest() []byte {
	return c.buf[c.pos:len(c.buf):len(c.buf)]
}
