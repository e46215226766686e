package bytestream

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/wippyai/huffdual/errors"
)

func TestCursor_GetByte(t *testing.T) {
	c := New([]byte{0x01, 0x02})

	for i, want := range []byte{0x01, 0x02} {
		got, err := c.GetByte()
		if err != nil {
			t.Fatalf("GetByte %d: %v", i, err)
		}
		if got != want {
			t.Errorf("GetByte %d = %#x, want %#x", i, got, want)
		}
	}

	_, err := c.GetByte()
	if !stderrors.Is(err, errors.ErrExhausted) {
		t.Fatalf("expected exhaustion, got %v", err)
	}
	if c.Position() != 2 {
		t.Errorf("failed read moved position to %d", c.Position())
	}
}

func TestCursor_GetBuffer(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	c := New(data)

	b, err := c.GetBuffer(3)
	if err != nil {
		t.Fatalf("GetBuffer: %v", err)
	}
	if !bytes.Equal(b, []byte{1, 2, 3}) {
		t.Errorf("GetBuffer = %v", b)
	}
	if c.Position() != 3 || c.Remaining() != 2 {
		t.Errorf("position %d remaining %d", c.Position(), c.Remaining())
	}

	if _, err := c.GetBuffer(3); errors.KindOf(err) != errors.KindExhausted {
		t.Fatalf("expected exhaustion, got %v", err)
	}
	if c.Position() != 3 {
		t.Errorf("failed read moved position to %d", c.Position())
	}

	// appending to the returned slice must not clobber the shared buffer
	_ = append(b, 0xFF)
	if data[3] != 4 {
		t.Error("GetBuffer result aliased beyond its length")
	}
}

func TestCursor_Fork(t *testing.T) {
	c0 := New([]byte{9, 8, 7})
	c1 := c0.Fork()

	if _, err := c0.GetByte(); err != nil {
		t.Fatal(err)
	}
	if c1.Position() != 0 {
		t.Errorf("fork shares position: %d", c1.Position())
	}
	if err := c1.SkipBytes(1); err != nil {
		t.Fatal(err)
	}
	if c0.Position() != c1.Position() {
		t.Errorf("positions diverged: %d vs %d", c0.Position(), c1.Position())
	}
}

func TestCursor_PeekAndRest(t *testing.T) {
	c := New([]byte{0xAA, 0xBB, 0xCC})
	if err := c.SkipBytes(1); err != nil {
		t.Fatal(err)
	}

	b, err := c.PeekByte(1)
	if err != nil || b != 0xCC {
		t.Fatalf("PeekByte(1) = %#x, %v", b, err)
	}
	if _, err := c.PeekByte(2); err == nil {
		t.Error("PeekByte past end should fail")
	}
	if !bytes.Equal(c.Rest(), []byte{0xBB, 0xCC}) {
		t.Errorf("Rest = %v", c.Rest())
	}
	if c.Position() != 1 {
		t.Errorf("peek moved position to %d", c.Position())
	}
}

func TestCursor_Check(t *testing.T) {
	c := New(make([]byte, 4))
	if err := c.Check(4); err != nil {
		t.Errorf("Check(4): %v", err)
	}
	if err := c.Check(5); err == nil {
		t.Error("Check(5) should fail")
	}
	if err := c.Check(-1); err == nil {
		t.Error("Check(-1) should fail")
	}
}
