package bitpump

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/wippyai/huffdual/bytestream"
	"github.com/wippyai/huffdual/errors"
)

func TestLookup(t *testing.T) {
	for disc, want := range []Variant{MSB, MSB32, JPEG} {
		got, err := Lookup(byte(disc))
		if err != nil {
			t.Fatalf("Lookup(%d): %v", disc, err)
		}
		if got != want {
			t.Errorf("Lookup(%d) = %s, want %s", disc, got, want)
		}
	}
	for _, disc := range []byte{3, 4, 0x80, 0xFF} {
		if _, err := Lookup(disc); !stderrors.Is(err, errors.ErrUnknownPump) {
			t.Errorf("Lookup(%d): expected unknown pump, got %v", disc, err)
		}
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, err)
		}
	}
	if _, err := ParseVariant("lsb"); err == nil {
		t.Error("ParseVariant(lsb) should fail")
	}
	if Variant(9).String() != "unknown" {
		t.Errorf("Variant(9).String() = %q", Variant(9).String())
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		want     Variant
		wantKind errors.Kind
	}{
		{"msb", []byte{0, 0xAA}, MSB, errors.KindNone},
		{"msb32", []byte{1}, MSB32, errors.KindNone},
		{"jpeg", []byte{2, 0xFF}, JPEG, errors.KindNone},
		{"unknown", []byte{3, 0}, 0, errors.KindUnknownPump},
		{"missing", nil, 0, errors.KindExhausted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c0 := bytestream.New(tt.data)
			c1 := c0.Fork()
			got, err := Select(c0, c1)
			if errors.KindOf(err) != tt.wantKind {
				t.Fatalf("Select error = %v, want kind %q", err, tt.wantKind)
			}
			if err == nil && got != tt.want {
				t.Errorf("Select = %s, want %s", got, tt.want)
			}
			if c0.Position() != c1.Position() {
				t.Errorf("cursors out of sync: %d vs %d", c0.Position(), c1.Position())
			}
		})
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			w := NewWriter(v)
			w.WriteBits(0x1, 1)
			w.WriteBits(0x7F, 7)
			w.WriteBits(0xFF, 8)
			w.WriteBits(0x2AB, 10)
			out := w.Bytes()

			if v == JPEG && !bytes.Contains(out, []byte{0xFF, 0x00}) {
				t.Errorf("jpeg output not stuffed: %x", out)
			}

			p := v.New(bytestream.New(out))
			for _, want := range []struct {
				v uint32
				n int
			}{{0x1, 1}, {0x7F, 7}, {0xFF, 8}, {0x2AB, 10}} {
				got, err := p.GetBits(want.n)
				if err != nil {
					t.Fatal(err)
				}
				if got != want.v {
					t.Errorf("GetBits(%d) = %#x, want %#x", want.n, got, want.v)
				}
			}
		})
	}
}
