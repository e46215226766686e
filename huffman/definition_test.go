package huffman

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/huffdual/bytestream"
	"github.com/wippyai/huffdual/errors"
)

// jpegDCLuminance is the standard JPEG luminance DC table (ITU T.81 K.3).
var jpegDCLuminance = []byte{
	0, 1, 5, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11,
}

func wire(counts map[int]int, values []byte, flags ...byte) []byte {
	out := make([]byte, MaxCodeLength)
	for l, n := range counts {
		out[l-1] = byte(n)
	}
	out = append(out, values...)
	return append(out, flags...)
}

func TestReadDefinition(t *testing.T) {
	tests := []struct {
		name     string
		tag      Tag
		data     []byte
		wantKind errors.Kind
		wantPos  int
	}{
		{"jpeg dc table", Baseline, append(append([]byte{}, jpegDCLuminance...), 1, 0), errors.KindNone, 30},
		{"empty histogram", Baseline, wire(nil, nil, 0, 0), errors.KindNone, 18},
		{"short histogram", Baseline, make([]byte, 15), errors.KindConstruction, 0},
		{"missing values", Baseline, wire(map[int]int{2: 3}, []byte{1, 2}), errors.KindConstruction, 0},
		{"missing full flag", Baseline, wire(map[int]int{1: 1}, []byte{1}), errors.KindConstruction, 0},
		{"missing dng flag", Baseline, wire(map[int]int{1: 1}, []byte{1}, 1), errors.KindConstruction, 0},
		{"three 1-bit codes", Baseline, wire(map[int]int{1: 3}, []byte{1, 2, 3}, 0, 0), errors.KindConstruction, 0},
		{"oversubscribed later", Baseline, wire(map[int]int{1: 1, 2: 2, 3: 1}, []byte{1, 2, 3, 4}, 0, 0), errors.KindConstruction, 0},
		{"too many codes", Baseline, wire(map[int]int{8: 163}, make([]byte, 163), 0, 0), errors.KindConstruction, 0},
		{"value above 16", Baseline, wire(map[int]int{1: 1}, []byte{17}, 0, 0), errors.KindConstruction, 0},
		{"symbol8 byte value", Symbol8, wire(map[int]int{1: 1}, []byte{0x2A}, 1), errors.KindNone, 18},
		{"symbol8 too many codes", Symbol8, wire(map[int]int{8: 255, 9: 2}, make([]byte, 257), 0), errors.KindConstruction, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := bytestream.New(tt.data)
			_, err := ReadDefinition(cur, tt.tag)
			if got := errors.KindOf(err); got != tt.wantKind {
				t.Fatalf("ReadDefinition error = %v, want kind %q", err, tt.wantKind)
			}
			if err == nil && cur.Position() != tt.wantPos {
				t.Errorf("Position = %d, want %d", cur.Position(), tt.wantPos)
			}
		})
	}
}

func TestReadDefinition_Flags(t *testing.T) {
	def, err := ReadDefinition(bytestream.New(wire(map[int]int{1: 1}, []byte{16}, 1, 7)), Baseline)
	if err != nil {
		t.Fatal(err)
	}
	if !def.FullDecode || !def.FixDNGBug16 {
		t.Errorf("flags = %v/%v, want both set", def.FullDecode, def.FixDNGBug16)
	}

	def, err = ReadDefinition(bytestream.New(wire(map[int]int{1: 1}, []byte{0x2A}, 1)), Symbol8)
	if err != nil {
		t.Fatal(err)
	}
	if def.FullDecode {
		t.Error("symbol8 does not support full decode")
	}
}

func TestDefinition_Codes(t *testing.T) {
	def, err := ReadDefinition(bytestream.New(append(append([]byte{}, jpegDCLuminance...), 0, 0)), Baseline)
	if err != nil {
		t.Fatal(err)
	}

	want := []Code{
		{0b00, 2, 0},
		{0b010, 3, 1},
		{0b011, 3, 2},
		{0b100, 3, 3},
		{0b101, 3, 4},
		{0b110, 3, 5},
		{0b1110, 4, 6},
		{0b11110, 5, 7},
		{0b111110, 6, 8},
		{0b1111110, 7, 9},
		{0b11111110, 8, 10},
		{0b111111110, 9, 11},
	}
	if diff := cmp.Diff(want, def.Codes()); diff != "" {
		t.Errorf("Codes mismatch (-want +got):\n%s", diff)
	}
	if def.MaxLen() != 9 {
		t.Errorf("MaxLen = %d", def.MaxLen())
	}
	if def.WireSize() != len(jpegDCLuminance)+2 {
		t.Errorf("WireSize = %d", def.WireSize())
	}
}

func TestDefinition_AppendWire(t *testing.T) {
	data := append(append([]byte{}, jpegDCLuminance...), 1, 1)
	def, err := ReadDefinition(bytestream.New(data), Baseline)
	if err != nil {
		t.Fatal(err)
	}
	if got := def.AppendWire(nil); !bytes.Equal(got, data) {
		t.Errorf("AppendWire = %x, want %x", got, data)
	}
}

func TestFromLengths(t *testing.T) {
	def, err := FromLengths(Symbol8, []uint8{'a', 'b', 'c', 'd'}, []int{3, 1, 3, 2})
	if err != nil {
		t.Fatal(err)
	}
	want := []Code{
		{0b0, 1, 'b'},
		{0b10, 2, 'd'},
		{0b110, 3, 'a'},
		{0b111, 3, 'c'},
	}
	if diff := cmp.Diff(want, def.Codes()); diff != "" {
		t.Errorf("Codes mismatch (-want +got):\n%s", diff)
	}

	if _, err := FromLengths(Symbol8, []uint8{1, 2, 3}, []int{1, 1, 1}); errors.KindOf(err) != errors.KindConstruction {
		t.Errorf("oversubscribed lengths: %v", err)
	}
	if _, err := FromLengths(Symbol8, []uint8{1}, []int{17}); err == nil {
		t.Error("length 17 accepted")
	}
	if _, err := FromLengths(Baseline, []uint8{20}, []int{1}); err == nil {
		t.Error("baseline value 20 accepted")
	}
}

func TestParseTag(t *testing.T) {
	for _, tag := range Tags() {
		got, err := ParseTag(tag.Name)
		if err != nil || got != tag {
			t.Errorf("ParseTag(%q) = %v, %v", tag.Name, got, err)
		}
	}
	if _, err := ParseTag("vc5"); errors.KindOf(err) != errors.KindInvalidInput {
		t.Errorf("ParseTag(vc5): %v", err)
	}
	if Baseline.MinSize(1) != 19 || Symbol8.MinSize(1) != 18 {
		t.Errorf("MinSize = %d/%d", Baseline.MinSize(1), Symbol8.MinSize(1))
	}
}
