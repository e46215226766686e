package bitpump

// Writer accumulates MSB-first bits into bytes. With Stuff set, every 0xFF
// output byte is followed by a 0x00 so a JPEG pump reads it back unchanged.
type Writer struct {
	buf   []byte
	acc   uint64
	n     int
	Stuff bool
}

// NewWriter returns a writer producing input for variant v.
func NewWriter(v Variant) *Writer {
	return &Writer{Stuff: v == JPEG}
}

// WriteBits appends the low n bits of v, most significant first.
func (w *Writer) WriteBits(v uint32, n int) {
	for n > 0 {
		take := n
		if take > 8 {
			take = 8
		}
		n -= take
		w.acc = w.acc<<take | uint64(v>>n)&(1<<take-1)
		w.n += take
		for w.n >= 8 {
			w.n -= 8
			w.emit(byte(w.acc >> w.n))
		}
	}
}

// Bytes flushes a partial byte, padded with zero bits, and returns the output.
func (w *Writer) Bytes() []byte {
	if w.n > 0 {
		w.emit(byte(w.acc << (8 - w.n)))
		w.n = 0
	}
	return w.buf
}

func (w *Writer) emit(b byte) {
	w.buf = append(w.buf, b)
	if w.Stuff && b == 0xFF {
		w.buf = append(w.buf, 0x00)
	}
}
