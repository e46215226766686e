package huffman

type vectorTable struct {
	base
	codes []Code
}

func newVectorTable(def *Definition) Table {
	return &vectorTable{
		base:  base{def: def, impl: Vector},
		codes: def.Codes(),
	}
}

func (t *vectorTable) Decode(bits BitSource, fullDecode bool) (int, error) {
	var code uint32
	for l := 1; l <= MaxCodeLength; l++ {
		bit, err := bits.GetBits(1)
		if err != nil {
			return 0, err
		}
		code = code<<1 | bit

		viable := false
		for _, c := range t.codes {
			switch {
			case c.Len == l && c.Code == code:
				return t.finish(bits, c.Value, fullDecode)
			case c.Len > l && c.Code>>(c.Len-l) == code:
				viable = true
			}
		}
		if !viable {
			return 0, t.badCode(code, l)
		}
	}
	return 0, t.badCode(code, MaxCodeLength)
}
