package huffman

// treeNode is a node of the decoding tree. Child index 0 means absent: the
// root is node 0 and is never anyone's child.
type treeNode struct {
	child [2]int32
	leaf  bool
	value uint8
}

type treeTable struct {
	base
	nodes []treeNode
}

func newTreeTable(def *Definition) Table {
	t := &treeTable{
		base:  base{def: def, impl: Tree},
		nodes: make([]treeNode, 1, 2*len(def.Values)+1),
	}
	for _, c := range def.Codes() {
		n := int32(0)
		for i := c.Len - 1; i >= 0; i-- {
			bit := (c.Code >> i) & 1
			next := t.nodes[n].child[bit]
			if next == 0 {
				next = int32(len(t.nodes))
				t.nodes = append(t.nodes, treeNode{})
				t.nodes[n].child[bit] = next
			}
			n = next
		}
		t.nodes[n].leaf = true
		t.nodes[n].value = c.Value
	}
	return t
}

func (t *treeTable) Decode(bits BitSource, fullDecode bool) (int, error) {
	var code uint32
	n := int32(0)
	for l := 1; l <= MaxCodeLength; l++ {
		bit, err := bits.GetBits(1)
		if err != nil {
			return 0, err
		}
		code = code<<1 | bit
		n = t.nodes[n].child[bit]
		if n == 0 {
			return 0, t.badCode(code, l)
		}
		if t.nodes[n].leaf {
			return t.finish(bits, t.nodes[n].value, fullDecode)
		}
	}
	// unreachable for validated definitions: every path ends in a leaf
	return 0, t.badCode(code, MaxCodeLength)
}
