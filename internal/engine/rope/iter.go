package rope

import "unicode/utf8"

// iterFrame tracks a position in the tree walk.
type iterFrame struct {
	node *node
	idx  int // next child (internal) or chunk (leaf) to visit
}

// RuneIterator walks the rope's runes in order from a starting offset.
//
//	it := r.Runes(0)
//	for ch, ok := it.Next(); ok; ch, ok = it.Next() { ... }
type RuneIterator struct {
	stack []iterFrame
	text  string // remaining bytes of the current chunk
}

// Runes returns an iterator positioned at the given rune offset.
// Offsets at or past Len() yield an exhausted iterator.
func (r Rope) Runes(from int) *RuneIterator {
	it := &RuneIterator{stack: make([]iterFrame, 0, 8)}
	if r.root == nil || from >= r.Len() {
		return it
	}
	if from < 0 {
		from = 0
	}
	it.descend(r.root, from)
	return it
}

// descend positions the iterator at the chunk containing offset, pushing
// the path onto the stack so iteration can resume past each subtree.
func (it *RuneIterator) descend(n *node, offset int) {
	for !n.isLeaf() {
		for i, child := range n.children {
			if offset < child.sum.chars {
				it.stack = append(it.stack, iterFrame{node: n, idx: i + 1})
				n = child
				break
			}
			offset -= child.sum.chars
		}
	}
	for i, c := range n.chunks {
		if offset < c.sum.chars {
			it.stack = append(it.stack, iterFrame{node: n, idx: i + 1})
			it.text = c.text[c.byteIndexOfChar(offset):]
			return
		}
		offset -= c.sum.chars
	}
}

// Next returns the next rune, or false when the rope is exhausted.
func (it *RuneIterator) Next() (rune, bool) {
	for len(it.text) == 0 {
		if !it.advanceChunk() {
			return 0, false
		}
	}
	r, size := utf8.DecodeRuneInString(it.text)
	it.text = it.text[size:]
	return r, true
}

// advanceChunk moves to the next chunk in tree order.
func (it *RuneIterator) advanceChunk() bool {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.node.isLeaf() {
			if top.idx < len(top.node.chunks) {
				it.text = top.node.chunks[top.idx].text
				top.idx++
				return true
			}
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		if top.idx < len(top.node.children) {
			child := top.node.children[top.idx]
			top.idx++
			it.stack = append(it.stack, iterFrame{node: child})
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	return false
}
