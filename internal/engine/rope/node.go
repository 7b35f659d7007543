package rope

import (
	"strings"
	"unicode/utf8"
)

// Tree fan-out bounds.
const (
	minChildren      = 4
	maxChildren      = 8
	maxChunksPerLeaf = 4
)

// node is a rope tree node. Leaves (height 0) hold chunks; internal nodes
// hold children. The summary always covers the whole subtree.
type node struct {
	height   uint8
	sum      summary
	children []*node
	chunks   []chunk
}

func newLeaf() *node {
	return &node{height: 0}
}

func newLeafWith(chunks []chunk) *node {
	n := &node{height: 0, chunks: chunks}
	for _, c := range chunks {
		n.sum = n.sum.add(c.sum)
	}
	return n
}

func newInternal(children []*node) *node {
	if len(children) == 0 {
		return newLeaf()
	}
	n := &node{
		height:   children[0].height + 1,
		children: children,
	}
	for _, child := range children {
		n.sum = n.sum.add(child.sum)
	}
	return n
}

func (n *node) isLeaf() bool {
	return n.height == 0
}

func (n *node) clone() *node {
	if n.isLeaf() {
		chunks := make([]chunk, len(n.chunks))
		copy(chunks, n.chunks)
		return &node{height: 0, sum: n.sum, chunks: chunks}
	}
	children := make([]*node, len(n.children))
	copy(children, n.children)
	return &node{height: n.height, sum: n.sum, children: children}
}

func (n *node) appendTo(sb *strings.Builder) {
	if n.isLeaf() {
		for _, c := range n.chunks {
			sb.WriteString(c.text)
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendCharRange appends the text in the rune range [start, end) to sb.
// The range must already be clamped to the subtree.
func (n *node) appendCharRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}

	if n.isLeaf() {
		off := 0
		for _, c := range n.chunks {
			chunkEnd := off + c.sum.chars
			if chunkEnd <= start {
				off = chunkEnd
				continue
			}
			if off >= end {
				break
			}
			from := 0
			if start > off {
				from = start - off
			}
			to := c.sum.chars
			if end < chunkEnd {
				to = end - off
			}
			sb.WriteString(c.text[c.byteIndexOfChar(from):c.byteIndexOfChar(to)])
			off = chunkEnd
		}
		return
	}

	off := 0
	for _, child := range n.children {
		childEnd := off + child.sum.chars
		if childEnd <= start {
			off = childEnd
			continue
		}
		if off >= end {
			break
		}
		from := 0
		if start > off {
			from = start - off
		}
		to := child.sum.chars
		if end < childEnd {
			to = end - off
		}
		child.appendCharRange(sb, from, to)
		off = childEnd
	}
}

// splitAtChar splits the subtree at a rune offset. The left result holds
// runes [0, at) and the right holds [at, chars).
func (n *node) splitAtChar(at int) (*node, *node) {
	if at <= 0 {
		return newLeaf(), n.clone()
	}
	if at >= n.sum.chars {
		return n.clone(), newLeaf()
	}

	if n.isLeaf() {
		var left, right []chunk
		off := 0
		for _, c := range n.chunks {
			switch {
			case off+c.sum.chars <= at:
				left = append(left, c)
			case off >= at:
				right = append(right, c)
			default:
				l, r := c.splitAtChar(at - off)
				if !l.isEmpty() {
					left = append(left, l)
				}
				if !r.isEmpty() {
					right = append(right, r)
				}
			}
			off += c.sum.chars
		}
		return newLeafWith(left), newLeafWith(right)
	}

	var left, right []*node
	off := 0
	for _, child := range n.children {
		switch {
		case off+child.sum.chars <= at:
			left = append(left, child)
		case off >= at:
			right = append(right, child)
		default:
			l, r := child.splitAtChar(at - off)
			if l.sum.chars > 0 {
				left = append(left, l)
			}
			if r.sum.chars > 0 {
				right = append(right, r)
			}
		}
		off += child.sum.chars
	}
	return buildFromNodes(left), buildFromNodes(right)
}

// buildFromNodes assembles a balanced tree from nodes of equal height.
func buildFromNodes(nodes []*node) *node {
	if len(nodes) == 0 {
		return newLeaf()
	}
	if len(nodes) == 1 {
		return nodes[0]
	}
	for len(nodes) > maxChildren {
		var parents []*node
		for i := 0; i < len(nodes); i += maxChildren {
			end := i + maxChildren
			if end > len(nodes) {
				end = len(nodes)
			}
			group := make([]*node, end-i)
			copy(group, nodes[i:end])
			parents = append(parents, newInternal(group))
		}
		nodes = parents
	}
	return newInternal(nodes)
}

// concatNodes joins two subtrees, wrapping the shorter side until heights
// match, then merging at the shared level.
func concatNodes(left, right *node) *node {
	if left == nil || left.sum.chars == 0 {
		if right == nil {
			return newLeaf()
		}
		return right
	}
	if right == nil || right.sum.chars == 0 {
		return left
	}

	if left.isLeaf() && right.isLeaf() {
		return concatLeaves(left, right)
	}

	for left.height < right.height {
		left = newInternal([]*node{left})
	}
	for right.height < left.height {
		right = newInternal([]*node{right})
	}

	if left.isLeaf() {
		return concatLeaves(left, right)
	}
	merged := make([]*node, 0, len(left.children)+len(right.children))
	merged = append(merged, left.children...)
	merged = append(merged, right.children...)
	return buildFromNodes(merged)
}

func concatLeaves(left, right *node) *node {
	if len(left.chunks)+len(right.chunks) <= maxChunksPerLeaf {
		chunks := make([]chunk, 0, len(left.chunks)+len(right.chunks))
		chunks = append(chunks, left.chunks...)
		chunks = append(chunks, right.chunks...)
		return newLeafWith(chunks)
	}
	return newInternal([]*node{left.clone(), right.clone()})
}

// newlinesBeforeChar counts '\n' runes among the first charIdx runes.
func (n *node) newlinesBeforeChar(charIdx int) int {
	if charIdx <= 0 {
		return 0
	}
	if charIdx >= n.sum.chars {
		return n.sum.newlines
	}

	if n.isLeaf() {
		count := 0
		for _, c := range n.chunks {
			if charIdx >= c.sum.chars {
				count += c.sum.newlines
				charIdx -= c.sum.chars
				continue
			}
			count += strings.Count(c.text[:c.byteIndexOfChar(charIdx)], "\n")
			break
		}
		return count
	}

	count := 0
	for _, child := range n.children {
		if charIdx >= child.sum.chars {
			count += child.sum.newlines
			charIdx -= child.sum.chars
			continue
		}
		count += child.newlinesBeforeChar(charIdx)
		break
	}
	return count
}

// charStartOfLine returns the rune offset of the start of the given line.
// line must be in [0, n.sum.newlines]; line L starts just after the L-th
// newline.
func (n *node) charStartOfLine(line int) int {
	if line <= 0 {
		return 0
	}

	if n.isLeaf() {
		off := 0
		for _, c := range n.chunks {
			if line > c.sum.newlines {
				line -= c.sum.newlines
				off += c.sum.chars
				continue
			}
			// The line starts inside this chunk: scan for the line-th
			// newline and return the offset just past it.
			chars := 0
			for _, r := range c.text {
				chars++
				if r == '\n' {
					line--
					if line == 0 {
						return off + chars
					}
				}
			}
			break
		}
		return off
	}

	off := 0
	for _, child := range n.children {
		if line > child.sum.newlines {
			line -= child.sum.newlines
			off += child.sum.chars
			continue
		}
		return off + child.charStartOfLine(line)
	}
	return off
}

// runeAtChar returns the rune at the given offset within the subtree.
func (n *node) runeAtChar(charIdx int) (rune, bool) {
	if charIdx < 0 || charIdx >= n.sum.chars {
		return 0, false
	}
	for !n.isLeaf() {
		for _, child := range n.children {
			if charIdx < child.sum.chars {
				n = child
				break
			}
			charIdx -= child.sum.chars
		}
	}
	for _, c := range n.chunks {
		if charIdx < c.sum.chars {
			r, _ := utf8.DecodeRuneInString(c.text[c.byteIndexOfChar(charIdx):])
			return r, true
		}
		charIdx -= c.sum.chars
	}
	return 0, false
}
