package rope

import (
	"io"
	"strings"
)

// Rope is an immutable rope. The zero value is not usable; construct with
// New, FromString, or FromReader. All offsets are rune offsets.
type Rope struct {
	root *node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeaf()}
}

// FromString creates a rope holding s.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	chunks := splitIntoChunks(s)

	var leaves []*node
	for i := 0; i < len(chunks); i += maxChunksPerLeaf {
		end := i + maxChunksPerLeaf
		if end > len(chunks) {
			end = len(chunks)
		}
		leaf := make([]chunk, end-i)
		copy(leaf, chunks[i:end])
		leaves = append(leaves, newLeafWith(leaf))
	}
	return Rope{root: buildFromNodes(leaves)}
}

// FromReader creates a rope from the full contents of r.
func FromReader(r io.Reader) (Rope, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Rope{}, err
	}
	return FromString(string(data)), nil
}

// Len returns the total number of runes.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.sum.chars
}

// LineCount returns the number of lines, which is always newlines + 1. An
// empty rope has one empty line.
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.sum.newlines + 1
}

// IsEmpty reports whether the rope holds no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String returns the full text. Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.root.sum.bytes)
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the rune range [start, end). Out-of-range
// bounds are clamped.
func (r Rope) Slice(start, end int) string {
	if r.root == nil || start >= end {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end > r.Len() {
		end = r.Len()
	}
	if start >= end {
		return ""
	}
	var sb strings.Builder
	r.root.appendCharRange(&sb, start, end)
	return sb.String()
}

// Insert inserts text at the given rune offset and returns the new rope.
// The offset must be in [0, Len()]; out-of-range offsets are clamped to
// the nearest end (callers wanting strict bounds check before calling).
func (r Rope) Insert(at int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.root == nil || r.Len() == 0 {
		return FromString(text)
	}
	if at <= 0 {
		return FromString(text).Concat(r)
	}
	if at >= r.Len() {
		return r.Concat(FromString(text))
	}
	left, right := r.Split(at)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete removes the rune range [start, end) and returns the new rope.
func (r Rope) Delete(start, end int) Rope {
	if r.root == nil || start >= end {
		return r
	}
	n := r.Len()
	if start < 0 {
		start = 0
	}
	if start >= n {
		return r
	}
	if end > n {
		end = n
	}
	if start == 0 && end == n {
		return New()
	}
	left, rest := r.Split(start)
	_, right := rest.Split(end - start)
	return left.Concat(right)
}

// Split splits the rope at a rune offset into [0, at) and [at, Len()).
func (r Rope) Split(at int) (Rope, Rope) {
	if r.root == nil || at <= 0 {
		return New(), r
	}
	if at >= r.Len() {
		return r, New()
	}
	left, right := r.root.splitAtChar(at)
	return Rope{root: left}, Rope{root: right}
}

// Concat appends the other rope and returns the result.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.Len() == 0 {
		return other
	}
	if other.root == nil || other.Len() == 0 {
		return r
	}
	return Rope{root: concatNodes(r.root, other.root)}
}

// CharToLine returns the line containing the rune at the given offset.
// An offset of Len() maps to the last line.
func (r Rope) CharToLine(charIdx int) int {
	if r.root == nil || charIdx <= 0 {
		return 0
	}
	return r.root.newlinesBeforeChar(charIdx)
}

// LineToChar returns the rune offset of the first character of the given
// line. Lines past the end map to Len().
func (r Rope) LineToChar(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line > r.root.sum.newlines {
		return r.Len()
	}
	return r.root.charStartOfLine(line)
}

// RuneAt returns the rune at the given offset.
func (r Rope) RuneAt(charIdx int) (rune, bool) {
	if r.root == nil {
		return 0, false
	}
	return r.root.runeAtChar(charIdx)
}

// Height returns the tree height. Useful for balance tests.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}
