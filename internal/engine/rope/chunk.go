package rope

import (
	"strings"
	"unicode/utf8"
)

// Chunk size bounds, in bytes. The last chunk of a leaf may be smaller
// than minChunkBytes.
const (
	minChunkBytes    = 128
	maxChunkBytes    = 256
	targetChunkBytes = (minChunkBytes + maxChunkBytes) / 2
)

// summary holds aggregated metrics for a span of text. It forms a monoid
// under add, which is how internal nodes derive their metrics from
// children when ropes are split and concatenated.
type summary struct {
	bytes    int // UTF-8 byte count
	chars    int // rune count
	newlines int // count of '\n'
}

func (s summary) add(other summary) summary {
	return summary{
		bytes:    s.bytes + other.bytes,
		chars:    s.chars + other.chars,
		newlines: s.newlines + other.newlines,
	}
}

func summarize(s string) summary {
	return summary{
		bytes:    len(s),
		chars:    utf8.RuneCountInString(s),
		newlines: strings.Count(s, "\n"),
	}
}

// chunk is a bounded, immutable run of text stored in a leaf node.
type chunk struct {
	text string
	sum  summary
}

func newChunk(s string) chunk {
	return chunk{text: s, sum: summarize(s)}
}

func (c chunk) isEmpty() bool {
	return len(c.text) == 0
}

// byteIndexOfChar converts a rune offset within the chunk to a byte
// offset. charIdx must be in [0, c.sum.chars].
func (c chunk) byteIndexOfChar(charIdx int) int {
	if charIdx >= c.sum.chars {
		return len(c.text)
	}
	// ASCII fast path: byte offset equals rune offset.
	if c.sum.bytes == c.sum.chars {
		return charIdx
	}
	b := 0
	for i := 0; i < charIdx; i++ {
		_, size := utf8.DecodeRuneInString(c.text[b:])
		b += size
	}
	return b
}

// splitAtChar splits the chunk at a rune offset.
func (c chunk) splitAtChar(charIdx int) (chunk, chunk) {
	if charIdx <= 0 {
		return chunk{}, c
	}
	if charIdx >= c.sum.chars {
		return c, chunk{}
	}
	b := c.byteIndexOfChar(charIdx)
	return newChunk(c.text[:b]), newChunk(c.text[b:])
}

// splitIntoChunks cuts a string into chunks near targetChunkBytes, always
// on rune boundaries.
func splitIntoChunks(s string) []chunk {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= maxChunkBytes {
		return []chunk{newChunk(s)}
	}

	var chunks []chunk
	for len(s) > 0 {
		if len(s) <= maxChunkBytes {
			chunks = append(chunks, newChunk(s))
			break
		}
		cut := runeBoundary(s, targetChunkBytes)
		chunks = append(chunks, newChunk(s[:cut]))
		s = s[cut:]
	}
	return chunks
}

// runeBoundary returns the nearest rune boundary at or after target.
func runeBoundary(s string, target int) int {
	if target >= len(s) {
		return len(s)
	}
	for target < len(s) && !utf8.RuneStart(s[target]) {
		target++
	}
	return target
}
