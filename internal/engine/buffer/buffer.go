package buffer

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/kite/internal/engine/rope"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrNotUTF8          = errors.New("file is not valid UTF-8")
	ErrNoPath           = errors.New("buffer has no source path")
)

// Buffer owns the mutable text content for one document.
// It is confined to a single goroutine; see the package comment for the
// re-entrancy guard semantics.
type Buffer struct {
	id      uuid.UUID
	rope    rope.Rope
	path    string // empty for unsaved buffers
	dirty   bool
	editing atomic.Bool // re-entrancy guard for mutations
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{
		id:   uuid.New(),
		rope: rope.New(),
	}
}

// FromString creates a buffer with the given initial content.
func FromString(s string) *Buffer {
	return &Buffer{
		id:   uuid.New(),
		rope: rope.FromString(s),
	}
}

// FromFile creates a buffer by synchronously reading the whole file.
// Open, read, and decode failures are returned as errors; the caller
// decides whether they are fatal.
func FromFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("loading %s: %w", path, ErrNotUTF8)
	}
	return &Buffer{
		id:   uuid.New(),
		rope: rope.FromString(string(data)),
		path: path,
	}, nil
}

// ID returns the buffer's unique identifier.
func (b *Buffer) ID() uuid.UUID {
	return b.id
}

// Path returns the source path, or "" for an unsaved buffer.
func (b *Buffer) Path() string {
	return b.path
}

// Dirty reports whether the buffer has been mutated since creation, load,
// or the last save.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// beginEdit asserts exclusive mutation access. Re-entrant mutation is a
// programming error and fails loudly.
func (b *Buffer) beginEdit() {
	if !b.editing.CompareAndSwap(false, true) {
		panic(fmt.Sprintf("buffer %s: re-entrant mutation", b.id))
	}
}

func (b *Buffer) endEdit() {
	b.editing.Store(false)
}

// Mutations

// InsertChar inserts one character at the given character offset.
func (b *Buffer) InsertChar(idx int, ch rune) error {
	return b.Insert(idx, string(ch))
}

// Insert inserts text at the given character offset.
// The offset must satisfy 0 <= idx <= LenChars().
func (b *Buffer) Insert(idx int, text string) error {
	b.beginEdit()
	defer b.endEdit()

	if idx < 0 || idx > b.rope.Len() {
		return fmt.Errorf("insert at %d (len %d): %w", idx, b.rope.Len(), ErrOffsetOutOfRange)
	}
	if len(text) == 0 {
		return nil
	}
	b.rope = b.rope.Insert(idx, text)
	b.dirty = true
	return nil
}

// Remove deletes the half-open character range r.
func (b *Buffer) Remove(r Range) error {
	b.beginEdit()
	defer b.endEdit()

	if !r.IsValid() || r.Start < 0 || r.End > b.rope.Len() {
		return fmt.Errorf("remove %s (len %d): %w", r, b.rope.Len(), ErrRangeInvalid)
	}
	if r.IsEmpty() {
		return nil
	}
	b.rope = b.rope.Delete(r.Start, r.End)
	b.dirty = true
	return nil
}

// Save writes the buffer content back to its source path and clears the
// dirty flag.
func (b *Buffer) Save() error {
	if b.path == "" {
		return ErrNoPath
	}
	if err := os.WriteFile(b.path, []byte(b.rope.String()), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", b.path, err)
	}
	b.dirty = false
	return nil
}

// Queries

// IsEmpty reports whether the buffer holds no characters.
func (b *Buffer) IsEmpty() bool {
	return b.rope.IsEmpty()
}

// LenChars returns the total number of characters.
func (b *Buffer) LenChars() int {
	return b.rope.Len()
}

// LenLines returns the number of lines. This is always at least 1: an
// empty buffer has exactly one empty line, and a trailing terminator
// yields one more, possibly empty, trailing line.
func (b *Buffer) LenLines() int {
	return b.rope.LineCount()
}

// String returns the whole buffer as a string. O(length of buffer).
func (b *Buffer) String() string {
	return b.rope.String()
}

// Slice returns the text in the character range r. O(length of range).
func (b *Buffer) Slice(r Range) string {
	return b.rope.Slice(r.Start, r.End)
}

// RuneAt returns the character at the given offset.
func (b *Buffer) RuneAt(idx int) (rune, bool) {
	return b.rope.RuneAt(idx)
}

// Runes returns an iterator over the buffer's characters starting at the
// given offset.
func (b *Buffer) Runes(from int) *rope.RuneIterator {
	return b.rope.Runes(from)
}

// Coordinate conversions

// CharToLine returns the line containing the character at idx.
func (b *Buffer) CharToLine(idx int) int {
	return b.rope.CharToLine(idx)
}

// LineToChar returns the character offset of the first character of line.
func (b *Buffer) LineToChar(line int) int {
	return b.rope.LineToChar(line)
}

// LineLenNoEOL returns the number of characters on the line excluding
// '\n' and '\r', so column clamping never lands a caret inside a
// terminator.
func (b *Buffer) LineLenNoEOL(line int) int {
	start := b.rope.LineToChar(line)
	end := b.rope.LineToChar(line + 1)
	n := 0
	it := b.rope.Runes(start)
	for i := start; i < end; i++ {
		ch, ok := it.Next()
		if !ok {
			break
		}
		if ch != '\n' && ch != '\r' {
			n++
		}
	}
	return n
}

// LineToLastChar returns the offset immediately after the last visible
// character of the line: the terminator start, or end-of-buffer for the
// final line.
func (b *Buffer) LineToLastChar(line int) int {
	return b.rope.LineToChar(line) + b.LineLenNoEOL(line)
}

// IndexToPoint converts a character offset to a (line, column) point.
func (b *Buffer) IndexToPoint(idx int) Point {
	line := b.rope.CharToLine(idx)
	return Point{Line: line, Col: idx - b.rope.LineToChar(line)}
}

// PointToIndex converts a point to a character offset, clamping both the
// line and the column into range. It is total by design: cursor movement
// and mouse clicks routinely request slightly-out-of-range points (for
// example moving down onto a shorter line), and those snap to the nearest
// valid position instead of failing.
func (b *Buffer) PointToIndex(p Point) int {
	line := p.Line
	if line < 0 {
		line = 0
	}
	if max := b.rope.LineCount() - 1; line > max {
		line = max
	}

	col := p.Col
	if col < 0 {
		col = 0
	}
	if max := b.LineLenNoEOL(line); col > max {
		col = max
	}

	return b.rope.LineToChar(line) + col
}
