package render

import "fmt"

// Op identifies the kind of a display command.
type Op uint8

const (
	// OpMove sets the pen position for subsequent commands. Draws nothing.
	OpMove Op = iota
	// OpChar draws one glyph at the pen position.
	OpChar
	// OpRect fills a rectangle anchored at the pen position.
	OpRect
)

// Command is one drawing instruction in a display list. The list is
// replayed in order; Move updates the pen, Char and Rect draw at it.
type Command struct {
	Op Op

	// Move fields
	X, Y int

	// Char fields
	Rune rune

	// Rect fields
	W, H int

	// Char and Rect color
	Color Color
}

// Move creates a pen-positioning command.
func Move(x, y int) Command {
	return Command{Op: OpMove, X: x, Y: y}
}

// Char creates a glyph-drawing command.
func Char(r rune, c Color) Command {
	return Command{Op: OpChar, Rune: r, Color: c}
}

// Rect creates a filled-rectangle command.
func Rect(w, h int, c Color) Command {
	return Command{Op: OpRect, W: w, H: h, Color: c}
}

// String returns a compact representation, mainly for test failures.
func (c Command) String() string {
	switch c.Op {
	case OpMove:
		return fmt.Sprintf("Move(%d,%d)", c.X, c.Y)
	case OpChar:
		return fmt.Sprintf("Char(%q)", c.Rune)
	case OpRect:
		return fmt.Sprintf("Rect(%dx%d)", c.W, c.H)
	default:
		return "Unknown"
	}
}

// Metrics carries the fixed glyph geometry the pipeline lays text out
// with. A terminal backend uses {1, 1, rows}.
type Metrics struct {
	Advance     int // horizontal advance per glyph
	LineSpacing int // vertical advance per line
	Height      int // viewport height, same units
}

// caretWidth returns the width of the caret bar for the given metrics:
// a thin bar for pixel units, a full cell for terminal units.
func caretWidth(m Metrics) int {
	w := m.Advance / 4
	if w < 1 {
		w = 1
	}
	return w
}
