package view

import (
	"unicode/utf8"

	"github.com/dshills/kite/internal/engine/buffer"
)

// Direction identifies a caret or page movement.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// View presents one buffer in a window region.
type View struct {
	buf *buffer.Buffer

	caret     int
	selecting bool
	anchor    int
	sel       buffer.Range
	hasSel    bool

	firstLine int
	pageLen   int

	undo []edit
	redo []edit
}

// edit records one applied mutation so it can be inverted: the text
// inserted and the text removed at a character offset.
type edit struct {
	at          int
	inserted    string
	removed     string
	caretBefore int
}

// New creates a view over the given buffer.
func New(buf *buffer.Buffer) *View {
	return &View{buf: buf, pageLen: 1}
}

// Buffer returns the underlying shared buffer.
func (v *View) Buffer() *buffer.Buffer {
	return v.buf
}

// Caret returns the caret's character index. It may equal LenChars(),
// one past the last character.
func (v *View) Caret() int {
	return v.caret
}

// Selection returns the active selection range, if any.
func (v *View) Selection() (buffer.Range, bool) {
	return v.sel, v.hasSel
}

// SelectionText returns the selected text, if a selection is active.
func (v *View) SelectionText() (string, bool) {
	if !v.hasSel {
		return "", false
	}
	return v.buf.Slice(v.sel), true
}

// FirstVisibleLine returns the topmost visible line.
func (v *View) FirstVisibleLine() int {
	return v.firstLine
}

// PageLength returns the number of visible text lines.
func (v *View) PageLength() int {
	return v.pageLen
}

// SetPageLength updates the visible page length, normally after a window
// resize, and re-clamps the scroll position.
func (v *View) SetPageLength(n int) {
	if n < 1 {
		n = 1
	}
	v.pageLen = n
	v.followCaret()
}

// Movement

// MoveCursor moves the caret one position in the given direction.
// Vertical movement clamps the column to the target line's length.
func (v *View) MoveCursor(dir Direction) {
	switch dir {
	case DirLeft:
		if v.caret > 0 {
			v.caret--
		}
	case DirRight:
		if v.caret < v.buf.LenChars() {
			v.caret++
		}
	case DirUp:
		p := v.buf.IndexToPoint(v.caret)
		v.caret = v.buf.PointToIndex(buffer.Point{Line: p.Line - 1, Col: p.Col})
	case DirDown:
		p := v.buf.IndexToPoint(v.caret)
		v.caret = v.buf.PointToIndex(buffer.Point{Line: p.Line + 1, Col: p.Col})
	}
	v.caretMoved()
}

// MovePage moves the caret one page up or down.
func (v *View) MovePage(dir Direction) {
	p := v.buf.IndexToPoint(v.caret)
	switch dir {
	case DirUp:
		v.caret = v.buf.PointToIndex(buffer.Point{Line: p.Line - v.pageLen, Col: p.Col})
	case DirDown:
		v.caret = v.buf.PointToIndex(buffer.Point{Line: p.Line + v.pageLen, Col: p.Col})
	}
	v.caretMoved()
}

// Home moves the caret to the start of its line.
func (v *View) Home() {
	v.caret = v.buf.LineToChar(v.buf.CharToLine(v.caret))
	v.caretMoved()
}

// End moves the caret just past the last visible character of its line.
func (v *View) End() {
	v.caret = v.buf.LineToLastChar(v.buf.CharToLine(v.caret))
	v.caretMoved()
}

// Selection lifecycle

// StartSelection anchors a new selection at the caret.
func (v *View) StartSelection() {
	if v.selecting {
		return
	}
	v.selecting = true
	v.anchor = v.caret
	v.hasSel = false
}

// EndSelection releases the anchor. An established range stays visible
// until the caret moves or an edit lands.
func (v *View) EndSelection() {
	v.selecting = false
}

// caretMoved updates selection and scroll state after any caret change.
func (v *View) caretMoved() {
	if v.selecting {
		start, end := v.anchor, v.caret
		if start > end {
			start, end = end, start
		}
		v.sel = buffer.NewRange(start, end)
		v.hasSel = start != end
	} else {
		v.hasSel = false
	}
	v.followCaret()
}

// followCaret scrolls so the caret's line stays inside the page.
func (v *View) followCaret() {
	line := v.buf.CharToLine(v.caret)
	if line < v.firstLine {
		v.firstLine = line
	}
	if line > v.firstLine+v.pageLen {
		v.firstLine = line - v.pageLen
	}
}

// Editing

// InsertChar inserts one character at the caret.
func (v *View) InsertChar(ch rune) {
	v.apply(v.caret, 0, string(ch))
}

// Insert inserts text at the caret.
func (v *View) Insert(s string) {
	if s == "" {
		return
	}
	v.apply(v.caret, 0, s)
}

// InsertNewline inserts a line break at the caret.
func (v *View) InsertNewline() {
	v.InsertChar('\n')
}

// Backspace removes the character before the caret.
func (v *View) Backspace() {
	if v.caret == 0 {
		return
	}
	v.apply(v.caret-1, 1, "")
}

// DeleteAtCursor removes the character under the caret.
func (v *View) DeleteAtCursor() {
	if v.caret >= v.buf.LenChars() {
		return
	}
	v.apply(v.caret, 1, "")
}

// apply replaces removeLen characters at offset at with text, recording
// the inverse for undo. Offsets are pre-validated by the callers, so a
// buffer error here is a programming error and is ignored after leaving
// state untouched.
func (v *View) apply(at, removeLen int, text string) {
	removed := ""
	if removeLen > 0 {
		r := buffer.NewRange(at, at+removeLen)
		removed = v.buf.Slice(r)
		if err := v.buf.Remove(r); err != nil {
			return
		}
	}
	if text != "" {
		if err := v.buf.Insert(at, text); err != nil {
			return
		}
	}

	v.undo = append(v.undo, edit{
		at:          at,
		inserted:    text,
		removed:     removed,
		caretBefore: v.caret,
	})
	v.redo = v.redo[:0]

	v.caret = at + utf8.RuneCountInString(text)
	v.selecting = false
	v.hasSel = false
	v.followCaret()
}

// Undo reverts the most recent edit and restores the caret.
func (v *View) Undo() {
	if len(v.undo) == 0 {
		return
	}
	e := v.undo[len(v.undo)-1]
	v.undo = v.undo[:len(v.undo)-1]

	v.invert(e)
	v.redo = append(v.redo, e)
	v.caret = e.caretBefore
	v.hasSel = false
	v.followCaret()
}

// Redo re-applies the most recently undone edit.
func (v *View) Redo() {
	if len(v.redo) == 0 {
		return
	}
	e := v.redo[len(v.redo)-1]
	v.redo = v.redo[:len(v.redo)-1]

	if e.removed != "" {
		_ = v.buf.Remove(buffer.NewRange(e.at, e.at+utf8.RuneCountInString(e.removed)))
	}
	if e.inserted != "" {
		_ = v.buf.Insert(e.at, e.inserted)
	}
	v.undo = append(v.undo, e)
	v.caret = e.at + utf8.RuneCountInString(e.inserted)
	v.hasSel = false
	v.followCaret()
}

// invert removes e.inserted and restores e.removed.
func (v *View) invert(e edit) {
	if e.inserted != "" {
		_ = v.buf.Remove(buffer.NewRange(e.at, e.at+utf8.RuneCountInString(e.inserted)))
	}
	if e.removed != "" {
		_ = v.buf.Insert(e.at, e.removed)
	}
}

// Save writes the buffer back to its source path.
func (v *View) Save() error {
	return v.buf.Save()
}
