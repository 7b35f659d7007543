package view

import (
	"testing"

	"github.com/dshills/kite/internal/engine/buffer"
)

func TestMoveCursorHorizontal(t *testing.T) {
	v := New(buffer.FromString("abc"))

	v.MoveCursor(DirRight)
	if v.Caret() != 1 {
		t.Errorf("expected caret 1, got %d", v.Caret())
	}

	v.MoveCursor(DirLeft)
	v.MoveCursor(DirLeft) // clamped at 0
	if v.Caret() != 0 {
		t.Errorf("expected caret 0, got %d", v.Caret())
	}

	for i := 0; i < 5; i++ {
		v.MoveCursor(DirRight)
	}
	// Caret may sit one past the last character, never beyond.
	if v.Caret() != 3 {
		t.Errorf("expected caret clamped to 3, got %d", v.Caret())
	}
}

func TestMoveCursorVerticalClampsColumn(t *testing.T) {
	v := New(buffer.FromString("longline\nab\nanother"))

	v.End() // caret at 8, line 0 col 8
	v.MoveCursor(DirDown)

	// Line 1 is only 2 chars; the column clamps to it.
	p := v.Buffer().IndexToPoint(v.Caret())
	if p.Line != 1 || p.Col != 2 {
		t.Errorf("expected (1:2), got %s", p)
	}

	v.MoveCursor(DirUp)
	p = v.Buffer().IndexToPoint(v.Caret())
	if p.Line != 0 || p.Col != 2 {
		t.Errorf("expected (0:2), got %s", p)
	}
}

func TestMoveCursorUpFromFirstLine(t *testing.T) {
	v := New(buffer.FromString("abc\ndef"))
	v.MoveCursor(DirRight)

	v.MoveCursor(DirUp) // clamps to line 0, same column
	if v.Caret() != 1 {
		t.Errorf("expected caret 1, got %d", v.Caret())
	}
}

func TestHomeEnd(t *testing.T) {
	v := New(buffer.FromString("text\nplops"))
	v.MoveCursor(DirDown)
	v.MoveCursor(DirRight)
	v.MoveCursor(DirRight)

	v.Home()
	if v.Caret() != 5 {
		t.Errorf("Home: expected caret 5, got %d", v.Caret())
	}

	v.End()
	if v.Caret() != 10 {
		t.Errorf("End: expected caret 10, got %d", v.Caret())
	}
}

func TestMovePage(t *testing.T) {
	text := ""
	for i := 0; i < 50; i++ {
		text += "line\n"
	}
	v := New(buffer.FromString(text))
	v.SetPageLength(10)

	v.MovePage(DirDown)
	if line := v.Buffer().CharToLine(v.Caret()); line != 10 {
		t.Errorf("expected line 10 after page down, got %d", line)
	}

	v.MovePage(DirUp)
	if line := v.Buffer().CharToLine(v.Caret()); line != 0 {
		t.Errorf("expected line 0 after page up, got %d", line)
	}
}

func TestScrollFollowsCaret(t *testing.T) {
	text := ""
	for i := 0; i < 50; i++ {
		text += "line\n"
	}
	v := New(buffer.FromString(text))
	v.SetPageLength(10)

	for i := 0; i < 20; i++ {
		v.MoveCursor(DirDown)
	}
	if v.FirstVisibleLine() != 10 {
		t.Errorf("expected first visible line 10, got %d", v.FirstVisibleLine())
	}

	for i := 0; i < 20; i++ {
		v.MoveCursor(DirUp)
	}
	if v.FirstVisibleLine() != 0 {
		t.Errorf("expected first visible line 0, got %d", v.FirstVisibleLine())
	}
}

func TestInsertAndDelete(t *testing.T) {
	v := New(buffer.New())

	v.Insert("hello")
	if got := v.Buffer().String(); got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
	if v.Caret() != 5 {
		t.Errorf("expected caret 5, got %d", v.Caret())
	}

	v.Backspace()
	if got := v.Buffer().String(); got != "hell" {
		t.Errorf("expected %q, got %q", "hell", got)
	}

	v.Home()
	v.DeleteAtCursor()
	if got := v.Buffer().String(); got != "ell" {
		t.Errorf("expected %q, got %q", "ell", got)
	}
}

func TestBackspaceAtStart(t *testing.T) {
	v := New(buffer.FromString("abc"))
	v.Backspace() // no-op at offset 0
	if got := v.Buffer().String(); got != "abc" {
		t.Errorf("expected unchanged content, got %q", got)
	}
}

func TestDeleteAtEOF(t *testing.T) {
	v := New(buffer.FromString("abc"))
	v.End()
	v.DeleteAtCursor() // no-op past the last character
	if got := v.Buffer().String(); got != "abc" {
		t.Errorf("expected unchanged content, got %q", got)
	}
}

func TestInsertNewline(t *testing.T) {
	v := New(buffer.FromString("ab"))
	v.MoveCursor(DirRight)
	v.InsertNewline()

	if got := v.Buffer().String(); got != "a\nb" {
		t.Errorf("expected %q, got %q", "a\nb", got)
	}
	if line := v.Buffer().CharToLine(v.Caret()); line != 1 {
		t.Errorf("expected caret on line 1, got %d", line)
	}
}

func TestSelectionLifecycle(t *testing.T) {
	v := New(buffer.FromString("abcd"))

	v.MoveCursor(DirRight)
	v.StartSelection()
	v.MoveCursor(DirRight)
	v.MoveCursor(DirRight)

	sel, ok := v.Selection()
	if !ok {
		t.Fatal("expected active selection")
	}
	if sel.Start != 1 || sel.End != 3 {
		t.Errorf("expected [1:3), got %s", sel)
	}

	text, ok := v.SelectionText()
	if !ok || text != "bc" {
		t.Errorf("expected %q, got %q (%v)", "bc", text, ok)
	}

	v.EndSelection()
	if _, ok := v.Selection(); !ok {
		t.Error("selection should survive EndSelection until the caret moves")
	}

	v.MoveCursor(DirLeft)
	if _, ok := v.Selection(); ok {
		t.Error("selection should clear on unanchored movement")
	}
}

func TestSelectionBackwards(t *testing.T) {
	v := New(buffer.FromString("abcd"))
	v.End()
	v.StartSelection()
	v.MoveCursor(DirLeft)
	v.MoveCursor(DirLeft)

	sel, ok := v.Selection()
	if !ok {
		t.Fatal("expected active selection")
	}
	// The range is normalized regardless of drag direction.
	if sel.Start != 2 || sel.End != 4 {
		t.Errorf("expected [2:4), got %s", sel)
	}
}

func TestEditClearsSelection(t *testing.T) {
	v := New(buffer.FromString("abcd"))
	v.StartSelection()
	v.MoveCursor(DirRight)
	v.EndSelection()

	v.InsertChar('x')
	if _, ok := v.Selection(); ok {
		t.Error("selection should clear after an edit")
	}
}

func TestUndoRedo(t *testing.T) {
	v := New(buffer.FromString("hello"))
	v.End()
	v.Insert(" world")

	v.Undo()
	if got := v.Buffer().String(); got != "hello" {
		t.Errorf("after undo: expected %q, got %q", "hello", got)
	}
	if v.Caret() != 5 {
		t.Errorf("after undo: expected caret 5, got %d", v.Caret())
	}

	v.Redo()
	if got := v.Buffer().String(); got != "hello world" {
		t.Errorf("after redo: expected %q, got %q", "hello world", got)
	}
	if v.Caret() != 11 {
		t.Errorf("after redo: expected caret 11, got %d", v.Caret())
	}
}

func TestUndoDelete(t *testing.T) {
	v := New(buffer.FromString("abc"))
	v.End()
	v.Backspace()
	if got := v.Buffer().String(); got != "ab" {
		t.Fatalf("expected %q, got %q", "ab", got)
	}

	v.Undo()
	if got := v.Buffer().String(); got != "abc" {
		t.Errorf("after undo: expected %q, got %q", "abc", got)
	}
}

func TestFreshEditClearsRedo(t *testing.T) {
	v := New(buffer.FromString(""))
	v.Insert("a")
	v.Insert("b")
	v.Undo()
	v.Insert("c")

	v.Redo() // nothing to redo
	if got := v.Buffer().String(); got != "ac" {
		t.Errorf("expected %q, got %q", "ac", got)
	}
}

func TestUndoEmptyStack(t *testing.T) {
	v := New(buffer.FromString("abc"))
	v.Undo() // no-op
	v.Redo() // no-op
	if got := v.Buffer().String(); got != "abc" {
		t.Errorf("expected unchanged content, got %q", got)
	}
}

func TestSharedBufferTwoViews(t *testing.T) {
	buf := buffer.FromString("shared")
	a := New(buf)
	b := New(buf)

	a.End()
	a.Insert("!")

	if got := b.Buffer().String(); got != "shared!" {
		t.Errorf("second view sees %q, want %q", got, "shared!")
	}
	// Each view keeps its own caret.
	if b.Caret() != 0 {
		t.Errorf("second view caret moved to %d", b.Caret())
	}
}
