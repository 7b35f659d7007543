package keymap

import (
	"testing"

	"github.com/dshills/kite/internal/engine/buffer"
	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/view"
)

func TestTableLookup(t *testing.T) {
	table := NewTable(DefaultCommands())

	tests := []struct {
		ev   key.Event
		want string
	}{
		{key.NewSpecialEvent(key.KeyLeft, key.ModNone), "cursor.left"},
		{key.NewSpecialEvent(key.KeyPageDown, key.ModNone), "cursor.page-down"},
		{key.NewSpecialEvent(key.KeyEnter, key.ModNone), "edit.newline"},
		{key.NewRuneEvent('z', key.ModCtrl), "edit.undo"},
		{key.NewRuneEvent('s', key.ModCtrl), "file.save"},
	}

	for _, tt := range tests {
		cmd, ok := table.Lookup(tt.ev)
		if !ok {
			t.Errorf("Lookup(%s): no command found", tt.ev)
			continue
		}
		if cmd.Name() != tt.want {
			t.Errorf("Lookup(%s) = %s, want %s", tt.ev, cmd.Name(), tt.want)
		}
	}
}

func TestLookupUnbound(t *testing.T) {
	table := NewTable(DefaultCommands())

	if _, ok := table.Lookup(key.NewRuneEvent('q', key.ModAlt)); ok {
		t.Error("expected no command for Alt+q")
	}
	// Plain characters are text input, not commands.
	if _, ok := table.Lookup(key.NewRuneEvent('a', key.ModNone)); ok {
		t.Error("expected no command for bare 'a'")
	}
}

func TestLookupStripsShift(t *testing.T) {
	table := NewTable(DefaultCommands())

	// Shift+Right must still resolve to the movement command so shifted
	// movement can extend the selection.
	cmd, ok := table.Lookup(key.NewSpecialEvent(key.KeyRight, key.ModShift))
	if !ok || cmd.Name() != "cursor.right" {
		t.Errorf("Shift+Right resolved to %v, want cursor.right", cmd)
	}
}

func TestCommandsRunAgainstView(t *testing.T) {
	table := NewTable(DefaultCommands())
	v := view.New(buffer.FromString("ab\ncd"))
	v.SetPageLength(10)

	run := func(name string) {
		t.Helper()
		cmd, ok := table.ByName(name)
		if !ok {
			t.Fatalf("command %q not registered", name)
		}
		if err := cmd.Run(v); err != nil {
			t.Fatalf("command %q: %v", name, err)
		}
	}

	run("cursor.right")
	run("cursor.down")
	if p := v.Buffer().IndexToPoint(v.Caret()); p.Line != 1 || p.Col != 1 {
		t.Errorf("caret at %s, want (1:1)", p)
	}

	run("edit.backspace")
	if got := v.Buffer().String(); got != "ab\nd" {
		t.Errorf("expected %q, got %q", "ab\nd", got)
	}

	run("edit.undo")
	if got := v.Buffer().String(); got != "ab\ncd" {
		t.Errorf("after undo: expected %q, got %q", "ab\ncd", got)
	}
}

func TestRebind(t *testing.T) {
	table := NewTable(DefaultCommands())

	b := Binding{Key: key.KeyRune, Rune: 'u', Mod: key.ModCtrl}
	if err := table.Rebind("edit.undo", b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd, ok := table.Lookup(key.NewRuneEvent('u', key.ModCtrl))
	if !ok || cmd.Name() != "edit.undo" {
		t.Errorf("Ctrl+u resolved to %v, want edit.undo", cmd)
	}

	if err := table.Rebind("no.such.command", b); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestParseBinding(t *testing.T) {
	tests := []struct {
		in   string
		want Binding
	}{
		{"ctrl+s", Binding{Key: key.KeyRune, Rune: 's', Mod: key.ModCtrl}},
		{"C-x", Binding{Key: key.KeyRune, Rune: 'x', Mod: key.ModCtrl}},
		{"alt+pagedown", Binding{Key: key.KeyPageDown, Mod: key.ModAlt}},
		{"Up", Binding{Key: key.KeyUp}},
		{"ctrl+shift+z", Binding{Key: key.KeyRune, Rune: 'z', Mod: key.ModCtrl | key.ModShift}},
		{"q", Binding{Key: key.KeyRune, Rune: 'q'}},
	}

	for _, tt := range tests {
		got, err := ParseBinding(tt.in)
		if err != nil {
			t.Errorf("ParseBinding(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBinding(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseBindingErrors(t *testing.T) {
	for _, in := range []string{"", "hyper+x", "ctrl+nosuchkey"} {
		if _, err := ParseBinding(in); err == nil {
			t.Errorf("ParseBinding(%q): expected error", in)
		}
	}
}
