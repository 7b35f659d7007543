package keymap

import (
	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/view"
)

// command is the concrete type behind every built-in command: a name,
// declared bindings, and the operation against the active view.
type command struct {
	name     string
	bindings []Binding
	run      func(*view.View) error
}

func (c *command) Name() string           { return c.name }
func (c *command) Bindings() []Binding    { return c.bindings }
func (c *command) Run(v *view.View) error { return c.run(v) }

func special(k key.Key, mods ...key.Modifier) Binding {
	b := Binding{Key: k}
	for _, m := range mods {
		b.Mod = b.Mod.With(m)
	}
	return b
}

func chord(r rune, mods ...key.Modifier) Binding {
	b := Binding{Key: key.KeyRune, Rune: r}
	for _, m := range mods {
		b.Mod = b.Mod.With(m)
	}
	return b
}

// moveCmd wraps a caret operation that cannot fail.
func moveCmd(name string, b Binding, op func(*view.View)) Command {
	return &command{name, []Binding{b}, func(v *view.View) error {
		op(v)
		return nil
	}}
}

// DefaultCommands returns the built-in command set with its stock
// bindings. The keymap table is built from this at startup.
func DefaultCommands() []Command {
	return []Command{
		moveCmd("cursor.left", special(key.KeyLeft),
			func(v *view.View) { v.MoveCursor(view.DirLeft) }),
		moveCmd("cursor.right", special(key.KeyRight),
			func(v *view.View) { v.MoveCursor(view.DirRight) }),
		moveCmd("cursor.up", special(key.KeyUp),
			func(v *view.View) { v.MoveCursor(view.DirUp) }),
		moveCmd("cursor.down", special(key.KeyDown),
			func(v *view.View) { v.MoveCursor(view.DirDown) }),
		moveCmd("cursor.page-up", special(key.KeyPageUp),
			func(v *view.View) { v.MovePage(view.DirUp) }),
		moveCmd("cursor.page-down", special(key.KeyPageDown),
			func(v *view.View) { v.MovePage(view.DirDown) }),
		moveCmd("cursor.home", special(key.KeyHome),
			func(v *view.View) { v.Home() }),
		moveCmd("cursor.end", special(key.KeyEnd),
			func(v *view.View) { v.End() }),
		moveCmd("edit.backspace", special(key.KeyBackspace),
			func(v *view.View) { v.Backspace() }),
		moveCmd("edit.delete", special(key.KeyDelete),
			func(v *view.View) { v.DeleteAtCursor() }),
		moveCmd("edit.newline", special(key.KeyEnter),
			func(v *view.View) { v.InsertNewline() }),
		moveCmd("edit.tab", special(key.KeyTab),
			func(v *view.View) { v.InsertChar('\t') }),
		moveCmd("edit.undo", chord('z', key.ModCtrl),
			func(v *view.View) { v.Undo() }),
		moveCmd("edit.redo", chord('y', key.ModCtrl),
			func(v *view.View) { v.Redo() }),
		&command{"file.save", []Binding{chord('s', key.ModCtrl)},
			func(v *view.View) error { return v.Save() }},
	}
}
