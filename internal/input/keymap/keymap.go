// Package keymap maps normalized key events to editing commands.
//
// A Binding is the lookup descriptor: key code (or rune) plus modifier
// set. The Table is built once at startup from the registered commands
// and consulted per key press by the dispatcher, which only needs the
// Command capability and never a concrete command type.
package keymap

import (
	"fmt"

	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/view"
)

// Binding is a normalized key-binding descriptor. Character keys set
// Key = key.KeyRune and the character in Rune.
type Binding struct {
	Key  key.Key
	Rune rune
	Mod  key.Modifier
}

// String returns the canonical form, e.g. "Ctrl+s" or "PageUp".
func (b Binding) String() string {
	return key.Event{Key: b.Key, Rune: b.Rune, Mod: b.Mod}.String()
}

// Command is an editing operation bound to one or more keys. Commands
// operate on the active view's cursor, selection, and content; the
// dispatcher does not know their concrete behavior.
type Command interface {
	Name() string
	Bindings() []Binding
	Run(v *view.View) error
}

// Table resolves key events to commands.
type Table struct {
	bindings map[Binding]Command
	byName   map[string]Command
}

// NewTable builds a lookup table from the given commands, registering
// each command's declared bindings.
func NewTable(cmds []Command) *Table {
	t := &Table{
		bindings: make(map[Binding]Command),
		byName:   make(map[string]Command),
	}
	for _, cmd := range cmds {
		t.byName[cmd.Name()] = cmd
		for _, b := range cmd.Bindings() {
			t.bindings[b] = cmd
		}
	}
	return t
}

// Lookup resolves a key event to a command. Shift is retried stripped,
// so shift-extended movement still finds the plain movement binding.
func (t *Table) Lookup(ev key.Event) (Command, bool) {
	b := Binding{Key: ev.Key, Mod: ev.Mod}
	if ev.Key == key.KeyRune {
		b.Rune = ev.Rune
	}
	if cmd, ok := t.bindings[b]; ok {
		return cmd, true
	}
	if b.Mod.Has(key.ModShift) {
		b.Mod = b.Mod &^ key.ModShift
		if cmd, ok := t.bindings[b]; ok {
			return cmd, true
		}
	}
	return nil, false
}

// ByName returns a registered command by its name.
func (t *Table) ByName(name string) (Command, bool) {
	cmd, ok := t.byName[name]
	return cmd, ok
}

// Rebind points a binding at a named command, replacing whatever the
// binding resolved to before. Used by the init script.
func (t *Table) Rebind(name string, b Binding) error {
	cmd, ok := t.byName[name]
	if !ok {
		return fmt.Errorf("rebind %s: unknown command %q", b, name)
	}
	t.bindings[b] = cmd
	return nil
}
