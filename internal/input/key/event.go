package key

import (
	"fmt"
	"unicode"
)

// Event is one normalized key press.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Mod: mods}
}

// NewSpecialEvent creates an event for a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Mod: mods}
}

// IsRune reports whether this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsText reports whether the event produces printable text input. A rune
// carrying Ctrl or Alt is a chord, not text; Shift alone is part of the
// character itself.
func (e Event) IsText() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.Mod.Has(ModCtrl) && !e.Mod.Has(ModAlt)
}

// String returns a canonical representation like "Ctrl+s" or "PageUp".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if e.Mod == ModNone {
		return name
	}
	return fmt.Sprintf("%s+%s", e.Mod, name)
}
