package keymap

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dshills/kite/internal/input/key"
)

var specialKeys = map[string]key.Key{
	"escape":    key.KeyEscape,
	"esc":       key.KeyEscape,
	"enter":     key.KeyEnter,
	"return":    key.KeyEnter,
	"tab":       key.KeyTab,
	"backspace": key.KeyBackspace,
	"delete":    key.KeyDelete,
	"del":       key.KeyDelete,
	"insert":    key.KeyInsert,
	"home":      key.KeyHome,
	"end":       key.KeyEnd,
	"pageup":    key.KeyPageUp,
	"pagedown":  key.KeyPageDown,
	"up":        key.KeyUp,
	"down":      key.KeyDown,
	"left":      key.KeyLeft,
	"right":     key.KeyRight,
}

// ParseBinding parses a binding description like "ctrl+s", "C-x",
// "alt+pagedown", or a bare key name or character.
func ParseBinding(s string) (Binding, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Binding{}, fmt.Errorf("empty binding")
	}

	sep := "+"
	if !strings.Contains(s, "+") && strings.Contains(s, "-") {
		sep = "-"
	}
	parts := strings.Split(s, sep)

	var b Binding
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "ctrl", "c":
			b.Mod = b.Mod.With(key.ModCtrl)
		case "alt", "a", "m":
			b.Mod = b.Mod.With(key.ModAlt)
		case "shift", "s":
			b.Mod = b.Mod.With(key.ModShift)
		default:
			return Binding{}, fmt.Errorf("binding %q: unknown modifier %q", s, p)
		}
	}

	last := parts[len(parts)-1]
	if k, ok := specialKeys[strings.ToLower(last)]; ok {
		b.Key = k
		return b, nil
	}
	if utf8.RuneCountInString(last) == 1 {
		b.Key = key.KeyRune
		b.Rune, _ = utf8.DecodeRuneInString(last)
		return b, nil
	}
	return Binding{}, fmt.Errorf("binding %q: unknown key %q", s, last)
}
