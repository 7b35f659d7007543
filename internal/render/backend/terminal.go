package backend

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/render"
)

// Terminal is a tcell-backed surface.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a terminal backend. Init must be called before use.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Init acquires the terminal and switches it to the alternate screen.
func (t *Terminal) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()

	t.mu.Lock()
	t.screen = screen
	t.mu.Unlock()
	return nil
}

// Shutdown restores the terminal. Safe to call more than once.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	screen := t.screen
	t.screen = nil
	t.mu.Unlock()
	if screen != nil {
		screen.Fini()
	}
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.screen == nil {
		return 0, 0
	}
	return t.screen.Size()
}

func (t *Terminal) HasPendingEvent() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.screen == nil {
		return false
	}
	return t.screen.HasPendingEvent()
}

func (t *Terminal) PollEvent() Event {
	t.mu.Lock()
	screen := t.screen
	t.mu.Unlock()
	if screen == nil {
		return Event{Type: EventQuit}
	}

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized.
			return Event{Type: EventQuit}
		case *tcell.EventResize:
			w, h := ev.Size()
			screen.Sync()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventInterrupt:
			return Event{Type: EventReload}
		case *tcell.EventKey:
			if out, ok := convertKey(ev); ok {
				return Event{Type: EventKey, Key: out}
			}
		}
	}
}

// PostReload queues an EventReload. Used by the config watcher goroutine.
func (t *Terminal) PostReload() {
	t.mu.Lock()
	screen := t.screen
	t.mu.Unlock()
	if screen != nil {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// Replay paints the display list. Rect commands record a pending
// background per cell so a later Char at the same position keeps the
// highlight under the glyph, matching the back-to-front paint order the
// pipeline emits.
func (t *Terminal) Replay(list []render.Command, background render.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.screen == nil {
		return
	}

	bg := toTcell(background)
	t.screen.Fill(' ', tcell.StyleDefault.Background(bg))

	type cell struct{ x, y int }
	overlay := make(map[cell]tcell.Color)

	penX, penY := 0, 0
	for _, cmd := range list {
		switch cmd.Op {
		case render.OpMove:
			penX, penY = cmd.X, cmd.Y
		case render.OpRect:
			fill := toTcell(cmd.Color)
			style := tcell.StyleDefault.Background(fill)
			for dy := 0; dy < cmd.H; dy++ {
				for dx := 0; dx < cmd.W; dx++ {
					overlay[cell{penX + dx, penY + dy}] = fill
					t.screen.SetContent(penX+dx, penY+dy, ' ', nil, style)
				}
			}
		case render.OpChar:
			cellBg := bg
			if over, ok := overlay[cell{penX, penY}]; ok {
				cellBg = over
			}
			style := tcell.StyleDefault.Foreground(toTcell(cmd.Color)).Background(cellBg)
			t.screen.SetContent(penX, penY, cmd.Rune, nil, style)
		}
	}
	t.screen.Show()
}

func toTcell(c render.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertKey normalizes a tcell key event. Control chords arrive from
// tcell as KeyCtrlA..KeyCtrlZ with the letter folded into the key code;
// they come back out as rune events with ModCtrl set so the keymap sees
// one shape for "ctrl+s" no matter the terminal.
func convertKey(ev *tcell.EventKey) (key.Event, bool) {
	mod := convertMod(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return key.Event{Key: key.KeyRune, Rune: ev.Rune(), Mod: mod}, true
	case tcell.KeyUp:
		return key.Event{Key: key.KeyUp, Mod: mod}, true
	case tcell.KeyDown:
		return key.Event{Key: key.KeyDown, Mod: mod}, true
	case tcell.KeyLeft:
		return key.Event{Key: key.KeyLeft, Mod: mod}, true
	case tcell.KeyRight:
		return key.Event{Key: key.KeyRight, Mod: mod}, true
	case tcell.KeyHome:
		return key.Event{Key: key.KeyHome, Mod: mod}, true
	case tcell.KeyEnd:
		return key.Event{Key: key.KeyEnd, Mod: mod}, true
	case tcell.KeyPgUp:
		return key.Event{Key: key.KeyPageUp, Mod: mod}, true
	case tcell.KeyPgDn:
		return key.Event{Key: key.KeyPageDown, Mod: mod}, true
	case tcell.KeyEnter:
		return key.Event{Key: key.KeyEnter, Mod: mod}, true
	case tcell.KeyTab:
		return key.Event{Key: key.KeyTab, Mod: mod}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Event{Key: key.KeyBackspace, Mod: mod}, true
	case tcell.KeyDelete:
		return key.Event{Key: key.KeyDelete, Mod: mod}, true
	case tcell.KeyInsert:
		return key.Event{Key: key.KeyInsert, Mod: mod}, true
	case tcell.KeyEsc:
		return key.Event{Key: key.KeyEscape, Mod: mod}, true
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + int(k) - int(tcell.KeyCtrlA))
		return key.Event{Key: key.KeyRune, Rune: r, Mod: mod | key.ModCtrl}, true
	}
	return key.Event{}, false
}

func convertMod(m tcell.ModMask) key.Modifier {
	var out key.Modifier
	if m&tcell.ModShift != 0 {
		out |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= key.ModAlt
	}
	return out
}
