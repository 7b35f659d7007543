package app

import (
	"time"

	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/render/backend"
)

// loop is the main event loop: drain every pending event, redraw once
// if any of them changed something, otherwise sleep the idle wait.
// Batching the redraw keeps held-down keys from painting per event.
func (a *App) loop() {
	a.redrawScreen()
	for !a.quit {
		redraw := false
		for !a.quit && a.backend.HasPendingEvent() {
			if a.handleEvent(a.backend.PollEvent()) {
				redraw = true
			}
		}
		switch {
		case a.quit:
		case redraw:
			a.redrawScreen()
		default:
			time.Sleep(a.idleWait())
		}
	}
}

func (a *App) idleWait() time.Duration {
	ms := a.opts.IdleWaitMS
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

func (a *App) redrawScreen() {
	a.backend.Replay(a.window.BuildList(a.theme), a.theme.Background)
}

// handleEvent processes one backend event and reports whether the
// screen needs repainting.
func (a *App) handleEvent(ev backend.Event) bool {
	switch ev.Type {
	case backend.EventQuit:
		a.quit = true
		return false
	case backend.EventResize:
		a.window.Resize(ev.Width, ev.Height)
		return true
	case backend.EventReload:
		a.reloadConfig()
		return true
	case backend.EventKey:
		return a.dispatchKey(ev.Key)
	}
	return false
}

// dispatchKey routes a key press: quit on plain Escape, keymap commands
// next, and any remaining printable rune is inserted as text. A shifted
// event extends the selection from the caret; an unshifted one releases
// the anchor before the command moves the caret.
func (a *App) dispatchKey(ev key.Event) bool {
	if ev.Key == key.KeyEscape && ev.Mod == key.ModNone {
		a.quit = true
		return false
	}
	v := a.window.ActiveView()
	if v == nil {
		return false
	}

	if ev.Mod.Has(key.ModShift) {
		v.StartSelection()
	} else {
		v.EndSelection()
	}

	if cmd, ok := a.table.Lookup(ev); ok {
		if err := cmd.Run(v); err != nil {
			a.log.Error("command %s on buffer %s: %v", cmd.Name(), v.Buffer().ID(), err)
		}
		return true
	}
	if ev.IsText() {
		v.InsertChar(ev.Rune)
		return true
	}
	return false
}
