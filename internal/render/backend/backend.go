// Package backend connects the editor core to a terminal. It is the only
// package that touches the screen: events come out normalized, and the
// render pipeline's display list goes back in to be replayed onto cells.
package backend

import (
	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/render"
)

// EventType identifies a backend event.
type EventType int

const (
	EventNone EventType = iota
	// EventKey is a normalized key press (character or special key).
	EventKey
	// EventResize reports new surface dimensions.
	EventResize
	// EventQuit is a close request from the backend.
	EventQuit
	// EventReload asks the application to re-read its configuration.
	EventReload
)

// Event is a backend event, already normalized for dispatch.
type Event struct {
	Type EventType

	// EventKey
	Key key.Event

	// EventResize
	Width, Height int
}

// Backend is the surface the editor runs against. A terminal implements
// it with tcell; tests implement it in memory.
type Backend interface {
	Init() error
	Shutdown()

	// Size returns the surface dimensions in cells.
	Size() (width, height int)

	// HasPendingEvent reports whether PollEvent would return without
	// blocking.
	HasPendingEvent() bool

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostReload injects an EventReload into the event queue. Safe to
	// call from other goroutines.
	PostReload()

	// Replay clears the surface to the background color and replays the
	// display list onto it.
	Replay(list []render.Command, background render.Color)
}
