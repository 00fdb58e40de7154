// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX int // relative motion, valid with mouse capture
	DeltaY int
	Button uint8
}

// Input turns SDL events into Events and tracks which keys are held.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and converts them to Events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ev, ok := convert(event)
		if !ok {
			continue
		}
		i.push(ev)
		if ev.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

func convert(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		ev := Event{Key: e.Keysym.Scancode, Repeat: e.Repeat != 0}
		if e.Type == sdl.KEYDOWN {
			ev.Type = EventKeyDown
		} else {
			ev.Type = EventKeyUp
		}
		return ev, true

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			DeltaX: int(e.XRel),
			DeltaY: int(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		ev := Event{
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: e.Button,
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			ev.Type = EventMouseDown
		} else {
			ev.Type = EventMouseUp
		}
		return ev, true
	}
	return Event{}, false
}

// push records an event and updates held key state.
func (i *Input) push(ev Event) {
	switch ev.Type {
	case EventKeyDown:
		i.held[ev.Key] = true
	case EventKeyUp:
		delete(i.held, ev.Key)
	}
	i.events = append(i.events, ev)
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a key went down this frame, ignoring auto-repeat.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode && !e.Repeat {
			return true
		}
	}
	return false
}

// IsKeyHeld reports whether a key is currently down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// Axis returns 1 while only pos is held, -1 while only neg is held, else 0.
func (i *Input) Axis(pos, neg sdl.Scancode) float32 {
	var v float32
	if i.held[pos] {
		v++
	}
	if i.held[neg] {
		v--
	}
	return v
}

// MouseDelta sums the relative mouse motion of the last Update.
func (i *Input) MouseDelta() (dx, dy int) {
	for _, e := range i.events {
		if e.Type == EventMouseMove {
			dx += e.DeltaX
			dy += e.DeltaY
		}
	}
	return dx, dy
}
