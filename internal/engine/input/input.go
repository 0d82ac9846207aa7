// Package input translates SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/sphereview/internal/engine/camera"
)

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventPointerMove
	EventPointerButton
	EventScroll
)

// Event is a processed input event. Only the fields relevant to Type are set.
type Event struct {
	Type EventType

	// Pointer position for EventPointerMove and EventPointerButton.
	X, Y float64

	Button camera.Button
	Action camera.Action

	// Positive scrolls away from the user.
	ScrollY float64

	Key sdl.Scancode

	Width  int
	Height int
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls pending SDL events and converts them.
func (i *Input) Update() {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := translate(event); ok {
			i.events = append(i.events, ev)
		}
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// translate converts a single SDL event. ok is false for events the viewer
// does not handle.
func translate(event sdl.Event) (ev Event, ok bool) {
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
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type: EventPointerMove,
			X:    float64(e.X),
			Y:    float64(e.Y),
		}, true

	case *sdl.MouseButtonEvent:
		action := camera.ActionPress
		if e.Type == sdl.MOUSEBUTTONUP {
			action = camera.ActionRelease
		}
		return Event{
			Type:   EventPointerButton,
			X:      float64(e.X),
			Y:      float64(e.Y),
			Button: mouseButton(e.Button),
			Action: action,
		}, true

	case *sdl.MouseWheelEvent:
		// PreciseY keeps fractional trackpad steps.
		y := float64(e.PreciseY)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		return Event{Type: EventScroll, ScrollY: y}, true
	}
	return Event{}, false
}

// mouseButton maps an SDL button index to a camera button.
func mouseButton(b uint8) camera.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return camera.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return camera.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return camera.ButtonRight
	default:
		return camera.ButtonOther
	}
}
