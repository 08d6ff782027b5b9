// Package input handles SDL2 input events and held-key polling.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Patryk0329/DayNightSimulation/internal/sim"
)

// Event types for loop use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to loop events.
// Returns true if the demo should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// Intent snapshots the currently held keys into the simulation's input
// intent: WASD + Q/E to move, arrow keys to look, P/O to drive the clock.
func (i *Input) Intent() sim.Intent {
	keys := sdl.GetKeyboardState()
	held := func(sc sdl.Scancode) bool {
		return keys[sc] != 0
	}

	return sim.Intent{
		Forward: held(sdl.SCANCODE_W),
		Back:    held(sdl.SCANCODE_S),
		Left:    held(sdl.SCANCODE_A),
		Right:   held(sdl.SCANCODE_D),
		Up:      held(sdl.SCANCODE_Q),
		Down:    held(sdl.SCANCODE_E),

		LookLeft:  held(sdl.SCANCODE_LEFT),
		LookRight: held(sdl.SCANCODE_RIGHT),
		LookUp:    held(sdl.SCANCODE_UP),
		LookDown:  held(sdl.SCANCODE_DOWN),

		TimeForward: held(sdl.SCANCODE_P),
		TimeBack:    held(sdl.SCANCODE_O),
	}
}
