// Package input turns ebiten input state into discrete events and dispatches
// them to registered handlers.
package input

import "github.com/hajimehoshi/ebiten/v2"

// EventType identifies the kind of an input Event
type EventType int

const (
	EventNone EventType = iota
	EventKeyDown
	EventKeyUp
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseMotion
	EventTextInput
)

// String returns the string representation of the event type
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventMouseButtonDown:
		return "MouseButtonDown"
	case EventMouseButtonUp:
		return "MouseButtonUp"
	case EventMouseMotion:
		return "MouseMotion"
	case EventTextInput:
		return "TextInput"
	default:
		return "Unknown"
	}
}

// IsMouse reports whether t is a mouse event type
func (t EventType) IsMouse() bool {
	return t == EventMouseButtonDown || t == EventMouseButtonUp || t == EventMouseMotion
}

// Event is a single input occurrence
type Event struct {
	Type   EventType
	Key    ebiten.Key         // KeyDown, KeyUp
	Button ebiten.MouseButton // MouseButtonDown, MouseButtonUp
	X, Y   int                // Cursor position for mouse events
	Text   string             // TextInput
}

// KeyDown builds a key press event
func KeyDown(key ebiten.Key) Event {
	return Event{Type: EventKeyDown, Key: key}
}

// IsKeyDown reports whether e is a press of any of keys
func (e Event) IsKeyDown(keys ...ebiten.Key) bool {
	if e.Type != EventKeyDown {
		return false
	}
	for _, k := range keys {
		if e.Key == k {
			return true
		}
	}
	return false
}
