package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Source yields the events of one tick
type Source interface {
	Poll() []Event
}

// Poller reads the current ebiten input state and turns edges into events.
// It must be polled once per tick from the game's Update.
type Poller struct {
	keys    []ebiten.Key
	chars   []rune
	lastX   int
	lastY   int
	hasLast bool
}

// NewPoller creates a poller
func NewPoller() *Poller {
	return &Poller{}
}

// Poll implements Source
func (p *Poller) Poll() []Event {
	var events []Event

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		events = append(events, Event{Type: EventKeyDown, Key: k})
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		events = append(events, Event{Type: EventKeyUp, Key: k})
	}

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	if len(p.chars) > 0 {
		events = append(events, Event{Type: EventTextInput, Text: string(p.chars)})
	}

	mx, my := ebiten.CursorPosition()
	if p.hasLast && (mx != p.lastX || my != p.lastY) {
		events = append(events, Event{Type: EventMouseMotion, X: mx, Y: my})
	}
	p.lastX, p.lastY, p.hasLast = mx, my, true

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			events = append(events, Event{Type: EventMouseButtonDown, Button: b, X: mx, Y: my})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			events = append(events, Event{Type: EventMouseButtonUp, Button: b, X: mx, Y: my})
		}
	}

	return events
}
