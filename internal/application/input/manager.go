package input

import "github.com/hajimehoshi/ebiten/v2"

// Handler receives regular input events.
// Returning true consumes the event and stops further dispatch.
type Handler interface {
	OnInput(ev Event) bool
}

// GlobalHandler receives global key presses before any regular handler.
type GlobalHandler interface {
	OnGlobalInput(ev Event) bool
}

// GlobalKeys decides which key presses are global
type GlobalKeys interface {
	IsGlobalKey(key ebiten.Key) bool
}

// Manager dispatches events through a prioritized pipeline:
//  1. key presses of a global key go to GlobalHandlers first,
//  2. then key presses and mouse events go to Handlers until one consumes.
//
// Other event types are dropped.
type Manager struct {
	keys     GlobalKeys
	handlers []any
}

// NewManager creates a dispatcher using keys to identify global presses
func NewManager(keys GlobalKeys) *Manager {
	return &Manager{keys: keys}
}

// Register adds h if it is not already registered.
// h must implement Handler, GlobalHandler or both.
func (m *Manager) Register(h any) {
	for _, existing := range m.handlers {
		if existing == h {
			return
		}
	}
	m.handlers = append(m.handlers, h)
}

// Unregister removes h; unknown handlers are ignored
func (m *Manager) Unregister(h any) {
	for i, existing := range m.handlers {
		if existing == h {
			m.handlers = append(m.handlers[:i], m.handlers[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered handlers
func (m *Manager) Len() int {
	return len(m.handlers)
}

// Process dispatches a single event and reports whether it was consumed
func (m *Manager) Process(ev Event) bool {
	switch {
	case ev.Type == EventKeyDown:
		if m.keys == nil || m.keys.IsGlobalKey(ev.Key) {
			for _, h := range m.handlers {
				if g, ok := h.(GlobalHandler); ok && g.OnGlobalInput(ev) {
					return true
				}
			}
		}
		return m.dispatch(ev)
	case ev.Type.IsMouse():
		return m.dispatch(ev)
	}
	return false
}

// ProcessAll dispatches events in order
func (m *Manager) ProcessAll(events []Event) {
	for _, ev := range events {
		m.Process(ev)
	}
}

func (m *Manager) dispatch(ev Event) bool {
	for _, h := range m.handlers {
		if r, ok := h.(Handler); ok && r.OnInput(ev) {
			return true
		}
	}
	return false
}
