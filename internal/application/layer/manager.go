package layer

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Manager owns the layers of the active scene and runs them in depth order.
// The sorted view is cached and rebuilt only after a mutation.
type Manager struct {
	layers []Layer
	sorted []Layer
	dirty  bool
}

// NewManager creates a manager holding layers
func NewManager(layers ...Layer) *Manager {
	return &Manager{
		layers: append([]Layer(nil), layers...),
		dirty:  true,
	}
}

func (m *Manager) sort() {
	if !m.dirty {
		return
	}
	m.sorted = append(m.sorted[:0], m.layers...)
	slices.SortStableFunc(m.sorted, func(a, b Layer) int {
		return int(a.Z()) - int(b.Z())
	})
	m.dirty = false
}

// Add appends l
func (m *Manager) Add(l Layer) {
	m.layers = append(m.layers, l)
	m.dirty = true
}

// Remove drops l if present
func (m *Manager) Remove(l Layer) {
	for i, existing := range m.layers {
		if existing == l {
			m.layers = slices.Delete(m.layers, i, i+1)
			m.dirty = true
			return
		}
	}
}

// MarkDirty forces a re-sort, e.g. after a layer changed its depth
func (m *Manager) MarkDirty() {
	m.dirty = true
}

// Clear removes every layer
func (m *Manager) Clear() {
	m.layers = nil
	m.sorted = nil
	m.dirty = true
}

// Len returns the number of layers
func (m *Manager) Len() int {
	return len(m.layers)
}

// Update updates layers from back to front
func (m *Manager) Update(dt float64) {
	m.sort()
	for _, l := range m.sorted {
		l.Update(dt)
	}
}

// Draw draws layers from back to front
func (m *Manager) Draw(screen *ebiten.Image) {
	m.sort()
	for _, l := range m.sorted {
		l.Draw(screen)
	}
}

// DrawDynamic draws only the non-persistent layers
func (m *Manager) DrawDynamic(screen *ebiten.Image) {
	m.sort()
	for _, l := range m.sorted {
		if !IsPersistent(l) {
			l.Draw(screen)
		}
	}
}

// DrawPersistent draws only the persistent layers
func (m *Manager) DrawPersistent(screen *ebiten.Image) {
	m.sort()
	for _, l := range m.sorted {
		if IsPersistent(l) {
			l.Draw(screen)
		}
	}
}

// Sorted returns a copy of the layers in depth order, front to back when
// reverse is set
func (m *Manager) Sorted(reverse bool) []Layer {
	m.sort()
	out := slices.Clone(m.sorted)
	if reverse {
		slices.Reverse(out)
	}
	return out
}
