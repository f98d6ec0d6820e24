package scene

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/younwookim/retromenu/internal/application/input"
	"github.com/younwookim/retromenu/internal/application/state"
	"github.com/younwookim/retromenu/internal/application/transition"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
)

// MenuKey is the scene global input returns to
const MenuKey = "menu"

var (
	// ErrUnknownScene is returned when switching to a scene that was never added
	ErrUnknownScene = errors.New("unknown scene")

	// ErrQuitting is returned when switching scenes after Quit
	ErrQuitting = errors.New("game is quitting")
)

// Manager owns the registered scenes, the active one and any running
// transition. It implements input.Handler and input.GlobalHandler.
type Manager struct {
	cfg         *config.Config
	transitions *transition.Registry
	scenes      map[string]Scene
	current     Scene
	currentKey  string
	transition  transition.Transition
	state       state.SceneState
}

// NewManager creates a scene manager. transitions may be nil, in which case
// scene switches are immediate.
func NewManager(cfg *config.Config, transitions *transition.Registry) *Manager {
	return &Manager{
		cfg:         cfg,
		transitions: transitions,
		scenes:      make(map[string]Scene),
		state:       state.StateEmpty,
	}
}

// Add registers s under name, replacing any previous scene of that name
func (m *Manager) Add(name string, s Scene) {
	m.scenes[name] = s
}

// Has reports whether a scene is registered under name
func (m *Manager) Has(name string) bool {
	_, ok := m.scenes[name]
	return ok
}

// Set switches to the named scene using the configured transition
func (m *Manager) Set(name string) error {
	return m.SetWith(name, m.cfg.Transition.Kind, m.cfg.Transition.Duration)
}

// SetWith switches to the named scene. The incoming scene is populated and
// entered immediately. If another scene was active, it is exited and the
// transition kind plays for duration seconds; an empty kind selects the
// default transition and an unregistered kind switches without one.
// Once Quit was called no further switch happens.
func (m *Manager) SetWith(name, kind string, duration float64) error {
	if m.state == state.StateQuitting {
		return ErrQuitting
	}
	next, ok := m.scenes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	next.PopulateLayers()
	next.OnEnter()
	log.WithField("scene", next.Name()).Info("Entered scene")

	prev := m.current
	m.current = next
	m.currentKey = name
	m.transition = nil
	m.state = state.StateIdle

	if prev == nil {
		return nil
	}
	prev.OnExit()

	if m.transitions == nil {
		return nil
	}
	if kind == "" {
		kind = transition.DefaultKind
	}
	if duration <= 0 {
		duration = transition.DefaultDuration
	}
	t, err := m.transitions.New(kind, prev, next, m.cfg, duration)
	if err != nil {
		log.WithError(err).WithField("scene", name).Warn("Switching without transition")
		return nil
	}
	m.transition = t
	m.state = state.StateTransitioning
	return nil
}

// Current returns the active scene, nil before the first Set
func (m *Manager) Current() Scene {
	return m.current
}

// CurrentKey returns the registry key of the active scene
func (m *Manager) CurrentKey() string {
	return m.currentKey
}

// Transitioning reports whether a transition is playing
func (m *Manager) Transitioning() bool {
	return m.transition != nil
}

// State returns what the manager is doing
func (m *Manager) State() state.SceneState {
	return m.state
}

// Quit asks the game loop to stop after the current tick. It cannot be undone.
func (m *Manager) Quit() {
	log.Info("Quit requested")
	m.state = state.StateQuitting
}

// Err returns ebiten.Termination once Quit was called
func (m *Manager) Err() error {
	if m.state == state.StateQuitting {
		return ebiten.Termination
	}
	return nil
}

// Update advances the transition if one is playing, otherwise the scene
func (m *Manager) Update(dt float64) {
	if !m.state.Running() {
		return
	}
	switch {
	case m.transition != nil:
		m.transition.Update(dt)
		if m.transition.Done() {
			m.transition = nil
			if m.state == state.StateTransitioning {
				m.state = state.StateIdle
			}
		}
	case m.current != nil:
		m.current.Update(dt)
	}
}

// Draw renders the transition if one is playing, otherwise the scene
func (m *Manager) Draw(screen *ebiten.Image) {
	switch {
	case m.transition != nil:
		m.transition.Draw(screen)
	case m.current != nil:
		m.current.Draw(screen)
	}
}

// OnInput implements input.Handler. Input is ignored while transitioning
// and after Quit.
func (m *Manager) OnInput(ev input.Event) bool {
	if !m.state.Running() || m.transition != nil {
		return false
	}
	return m.current.OnInput(ev)
}

// OnGlobalInput implements input.GlobalHandler by returning to the menu
func (m *Manager) OnGlobalInput(ev input.Event) bool {
	if !m.state.Running() || !m.cfg.EnableGlobalControls || !m.Has(MenuKey) {
		return false
	}
	if err := m.Set(MenuKey); err != nil {
		log.WithError(err).Error("Failed to return to menu")
		return false
	}
	return true
}
