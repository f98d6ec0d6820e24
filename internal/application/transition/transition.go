// Package transition implements the effects played while switching scenes.
package transition

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
)

// DefaultKind is the transition used when none is requested
const DefaultKind = "simple"

// DefaultDuration is the transition length in seconds when none is configured
const DefaultDuration = 1.0

// Target is the incoming scene as seen by a transition
type Target interface {
	Update(dt float64)
	Background() color.Color
	DrawDynamic(screen *ebiten.Image)
	DrawPersistent(screen *ebiten.Image)
}

// Transition is a time-bound effect between two scenes
type Transition interface {
	Update(dt float64)
	Draw(screen *ebiten.Image)
	Done() bool
}

// Factory creates a transition from one scene to another
type Factory func(from, to Target, cfg *config.Config, duration float64) Transition

// Registry maps lowercase keys to transition factories
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates a registry with the built-in "simple" fade registered
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(DefaultKind, func(_, to Target, cfg *config.Config, d float64) Transition {
		return NewFade(to, cfg, d)
	})
	return r
}

// Register adds or replaces a factory
func (r *Registry) Register(kind string, f Factory) {
	r.factories[strings.ToLower(kind)] = f
}

// New creates the transition registered under kind
func (r *Registry) New(kind string, from, to Target, cfg *config.Config, duration float64) (Transition, error) {
	f, ok := r.factories[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("unknown transition %q", kind)
	}
	return f(from, to, cfg, duration), nil
}
