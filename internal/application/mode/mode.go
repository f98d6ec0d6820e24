// Package mode keeps the playable game modes the play scene can host.
package mode

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/retromenu/internal/application/input"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font"
)

// ErrUnknownMode is returned when a mode key is not registered
var ErrUnknownMode = errors.New("unknown game mode")

// Constructor builds the layer that runs a mode inside the play scene
type Constructor func(f font.Font, cfg *config.Config) layer.Layer

// Info describes a registered mode
type Info struct {
	Key   string
	Label string
}

// Registry maps lowercase mode keys to constructors
type Registry struct {
	labels map[string]string
	modes  map[string]Constructor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		labels: make(map[string]string),
		modes:  make(map[string]Constructor),
	}
}

// Register adds or replaces the mode called name
func (r *Registry) Register(name string, c Constructor) {
	key := strings.ToLower(name)
	r.labels[key] = name
	r.modes[key] = c
}

// Modes returns every registered mode sorted by key
func (r *Registry) Modes() []Info {
	out := make([]Info, 0, len(r.modes))
	for key, label := range r.labels {
		out = append(out, Info{Key: key, Label: label})
	}
	slices.SortFunc(out, func(a, b Info) int { return strings.Compare(a.Key, b.Key) })
	return out
}

// Has reports whether key (case-insensitive) is registered
func (r *Registry) Has(key string) bool {
	_, ok := r.modes[strings.ToLower(key)]
	return ok
}

// New builds the layer of the mode registered under key
func (r *Registry) New(key string, f font.Font, cfg *config.Config) (layer.Layer, error) {
	c, ok := r.modes[strings.ToLower(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, key)
	}
	return c(f, cfg), nil
}

// Built-in mode names
const (
	SpaceShooter = "Space Shooter"
	TowerDefense = "Tower Defense"
)

// RegisterBuiltins adds the bundled modes. Both are placeholders that only
// announce themselves until real gameplay exists.
func RegisterBuiltins(r *Registry) {
	for _, name := range []string{SpaceShooter, TowerDefense} {
		text := name + " Mode"
		r.Register(name, func(f font.Font, cfg *config.Config) layer.Layer {
			return NewPlaceholder(f, cfg, text)
		})
	}
}

// Placeholder draws a single label in the middle of the screen
type Placeholder struct {
	font font.Font
	cfg  *config.Config
	text string
}

// NewPlaceholder creates a placeholder showing text
func NewPlaceholder(f font.Font, cfg *config.Config, text string) *Placeholder {
	return &Placeholder{font: f, cfg: cfg, text: text}
}

// Text returns the label
func (p *Placeholder) Text() string { return p.text }

// Z implements layer.Layer
func (p *Placeholder) Z() layer.Z { return layer.ZMenu }

func (p *Placeholder) Update(dt float64) {}

// Draw renders the label in the theme's font color
func (p *Placeholder) Draw(screen *ebiten.Image) {
	font.DrawCentered(screen, p.font, p.text, p.cfg.ScreenWidth/2, p.cfg.ScreenHeight/2, p.cfg.Theme.Font.Color())
}

// OnInput implements layer.InputHandler; placeholders take no input
func (p *Placeholder) OnInput(input.Event) bool { return false }
