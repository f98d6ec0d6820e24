// Package scene defines the Scene interface for game screens and the manager
// that switches between them.
//
// Each game screen (menu, play, settings, test, etc.) is a named collection of
// layers. All scenes share one layer.Manager; entering a scene repopulates it
// with the universal layers plus the scene's own layers.
package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/retromenu/internal/application/input"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/application/layer/universal"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font"
)

// Scene represents a game screen.
//
// The scene manager delegates Update, Draw and OnInput calls to the current
// scene. Scene switches go through Manager.Set.
type Scene interface {
	// Name returns the display name.
	Name() string

	// PopulateLayers fills the shared layer manager with this scene's layers.
	PopulateLayers()

	// OnEnter is called after PopulateLayers each time the scene becomes active.
	OnEnter()

	// OnExit is called when another scene takes over.
	OnExit()

	// OnInput handles a regular input event; true consumes it.
	OnInput(ev input.Event) bool

	// Update advances the scene by dt seconds.
	Update(dt float64)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// DrawDynamic and DrawPersistent draw the two layer subsets separately
	// so transitions can put an overlay between them.
	DrawDynamic(screen *ebiten.Image)
	DrawPersistent(screen *ebiten.Image)

	// Background returns the fill color drawn below every layer.
	Background() color.Color
}

// Navigator switches scenes or ends the game. *Manager implements it.
type Navigator interface {
	Set(name string) error
	Quit()
}

// Base implements Scene on top of a shared layer manager.
// Concrete scenes embed *Base and override what they need.
type Base struct {
	name      string
	cfg       *config.Config
	font      font.Font
	layers    *layer.Manager
	universal *universal.Factory
	extra     []layer.Layer
}

// NewBase creates a scene named name whose own layers are extra.
// universal may be nil for scenes without the shared layers.
func NewBase(name string, cfg *config.Config, f font.Font, layers *layer.Manager, u *universal.Factory, extra ...layer.Layer) *Base {
	return &Base{
		name:      name,
		cfg:       cfg,
		font:      f,
		layers:    layers,
		universal: u,
		extra:     extra,
	}
}

// Name implements Scene
func (b *Base) Name() string { return b.name }

// Config returns the shared configuration
func (b *Base) Config() *config.Config { return b.cfg }

// Font returns the shared font
func (b *Base) Font() font.Font { return b.font }

// LayerManager returns the shared layer manager
func (b *Base) LayerManager() *layer.Manager { return b.layers }

// Layers returns a copy of the scene-specific layers
func (b *Base) Layers() []layer.Layer {
	return append([]layer.Layer(nil), b.extra...)
}

// PopulateLayers clears the shared manager and adds the universal layers
// followed by the scene's own layers
func (b *Base) PopulateLayers() {
	b.layers.Clear()
	if b.universal != nil {
		for _, l := range b.universal.Layers(b.font, b.cfg) {
			b.layers.Add(l)
		}
	}
	for _, l := range b.extra {
		b.layers.Add(l)
	}
}

// OnEnter implements Scene
func (b *Base) OnEnter() {}

// OnExit implements Scene
func (b *Base) OnExit() {}

// OnInput forwards ev to the front-most layer that handles input.
// Only that layer sees the event.
func (b *Base) OnInput(ev input.Event) bool {
	return b.ForwardInput(ev)
}

// ForwardInput is the default OnInput behavior, exposed for scenes that
// override OnInput and fall back to it
func (b *Base) ForwardInput(ev input.Event) bool {
	for _, l := range b.layers.Sorted(true) {
		if h, ok := l.(layer.InputHandler); ok {
			return h.OnInput(ev)
		}
	}
	return false
}

// Update implements Scene
func (b *Base) Update(dt float64) {
	b.layers.Update(dt)
}

// Background implements Scene using the current theme
func (b *Base) Background() color.Color {
	return b.cfg.Theme.Background.Color()
}

// Draw implements Scene
func (b *Base) Draw(screen *ebiten.Image) {
	screen.Fill(b.Background())
	b.layers.Draw(screen)
}

// DrawDynamic implements Scene
func (b *Base) DrawDynamic(screen *ebiten.Image) {
	b.layers.DrawDynamic(screen)
}

// DrawPersistent implements Scene
func (b *Base) DrawPersistent(screen *ebiten.Image) {
	b.layers.DrawPersistent(screen)
}
