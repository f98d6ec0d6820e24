package particle

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/retromenu/internal/application/layer"
)

// MenuEffectKey is the registry key of the menu particle layer
const MenuEffectKey = "menu_particle_effect"

// spawnInterval is the time between bursts around the selected entry
const spawnInterval = 0.2

// MenuLayer sprinkles particles around the selected entry of a list. A
// selection change spawns a burst at the new entry right away.
type MenuLayer struct {
	target       layer.Selection
	emitter      *Emitter
	lastSelected int
	timer        float64
}

// NewMenuLayer creates a particle layer following target
func NewMenuLayer(ctx layer.Context, rng *rand.Rand) *MenuLayer {
	return &MenuLayer{
		target:       ctx.Selection,
		emitter:      NewEmitter(ctx.Config, rng),
		lastSelected: ctx.Selection.Selected(),
	}
}

// Register adds the menu particle layer to reg. Instances share one RNG
// seeded with seed.
func Register(reg *layer.Registry, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	reg.Register(MenuEffectKey, layer.CategoryMenuOnly, func(ctx layer.Context) layer.Layer {
		return NewMenuLayer(ctx, rng)
	})
}

// Emitter returns the underlying particle system
func (l *MenuLayer) Emitter() *Emitter { return l.emitter }

// Z places the particles under the menu buttons
func (l *MenuLayer) Z() layer.Z { return layer.ZBackgroundArt }

func (l *MenuLayer) Update(dt float64) {
	l.emitter.Update(dt)

	if cur := l.target.Selected(); cur != l.lastSelected {
		l.lastSelected = cur
		l.spawn()
	}

	l.timer += dt
	if l.timer >= spawnInterval {
		l.spawn()
		l.timer = 0
	}
}

func (l *MenuLayer) spawn() {
	if r, ok := l.target.SelectedRect(); ok {
		l.emitter.SpawnAround(r)
	}
}

func (l *MenuLayer) Draw(screen *ebiten.Image) {
	l.emitter.Draw(screen)
}
