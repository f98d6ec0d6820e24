// Package particle implements the falling sparks drawn around the selected
// entry of a menu.
package particle

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
)

const (
	gravity          = 500.0 // px/s²
	minSpeed         = 20.0  // px/s
	maxSpeed         = 50.0
	minAngle         = 80.0 // degrees, 90 points straight down
	maxAngle         = 100.0
	lifetime         = 1.0 // seconds
	radiusPx         = 6
	perSpawn         = 5
	paletteBlendSecs = 1.0
)

// Particle is one spark
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Color   config.RGB
}

// Alpha returns the fade-out opacity in [0, 255]
func (p *Particle) Alpha() uint8 {
	f := max(0, min(1, p.Life/p.MaxLife))
	return uint8(255 * f)
}

// Emitter spawns and moves particles. Its palette eases toward the live
// theme palette so a theme switch recolors new particles gradually.
type Emitter struct {
	cfg       *config.Config
	rng       *rand.Rand
	palette   []config.RGB
	Particles []Particle
}

// NewEmitter creates an emitter starting with the current theme palette
func NewEmitter(cfg *config.Config, rng *rand.Rand) *Emitter {
	return &Emitter{
		cfg:     cfg,
		rng:     rng,
		palette: append([]config.RGB(nil), cfg.Theme.Particles...),
	}
}

// Palette returns the colors new particles are picked from
func (e *Emitter) Palette() []config.RGB {
	return e.palette
}

// SpawnAround adds a handful of particles scattered around the center of r,
// clamped to r, heading roughly downward
func (e *Emitter) SpawnAround(r image.Rectangle) {
	if len(e.palette) == 0 || r.Empty() {
		return
	}
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	sx := float64(r.Dx()) / 4
	sy := float64(r.Dy()) / 4

	for range perSpawn {
		x := clamp(cx+e.rng.NormFloat64()*sx, float64(r.Min.X), float64(r.Max.X))
		y := clamp(cy+e.rng.NormFloat64()*sy, float64(r.Min.Y), float64(r.Max.Y))
		angle := (minAngle + e.rng.Float64()*(maxAngle-minAngle)) * math.Pi / 180
		speed := minSpeed + e.rng.Float64()*(maxSpeed-minSpeed)
		e.Particles = append(e.Particles, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    lifetime,
			MaxLife: lifetime,
			Color:   e.palette[e.rng.Intn(len(e.palette))],
		})
	}
}

// Update blends the palette, applies gravity and drops expired particles
func (e *Emitter) Update(dt float64) {
	e.palette = blendPalette(e.palette, e.cfg.Theme.Particles, min(1, dt/paletteBlendSecs))

	alive := e.Particles[:0]
	for _, p := range e.Particles {
		p.VY += gravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= dt
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	e.Particles = alive
}

// Draw renders every particle as a fading circle
func (e *Emitter) Draw(screen *ebiten.Image) {
	r := float32(max(e.cfg.ScaleValue(radiusPx), 1))
	for i := range e.Particles {
		p := &e.Particles[i]
		c := color.NRGBA{R: p.Color[0], G: p.Color[1], B: p.Color[2], A: p.Alpha()}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, c, true)
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// blendPalette moves from toward to by t. Palettes of different lengths
// cannot be blended and switch at once.
func blendPalette(from, to []config.RGB, t float64) []config.RGB {
	if len(from) != len(to) {
		return append([]config.RGB(nil), to...)
	}
	out := make([]config.RGB, len(to))
	for i := range to {
		out[i] = config.RGB{
			lerp(from[i][0], to[i][0], t),
			lerp(from[i][1], to[i][1], t),
			lerp(from[i][2], to[i][2], t),
		}
	}
	return out
}
