package universal

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
)

const (
	snowFlakes      = 100
	snowMinSize     = 4.0
	snowMaxSize     = 8.0
	snowMinSpeed    = 20.0 // px/s
	snowMaxSpeed    = 40.0
	snowDriftStart  = 0.5 // initial |drift| bound, px/s
	snowDriftJitter = 0.05
	snowDriftMax    = 1.0
)

// Flake is a single snowflake
type Flake struct {
	X, Y  float64
	Size  float64
	Speed float64
	Drift float64
}

// SnowLayer draws white flakes falling with a wandering sideways drift.
// A flake leaving the bottom re-enters above the top at a random x.
type SnowLayer struct {
	cfg    *config.Config
	rng    *rand.Rand
	Flakes []Flake
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// NewSnowLayer scatters flakes over the screen using rng
func NewSnowLayer(cfg *config.Config, rng *rand.Rand) *SnowLayer {
	l := &SnowLayer{cfg: cfg, rng: rng, Flakes: make([]Flake, snowFlakes)}
	for i := range l.Flakes {
		l.Flakes[i] = Flake{
			X:     uniform(rng, 0, float64(cfg.ScreenWidth)),
			Y:     uniform(rng, 0, float64(cfg.ScreenHeight)),
			Size:  uniform(rng, snowMinSize, snowMaxSize),
			Speed: uniform(rng, snowMinSpeed, snowMaxSpeed),
			Drift: uniform(rng, -snowDriftStart, snowDriftStart),
		}
	}
	return l
}

func (l *SnowLayer) Z() layer.Z { return layer.ZRainEffect }

// Update moves every flake and lets its drift wander within ±snowDriftMax
func (l *SnowLayer) Update(dt float64) {
	h := float64(l.cfg.ScreenHeight)
	for i := range l.Flakes {
		f := &l.Flakes[i]
		f.Y += f.Speed * dt
		f.X += f.Drift * dt
		f.Drift += uniform(l.rng, -snowDriftJitter, snowDriftJitter) * dt
		f.Drift = max(min(f.Drift, snowDriftMax), -snowDriftMax)
		if f.Y > h {
			f.Y = -f.Size
			f.X = uniform(l.rng, 0, float64(l.cfg.ScreenWidth))
		}
	}
}

func (l *SnowLayer) Draw(screen *ebiten.Image) {
	for _, f := range l.Flakes {
		vector.DrawFilledCircle(screen, float32(int(f.X)), float32(int(f.Y)), float32(int(f.Size)), color.White, false)
	}
}
