package universal

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
)

var colorRain = color.RGBA{120, 120, 200, 255}

// Registry keys of the built-in effects
const (
	SnowEffectKey = "snow_effect"
	RainEffectKey = "rain_effect"
)

const (
	rainLines    = 50
	rainLengthPx = 10
	rainSpeedPx  = 5  // per tick at the reference rate
	rainRefTPS   = 60 // tick rate rainSpeedPx is tuned for
)

// RainDrop is a single falling line
type RainDrop struct {
	X, Y   float64
	Length int
}

// RainLayer draws vertical lines falling down the screen and wrapping back
// above the top edge
type RainLayer struct {
	cfg   *config.Config
	Drops []RainDrop
}

// NewRainLayer scatters drops over the screen using rng
func NewRainLayer(cfg *config.Config, rng *rand.Rand) *RainLayer {
	l := &RainLayer{cfg: cfg, Drops: make([]RainDrop, rainLines)}
	for i := range l.Drops {
		l.Drops[i] = RainDrop{
			X:      rng.Float64() * float64(cfg.ScreenWidth),
			Y:      rng.Float64() * float64(cfg.ScreenHeight),
			Length: cfg.ScaleValue(rainLengthPx),
		}
	}
	return l
}

func (l *RainLayer) Z() layer.Z { return layer.ZRainEffect }

// Update moves every drop down; the speed is re-read from the scale each call
func (l *RainLayer) Update(dt float64) {
	speed := float64(l.cfg.ScaleValue(rainSpeedPx)) * dt * rainRefTPS
	for i := range l.Drops {
		d := &l.Drops[i]
		d.Y += speed
		if d.Y > float64(l.cfg.ScreenHeight) {
			d.Y = -float64(d.Length)
		}
	}
}

func (l *RainLayer) Draw(screen *ebiten.Image) {
	for _, d := range l.Drops {
		x := float32(int(d.X))
		y := float32(int(d.Y))
		vector.StrokeLine(screen, x, y, x, y+float32(d.Length), 1, colorRain, false)
	}
}

// RegisterEffects adds the built-in effect layers to reg. Effects share one
// RNG seeded with seed so runs are reproducible.
func RegisterEffects(reg *layer.Registry, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	reg.Register(SnowEffectKey, layer.CategoryEffect, func(ctx layer.Context) layer.Layer {
		return NewSnowLayer(ctx.Config, rng)
	})
	reg.Register(RainEffectKey, layer.CategoryEffect, func(ctx layer.Context) layer.Layer {
		return NewRainLayer(ctx.Config, rng)
	})
}
