package transition

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
)

// Fade reveals the incoming scene from behind a black overlay that fades out.
// Persistent layers are drawn above the overlay so they never dim.
type Fade struct {
	to       Target
	cfg      *config.Config
	duration float64
	elapsed  float64
}

// NewFade creates a fade into to lasting duration seconds
func NewFade(to Target, cfg *config.Config, duration float64) *Fade {
	return &Fade{to: to, cfg: cfg, duration: duration}
}

// Update advances the fade and keeps the incoming scene animated
func (f *Fade) Update(dt float64) {
	f.elapsed += dt
	f.to.Update(dt)
}

// Progress returns completion in [0, 1]
func (f *Fade) Progress() float64 {
	if f.duration <= 0 {
		return 1
	}
	return min(f.elapsed/f.duration, 1)
}

// Alpha returns the overlay opacity: 255 at the start, 0 when done
func (f *Fade) Alpha() uint8 {
	return uint8((1 - f.Progress()) * 255)
}

// Done implements Transition
func (f *Fade) Done() bool {
	return f.elapsed >= f.duration
}

// Draw implements Transition
func (f *Fade) Draw(screen *ebiten.Image) {
	// Full fill first so nothing of the old scene smears through
	screen.Fill(f.to.Background())
	f.to.DrawDynamic(screen)

	if a := f.Alpha(); a > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(f.cfg.ScreenWidth), float32(f.cfg.ScreenHeight), color.RGBA{A: a}, false)
	}

	f.to.DrawPersistent(screen)
}
