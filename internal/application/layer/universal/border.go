package universal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
)

// borderThicknessPx is the base border width before scaling
const borderThicknessPx = 4

// BorderLayer frames the screen in the theme's border color.
// The color is read on every draw so theme switches apply immediately.
type BorderLayer struct {
	cfg *config.Config
}

// NewBorderLayer creates a border layer
func NewBorderLayer(cfg *config.Config) *BorderLayer {
	return &BorderLayer{cfg: cfg}
}

func (l *BorderLayer) Z() layer.Z { return layer.ZBorder }
func (l *BorderLayer) Persistent() bool { return true }
func (l *BorderLayer) Update(dt float64) {}

// Thickness returns the scaled border width in pixels
func (l *BorderLayer) Thickness() int {
	return l.cfg.ScaleValue(borderThicknessPx)
}

func (l *BorderLayer) Draw(screen *ebiten.Image) {
	t := float32(l.Thickness())
	if t <= 0 {
		return
	}
	w, h := float32(l.cfg.ScreenWidth), float32(l.cfg.ScreenHeight)
	// Stroke is centered on the path; inset by half so the frame stays on screen
	vector.StrokeRect(screen, t/2, t/2, w-t, h-t, t, l.cfg.Theme.Border.Color(), false)
}
