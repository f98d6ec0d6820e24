// Package testscene provides a scene used to check that the layered
// rendering and scene switching work end to end.
package testscene

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/retromenu/internal/application/input"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/application/layer/universal"
	"github.com/younwookim/retromenu/internal/application/scene"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font"
)

const (
	// Name is the scene's display name
	Name = "Test Scene"

	// Text is the label drawn in the middle of the screen
	Text = "TEST SCENE"

	// DegreesPerSecond is the animation speed of the layer angle
	DegreesPerSecond = 120.0
)

// Scene is a scene holding a single TestLayer on top of the universal layers
type Scene struct {
	*scene.Base
	layer *Layer
}

// New creates the test scene
func New(f font.Font, cfg *config.Config, layers *layer.Manager, u *universal.Factory) *Scene {
	l := NewLayer(f, cfg)
	return &Scene{
		Base:  scene.NewBase(Name, cfg, f, layers, u, l),
		layer: l,
	}
}

// TestLayer returns the scene's layer
func (s *Scene) TestLayer() *Layer {
	return s.layer
}

// Layer draws Text centered on screen and tracks an angle in [0, 360)
// that advances with time.
type Layer struct {
	font  font.Font
	cfg   *config.Config
	angle float64
}

// NewLayer creates a test layer with angle 0
func NewLayer(f font.Font, cfg *config.Config) *Layer {
	return &Layer{font: f, cfg: cfg}
}

// Z implements layer.Layer; the test layer is drawn above everything
func (l *Layer) Z() layer.Z { return layer.ZTest }

// Angle returns the current angle in degrees
func (l *Layer) Angle() float64 { return l.angle }

// Update advances the angle by DegreesPerSecond*dt, wrapped to [0, 360)
func (l *Layer) Update(dt float64) {
	a := math.Mod(l.angle+DegreesPerSecond*dt, 360)
	if a < 0 {
		a += 360
	}
	// A tiny negative remainder plus 360 can round to 360
	if a >= 360 {
		a = 0
	}
	l.angle = a
}

// Draw renders Text in white at the screen center. The angle is not
// applied to the text.
// TODO: rotate the label by angle once the intended rendering is decided.
func (l *Layer) Draw(screen *ebiten.Image) {
	font.DrawCentered(screen, l.font, Text, l.cfg.ScreenWidth/2, l.cfg.ScreenHeight/2, color.White)
}

// OnInput implements layer.InputHandler and ignores every event
func (l *Layer) OnInput(input.Event) bool {
	return false
}
