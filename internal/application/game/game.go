// Package game provides the ebiten.Game that drives input, scenes and recording.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/younwookim/retromenu/internal/application/input"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
)

// Scenes is what the game loop needs from the scene manager
type Scenes interface {
	Update(dt float64)
	Draw(screen *ebiten.Image)
	Err() error
}

// Recorder stores each tick's events
type Recorder interface {
	RecordFrame(events []input.Event)
}

// Finisher is implemented by sources that run out, such as a replay
type Finisher interface {
	Done() bool
}

// Game implements ebiten.Game.
//
// Each tick polls the input source, records the events if a recorder is
// set, dispatches them through the input manager and advances the scenes.
type Game struct {
	cfg      *config.Config
	scenes   Scenes
	input    *input.Manager
	source   input.Source
	recorder Recorder
	dt       float64
	frame    int
}

// New creates a Game. source may be nil for a game without input.
func New(cfg *config.Config, scenes Scenes, im *input.Manager, source input.Source) *Game {
	dt := 1.0 / 60.0
	if cfg.FPS > 0 {
		dt = 1.0 / float64(cfg.FPS)
	}
	return &Game{
		cfg:    cfg,
		scenes: scenes,
		input:  im,
		source: source,
		dt:     dt,
	}
}

// SetRecorder records every polled frame to r
func (g *Game) SetRecorder(r Recorder) {
	g.recorder = r
}

// Update polls and dispatches input, then updates the scenes.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if f, ok := g.source.(Finisher); ok && f.Done() {
		log.WithField("frames", g.frame).Info("Replay finished")
		return ebiten.Termination
	}

	var events []input.Event
	if g.source != nil {
		events = g.source.Poll()
	}
	if g.recorder != nil {
		g.recorder.RecordFrame(events)
	}
	if g.input != nil {
		g.input.ProcessAll(events)
	}

	g.scenes.Update(g.dt)
	g.frame++

	return g.scenes.Err()
}

// Draw renders the scenes.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scenes.Draw(screen)
}

// Layout returns the configured logical screen size.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

// Frame returns the number of completed ticks
func (g *Game) Frame() int {
	return g.frame
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
