// Package play implements the scene that hosts the selected game mode.
package play

import (
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/younwookim/retromenu/internal/application/input"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/application/layer/universal"
	"github.com/younwookim/retromenu/internal/application/mode"
	"github.com/younwookim/retromenu/internal/application/scene"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font"
)

// Name is the scene's display name
const Name = "Play"

// Scene shows the universal layers plus the layer of cfg.SelectedGameMode,
// built fresh on every entry. An unregistered mode leaves only the
// universal layers.
type Scene struct {
	*scene.Base
	modes   *mode.Registry
	current layer.Layer
}

// New creates the play scene. modes may be nil.
func New(f font.Font, cfg *config.Config, layers *layer.Manager, u *universal.Factory, modes *mode.Registry) *Scene {
	return &Scene{
		Base:  scene.NewBase(Name, cfg, f, layers, u),
		modes: modes,
	}
}

// Mode returns the running mode's layer, nil when none is loaded
func (s *Scene) Mode() layer.Layer {
	return s.current
}

// PopulateLayers adds the universal layers, then loads the selected mode
func (s *Scene) PopulateLayers() {
	s.Base.PopulateLayers()
	s.current = nil
	if s.modes == nil {
		return
	}
	key := s.Config().SelectedGameMode
	l, err := s.modes.New(key, s.Font(), s.Config())
	if err != nil {
		log.WithField("mode", key).Debug("No game mode to load")
		return
	}
	s.current = l
	s.LayerManager().Add(l)
	log.WithField("mode", key).Info("Loaded game mode")
}

// OnInput leaves Escape to the global handlers and forwards the rest
func (s *Scene) OnInput(ev input.Event) bool {
	if ev.IsKeyDown(ebiten.KeyEscape) {
		return false
	}
	return s.ForwardInput(ev)
}
