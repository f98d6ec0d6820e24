// Package modeselect implements the scene where the player picks the game
// mode the play scene will run.
package modeselect

import (
	log "github.com/sirupsen/logrus"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/application/layer/universal"
	"github.com/younwookim/retromenu/internal/application/mode"
	"github.com/younwookim/retromenu/internal/application/scene"
	"github.com/younwookim/retromenu/internal/application/ui"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font"
)

const (
	// Key is the scene's registry key
	Key = "modes"

	// Name is the scene's display name
	Name = "GameModeSelection"

	// Title is drawn above the mode list
	Title = "SELECT GAME MODE"

	// BackLabel is the last entry, returning to the menu
	BackLabel = "Back"

	// PlayKey is the scene a chosen mode runs in
	PlayKey = "play"
)

// Scene lists the registered game modes, sorted by key, followed by Back.
// The list keeps its selection between visits.
type Scene struct {
	*scene.Base
	list *ui.ListLayer
}

// New creates the mode selection scene. Menu-only layers of decorations
// (may be nil) follow the selected button.
func New(f font.Font, cfg *config.Config, layers *layer.Manager, u *universal.Factory, modes *mode.Registry, decorations *layer.Registry, nav scene.Navigator) *Scene {
	infos := modes.Modes()
	items := make([]ui.Item, 0, len(infos)+1)
	for _, m := range infos {
		items = append(items, ui.Item{Label: m.Label, Key: m.Key})
	}
	// An empty key marks Back; mode keys are never empty
	items = append(items, ui.Item{Label: BackLabel})

	list := ui.NewListLayer(f, cfg, Title, items, func(it ui.Item) {
		target := scene.MenuKey
		if it.Key != "" {
			cfg.SelectedGameMode = it.Key
			log.WithField("mode", it.Label).Info("Game mode selected")
			target = PlayKey
		}
		if err := nav.Set(target); err != nil {
			log.WithError(err).WithField("item", it.Label).Error("Mode selection failed")
		}
	})
	extra := append([]layer.Layer{list}, decorations.Build(layer.CategoryMenuOnly, layer.Context{Config: cfg, Selection: list})...)
	return &Scene{
		Base: scene.NewBase(Name, cfg, f, layers, u, extra...),
		list: list,
	}
}

// List returns the mode list layer
func (s *Scene) List() *ui.ListLayer {
	return s.list
}
