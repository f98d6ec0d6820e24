// Package menu implements the main menu scene.
package menu

import (
	log "github.com/sirupsen/logrus"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/application/layer/universal"
	"github.com/younwookim/retromenu/internal/application/scene"
	"github.com/younwookim/retromenu/internal/application/ui"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font"
)

const (
	// Name is the scene's display name
	Name = "Menu"

	// Title is drawn above the buttons
	Title = "MAIN MENU"

	// QuitKey is the item key that ends the game instead of switching scenes
	QuitKey = "quit"
)

// Items are the main menu entries; Key is the scene key to switch to
var Items = []ui.Item{
	{Label: "Play", Key: "modes"},
	{Label: "Settings", Key: "settings"},
	{Label: "Test", Key: "test"},
	{Label: "Quit", Key: QuitKey},
}

// Scene is the main menu
type Scene struct {
	*scene.Base
	list *ui.ListLayer
}

// New creates the menu. Selected items are passed to nav. The menu-only
// layers of decorations (may be nil) follow the selected button.
func New(f font.Font, cfg *config.Config, layers *layer.Manager, u *universal.Factory, decorations *layer.Registry, nav scene.Navigator) *Scene {
	list := ui.NewListLayer(f, cfg, Title, Items, func(it ui.Item) {
		if it.Key == QuitKey {
			nav.Quit()
			return
		}
		if err := nav.Set(it.Key); err != nil {
			log.WithError(err).WithField("item", it.Label).Error("Menu selection failed")
		}
	})
	extra := append([]layer.Layer{list}, decorations.Build(layer.CategoryMenuOnly, layer.Context{Config: cfg, Selection: list})...)
	return &Scene{
		Base: scene.NewBase(Name, cfg, f, layers, u, extra...),
		list: list,
	}
}

// List returns the button list layer
func (s *Scene) List() *ui.ListLayer {
	return s.list
}
