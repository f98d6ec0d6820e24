// Package settings implements the theme selection scene.
package settings

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
	Name = "Settings"

	// Title is drawn above the theme list
	Title = "SELECT THEME"

	// BackLabel is the last entry, returning to the menu
	BackLabel = "Back"
)

// Scene lists the registered themes. Choosing one applies it to the shared
// config right away; Back returns to the menu.
type Scene struct {
	*scene.Base
	themes *config.ThemeRegistry
	list   *ui.ListLayer
}

// New creates the settings scene for every theme in themes
func New(f font.Font, cfg *config.Config, layers *layer.Manager, u *universal.Factory, themes *config.ThemeRegistry, nav scene.Navigator) *Scene {
	s := &Scene{themes: themes}

	items := make([]ui.Item, 0, len(themes.Names())+1)
	for _, name := range themes.Names() {
		items = append(items, ui.Item{Label: name, Key: name})
	}
	// An empty key marks Back; theme names are never empty
	items = append(items, ui.Item{Label: BackLabel})

	s.list = ui.NewListLayer(f, cfg, Title, items, func(it ui.Item) {
		if it.Key == "" {
			if err := nav.Set(scene.MenuKey); err != nil {
				log.WithError(err).Error("Failed to return to menu")
			}
			return
		}
		s.selectTheme(it.Key)
	})
	s.Base = scene.NewBase(Name, cfg, f, layers, u, s.list)
	return s
}

// List returns the theme list layer
func (s *Scene) List() *ui.ListLayer {
	return s.list
}

// OnEnter highlights the active theme
func (s *Scene) OnEnter() {
	for i, name := range s.themes.Names() {
		if name == s.Config().ThemeName {
			s.list.SetSelected(i)
			return
		}
	}
}

func (s *Scene) selectTheme(name string) {
	if err := s.themes.Apply(s.Config(), name); err != nil {
		log.WithError(err).WithField("theme", name).Error("Failed to apply theme")
		return
	}
	log.WithField("theme", name).Info("Theme changed")
	s.PopulateLayers()
}
