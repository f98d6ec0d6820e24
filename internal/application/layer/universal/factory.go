// Package universal provides the layers shared by every scene: star field,
// snow or rain, background art, instructions and the screen border.
package universal

import (
	log "github.com/sirupsen/logrus"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font"
)

type staticKey struct {
	font  font.Font
	scale float64
	w, h  int
}

type effectKey struct {
	name  string
	scale float64
	w, h  int
}

type staticSet struct {
	star        *StarArtLayer
	background  *BackgroundArtLayer
	instruction *InstructionLayer
	border      *BorderLayer
}

// Factory builds the universal layers and caches them so that switching
// scenes reuses instances. Static layers are cached per font and screen
// geometry; effect layers per geometry and key. Only the effects listed in
// cfg.Effects are used. Entries for other geometries are kept, so flipping
// between sizes does not rebuild anything.
type Factory struct {
	effects *layer.Registry
	static  map[staticKey]*staticSet
	effect  map[effectKey]layer.Layer
}

// NewFactory creates a factory that instantiates the enabled effects from
// effects (may be nil)
func NewFactory(effects *layer.Registry) *Factory {
	return &Factory{
		effects: effects,
		static:  make(map[staticKey]*staticSet),
		effect:  make(map[effectKey]layer.Layer),
	}
}

// Refresh makes sure cache entries exist for the current font and geometry
func (f *Factory) Refresh(fnt font.Font, cfg *config.Config) {
	f.refresh(fnt, cfg)
}

func (f *Factory) refresh(fnt font.Font, cfg *config.Config) []layer.Entry {
	sk := staticKey{font: fnt, scale: cfg.Scale, w: cfg.ScreenWidth, h: cfg.ScreenHeight}
	if _, ok := f.static[sk]; !ok {
		f.static[sk] = &staticSet{
			star:        NewStarArtLayer(fnt, cfg),
			background:  NewBackgroundArtLayer(fnt, cfg),
			instruction: NewInstructionLayer(fnt, cfg),
			border:      NewBorderLayer(cfg),
		}
	}
	effects := f.enabledEffects(cfg)
	for _, e := range effects {
		ek := effectKey{name: e.Key, scale: cfg.Scale, w: cfg.ScreenWidth, h: cfg.ScreenHeight}
		if _, ok := f.effect[ek]; !ok {
			f.effect[ek] = e.New(layer.Context{Config: cfg})
		}
	}
	return effects
}

// enabledEffects resolves cfg.Effects against the registry, skipping unknown
// keys and entries of another category
func (f *Factory) enabledEffects(cfg *config.Config) []layer.Entry {
	if f.effects == nil {
		return nil
	}
	var out []layer.Entry
	for _, name := range cfg.Effects {
		e, ok := f.effects.Get(name)
		if !ok || e.Category != layer.CategoryEffect {
			log.WithField("effect", name).Warn("Skipping unknown effect")
			continue
		}
		out = append(out, e)
	}
	return out
}

// Layers returns the universal layers for the current font and geometry
func (f *Factory) Layers(fnt font.Font, cfg *config.Config) []layer.Layer {
	effects := f.refresh(fnt, cfg)
	set := f.static[staticKey{font: fnt, scale: cfg.Scale, w: cfg.ScreenWidth, h: cfg.ScreenHeight}]

	out := []layer.Layer{set.star}
	for _, e := range effects {
		out = append(out, f.effect[effectKey{name: e.Key, scale: cfg.Scale, w: cfg.ScreenWidth, h: cfg.ScreenHeight}])
	}
	return append(out, set.background, set.instruction, set.border)
}
