// Package layer defines drawable scene layers and the z-ordered manager that
// drives them.
package layer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/retromenu/internal/application/input"
)

// Z is a layer's depth. Higher values are drawn later, on top.
type Z int

const (
	ZStarArt Z = iota
	ZRainEffect
	ZBackgroundArt
	ZInstructions
	ZMenu
	ZBorder
	ZTest
)

// String returns the string representation of the depth
func (z Z) String() string {
	switch z {
	case ZStarArt:
		return "StarArt"
	case ZRainEffect:
		return "RainEffect"
	case ZBackgroundArt:
		return "BackgroundArt"
	case ZInstructions:
		return "Instructions"
	case ZMenu:
		return "Menu"
	case ZBorder:
		return "Border"
	case ZTest:
		return "Test"
	default:
		return "Unknown"
	}
}

// Layer is one updatable, drawable unit of a scene
type Layer interface {
	// Z returns the layer depth.
	Z() Z

	// Update advances the layer by dt seconds.
	Update(dt float64)

	// Draw renders the layer onto screen.
	Draw(screen *ebiten.Image)
}

// InputHandler is implemented by layers that react to input
type InputHandler interface {
	input.Handler
}

// Persistent is implemented by layers that stay visible through scene
// transitions instead of being faded with the rest of the scene
type Persistent interface {
	Persistent() bool
}

// IsPersistent reports whether l opts into being persistent
func IsPersistent(l Layer) bool {
	p, ok := l.(Persistent)
	return ok && p.Persistent()
}
