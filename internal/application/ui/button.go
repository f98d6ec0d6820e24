// Package ui provides the widgets menu-like layers are built from.
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/retromenu/internal/infrastructure/font"
)

// Button is a labelled rectangle that runs OnClick when activated
type Button struct {
	Rect    image.Rectangle
	Label   string
	OnClick func()
}

// Contains reports whether the point (x, y) is inside the button
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Activate runs the callback if there is one
func (b *Button) Activate() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

// Draw fills the button with fill and centers the label in labelColor
func (b *Button) Draw(screen *ebiten.Image, f font.Font, fill, labelColor color.Color) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)
	c := r.Min.Add(r.Max).Div(2)
	font.DrawCentered(screen, f, b.Label, c.X, c.Y, labelColor)
}
