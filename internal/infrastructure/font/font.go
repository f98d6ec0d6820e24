// Package font renders single lines of text onto ebiten images.
package font

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Font is the text capability layers draw with.
// Scenes and layers borrow a Font; its lifetime is owned by the caller.
type Font interface {
	// Measure returns the rendered size of s in pixels.
	Measure(s string) (w, h float64)

	// Draw renders s with its top-left corner at (x, y).
	Draw(dst *ebiten.Image, s string, x, y float64, clr color.Color)

	// Height returns the line height in pixels.
	Height() float64
}

// basicSize is the pixel height of basicfont.Face7x13
const basicSize = 13

// Face is a Font backed by the 7x13 bitmap face, scaled to the requested size
type Face struct {
	face  text.Face
	scale float64
}

// NewFace creates a Face whose line height is roughly size pixels
func NewFace(size int) *Face {
	if size < 1 {
		size = 1
	}
	return &Face{
		face:  text.NewGoXFace(basicfont.Face7x13),
		scale: float64(size) / basicSize,
	}
}

func (f *Face) lineHeight() float64 {
	m := f.face.Metrics()
	return m.HAscent + m.HDescent
}

// Measure implements Font
func (f *Face) Measure(s string) (float64, float64) {
	w, h := text.Measure(s, f.face, f.lineHeight())
	return w * f.scale, h * f.scale
}

// Height implements Font
func (f *Face) Height() float64 {
	return f.lineHeight() * f.scale
}

// Draw implements Font
func (f *Face) Draw(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.LineSpacing = f.lineHeight()
	op.GeoM.Scale(f.scale, f.scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, f.face, op)
}

// CenterRect returns the bounding rectangle of s centered on (cx, cy)
func CenterRect(f Font, s string, cx, cy int) image.Rectangle {
	w, h := f.Measure(s)
	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	x0 := cx - iw/2
	y0 := cy - ih/2
	return image.Rect(x0, y0, x0+iw, y0+ih)
}

// DrawCentered draws s so that its bounding rectangle is centered on (cx, cy)
func DrawCentered(dst *ebiten.Image, f Font, s string, cx, cy int, clr color.Color) image.Rectangle {
	r := CenterRect(f, s, cx, cy)
	f.Draw(dst, s, float64(r.Min.X), float64(r.Min.Y), clr)
	return r
}
