// Package fonttest provides a font.Font test double that records draw calls.
package fonttest

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Call is one recorded Draw
type Call struct {
	Text  string
	X, Y  float64
	Color color.Color
}

// Recorder measures every rune as CharW x LineH and records draws
// without touching the destination image.
type Recorder struct {
	CharW float64
	LineH float64
	Calls []Call
}

// New creates a Recorder with 10x20 glyphs
func New() *Recorder {
	return &Recorder{CharW: 10, LineH: 20}
}

// Measure implements font.Font
func (r *Recorder) Measure(s string) (float64, float64) {
	return float64(len([]rune(s))) * r.CharW, r.LineH
}

// Height implements font.Font
func (r *Recorder) Height() float64 {
	return r.LineH
}

// Draw implements font.Font
func (r *Recorder) Draw(_ *ebiten.Image, s string, x, y float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Text: s, X: x, Y: y, Color: clr})
}

// Texts returns the drawn strings in order
func (r *Recorder) Texts() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Text
	}
	return out
}

// Reset forgets recorded calls
func (r *Recorder) Reset() {
	r.Calls = nil
}
