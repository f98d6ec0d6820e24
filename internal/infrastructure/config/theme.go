package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrUnknownTheme is returned when a theme key is not registered
var ErrUnknownTheme = errors.New("unknown theme")

// RGB is an opaque color stored as a 3-element array in theme files
type RGB [3]uint8

// Color converts to an opaque color.RGBA
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// Theme holds the palette used by every layer
type Theme struct {
	Background     RGB   `toml:"background"`
	Title          RGB   `toml:"title"`
	ButtonNormal   RGB   `toml:"button_normal"`
	ButtonSelected RGB   `toml:"button_selected"`
	Highlight      RGB   `toml:"highlight"`
	Border         RGB   `toml:"border"`
	Instruction    RGB   `toml:"instruction"`
	Font           RGB   `toml:"font"`
	Particles      []RGB `toml:"particles"`
}

// DefaultTheme is the neon-on-black palette used when nothing else is selected
func DefaultTheme() Theme {
	return Theme{
		Background:     RGB{0, 0, 0},
		Title:          RGB{57, 255, 20},
		ButtonNormal:   RGB{200, 0, 200},
		ButtonSelected: RGB{57, 255, 20},
		Highlight:      RGB{57, 255, 20},
		Border:         RGB{57, 255, 20},
		Instruction:    RGB{255, 255, 255},
		Font:           RGB{255, 255, 255},
		Particles:      []RGB{{200, 150, 255}, {150, 200, 255}},
	}
}

// ThemeRegistry keeps themes in registration order, keyed by lowercase name
type ThemeRegistry struct {
	names  []string
	themes map[string]Theme
}

// NewThemeRegistry creates an empty registry
func NewThemeRegistry() *ThemeRegistry {
	return &ThemeRegistry{themes: make(map[string]Theme)}
}

// BuiltinThemes returns a registry holding the bundled palettes
func BuiltinThemes() *ThemeRegistry {
	r := NewThemeRegistry()
	r.Register("default", DefaultTheme())
	r.Register("light", Theme{
		Background:     RGB{245, 245, 245},
		Title:          RGB{50, 50, 50},
		ButtonNormal:   RGB{200, 200, 200},
		ButtonSelected: RGB{70, 70, 70},
		Highlight:      RGB{70, 70, 70},
		Border:         RGB{150, 150, 150},
		Instruction:    RGB{50, 50, 50},
		Font:           RGB{50, 50, 50},
		Particles:      []RGB{{180, 180, 180}, {160, 160, 160}},
	})
	r.Register("retro80", Theme{
		Background:     RGB{0, 0, 0},
		Title:          RGB{255, 20, 147},
		ButtonNormal:   RGB{75, 0, 130},
		ButtonSelected: RGB{0, 255, 127},
		Highlight:      RGB{0, 255, 255},
		Border:         RGB{255, 105, 180},
		Instruction:    RGB{255, 255, 255},
		Font:           RGB{255, 255, 255},
		Particles:      []RGB{{255, 105, 180}, {0, 255, 127}},
	})
	r.Register("starwars", Theme{
		Background:     RGB{0, 0, 0},
		Title:          RGB{192, 192, 192},
		ButtonNormal:   RGB{64, 64, 64},
		ButtonSelected: RGB{192, 192, 192},
		Highlight:      RGB{0, 191, 255},
		Border:         RGB{192, 192, 192},
		Instruction:    RGB{192, 192, 192},
		Font:           RGB{192, 192, 192},
		Particles:      []RGB{{192, 192, 192}, {0, 191, 255}},
	})
	return r
}

// Register adds or replaces a theme. Replacing keeps the original position.
func (r *ThemeRegistry) Register(name string, t Theme) {
	key := strings.ToLower(name)
	if _, ok := r.themes[key]; !ok {
		r.names = append(r.names, key)
	}
	r.themes[key] = t
}

// Get looks up a theme by name (case-insensitive)
func (r *ThemeRegistry) Get(name string) (Theme, error) {
	t, ok := r.themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// Names returns theme keys in registration order
func (r *ThemeRegistry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Apply sets cfg's theme to the named entry
func (r *ThemeRegistry) Apply(cfg *Config, name string) error {
	t, err := r.Get(name)
	if err != nil {
		return err
	}
	cfg.Theme = t
	cfg.ThemeName = strings.ToLower(name)
	return nil
}
