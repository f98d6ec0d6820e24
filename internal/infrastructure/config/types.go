package config

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	BaseWidth            int              `json:"baseWidth"`
	BaseHeight           int              `json:"baseHeight"`
	ScreenWidth          int              `json:"screenWidth"`
	ScreenHeight         int              `json:"screenHeight"`
	WindowScale          int              `json:"windowScale"`
	Framerate            int              `json:"framerate"`
	BaseFontSize         int              `json:"baseFontSize"`
	Theme                string           `json:"theme"`
	GlobalInputKeys      []ebiten.Key     `json:"globalInputKeys"`
	SelectedGameMode     string           `json:"selectedGameMode"`
	EnableGlobalControls *bool            `json:"enableGlobalControls"` // nil keeps the default
	Effects              []string         `json:"effects"`
	Transition           TransitionConfig `json:"transition"`
	Menu                 MenuConfig       `json:"menu"`
}

// TransitionConfig selects the scene transition played on scene switches
type TransitionConfig struct {
	Kind     string  `json:"kind"`     // Registry key, e.g. "simple"
	Duration float64 `json:"duration"` // Seconds
}

// MenuConfig configures menu navigation
type MenuConfig struct {
	DebounceMS int `json:"debounceMs"` // Minimum time between navigation inputs
}

// Config is the runtime configuration shared by scenes and layers.
//
// Layers hold a pointer to it and read it every frame, so theme or
// dimension changes take effect without rebuilding them.
type Config struct {
	BaseWidth    int
	BaseHeight   int
	FPS          int
	BaseFontSize int
	Scale        float64
	ScreenWidth  int
	ScreenHeight int
	WindowScale  int

	Theme     Theme
	ThemeName string

	GlobalInputKeys      []ebiten.Key
	SelectedGameMode     string
	EnableGlobalControls bool

	// Effects are the registry keys of the universal effect layers to show
	Effects []string

	Transition TransitionConfig
	Menu       MenuConfig
}

// Default returns the built-in configuration (800x600 at 60 FPS, default theme).
func Default() *Config {
	return &Config{
		BaseWidth:            800,
		BaseHeight:           600,
		FPS:                  60,
		BaseFontSize:         32,
		Scale:                1.0,
		ScreenWidth:          800,
		ScreenHeight:         600,
		WindowScale:          1,
		Theme:                DefaultTheme(),
		ThemeName:            "default",
		GlobalInputKeys:      []ebiten.Key{ebiten.KeyEscape},
		SelectedGameMode:     "default",
		EnableGlobalControls: true,
		Effects:              []string{"snow_effect"},
		Transition:           TransitionConfig{Kind: "simple", Duration: 1.0},
		Menu:                 MenuConfig{DebounceMS: 100},
	}
}

// UpdateDimensions sets the screen size and recalculates the scale factor
func (c *Config) UpdateDimensions(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
	c.Scale = min(
		float64(width)/float64(c.BaseWidth),
		float64(height)/float64(c.BaseHeight),
	)
}

// ScaleValue scales a base pixel value by the current scale factor
func (c *Config) ScaleValue(base int) int {
	return int(float64(base) * c.Scale)
}

// IsGlobalKey reports whether key is one of the configured global input keys
func (c *Config) IsGlobalKey(key ebiten.Key) bool {
	for _, k := range c.GlobalInputKeys {
		if k == key {
			return true
		}
	}
	return false
}

// FontSize returns the base font size scaled to the current screen
func (c *Config) FontSize() int {
	size := c.ScaleValue(c.BaseFontSize)
	if size < 1 {
		size = 1
	}
	return size
}

// apply copies the display file values onto c, keeping defaults for zero values
func (c *Config) apply(d *DisplayConfig) {
	if d.BaseWidth > 0 {
		c.BaseWidth = d.BaseWidth
	}
	if d.BaseHeight > 0 {
		c.BaseHeight = d.BaseHeight
	}
	if d.Framerate > 0 {
		c.FPS = d.Framerate
	}
	if d.BaseFontSize > 0 {
		c.BaseFontSize = d.BaseFontSize
	}
	if d.WindowScale > 0 {
		c.WindowScale = d.WindowScale
	}
	if len(d.GlobalInputKeys) > 0 {
		c.GlobalInputKeys = d.GlobalInputKeys
	}
	if d.SelectedGameMode != "" {
		c.SelectedGameMode = d.SelectedGameMode
	}
	if d.EnableGlobalControls != nil {
		c.EnableGlobalControls = *d.EnableGlobalControls
	}
	if d.Effects != nil {
		c.Effects = d.Effects
	}
	if d.Transition.Kind != "" {
		c.Transition.Kind = d.Transition.Kind
	}
	if d.Transition.Duration > 0 {
		c.Transition.Duration = d.Transition.Duration
	}
	if d.Menu.DebounceMS > 0 {
		c.Menu.DebounceMS = d.Menu.DebounceMS
	}

	w, h := c.ScreenWidth, c.ScreenHeight
	if d.ScreenWidth > 0 {
		w = d.ScreenWidth
	}
	if d.ScreenHeight > 0 {
		h = d.ScreenHeight
	}
	c.UpdateDimensions(w, h)
}
