package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Config *Config
	Themes *ThemeRegistry
}

// Loader loads game configuration from JSON and TOML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	data, err := fs.ReadFile(l.fsys, "display.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read display.json: %w", err)
	}

	var cfg DisplayConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse display.json: %w", err)
	}

	return &cfg, nil
}

type themesFile struct {
	Themes map[string]Theme `toml:"themes"`
}

// LoadThemes loads themes.toml into a registry seeded with the built-in themes.
// Themes keep the order they are declared in the file; a theme named like a
// built-in replaces it.
func (l *Loader) LoadThemes() (*ThemeRegistry, error) {
	data, err := fs.ReadFile(l.fsys, "themes.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to read themes.toml: %w", err)
	}

	var file themesFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse themes.toml: %w", err)
	}

	reg := BuiltinThemes()
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "themes" {
			continue
		}
		reg.Register(key[1], file.Themes[key[1]])
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.WithField("keys", undecoded).Warn("themes.toml: ignoring unknown keys")
	}

	return reg, nil
}

// LoadAll loads display.json and, when present, themes.toml, then applies the
// selected theme. A missing themes file falls back to the built-in themes.
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	themes, err := l.LoadThemes()
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", l.basePath).Debug("no themes.toml, using built-in themes")
		themes = BuiltinThemes()
	} else if err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.apply(display)

	if display.Theme != "" {
		if err := themes.Apply(cfg, display.Theme); err != nil {
			return nil, fmt.Errorf("display.json: %w", err)
		}
	}

	return &GameConfig{
		Config: cfg,
		Themes: themes,
	}, nil
}
