package universal

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font/fonttest"
)

func TestStretch(t *testing.T) {
	f := fonttest.New()

	assert.Equal(t, "a"+"        "+"b", Stretch("ab", f, 100))
	assert.Equal(t, "abc", Stretch("abc", f, 30), "already wide enough")
	assert.Equal(t, "a", Stretch("a", f, 500), "no gaps to widen")
}

func TestFactory_CachesPerGeometry(t *testing.T) {
	f := fonttest.New()
	cfg := config.Default()
	effects := layer.NewRegistry()
	RegisterEffects(effects, 1)
	factory := NewFactory(effects)

	first := factory.Layers(f, cfg)
	second := factory.Layers(f, cfg)
	require.Len(t, first, 5)
	for i := range first {
		assert.Same(t, first[i], second[i])
	}

	cfg.UpdateDimensions(1600, 1200)
	resized := factory.Layers(f, cfg)
	assert.NotSame(t, first[0], resized[0])

	cfg.UpdateDimensions(800, 600)
	back := factory.Layers(f, cfg)
	assert.Same(t, first[0], back[0], "earlier entries are kept")
}

func TestFactory_LayerDepths(t *testing.T) {
	effects := layer.NewRegistry()
	RegisterEffects(effects, 1)

	m := layer.NewManager(NewFactory(effects).Layers(fonttest.New(), config.Default())...)

	var zs []layer.Z
	for _, l := range m.Sorted(false) {
		zs = append(zs, l.Z())
	}
	assert.Equal(t, []layer.Z{layer.ZStarArt, layer.ZRainEffect, layer.ZBackgroundArt, layer.ZInstructions, layer.ZBorder}, zs)
}

func TestFactory_WithoutEffects(t *testing.T) {
	layers := NewFactory(nil).Layers(fonttest.New(), config.Default())
	assert.Len(t, layers, 4)
}

func TestRainLayer_WrapsAboveTop(t *testing.T) {
	cfg := config.Default()
	rain := NewRainLayer(cfg, rand.New(rand.NewSource(7)))
	require.Len(t, rain.Drops, 50)
	for _, d := range rain.Drops {
		assert.Equal(t, 10, d.Length)
		assert.GreaterOrEqual(t, d.X, 0.0)
		assert.Less(t, d.X, 800.0)
	}

	rain.Drops[0].Y = 100
	rain.Drops[1].Y = 598
	rain.Update(1.0 / 60)

	assert.InDelta(t, 105.0, rain.Drops[0].Y, 1e-9)
	assert.Equal(t, -10.0, rain.Drops[1].Y)
}

func TestStarArtLayer_DrawsEveryLine(t *testing.T) {
	f := fonttest.New()
	l := NewStarArtLayer(f, config.Default())

	l.Draw(nil)

	require.Len(t, f.Calls, len(StarArt))
	assert.Equal(t, 10.0, f.Calls[0].Y, "first line centered on the top margin")
	assert.True(t, l.Persistent())
	assert.Equal(t, layer.ZStarArt, l.Z())
}

func TestBackgroundArtLayer_StacksFromMiddle(t *testing.T) {
	f := fonttest.New()
	l := NewBackgroundArtLayer(f, config.Default())

	l.Draw(nil)

	require.Len(t, f.Calls, len(BackgroundArt))
	assert.Equal(t, 290.0, f.Calls[0].Y)
	assert.Equal(t, 310.0, f.Calls[1].Y)
}

func TestInstructionLayer_Position(t *testing.T) {
	f := fonttest.New()
	cfg := config.Default()
	l := NewInstructionLayer(f, cfg)

	l.Draw(nil)

	require.Len(t, f.Calls, 1)
	assert.Equal(t, InstructionText, f.Calls[0].Text)
	assert.Equal(t, 20.0, f.Calls[0].X)
	assert.Equal(t, 560.0, f.Calls[0].Y)
	assert.Equal(t, cfg.Theme.Instruction.Color(), f.Calls[0].Color)
	assert.False(t, layer.IsPersistent(l))
}

func TestBorderLayer_ThicknessScales(t *testing.T) {
	cfg := config.Default()
	l := NewBorderLayer(cfg)
	assert.Equal(t, 4, l.Thickness())

	cfg.UpdateDimensions(1600, 1200)
	assert.Equal(t, 8, l.Thickness())
	assert.True(t, layer.IsPersistent(l))
}

func TestFactory_UsesConfiguredEffects(t *testing.T) {
	effects := layer.NewRegistry()
	RegisterEffects(effects, 1)
	cfg := config.Default()

	layers := NewFactory(effects).Layers(fonttest.New(), cfg)
	require.Len(t, layers, 5)
	assert.IsType(t, &SnowLayer{}, layers[1], "snow is the default effect")

	cfg.Effects = []string{"RAIN_EFFECT", "fireworks", SnowEffectKey}
	layers = NewFactory(effects).Layers(fonttest.New(), cfg)
	require.Len(t, layers, 6, "unknown effects are skipped")
	assert.IsType(t, &RainLayer{}, layers[1])
	assert.IsType(t, &SnowLayer{}, layers[2])

	cfg.Effects = nil
	assert.Len(t, NewFactory(effects).Layers(fonttest.New(), cfg), 4)
}

func TestFactory_IgnoresOtherCategories(t *testing.T) {
	effects := layer.NewRegistry()
	effects.Register("sparkle", layer.CategoryMenuOnly, func(layer.Context) layer.Layer {
		t.Fatal("menu-only layers are not universal")
		return nil
	})
	cfg := config.Default()
	cfg.Effects = []string{"sparkle"}

	assert.Len(t, NewFactory(effects).Layers(fonttest.New(), cfg), 4)
}

func TestSnowLayer_Init(t *testing.T) {
	snow := NewSnowLayer(config.Default(), rand.New(rand.NewSource(3)))

	require.Len(t, snow.Flakes, 100)
	for _, f := range snow.Flakes {
		assert.GreaterOrEqual(t, f.Size, 4.0)
		assert.Less(t, f.Size, 8.0)
		assert.GreaterOrEqual(t, f.Speed, 20.0)
		assert.Less(t, f.Speed, 40.0)
		assert.LessOrEqual(t, math.Abs(f.Drift), 0.5)
	}
	assert.Equal(t, layer.ZRainEffect, snow.Z())
}

func TestSnowLayer_FallsAndWraps(t *testing.T) {
	snow := NewSnowLayer(config.Default(), rand.New(rand.NewSource(3)))
	snow.Flakes = []Flake{
		{X: 100, Y: 100, Size: 5, Speed: 30, Drift: 0},
		{X: 100, Y: 599, Size: 6, Speed: 30, Drift: 0},
	}

	snow.Update(0.5)

	assert.InDelta(t, 115.0, snow.Flakes[0].Y, 1e-9)
	assert.InDelta(t, 100.0, snow.Flakes[0].X, 1e-9, "drift starts at zero")
	assert.Equal(t, -6.0, snow.Flakes[1].Y, "re-enters one flake size above the top")
	assert.GreaterOrEqual(t, snow.Flakes[1].X, 0.0)
	assert.Less(t, snow.Flakes[1].X, 800.0)
}

func TestSnowLayer_DriftStaysBounded(t *testing.T) {
	snow := NewSnowLayer(config.Default(), rand.New(rand.NewSource(11)))
	snow.Flakes[0].Drift = 0.999

	for range 10000 {
		snow.Update(1)
		for _, f := range snow.Flakes {
			require.LessOrEqual(t, math.Abs(f.Drift), 1.0)
		}
	}
}

func TestRegisterEffects_Deterministic(t *testing.T) {
	build := func() *SnowLayer {
		effects := layer.NewRegistry()
		RegisterEffects(effects, 42)
		e, ok := effects.Get(SnowEffectKey)
		require.True(t, ok)
		return e.New(layer.Context{Config: config.Default()}).(*SnowLayer)
	}

	a, b := build(), build()
	a.Update(1.0 / 60)
	b.Update(1.0 / 60)

	assert.Equal(t, a.Flakes, b.Flakes)
}
