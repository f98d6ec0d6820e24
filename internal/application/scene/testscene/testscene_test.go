package testscene

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/retromenu/internal/application/input"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/application/layer/universal"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font/fonttest"
)

func TestLayer_InitialState(t *testing.T) {
	l := NewLayer(fonttest.New(), config.Default())

	assert.Equal(t, 0.0, l.Angle())
	assert.Equal(t, layer.ZTest, l.Z())
}

func TestLayer_UpdateWrapsFullTurn(t *testing.T) {
	l := NewLayer(fonttest.New(), config.Default())

	l.Update(3) // 120 * 3 = 360

	assert.Equal(t, 0.0, l.Angle())
}

func TestLayer_UpdateFrom350(t *testing.T) {
	l := NewLayer(fonttest.New(), config.Default())
	l.angle = 350

	l.Update(1)

	assert.Equal(t, 110.0, l.Angle())
}

func TestLayer_AngleStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	l := NewLayer(fonttest.New(), config.Default())

	for i := 0; i < 10000; i++ {
		l.Update(rng.Float64() * 10)
		require.GreaterOrEqual(t, l.Angle(), 0.0)
		require.Less(t, l.Angle(), 360.0)
	}
}

func TestLayer_UpdateFrameSteps(t *testing.T) {
	l := NewLayer(fonttest.New(), config.Default())

	for i := 0; i < 60; i++ {
		l.Update(1.0 / 60)
	}

	assert.InDelta(t, 120.0, l.Angle(), 1e-9)

	l.Update(0)
	assert.InDelta(t, 120.0, l.Angle(), 1e-9, "zero dt leaves the angle unchanged")
}

func TestLayer_DrawRendersCenteredText(t *testing.T) {
	f := fonttest.New()
	cfg := config.Default()
	l := NewLayer(f, cfg)

	l.Draw(nil)

	require.Len(t, f.Calls, 1)
	call := f.Calls[0]
	assert.Equal(t, Text, call.Text)
	assert.Equal(t, color.White, call.Color)

	// "TEST SCENE" is 10 runes: 100x20 centered on (400, 300)
	assert.Equal(t, image.Pt(350, 290), image.Pt(int(call.X), int(call.Y)))
}

func TestLayer_DrawIgnoresAngle(t *testing.T) {
	f := fonttest.New()
	l := NewLayer(f, config.Default())

	l.Draw(nil)
	l.Update(0.7)
	l.Update(1.3)
	l.Draw(nil)

	require.Len(t, f.Calls, 2)
	assert.Equal(t, f.Calls[0], f.Calls[1], "text is drawn the same regardless of angle")
}

func TestLayer_DrawUsesConfiguredSize(t *testing.T) {
	f := fonttest.New()
	cfg := config.Default()
	cfg.UpdateDimensions(1001, 601)
	l := NewLayer(f, cfg)

	l.Draw(nil)

	// Center uses integer division: (500, 300)
	require.Len(t, f.Calls, 1)
	assert.Equal(t, 450.0, f.Calls[0].X)
	assert.Equal(t, 290.0, f.Calls[0].Y)
}

func TestLayer_OnInputIsNoop(t *testing.T) {
	l := NewLayer(fonttest.New(), config.Default())
	l.Update(0.5)
	before := *l

	events := []input.Event{
		input.KeyDown(ebiten.KeyEscape),
		{Type: input.EventKeyUp, Key: ebiten.KeyW},
		{Type: input.EventMouseButtonDown, Button: ebiten.MouseButtonLeft, X: 10, Y: 10},
		{Type: input.EventMouseMotion, X: -5, Y: 9000},
		{Type: input.EventTextInput, Text: "ü"},
		{},
	}
	for _, ev := range events {
		assert.NotPanics(t, func() {
			assert.False(t, l.OnInput(ev))
		})
	}

	assert.Equal(t, before, *l)
}

func TestScene_HasSingleTestLayer(t *testing.T) {
	f := fonttest.New()
	cfg := config.Default()

	s := New(f, cfg, layer.NewManager(), universal.NewFactory(nil))

	require.Len(t, s.Layers(), 1)
	tl, ok := s.Layers()[0].(*Layer)
	require.True(t, ok)
	assert.Same(t, s.TestLayer(), tl)
	assert.Equal(t, 0.0, tl.Angle())
	assert.Equal(t, Name, s.Name())
}

func TestScene_PopulatedLayersRunTestLayerOnTop(t *testing.T) {
	f := fonttest.New()
	layers := layer.NewManager()
	s := New(f, config.Default(), layers, universal.NewFactory(nil))

	s.PopulateLayers()
	s.Update(1.5)

	sorted := layers.Sorted(true)
	require.NotEmpty(t, sorted)
	assert.Same(t, s.TestLayer(), sorted[0])
	assert.Equal(t, 180.0, s.TestLayer().Angle())
	assert.False(t, s.OnInput(input.KeyDown(ebiten.KeyW)), "input reaches the test layer, which ignores it")
}
