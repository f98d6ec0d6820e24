package transition

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
)

// mockTarget is a test double for Target
type mockTarget struct {
	updates []float64
	calls   []string
}

func (m *mockTarget) Update(dt float64) { m.updates = append(m.updates, dt) }
func (m *mockTarget) Background() color.Color { return color.Black }
func (m *mockTarget) DrawDynamic(screen *ebiten.Image) { m.calls = append(m.calls, "dynamic") }
func (m *mockTarget) DrawPersistent(screen *ebiten.Image) { m.calls = append(m.calls, "persistent") }

func TestFade_Progress(t *testing.T) {
	to := &mockTarget{}
	f := NewFade(to, config.Default(), 1.0)

	assert.Equal(t, uint8(255), f.Alpha())
	assert.False(t, f.Done())

	f.Update(0.5)
	assert.Equal(t, 0.5, f.Progress())
	assert.Equal(t, uint8(127), f.Alpha())
	assert.False(t, f.Done())

	f.Update(0.5)
	assert.True(t, f.Done())
	assert.Equal(t, uint8(0), f.Alpha())

	f.Update(0.5)
	assert.Equal(t, 1.0, f.Progress(), "clamped")
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, to.updates, "incoming scene keeps updating")
}

func TestFade_ZeroDuration(t *testing.T) {
	f := NewFade(&mockTarget{}, config.Default(), 0)
	assert.True(t, f.Done())
	assert.Equal(t, uint8(0), f.Alpha())
}

func TestFade_DrawOrder(t *testing.T) {
	to := &mockTarget{}
	f := NewFade(to, config.Default(), 1.0)

	f.Draw(ebiten.NewImage(800, 600))

	assert.Equal(t, []string{"dynamic", "persistent"}, to.calls)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	tr, err := r.New("SIMPLE", nil, &mockTarget{}, config.Default(), 2)
	require.NoError(t, err)
	assert.IsType(t, &Fade{}, tr)

	_, err = r.New("wipe", nil, &mockTarget{}, config.Default(), 2)
	assert.Error(t, err)

	r.Register("cut", func(_, to Target, cfg *config.Config, _ float64) Transition {
		return NewFade(to, cfg, 0)
	})
	tr, err = r.New("cut", nil, &mockTarget{}, config.Default(), 2)
	require.NoError(t, err)
	assert.True(t, tr.Done())
}
