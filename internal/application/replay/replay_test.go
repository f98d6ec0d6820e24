package replay

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/retromenu/internal/application/input"
)

func sampleFrames() [][]input.Event {
	return [][]input.Event{
		{input.KeyDown(ebiten.KeyS)},
		nil,
		{
			{Type: input.EventMouseMotion, X: 120, Y: 90},
			{Type: input.EventMouseButtonDown, Button: ebiten.MouseButtonLeft, X: 120, Y: 90},
			{Type: input.EventTextInput, Text: "a"},
		},
		{input.KeyDown(ebiten.KeyA), input.KeyDown(ebiten.KeyEscape)},
	}
}

func TestRecorder_RoundTrip(t *testing.T) {
	frames := sampleFrames()
	rec := NewRecorder(42, "menu")
	for _, f := range frames {
		rec.RecordFrame(f)
	}
	require.Equal(t, 4, rec.FrameCount())

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))

	data, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, "menu", data.Scene)
	assert.NotEmpty(t, data.StartTime)

	r := NewReplayer(*data)
	for i, want := range frames {
		got, ok := r.Next()
		require.True(t, ok, "frame %d", i)
		if len(want) == 0 {
			assert.Empty(t, got, "frame %d", i)
			continue
		}
		assert.Equal(t, want, got, "frame %d", i)
	}

	_, ok := r.Next()
	assert.False(t, ok)
	assert.True(t, r.Done())
}

func TestRecorder_FrameNumbers(t *testing.T) {
	rec := NewRecorder(1, "test")
	rec.RecordFrame(nil)
	rec.RecordFrame([]input.Event{input.KeyDown(ebiten.KeyW)})

	data := rec.Data()
	require.Len(t, data.Frames, 2)
	assert.Equal(t, 0, data.Frames[0].F)
	assert.Equal(t, 1, data.Frames[1].F)
}

func TestRecorder_EmptyFrameIsCompact(t *testing.T) {
	raw, err := json.Marshal(FrameEvents{F: 7})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":7}`, string(raw))
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder(1, "menu")
	rec.RecordFrame(nil)

	rec.Stop()
	rec.RecordFrame(nil)

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_SaveWithoutFrames(t *testing.T) {
	rec := NewRecorder(1, "menu")
	path := filepath.Join(t.TempDir(), "empty.json")

	assert.ErrorIs(t, rec.Save(path), ErrNoFrames)
	assert.NoFileExists(t, path)
	assert.ErrorIs(t, rec.Encode(&bytes.Buffer{}), ErrNoFrames)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(99, "settings")
	rec.RecordFrame([]input.Event{input.KeyDown(ebiten.KeyEnter)})
	path := filepath.Join(t.TempDir(), "replay.json")

	require.NoError(t, rec.Save(path))
	data, err := LoadReplay(path)
	require.NoError(t, err)

	r := NewReplayer(*data)
	assert.Equal(t, int64(99), r.Seed())
	assert.Equal(t, "settings", r.Scene())
	assert.Equal(t, 1, r.TotalFrames())
	assert.Equal(t, []input.Event{input.KeyDown(ebiten.KeyEnter)}, r.Poll())
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Decode(bytes.NewBufferString("{not json"))
	assert.Error(t, err)
}

func TestReplayer_PollAndReset(t *testing.T) {
	rec := NewRecorder(1, "menu")
	for _, f := range sampleFrames() {
		rec.RecordFrame(f)
	}
	r := NewReplayer(rec.Data())

	assert.Equal(t, 0, r.CurrentFrame())
	r.Poll()
	r.Poll()
	assert.Equal(t, 2, r.CurrentFrame())
	assert.False(t, r.Done())

	r.Poll()
	r.Poll()
	assert.True(t, r.Done())
	assert.Empty(t, r.Poll(), "polling past the end yields nothing")
	assert.Equal(t, 4, r.CurrentFrame())

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
	assert.Equal(t, []input.Event{input.KeyDown(ebiten.KeyS)}, r.Poll())
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()

	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}
