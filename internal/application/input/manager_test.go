package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type escapeOnly struct{}

func (escapeOnly) IsGlobalKey(k ebiten.Key) bool { return k == ebiten.KeyEscape }

// recordingHandler is a test double for Handler
type recordingHandler struct {
	name    string
	consume bool
	log     *[]string
}

func (h *recordingHandler) OnInput(ev Event) bool {
	*h.log = append(*h.log, h.name+":"+ev.Type.String())
	return h.consume
}

// globalHandler is a test double implementing both interfaces
type globalHandler struct {
	recordingHandler
	consumeGlobal bool
}

func (h *globalHandler) OnGlobalInput(ev Event) bool {
	*h.log = append(*h.log, h.name+":global")
	return h.consumeGlobal
}

func TestManager_RegisterIsIdempotent(t *testing.T) {
	var log []string
	m := NewManager(escapeOnly{})
	h := &recordingHandler{name: "a", log: &log}

	m.Register(h)
	m.Register(h)
	assert.Equal(t, 1, m.Len())

	m.Unregister(h)
	m.Unregister(h)
	assert.Equal(t, 0, m.Len())
}

func TestManager_GlobalKeyGoesToGlobalHandlersFirst(t *testing.T) {
	var log []string
	m := NewManager(escapeOnly{})
	m.Register(&recordingHandler{name: "regular", log: &log})
	m.Register(&globalHandler{recordingHandler: recordingHandler{name: "scenes", log: &log}, consumeGlobal: true})

	consumed := m.Process(KeyDown(ebiten.KeyEscape))

	assert.True(t, consumed)
	assert.Equal(t, []string{"scenes:global"}, log)
}

func TestManager_NonGlobalKeySkipsGlobalHandlers(t *testing.T) {
	var log []string
	m := NewManager(escapeOnly{})
	m.Register(&globalHandler{recordingHandler: recordingHandler{name: "scenes", log: &log}, consumeGlobal: true})

	consumed := m.Process(KeyDown(ebiten.KeyW))

	assert.False(t, consumed)
	assert.Equal(t, []string{"scenes:KeyDown"}, log)
}

func TestManager_ConsumedEventStopsDispatch(t *testing.T) {
	var log []string
	m := NewManager(escapeOnly{})
	m.Register(&recordingHandler{name: "first", consume: true, log: &log})
	m.Register(&recordingHandler{name: "second", log: &log})

	m.Process(Event{Type: EventMouseButtonDown, Button: ebiten.MouseButtonLeft})

	assert.Equal(t, []string{"first:MouseButtonDown"}, log)
}

func TestManager_DropsOtherEventTypes(t *testing.T) {
	var log []string
	m := NewManager(escapeOnly{})
	m.Register(&recordingHandler{name: "a", log: &log})

	m.ProcessAll([]Event{
		{Type: EventKeyUp, Key: ebiten.KeyW},
		{Type: EventTextInput, Text: "w"},
	})

	assert.Empty(t, log)
}

func TestEvent_IsKeyDown(t *testing.T) {
	ev := KeyDown(ebiten.KeyEnter)

	assert.True(t, ev.IsKeyDown(ebiten.KeyEnter, ebiten.KeySpace))
	assert.False(t, ev.IsKeyDown(ebiten.KeyW))
	assert.False(t, Event{Type: EventKeyUp, Key: ebiten.KeyEnter}.IsKeyDown(ebiten.KeyEnter))
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "MouseMotion", EventMouseMotion.String())
	assert.Equal(t, "Unknown", EventType(99).String())
	assert.True(t, EventMouseMotion.IsMouse())
	assert.False(t, EventKeyDown.IsMouse())
}
