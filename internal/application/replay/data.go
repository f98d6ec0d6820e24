// Package replay records the input events of a session and plays them back.
package replay

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/retromenu/internal/application/input"
)

// Version is written into every recording
const Version = "1.0"

// EventRecord is the serialized form of an input.Event
type EventRecord struct {
	T input.EventType    `json:"t"`           // Event type
	K ebiten.Key         `json:"k,omitempty"` // Key
	B ebiten.MouseButton `json:"b,omitempty"` // Mouse button
	X int                `json:"x,omitempty"` // Cursor X
	Y int                `json:"y,omitempty"` // Cursor Y
	S string             `json:"s,omitempty"` // Text input
}

// FrameEvents holds the events of one tick. Ticks without events are
// recorded too so playback keeps the original timing.
type FrameEvents struct {
	F int           `json:"f"`           // Frame number
	E []EventRecord `json:"e,omitempty"` // Events
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string        `json:"version"`
	Seed      int64         `json:"seed"`
	Scene     string        `json:"scene"`
	StartTime string        `json:"startTime"`
	Frames    []FrameEvents `json:"frames"`
}

// NewEventRecord converts ev for serialization
func NewEventRecord(ev input.Event) EventRecord {
	return EventRecord{T: ev.Type, K: ev.Key, B: ev.Button, X: ev.X, Y: ev.Y, S: ev.Text}
}

// Event converts the record back
func (r EventRecord) Event() input.Event {
	return input.Event{Type: r.T, Key: r.K, Button: r.B, X: r.X, Y: r.Y, Text: r.S}
}
