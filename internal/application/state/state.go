package state

// SceneState represents what the scene manager is currently doing
type SceneState int

const (
	StateEmpty SceneState = iota
	StateIdle
	StateTransitioning
	StateQuitting
)

// String returns the string representation of the scene state
func (s SceneState) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateIdle:
		return "Idle"
	case StateTransitioning:
		return "Transitioning"
	case StateQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Running reports whether a scene is active and the game should keep going
func (s SceneState) Running() bool {
	return s == StateIdle || s == StateTransitioning
}
