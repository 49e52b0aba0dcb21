package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	WindowW  int // Host window inner width in device-independent pixels
	WindowH  int // Host window inner height in device-independent pixels
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WindowW:  1280,
		WindowH:  720,
		TickRate: 60,
	}
}

// GameState represents the session state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score       int  // Markers collected in the current phase
	Started     bool // Set by the first start intent, never cleared
	Paused      bool // Whether the game is paused
	AssetsReady bool // Whether every required image has loaded
	Phase       int  // Current phase, 1-based
	Phases      int  // Number of phases in the variant
}

// Event is something a tick produced that the platform may react to.
type Event int

const (
	EventNone    Event = iota
	EventJump          // Jump impulse applied; play the jump sound
	EventCollect       // A marker was collected
	EventPhase         // The game moved to the next phase
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "Jump"
	case EventCollect:
		return "Collect"
	case EventPhase:
		return "Phase"
	default:
		return "None"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
