package game

// Event is a discrete notification emitted by the session. Listeners map
// events to sound effects or other side effects; the core never consumes a
// return value.
type Event int

const (
	EventGameStarted Event = iota
	EventScoreMilestone
	EventCollision
	EventPersistenceWarning
)

// Listener receives session events. Fire-and-forget.
type Listener func(Event)

// Input is the read-only per-tick snapshot of polled input state.
type Input struct {
	LeftHeld     bool
	RightHeld    bool
	LeftPressed  bool // Edge-triggered, used for menu navigation
	RightPressed bool
	PauseToggled bool
	Confirm      bool
	Jump         bool
}
