package breakout

import "github.com/vovakirdan/echo-breakout/internal/core"

// Phase is the game state machine position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseLost
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseLost:
		return "Lost"
	case PhaseWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Over reports whether the game has ended.
func (p Phase) Over() bool {
	return p == PhaseLost || p == PhaseWon
}

// State is one tick's worth of game state. Advance never modifies the
// State it is given; the brick slice is copied before a brick dies.
type State struct {
	Phase     Phase
	Ball      Ball
	Paddle    Paddle
	Bricks    []Brick
	Destroyed int
	Tick      uint64
}

// Total returns the number of bricks the game started with.
func (s State) Total() int {
	return len(s.Bricks)
}

// Remaining returns the number of live bricks.
func (s State) Remaining() int {
	return len(s.Bricks) - s.Destroyed
}

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventPaddleBounce
	EventBrickDestroyed
	EventLost
	EventWon
)

func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "WallBounce"
	case EventPaddleBounce:
		return "PaddleBounce"
	case EventBrickDestroyed:
		return "BrickDestroyed"
	case EventLost:
		return "Lost"
	case EventWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Impact reports whether the event is a collision that makes a sound.
func (k EventKind) Impact() bool {
	return k == EventWallBounce || k == EventPaddleBounce || k == EventBrickDestroyed
}

// Event is emitted by Advance.
type Event struct {
	Kind      EventKind
	At        core.Vec2 // Ball position after the collision was resolved
	Brick     int       // Brick index for EventBrickDestroyed, -1 otherwise
	Remaining int       // Live bricks after the event
}
