package engine

import (
	"strings"
	"time"
)

// Direction is a unit vector on one axis, or the zero vector for None.
type Direction struct {
	DX, DY int
}

// The five directions the snake knows about.
var (
	None  = Direction{}
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Axis identifies the axis a direction moves along.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// Axis returns the axis d moves along.
func (d Direction) Axis() Axis {
	switch {
	case d.DX != 0:
		return AxisHorizontal
	case d.DY != 0:
		return AxisVertical
	default:
		return AxisNone
	}
}

// IsNone reports whether d is the zero direction.
func (d Direction) IsNone() bool {
	return d == None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// AcceptDirection reports whether d may replace the committed direction.
// Only turns onto the other axis are allowed, which rules out reversing
// through the neck within a single tick.
func AcceptDirection(d, committed Direction) bool {
	return !d.IsNone() && d.Axis() != committed.Axis()
}

// DirectionForKey maps arrow keys and WASD to a direction.
func DirectionForKey(key string) (Direction, bool) {
	switch strings.ToLower(key) {
	case "up", "w":
		return Up, true
	case "down", "s":
		return Down, true
	case "left", "a":
		return Left, true
	case "right", "d":
		return Right, true
	}
	return None, false
}

// Gesture is a completed touch: the displacement between touch-start and
// touch-end in pixels, and the time between them.
type Gesture struct {
	DX, DY   float64
	Duration time.Duration
}

// SwipeThresholds decide when a gesture counts as a swipe.
type SwipeThresholds struct {
	MaxDuration time.Duration
	MinDistance float64 // Pixels along the dominant axis
}

// DefaultSwipeThresholds returns the 300 ms / 30 px thresholds.
func DefaultSwipeThresholds() SwipeThresholds {
	return SwipeThresholds{
		MaxDuration: 300 * time.Millisecond,
		MinDistance: 30,
	}
}

// ClassifyGesture returns the swipe direction of g. ok is false when g is
// too slow or too short, in which case it is a tap.
func ClassifyGesture(g Gesture, th SwipeThresholds) (dir Direction, ok bool) {
	if g.Duration > th.MaxDuration {
		return None, false
	}

	ax, ay := absF(g.DX), absF(g.DY)
	if ax == 0 && ay == 0 {
		return None, false
	}

	// Ties go to the horizontal axis
	if ax >= ay {
		if ax < th.MinDistance {
			return None, false
		}
		if g.DX > 0 {
			return Right, true
		}
		return Left, true
	}

	if ay < th.MinDistance {
		return None, false
	}
	if g.DY > 0 {
		return Down, true
	}
	return Up, true
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Input is a player intent handed to Engine.Handle.
type Input interface {
	input()
}

// Start begins a round from Idle.
type Start struct{}

// Tap is a touch that did not qualify as a swipe. It starts a round from Idle.
type Tap struct{}

// TogglePause switches between Playing and Paused.
type TogglePause struct{}

// Move requests a direction change, latched until the next movement tick.
type Move struct {
	Dir Direction
}

// Swipe is a raw touch gesture; it becomes a Move or a Tap.
type Swipe struct {
	Gesture Gesture
}

// Backspace removes the last collected letter.
type Backspace struct{}

// Reset abandons the round and returns to Idle.
type Reset struct{}

func (Start) input()       {}
func (Tap) input()         {}
func (TogglePause) input() {}
func (Move) input()        {}
func (Swipe) input()       {}
func (Backspace) input()   {}
func (Reset) input()       {}
