package stick

import (
	"fmt"

	"github.com/go-drift/joystick/pkg/graphics"
)

// Phase is the interaction phase of the stick.
type Phase int

const (
	// Idle means no pointer holds the stick and the thumb rests at the origin.
	Idle Phase = iota
	// Dragging means a pointer holds the stick.
	Dragging
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// EventKind identifies a stick input event.
type EventKind int

const (
	// EventPress starts a drag at the event point.
	EventPress EventKind = iota + 1
	// EventMove continues a drag. It is handled exactly like EventPress.
	EventMove
	// EventRelease ends a drag and recenters the thumb.
	EventRelease
)

// String returns a human-readable representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventMove:
		return "move"
	case EventRelease:
		return "release"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a pointer sample fed to the state machine.
type Event struct {
	Kind    EventKind
	Point   graphics.Offset
	Pointer int64
}

// State is the mutable part of a stick. Hosts own it and replace it with the
// value returned by Update.
type State struct {
	Phase Phase
	Thumb graphics.Offset
	// Pointer is the pointer that owns the current drag. Meaningless when Idle.
	Pointer int64
}

// NewState returns the initial state for g: idle, thumb at the origin.
func NewState(g Geometry) State {
	return State{Phase: Idle, Thumb: g.Origin}
}

// Update applies ev to s and returns the resulting state.
//
// A press always takes ownership, even mid-drag. The second result is false
// when the event was ignored: an unknown kind, or a move or release from a
// pointer other than the one currently dragging. Ignored events leave the
// state untouched.
func Update(g Geometry, s State, ev Event) (State, bool) {
	if s.Phase == Dragging && ev.Kind != EventPress && ev.Pointer != s.Pointer {
		return s, false
	}
	switch ev.Kind {
	case EventPress, EventMove:
		return State{Phase: Dragging, Thumb: g.Clamp(ev.Point), Pointer: ev.Pointer}, true
	case EventRelease:
		return NewState(g), true
	default:
		return s, false
	}
}

// Rebase adapts s to a new geometry. An idle stick snaps to the new origin; a
// dragging stick keeps its pointer and has its thumb clamped to the new range.
func Rebase(g Geometry, s State) State {
	if s.Phase != Dragging {
		return NewState(g)
	}
	s.Thumb = g.Clamp(s.Thumb)
	return s
}

// Transition describes a state change caused by an event.
type Transition struct {
	From  State
	To    State
	Event Event
}
