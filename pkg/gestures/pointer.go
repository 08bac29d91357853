// Package gestures defines the pointer events delivered to interactive
// render objects.
package gestures

import (
	"fmt"

	"github.com/go-drift/joystick/pkg/graphics"
)

// PointerPhase identifies the stage of a pointer interaction.
type PointerPhase int

const (
	// PointerPhaseDown is sent when a pointer first contacts the surface.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is sent while a pointer in contact moves.
	PointerPhaseMove
	// PointerPhaseUp is sent when a pointer leaves the surface.
	PointerPhaseUp
	// PointerPhaseCancel is sent when the platform aborts a pointer sequence.
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// ParsePointerPhase converts the lowercase name produced by String back to a phase.
func ParsePointerPhase(name string) (PointerPhase, error) {
	switch name {
	case "down":
		return PointerPhaseDown, nil
	case "move":
		return PointerPhaseMove, nil
	case "up":
		return PointerPhaseUp, nil
	case "cancel":
		return PointerPhaseCancel, nil
	default:
		return 0, fmt.Errorf("unknown pointer phase %q", name)
	}
}

// PointerEvent is a single pointer sample in the receiver's local coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Delta     graphics.Offset
	Phase     PointerPhase
}
