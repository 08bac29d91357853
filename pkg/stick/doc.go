// Package stick implements the geometry and input state of a virtual analog
// stick.
//
// The package has no rendering or I/O. [ComputeGeometry] derives the origin
// and radii from the widget bounds, [ClampToRange] maps a raw pointer sample
// to a thumb position that never leaves the range circle, and [Update] is the
// pure transition function of the Idle/Dragging state machine.
//
// A typical host keeps a [Geometry] and a [State] side by side:
//
//	g := stick.ComputeGeometry(170, 170)
//	s := stick.NewState(g)
//	s, _ = stick.Update(g, s, stick.Event{Kind: stick.EventPress, Point: p})
//	dir := g.Direction(s.Thumb) // each component in [-1, 1]
//
// Hosts that prefer an owned object can use [Machine], which wraps the same
// functions and reports each transition to an optional observer.
package stick
