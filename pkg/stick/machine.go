package stick

import "github.com/go-drift/joystick/pkg/graphics"

// Observer receives every transition applied by a Machine.
type Observer func(Transition)

// Machine owns a Geometry and a State and applies events to them in order.
// It is not safe for concurrent use.
type Machine struct {
	geometry Geometry
	state    State
	known    bool
	observer Observer
}

// NewMachine returns a machine with no geometry yet. Events are ignored until
// Resize is called with a size.
func NewMachine(observer Observer) *Machine {
	return &Machine{observer: observer}
}

// Resize recomputes the geometry if the bounds changed and reports whether it did.
// Calling it again with the same size is a no-op.
func (m *Machine) Resize(width, height float64) bool {
	size := graphics.Size{Width: width, Height: height}
	if m.known && m.geometry.Bounds == size {
		return false
	}
	m.geometry = ComputeGeometry(width, height)
	if m.known {
		m.state = Rebase(m.geometry, m.state)
	} else {
		m.state = NewState(m.geometry)
		m.known = true
	}
	return true
}

// Handle applies ev and reports whether it changed anything.
func (m *Machine) Handle(ev Event) bool {
	if !m.known {
		return false
	}
	next, ok := Update(m.geometry, m.state, ev)
	if !ok {
		return false
	}
	prev := m.state
	m.state = next
	if m.observer != nil {
		m.observer(Transition{From: prev, To: next, Event: ev})
	}
	return true
}

// GeometryKnown reports whether Resize has been called.
func (m *Machine) GeometryKnown() bool {
	return m.known
}

// Geometry returns the current geometry.
func (m *Machine) Geometry() Geometry {
	return m.geometry
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Direction returns the normalized thumb displacement.
func (m *Machine) Direction() Direction {
	return m.geometry.Direction(m.state.Thumb)
}
