package nav

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a navigator cannot be built from
// the supplied deck.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// State is the navigation position within a deck.
type State struct {
	Index int
	Total int
}

// Machine tracks the current slide and applies bounds-checked transitions.
// onChange runs after every accepted transition.
type Machine struct {
	index    int
	total    int
	onChange func(State)
}

// New creates a machine positioned on the first slide.
func New(total int, onChange func(State)) (*Machine, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: deck has %d slides", ErrInvalidConfiguration, total)
	}
	return &Machine{total: total, onChange: onChange}, nil
}

// State returns a copy of the current position.
func (m *Machine) State() State {
	return State{Index: m.index, Total: m.total}
}

// GoTo moves to index when it lies inside the deck. Out of range requests
// are ignored. It reports whether the transition was accepted.
func (m *Machine) GoTo(index int) bool {
	if index < 0 || index >= m.total {
		return false
	}
	m.index = index
	if m.onChange != nil {
		m.onChange(m.State())
	}
	return true
}

// Next advances one slide. No wraparound.
func (m *Machine) Next() bool {
	return m.GoTo(m.index + 1)
}

// Prev goes back one slide.
func (m *Machine) Prev() bool {
	return m.GoTo(m.index - 1)
}

// First jumps to the first slide.
func (m *Machine) First() bool {
	return m.GoTo(0)
}

// Last jumps to the final slide.
func (m *Machine) Last() bool {
	return m.GoTo(m.total - 1)
}

// AtStart reports whether Prev would be a no-op.
func (s State) AtStart() bool {
	return s.Index == 0
}

// AtEnd reports whether Next would be a no-op.
func (s State) AtEnd() bool {
	return s.Index >= s.Total-1
}
