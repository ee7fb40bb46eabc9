package shipment

import (
	"errors"
	"fmt"
)

// ErrTransitionNotAllowed is wrapped when a run is moved along an edge the
// workflow does not have.
var ErrTransitionNotAllowed = errors.New("state transition is not allowed")

// State is the position of a label run in the workflow.
type State int

const (
	Idle State = iota
	Validating
	Submitting
	Interpreting
	Persisted
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Validating:
		return "Validating"
	case Submitting:
		return "Submitting"
	case Interpreting:
		return "Interpreting"
	case Persisted:
		return "Persisted"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further transition is possible.
func (s State) IsTerminal() bool {
	return s == Persisted || s == Failed
}

// CanTransitionTo reports whether the workflow has an edge from s to next.
func (s State) CanTransitionTo(next State) bool {
	switch s {
	case Idle:
		return next == Validating
	case Validating:
		return next == Submitting || next == Failed
	case Submitting:
		return next == Interpreting || next == Failed
	case Interpreting:
		return next == Persisted
	default:
		return false
	}
}

// TransitionTo returns next or ErrTransitionNotAllowed.
func (s State) TransitionTo(next State) (State, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, s, next)
	}
	return next, nil
}
