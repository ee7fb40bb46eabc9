package shipment

import (
	"time"

	"parcellabel/internal/core/domain/model/kernel"
)

// Run is one pass of the label workflow for an order.
type Run struct {
	id        kernel.UUID
	orderID   int64
	state     State
	reason    error
	startedAt time.Time
}

// NewRun starts a run in Idle.
func NewRun(orderID int64, startedAt time.Time) *Run {
	return &Run{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		state:     Idle,
		startedAt: startedAt,
	}
}

func (r *Run) ID() kernel.UUID {
	return r.id
}

func (r *Run) OrderID() int64 {
	return r.orderID
}

func (r *Run) State() State {
	return r.state
}

// Reason is the failure that moved the run to Failed, nil otherwise.
func (r *Run) Reason() error {
	return r.reason
}

func (r *Run) StartedAt() time.Time {
	return r.startedAt
}

// Advance moves the run to next.
func (r *Run) Advance(next State) error {
	state, err := r.state.TransitionTo(next)
	if err != nil {
		return err
	}
	r.state = state
	return nil
}

// Fail moves the run to Failed and records reason.
func (r *Run) Fail(reason error) error {
	if err := r.Advance(Failed); err != nil {
		return err
	}
	r.reason = reason
	return nil
}
