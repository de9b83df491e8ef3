package order

import (
	"strings"
	"time"

	"laundry/internal/pkg/errs"
)

// StatusChange is an immutable record of a single status transition. Orders
// keep an append-only list of these so the full lifecycle can be replayed.
type StatusChange struct {
	from      Status
	to        Status
	changedBy Role
	occurred  time.Time
	note      string

	isConstructed bool
}

// ErrStatusChangeIsNotConstructed is returned when a StatusChange was not
// created through NewStatusChange.
var ErrStatusChangeIsNotConstructed = errs.NewValueIsRequiredError(
	"StatusChange must be created via NewStatusChange",
)

// NewStatusChange creates a history record for a transition. The creation
// record of an order passes Unknown as from, every later record carries the
// status the order left.
func NewStatusChange(from Status, to Status, changedBy Role, occurred time.Time, note string) (StatusChange, error) {
	if from != Unknown {
		if err := from.Validate(); err != nil {
			return StatusChange{}, err
		}
	}
	if err := to.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := changedBy.Validate(); err != nil {
		return StatusChange{}, err
	}
	if occurred.IsZero() {
		return StatusChange{}, errs.NewValueIsRequiredError("occurred")
	}

	return StatusChange{
		from:          from,
		to:            to,
		changedBy:     changedBy,
		occurred:      occurred,
		note:          strings.TrimSpace(note),
		isConstructed: true,
	}, nil
}

// From returns the status the order left. It is Unknown on the creation
// record, which marks the order entering the workflow.
func (c StatusChange) From() Status {
	return c.from
}

// To returns the status the order entered.
func (c StatusChange) To() Status {
	return c.to
}

// ChangedBy returns the role that performed the transition.
func (c StatusChange) ChangedBy() Role {
	return c.changedBy
}

// Occurred returns when the transition happened.
func (c StatusChange) Occurred() time.Time {
	return c.occurred
}

// Note returns the free-form annotation attached to the transition.
// For an admin cancellation out of ReadyForHandoff this carries the
// mandatory refund note.
func (c StatusChange) Note() string {
	return c.note
}

// Validate ensures the record was created through the constructor.
func (c StatusChange) Validate() error {
	if !c.isConstructed {
		return ErrStatusChangeIsNotConstructed
	}
	return nil
}
