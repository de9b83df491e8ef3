package kernel

import (
	"fmt"
	"time"

	"laundry/internal/pkg/errs"
)

// ErrTimeWindowIsNotConstructed indicates that a TimeWindow was not created
// through NewTimeWindow. Returned when validating a zero-value window.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow",
)

// TimeWindow is a value object describing a half-open interval of time during
// which a pickup or a delivery may happen. The start must precede the end.
//
// TimeWindow is immutable and thread-safe.
type TimeWindow struct {
	from time.Time
	to   time.Time
}

// NewTimeWindow creates a validated time window.
// Both instants must be set and from must be strictly before to.
func NewTimeWindow(from, to time.Time) (TimeWindow, error) {
	if from.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("to")
	}
	if !from.Before(to) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"time window",
			fmt.Errorf("%s is not before %s", from.Format(time.RFC3339), to.Format(time.RFC3339)),
		)
	}

	return TimeWindow{from: from, to: to}, nil
}

// From returns the start of the window.
func (w TimeWindow) From() time.Time {
	return w.from
}

// To returns the end of the window.
func (w TimeWindow) To() time.Time {
	return w.to
}

// EndsBefore reports whether this window closes before the other one opens.
// Used to require that a delivery window does not precede its pickup window.
func (w TimeWindow) EndsBefore(other TimeWindow) bool {
	return w.to.Before(other.from) || w.to.Equal(other.from)
}

// IsEqual compares two windows for equality.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.from.Equal(other.from) && w.to.Equal(other.to)
}

// Validate checks that the window was properly constructed.
// Returns ErrTimeWindowIsNotConstructed for a zero value.
func (w TimeWindow) Validate() error {
	if w.from.IsZero() || w.to.IsZero() {
		return ErrTimeWindowIsNotConstructed
	}
	return nil
}
