package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed transition graph so orders always
// follow the laundry workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> InProgress ──> ReadyForHandoff ──> Completed
//	   │            │             │                │
//	   └────────────┴─────────────┴────────────────┴──> Cancelled
//
// The ReadyForHandoff -> Cancelled edge is reserved for administrative
// override with a refund note; role enforcement lives in the transition
// authority, not here. Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status at submission time.
	// Pending orders are editable by the customer and await staff confirmation.
	Pending

	// Confirmed indicates staff accepted the order for processing.
	Confirmed

	// InProgress indicates the laundry work has started.
	InProgress

	// ReadyForHandoff indicates the cleaned items await pickup or delivery.
	ReadyForHandoff

	// Completed indicates the order was handed back to the customer.
	// This is a terminal state.
	Completed

	// Cancelled indicates the order was withdrawn before completion.
	// This is a terminal state; only a refund annotation may follow.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		Confirmed:       "Confirmed",
		InProgress:      "InProgress",
		ReadyForHandoff: "ReadyForHandoff",
		Completed:       "Completed",
		Cancelled:       "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "Pending",
		Confirmed:       "Confirmed",
		InProgress:      "InProgress",
		ReadyForHandoff: "ReadyForHandoff",
		Completed:       "Completed",
		Cancelled:       "Cancelled",
	}
}

// workflow is the fixed directed transition graph.
// Terminal states map to empty slices; no transition may skip an edge.
func workflow() map[Status][]Status {
	return map[Status][]Status{
		Pending:         {Confirmed, Cancelled},
		Confirmed:       {InProgress, Cancelled},
		InProgress:      {ReadyForHandoff, Cancelled},
		ReadyForHandoff: {Completed, Cancelled},
		Completed:       {},
		Cancelled:       {},
	}
}

// Validate checks if the Status value is one of the defined workflow states.
// Use it on values arriving from persistence or the API boundary.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its string representation.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the workflow graph contains a direct edge
// from this status to next. Role permissions are a separate concern handled
// by the transition authority.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range workflow()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
