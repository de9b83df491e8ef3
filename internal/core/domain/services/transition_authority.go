package services

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/order"
)

// ErrTransitionRejected is the sentinel wrapped by every TransitionRejectedError.
var ErrTransitionRejected = errors.New("transition rejected")

// RejectionReason classifies why a requested status change was turned down.
type RejectionReason int

const (
	// UnknownReason represents an invalid or undefined reason.
	UnknownReason RejectionReason = iota

	// InvalidEdge means the requested edge is not part of the workflow graph.
	InvalidEdge

	// Forbidden means the acting role lacks permission for the edge.
	Forbidden

	// TerminalState means the order is already Completed or Cancelled.
	TerminalState
)

// String returns the reason name used on the wire and in logs.
func (r RejectionReason) String() string {
	switch r {
	case InvalidEdge:
		return "InvalidEdge"
	case Forbidden:
		return "Forbidden"
	case TerminalState:
		return "TerminalState"
	default:
		return "Unknown"
	}
}

// TransitionRejectedError carries the rejection reason together with the
// inputs that produced it, so callers can surface a human-meaningful
// explanation rather than an opaque code.
type TransitionRejectedError struct {
	Reason    RejectionReason
	Current   order.Status
	Requested order.Status
	Role      order.Role
}

// Error implements the error interface.
func (e *TransitionRejectedError) Error() string {
	switch e.Reason {
	case TerminalState:
		return fmt.Sprintf("%s: order is already %s and cannot change status",
			ErrTransitionRejected, e.Current)
	case Forbidden:
		return fmt.Sprintf("%s: %s is not permitted to change an order from %s to %s",
			ErrTransitionRejected, e.Role, e.Current, e.Requested)
	default:
		return fmt.Sprintf("%s: %s to %s is not an allowed workflow edge",
			ErrTransitionRejected, e.Current, e.Requested)
	}
}

// Unwrap supports errors.Is checks against ErrTransitionRejected.
func (e *TransitionRejectedError) Unwrap() error {
	return ErrTransitionRejected
}

// Decision is the accepted outcome of a transition request.
type Decision struct {
	// Next is the status the order should move to.
	Next order.Status

	// RequiresRefundNote is set on the admin override edge out of
	// ReadyForHandoff, where a refund annotation is mandatory.
	RequiresRefundNote bool
}

type workflowEdge struct {
	from order.Status
	to   order.Status
}

// permittedEdges is the fixed (role, edge) permission table.
//
// Customers may only cancel their own order before processing starts.
// Staff drive every forward edge and the ordinary cancellations. Admins
// additionally cancel out of ReadyForHandoff, which triggers a refund.
func permittedEdges() map[order.Role]map[workflowEdge]bool {
	forward := []workflowEdge{
		{order.Pending, order.Confirmed},
		{order.Confirmed, order.InProgress},
		{order.InProgress, order.ReadyForHandoff},
		{order.ReadyForHandoff, order.Completed},
	}
	ordinaryCancel := []workflowEdge{
		{order.Pending, order.Cancelled},
		{order.Confirmed, order.Cancelled},
		{order.InProgress, order.Cancelled},
	}

	customer := map[workflowEdge]bool{
		{order.Pending, order.Cancelled}:   true,
		{order.Confirmed, order.Cancelled}: true,
	}

	staff := make(map[workflowEdge]bool)
	for _, edge := range forward {
		staff[edge] = true
	}
	for _, edge := range ordinaryCancel {
		staff[edge] = true
	}

	admin := make(map[workflowEdge]bool, len(staff)+1)
	for edge := range staff {
		admin[edge] = true
	}
	admin[workflowEdge{order.ReadyForHandoff, order.Cancelled}] = true

	return map[order.Role]map[workflowEdge]bool{
		order.Customer: customer,
		order.Staff:    staff,
		order.Admin:    admin,
	}
}

// TransitionAuthority is a domain service deciding whether a requested
// order status change is allowed for the acting role.
//
// Decide is a pure function over (current status, requested status, role):
// it performs no I/O, mutates nothing, and returns the same result for the
// same inputs every time. The update gateway applies accepted decisions to
// the aggregate, rejections propagate to the caller unchanged.
type TransitionAuthority struct{}

// NewTransitionAuthority creates a new TransitionAuthority instance.
func NewTransitionAuthority() TransitionAuthority {
	return TransitionAuthority{}
}

// Decide evaluates a status change request.
//
// The decision order matters for the rejection reason: a terminal current
// status always wins, then the workflow graph, then the permission table.
// Every input combination yields a deterministic outcome.
func (TransitionAuthority) Decide(
	current order.Status,
	requested order.Status,
	actor order.Role,
) (Decision, error) {
	if err := current.Validate(); err != nil {
		return Decision{}, err
	}
	if err := requested.Validate(); err != nil {
		return Decision{}, err
	}
	if err := actor.Validate(); err != nil {
		return Decision{}, err
	}

	if current.IsTerminal() {
		return Decision{}, &TransitionRejectedError{
			Reason: TerminalState, Current: current, Requested: requested, Role: actor,
		}
	}

	if !current.CanTransitionTo(requested) {
		return Decision{}, &TransitionRejectedError{
			Reason: InvalidEdge, Current: current, Requested: requested, Role: actor,
		}
	}

	edge := workflowEdge{from: current, to: requested}
	if !permittedEdges()[actor][edge] {
		return Decision{}, &TransitionRejectedError{
			Reason: Forbidden, Current: current, Requested: requested, Role: actor,
		}
	}

	return Decision{
		Next:               requested,
		RequiresRefundNote: current == order.ReadyForHandoff && requested == order.Cancelled,
	}, nil
}
