package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Role identifies the kind of actor requesting an operation on an order.
// Authentication happens outside this core; the role arrives already derived
// from the caller's session.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Customer is the order's owner. Customers may compose orders and cancel
	// them while staff work has not started.
	Customer

	// Staff drives the workflow forward and may cancel before handoff.
	Staff

	// Admin can do everything staff can, plus the override cancellation of an
	// order that is already ready for handoff, with a mandatory refund note.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Customer:    "Customer",
		Staff:       "Staff",
		Admin:       "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "Customer",
		Staff:    "Staff",
		Admin:    "Admin",
	}
}

// Validate checks if the Role value is one of the defined actor roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements the fmt.Stringer interface and is safe on any value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString parses a role from its string representation.
// Used at the web boundary where the authenticated role arrives as a header.
func RoleFromString(value string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == value {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", value),
	)
}
