package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// HandoffMethod describes how the finished order gets back to the customer.
type HandoffMethod int

const (
	// UnknownHandoff represents an invalid or undefined method.
	UnknownHandoff HandoffMethod = iota

	// Pickup means the customer collects the order at the shop.
	Pickup

	// Delivery means the order is driven out to the delivery address
	// for a flat surcharge.
	Delivery
)

func getHandoffMethodStrings() map[HandoffMethod]string {
	return map[HandoffMethod]string{
		UnknownHandoff: "Unknown",
		Pickup:         "Pickup",
		Delivery:       "Delivery",
	}
}

func getValidHandoffMethodStrings() map[HandoffMethod]string {
	//nolint:exhaustive // UnknownHandoff is intentionally excluded as it's invalid
	return map[HandoffMethod]string{
		Pickup:   "Pickup",
		Delivery: "Delivery",
	}
}

// Validate checks if the HandoffMethod value is one of the defined methods.
func (h HandoffMethod) Validate() error {
	if _, ok := getValidHandoffMethodStrings()[h]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"handoff method is invalid",
			fmt.Errorf("%d is not a valid handoff method", h),
		)
	}
	return nil
}

// String returns the human-readable name of the method.
// Implements the fmt.Stringer interface and is safe on any value.
func (h HandoffMethod) String() string {
	if str, ok := getHandoffMethodStrings()[h]; ok {
		return str
	}
	return "Unknown"
}

// HandoffMethodFromString parses a handoff method from its string representation.
func HandoffMethodFromString(value string) (HandoffMethod, error) {
	for method, str := range getValidHandoffMethodStrings() {
		if str == value {
			return method, nil
		}
	}
	return UnknownHandoff, errs.NewValueIsInvalidErrorWithCause(
		"handoff method is invalid",
		fmt.Errorf("%q is not a valid handoff method", value),
	)
}

// ErrDeliveryTermsAreNotConstructed is returned when DeliveryTerms were not
// created through NewDeliveryTerms.
var ErrDeliveryTermsAreNotConstructed = errs.NewValueIsRequiredError(
	"DeliveryTerms must be created via NewDeliveryTerms",
)

// DeliveryTerms is a value object bundling the handoff method with the
// express-turnaround flag. Both feed the pricing rules as flat surcharges.
type DeliveryTerms struct {
	method  HandoffMethod
	express bool

	isConstructed bool
}

// NewDeliveryTerms creates validated delivery terms.
func NewDeliveryTerms(method HandoffMethod, express bool) (DeliveryTerms, error) {
	if err := method.Validate(); err != nil {
		return DeliveryTerms{}, err
	}

	return DeliveryTerms{
		method:        method,
		express:       express,
		isConstructed: true,
	}, nil
}

// Method returns the handoff method.
func (t DeliveryTerms) Method() HandoffMethod {
	return t.method
}

// IsExpress reports whether express turnaround was requested.
func (t DeliveryTerms) IsExpress() bool {
	return t.express
}

// Validate ensures the terms were created through the constructor.
func (t DeliveryTerms) Validate() error {
	if !t.isConstructed {
		return ErrDeliveryTermsAreNotConstructed
	}
	return nil
}
