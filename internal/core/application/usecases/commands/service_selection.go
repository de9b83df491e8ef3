package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrServiceSelectionIsNotConstructed = errors.New(
		"ServiceSelection must be created via NewServiceSelection constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// ServiceSelection is one requested service line inside a submission or
// line-item edit: which catalog service, how many units, and which modifier
// codes to apply. Prices are never part of the request, they are always
// resolved from the catalog on the server side.
type ServiceSelection struct { //nolint:recvcheck //using for validation
	serviceID     kernel.UUID
	quantity      int
	modifierCodes []string

	guard guard.ConstructorGuard
}

// NewServiceSelection creates a validated service selection.
func NewServiceSelection(serviceID kernel.UUID, quantity int, modifierCodes []string) (ServiceSelection, error) {
	selection := ServiceSelection{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		selection.setServiceID(serviceID),
		selection.setQuantity(quantity),
	); err != nil {
		return ServiceSelection{}, err
	}

	selection.modifierCodes = append([]string(nil), modifierCodes...)
	return selection, nil
}

// Validate ensures the selection was created through the constructor.
func (s ServiceSelection) Validate() error {
	return s.guard.Validate(ErrServiceSelectionIsNotConstructed)
}

// ServiceID returns the catalog identifier of the requested service.
func (s ServiceSelection) ServiceID() kernel.UUID {
	return s.serviceID
}

// Quantity returns the requested number of units.
func (s ServiceSelection) Quantity() int {
	return s.quantity
}

// ModifierCodes returns the requested modifier codes.
func (s ServiceSelection) ModifierCodes() []string {
	return append([]string(nil), s.modifierCodes...)
}

func (s *ServiceSelection) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}

	s.serviceID = serviceID
	return nil
}

func (s *ServiceSelection) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	s.quantity = quantity
	return nil
}
