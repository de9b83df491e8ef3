package service

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrServiceDefinitionIsNotConstructed is returned when a ServiceDefinition
	// instance was not created through the NewServiceDefinition factory method.
	ErrServiceDefinitionIsNotConstructed = errors.New(
		"ServiceDefinition must be created via NewServiceDefinition constructor",
	)
)

// ServiceDefinition is a catalog entry describing one purchasable laundry
// service: its category, base price, and the modifiers customers may attach.
// Definitions are owned by configuration and treated as immutable by the order
// engine; orders snapshot the name and price at composition time.
//
// ServiceDefinition follows these invariants:
//   - Must have a valid unique identifier and non-empty name
//   - Kind must be one of the fixed categories
//   - Modifier codes must be unique within one definition
//   - Can only be created through NewServiceDefinition
type ServiceDefinition struct {
	id              kernel.UUID
	name            string
	kind            Kind
	basePrice       kernel.Money
	expressEligible bool
	active          bool
	modifiers       []ModifierDefinition

	isConstructed bool
}

// NewServiceDefinition creates a new ServiceDefinition instance with validation.
//
// Parameters:
//   - id: unique catalog identifier
//   - name: customer-facing service name
//   - kind: one of the fixed service categories
//   - basePrice: per-unit price in effect for new selections
//   - expressEligible: whether the express modifier may be attached
//   - active: whether the service may appear in new orders
//   - modifiers: available flat-surcharge modifiers (codes must be unique)
func NewServiceDefinition(
	id kernel.UUID,
	name string,
	kind Kind,
	basePrice kernel.Money,
	expressEligible bool,
	active bool,
	modifiers []ModifierDefinition,
) (*ServiceDefinition, error) {
	def := &ServiceDefinition{
		expressEligible: expressEligible,
		active:          active,
		isConstructed:   true,
	}

	if err := errors.Join(
		def.setID(id),
		def.setName(name),
		def.setKind(kind),
		def.setModifiers(modifiers),
	); err != nil {
		return nil, err
	}

	def.basePrice = basePrice
	return def, nil
}

// Validate ensures the ServiceDefinition was properly constructed through
// NewServiceDefinition. Call when reconstructing definitions from persistence.
func (s *ServiceDefinition) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceDefinitionIsNotConstructed
	}
	return nil
}

// IsEqual compares two definitions by their unique identifiers.
func (s *ServiceDefinition) IsEqual(other *ServiceDefinition) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the catalog identifier.
func (s *ServiceDefinition) ID() kernel.UUID {
	return s.id
}

// Name returns the customer-facing service name.
func (s *ServiceDefinition) Name() string {
	return s.name
}

// Kind returns the service category.
func (s *ServiceDefinition) Kind() Kind {
	return s.kind
}

// BasePrice returns the per-unit price for new selections.
func (s *ServiceDefinition) BasePrice() kernel.Money {
	return s.basePrice
}

// IsExpressEligible reports whether the express modifier may be attached.
func (s *ServiceDefinition) IsExpressEligible() bool {
	return s.expressEligible
}

// IsActive reports whether the service may appear in new orders.
func (s *ServiceDefinition) IsActive() bool {
	return s.active
}

// Modifiers returns the available modifier definitions.
// The returned slice is a copy; mutating it does not affect the definition.
func (s *ServiceDefinition) Modifiers() []ModifierDefinition {
	out := make([]ModifierDefinition, len(s.modifiers))
	copy(out, s.modifiers)
	return out
}

// ModifierByCode looks up an available modifier by its stable code.
// Returns an ObjectNotFoundError when the code is not offered by this service.
func (s *ServiceDefinition) ModifierByCode(code string) (ModifierDefinition, error) {
	for _, m := range s.modifiers {
		if m.Code() == code {
			return m, nil
		}
	}
	return ModifierDefinition{}, errs.NewObjectNotFoundError("modifier", code)
}

func (s *ServiceDefinition) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *ServiceDefinition) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *ServiceDefinition) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	s.kind = kind
	return nil
}

func (s *ServiceDefinition) setModifiers(modifiers []ModifierDefinition) error {
	seen := make(map[string]struct{}, len(modifiers))
	for _, m := range modifiers {
		if err := m.Validate(); err != nil {
			return err
		}
		if _, ok := seen[m.Code()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"modifiers",
				fmt.Errorf("modifier code %q is duplicated", m.Code()),
			)
		}
		seen[m.Code()] = struct{}{}
	}

	s.modifiers = make([]ModifierDefinition, len(modifiers))
	copy(s.modifiers, modifiers)
	return nil
}
