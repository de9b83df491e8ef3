package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/guard"
)

var ErrGetActiveServicesQueryIsNotConstructed = errors.New(
	"GetActiveServicesQuery must be created via NewGetActiveServicesQuery constructor",
)

// GetActiveServicesQuery retrieves the orderable service catalog.
type GetActiveServicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveServicesQuery creates a query to retrieve all active services.
func NewGetActiveServicesQuery() GetActiveServicesQuery {
	return GetActiveServicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveServicesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveServicesQueryIsNotConstructed)
}

// GetActiveServicesQueryResponse is one orderable service with its modifiers.
type GetActiveServicesQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Kind            service.Kind
	BasePriceCents  int64
	ExpressEligible bool
	Modifiers       []ServiceModifierResponse
}

// ServiceModifierResponse is one selectable modifier of a service.
type ServiceModifierResponse struct {
	Code           string
	Name           string
	SurchargeCents int64
}
