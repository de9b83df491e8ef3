// Package ports defines repository and outbound interfaces for the laundry
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
)

// ServiceRepository defines the persistence contract for the service
// catalog. Provides methods for storing and retrieving service definitions
// with their modifier surcharges.
type ServiceRepository interface {
	// Add persists a new service definition to the catalog.
	Add(ctx context.Context, definition *service.ServiceDefinition) error

	// Update persists changes to an existing service definition.
	Update(ctx context.Context, definition *service.ServiceDefinition) error

	// Get retrieves a service definition by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*service.ServiceDefinition, error)

	// GetAllActive retrieves every service definition customers can
	// currently order. Inactive definitions stay resolvable through Get
	// so existing orders keep their snapshots.
	GetAllActive(ctx context.Context) ([]*service.ServiceDefinition, error)
}
