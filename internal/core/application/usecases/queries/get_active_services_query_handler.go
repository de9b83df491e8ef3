package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveServicesQueryHandler reads the orderable catalog from the
// database. Inactive services stay stored for old orders but are never
// offered for new selections.
type GetActiveServicesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveServicesQueryHandler creates a handler for catalog queries.
func NewGetActiveServicesQueryHandler(db *gorm.DB) GetActiveServicesQueryHandler {
	return GetActiveServicesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by service name.
func (h GetActiveServicesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveServicesQuery,
) ([]GetActiveServicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	rows, err := db.Raw(`
		SELECT
			id,
			name,
			kind,
			base_price_cents,
			express_eligible
		FROM services
		WHERE active = true
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]GetActiveServicesQueryResponse, 0)
	ids := make([]uuid.UUID, 0)

	for rows.Next() {
		var id uuid.UUID
		var name string
		var kind int
		var basePriceCents int64
		var expressEligible bool

		if err = rows.Scan(&id, &name, &kind, &basePriceCents, &expressEligible); err != nil {
			return nil, err
		}

		serviceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		services = append(services, GetActiveServicesQueryResponse{
			ID:              serviceID,
			Name:            name,
			Kind:            service.Kind(kind),
			BasePriceCents:  basePriceCents,
			ExpressEligible: expressEligible,
		})
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return services, nil
	}

	modifiersByService, err := h.loadModifiers(db, ids)
	if err != nil {
		return nil, err
	}

	for i := range services {
		services[i].Modifiers = modifiersByService[ids[i]]
	}

	return services, nil
}

func (h GetActiveServicesQueryHandler) loadModifiers(
	db *gorm.DB,
	serviceIDs []uuid.UUID,
) (map[uuid.UUID][]ServiceModifierResponse, error) {
	rows, err := db.Raw(`
		SELECT
			service_id,
			code,
			name,
			surcharge_cents
		FROM service_modifiers
		WHERE service_id IN (?)
		ORDER BY code
	`, serviceIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]ServiceModifierResponse)
	for rows.Next() {
		var serviceID uuid.UUID
		var code string
		var name string
		var surchargeCents int64

		if err = rows.Scan(&serviceID, &code, &name, &surchargeCents); err != nil {
			return nil, err
		}
		result[serviceID] = append(result[serviceID], ServiceModifierResponse{
			Code:           code,
			Name:           name,
			SurchargeCents: surchargeCents,
		})
	}

	return result, rows.Err()
}
