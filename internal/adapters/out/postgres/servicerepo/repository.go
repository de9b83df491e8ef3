package servicerepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceRepository implements ServiceRepository using GORM.
type GormServiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceRepository creates a new GORM service repository.
func NewGormServiceRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceRepository {
	return &GormServiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new service definition to the catalog.
func (r *GormServiceRepository) Add(ctx context.Context, definition *service.ServiceDefinition) error {
	if err := definition.Validate(); err != nil {
		return err
	}

	dto := fromDomain(definition)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(definition.ID(), definition)
	return nil
}

// Update saves an existing service definition. The modifier rows are rewritten
// from the definition state.
func (r *GormServiceRepository) Update(ctx context.Context, definition *service.ServiceDefinition) error {
	if err := definition.Validate(); err != nil {
		return err
	}

	dto := fromDomain(definition)
	db := r.db.WithContext(ctx)

	result := db.Model(&ServiceDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":             dto.Name,
		"kind":             dto.Kind,
		"base_price_cents": dto.BasePriceCents,
		"express_eligible": dto.ExpressEligible,
		"active":           dto.Active,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("service", definition.ID().String())
	}

	if err := db.Where("service_id = ?", dto.ID).Delete(&ModifierDefinitionDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Modifiers) > 0 {
		if err := db.Create(&dto.Modifiers).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(definition.ID(), definition)
	return nil
}

// Get retrieves a service definition by ID together with its modifiers.
func (r *GormServiceRepository) Get(ctx context.Context, id kernel.UUID) (*service.ServiceDefinition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	err := r.db.WithContext(ctx).
		Preload("Modifiers").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every service definition customers can currently order.
func (r *GormServiceRepository) GetAllActive(ctx context.Context) ([]*service.ServiceDefinition, error) {
	var dtos []ServiceDTO
	err := r.db.WithContext(ctx).
		Preload("Modifiers").
		Where("active = ?", true).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	definitions := make([]*service.ServiceDefinition, 0, len(dtos))
	for _, dto := range dtos {
		definition, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)
	}

	return definitions, nil
}
