// Package servicerepo provides data transfer objects and mapping functions
// for service catalog persistence.
package servicerepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"

	"github.com/google/uuid"
)

// ServiceDTO represents the database structure for persisting service definitions.
type ServiceDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Kind            int
	BasePriceCents  int64
	ExpressEligible bool
	Active          bool `gorm:"index"`

	Modifiers []ModifierDefinitionDTO `gorm:"foreignKey:ServiceID;references:ID"`
}

// TableName specifies the database table name for service definitions.
func (ServiceDTO) TableName() string {
	return "services"
}

// ModifierDefinitionDTO represents one catalog modifier row. The code is
// unique per service.
type ModifierDefinitionDTO struct {
	ServiceID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code           string    `gorm:"primaryKey"`
	Name           string
	SurchargeCents int64
}

// TableName specifies the database table name for catalog modifiers.
func (ModifierDefinitionDTO) TableName() string {
	return "service_modifiers"
}

// fromDomain converts a service definition to its database representation.
func fromDomain(definition *service.ServiceDefinition) ServiceDTO {
	modifiers := make([]ModifierDefinitionDTO, 0, len(definition.Modifiers()))
	for _, modifier := range definition.Modifiers() {
		modifiers = append(modifiers, ModifierDefinitionDTO{
			ServiceID:      definition.ID().Bytes(),
			Code:           modifier.Code(),
			Name:           modifier.Name(),
			SurchargeCents: modifier.Surcharge().Cents(),
		})
	}

	return ServiceDTO{
		ID:              definition.ID().Bytes(),
		Name:            definition.Name(),
		Kind:            int(definition.Kind()),
		BasePriceCents:  definition.BasePrice().Cents(),
		ExpressEligible: definition.IsExpressEligible(),
		Active:          definition.IsActive(),
		Modifiers:       modifiers,
	}
}

// toDomain converts a database DTO to a service definition.
func toDomain(dto ServiceDTO) (*service.ServiceDefinition, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	basePrice, err := kernel.NewMoney(dto.BasePriceCents)
	if err != nil {
		return nil, err
	}

	modifiers := make([]service.ModifierDefinition, 0, len(dto.Modifiers))
	for _, modifierDTO := range dto.Modifiers {
		surcharge, surchargeErr := kernel.NewMoney(modifierDTO.SurchargeCents)
		if surchargeErr != nil {
			return nil, surchargeErr
		}
		modifier, modifierErr := service.NewModifierDefinition(modifierDTO.Code, modifierDTO.Name, surcharge)
		if modifierErr != nil {
			return nil, modifierErr
		}
		modifiers = append(modifiers, modifier)
	}

	return service.NewServiceDefinition(
		id,
		dto.Name,
		service.Kind(dto.Kind),
		basePrice,
		dto.ExpressEligible,
		dto.Active,
		modifiers,
	)
}
