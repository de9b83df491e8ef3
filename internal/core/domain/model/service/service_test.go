package service_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustModifier(t *testing.T, code, name string, cents int64) service.ModifierDefinition {
	t.Helper()
	m, err := service.NewModifierDefinition(code, name, kernel.MustNewMoney(cents))
	require.NoError(t, err)
	return m
}

func TestNewServiceDefinition(t *testing.T) {
	validID := kernel.NewUUID()
	basePrice := kernel.MustNewMoney(500)

	t.Run("should create valid definition", func(t *testing.T) {
		express := mustModifier(t, "express", "Express handling", 300)
		stain := mustModifier(t, "stain-treatment", "Stain treatment", 250)

		def, err := service.NewServiceDefinition(
			validID, "Wash & Fold", service.WashFold, basePrice, true, true,
			[]service.ModifierDefinition{express, stain},
		)

		require.NoError(t, err)
		require.NoError(t, def.Validate())
		assert.True(t, def.ID().IsEqual(validID))
		assert.Equal(t, "Wash & Fold", def.Name())
		assert.Equal(t, service.WashFold, def.Kind())
		assert.True(t, def.BasePrice().IsEqual(basePrice))
		assert.True(t, def.IsExpressEligible())
		assert.True(t, def.IsActive())
		assert.Len(t, def.Modifiers(), 2)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		def, err := service.NewServiceDefinition(
			invalidID, "Wash & Fold", service.WashFold, basePrice, false, true, nil,
		)

		require.Error(t, err)
		assert.Nil(t, def)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		def, err := service.NewServiceDefinition(
			validID, "", service.WashFold, basePrice, false, true, nil,
		)

		require.Error(t, err)
		assert.Nil(t, def)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with unknown kind", func(t *testing.T) {
		def, err := service.NewServiceDefinition(
			validID, "Wash & Fold", service.UnknownKind, basePrice, false, true, nil,
		)

		require.Error(t, err)
		assert.Nil(t, def)
		assert.Contains(t, err.Error(), "service kind is invalid")
	})

	t.Run("should fail with duplicated modifier codes", func(t *testing.T) {
		a := mustModifier(t, "express", "Express handling", 300)
		b := mustModifier(t, "express", "Express again", 100)

		def, err := service.NewServiceDefinition(
			validID, "Wash & Fold", service.WashFold, basePrice, true, true,
			[]service.ModifierDefinition{a, b},
		)

		require.Error(t, err)
		assert.Nil(t, def)
		assert.Contains(t, err.Error(), "duplicated")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		def, err := service.NewServiceDefinition(
			invalidID, "", service.UnknownKind, basePrice, false, true, nil,
		)

		require.Error(t, err)
		assert.Nil(t, def)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "service kind is invalid")
	})
}

func TestServiceDefinition_Validate(t *testing.T) {
	t.Run("nil definition is not constructed", func(t *testing.T) {
		var def *service.ServiceDefinition

		err := def.Validate()

		require.Error(t, err)
		assert.Equal(t, service.ErrServiceDefinitionIsNotConstructed, err)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		def := &service.ServiceDefinition{}

		require.Error(t, def.Validate())
	})
}

func TestServiceDefinition_ModifierByCode(t *testing.T) {
	id := kernel.NewUUID()
	express := mustModifier(t, "express", "Express handling", 300)
	def, err := service.NewServiceDefinition(
		id, "Dry Cleaning", service.DryClean, kernel.MustNewMoney(1200), true, true,
		[]service.ModifierDefinition{express},
	)
	require.NoError(t, err)

	t.Run("returns modifier for known code", func(t *testing.T) {
		m, lookupErr := def.ModifierByCode("express")

		require.NoError(t, lookupErr)
		assert.Equal(t, "express", m.Code())
		assert.Equal(t, int64(300), m.Surcharge().Cents())
	})

	t.Run("returns not found for unknown code", func(t *testing.T) {
		_, lookupErr := def.ModifierByCode("starch")

		require.Error(t, lookupErr)
		require.ErrorIs(t, lookupErr, errs.ErrObjectNotFound)
	})
}

func TestNewModifierDefinition(t *testing.T) {
	t.Run("should fail with empty code", func(t *testing.T) {
		_, err := service.NewModifierDefinition("", "Express", kernel.MustNewMoney(300))

		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := service.NewModifierDefinition("express", "", kernel.MustNewMoney(300))

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m service.ModifierDefinition

		require.Error(t, m.Validate())
	})
}

func TestKind(t *testing.T) {
	t.Run("valid kinds validate", func(t *testing.T) {
		for _, k := range []service.Kind{service.WashFold, service.DryClean, service.Ironing, service.Special} {
			require.NoError(t, k.Validate())
		}
	})

	t.Run("unknown kind is invalid", func(t *testing.T) {
		require.Error(t, service.UnknownKind.Validate())
		require.Error(t, service.Kind(99).Validate())
	})

	t.Run("String returns readable names", func(t *testing.T) {
		assert.Equal(t, "WashFold", service.WashFold.String())
		assert.Equal(t, "DryClean", service.DryClean.String())
		assert.Equal(t, "Ironing", service.Ironing.String())
		assert.Equal(t, "Special", service.Special.String())
		assert.Equal(t, "Unknown", service.UnknownKind.String())
		assert.Equal(t, "Unknown", service.Kind(99).String())
	})

	t.Run("KindFromString round trips", func(t *testing.T) {
		k, err := service.KindFromString("DryClean")
		require.NoError(t, err)
		assert.Equal(t, service.DryClean, k)

		_, err = service.KindFromString("Bleaching")
		require.Error(t, err)
	})
}
