package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOrderCommand(t *testing.T) {
	pickup, delivery := newWindows(t)
	selection := newSelection(t, kernel.NewUUID(), 2)

	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(),
			[]commands.ServiceSelection{selection},
			"12 Main St", "34 Oak Ave",
			pickup, delivery,
			order.Delivery, true,
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Selections(), 1)
		assert.Equal(t, "12 Main St", cmd.PickupAddress())
		assert.Equal(t, "34 Oak Ave", cmd.DeliveryAddress())
		assert.Equal(t, order.Delivery, cmd.Method())
		assert.True(t, cmd.IsExpress())
	})

	t.Run("should require at least one selection", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(),
			nil,
			"12 Main St", "",
			pickup, delivery,
			order.Pickup, false,
		)

		require.ErrorIs(t, err, commands.ErrSelectionsAreRequired)
	})

	t.Run("should require pickup address", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(),
			[]commands.ServiceSelection{selection},
			"  ", "",
			pickup, delivery,
			order.Pickup, false,
		)

		require.ErrorIs(t, err, commands.ErrPickupAddressIsRequired)
	})

	t.Run("should reject invalid order id", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(
			kernel.UUID{}, kernel.NewUUID(),
			[]commands.ServiceSelection{selection},
			"12 Main St", "",
			pickup, delivery,
			order.Pickup, false,
		)

		require.Error(t, err)
	})

	t.Run("should reject invalid handoff method", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(),
			[]commands.ServiceSelection{selection},
			"12 Main St", "",
			pickup, delivery,
			order.UnknownHandoff, false,
		)

		require.Error(t, err)
	})

	t.Run("should reject unconstructed selection", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(),
			[]commands.ServiceSelection{{}},
			"12 Main St", "",
			pickup, delivery,
			order.Pickup, false,
		)

		require.ErrorIs(t, err, commands.ErrServiceSelectionIsNotConstructed)
	})

	t.Run("should reject command created without constructor", func(t *testing.T) {
		var cmd commands.SubmitOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrSubmitOrderCommandIsNotConstructed)
	})
}

func TestNewServiceSelection(t *testing.T) {
	t.Run("should create selection with modifiers", func(t *testing.T) {
		serviceID := kernel.NewUUID()

		selection, err := commands.NewServiceSelection(serviceID, 3, []string{"express"})

		require.NoError(t, err)
		assert.True(t, selection.ServiceID().IsEqual(serviceID))
		assert.Equal(t, 3, selection.Quantity())
		assert.Equal(t, []string{"express"}, selection.ModifierCodes())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := commands.NewServiceSelection(kernel.NewUUID(), quantity, nil)
			require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
		}
	})

	t.Run("should reject invalid service id", func(t *testing.T) {
		_, err := commands.NewServiceSelection(kernel.UUID{}, 1, nil)
		require.Error(t, err)
	})
}
