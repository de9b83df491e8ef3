package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	t.Run("should validate defined roles", func(t *testing.T) {
		for _, role := range []order.Role{order.Customer, order.Staff, order.Admin} {
			require.NoError(t, role.Validate())
		}
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		err := order.UnknownRole.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "role is invalid")
	})
}

func TestRole_String(t *testing.T) {
	t.Run("should return role names", func(t *testing.T) {
		assert.Equal(t, "Customer", order.Customer.String())
		assert.Equal(t, "Staff", order.Staff.String())
		assert.Equal(t, "Admin", order.Admin.String())
		assert.Equal(t, "Unknown", order.UnknownRole.String())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid role strings", func(t *testing.T) {
		testCases := map[string]order.Role{
			"Customer": order.Customer,
			"Staff":    order.Staff,
			"Admin":    order.Admin,
		}

		for value, expected := range testCases {
			role, err := order.RoleFromString(value)

			require.NoError(t, err)
			assert.Equal(t, expected, role)
		}
	})

	t.Run("should reject unknown role strings", func(t *testing.T) {
		for _, value := range []string{"", "customer", "Manager"} {
			role, err := order.RoleFromString(value)

			require.Error(t, err)
			assert.Equal(t, order.UnknownRole, role)
		}
	})
}
