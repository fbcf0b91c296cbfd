package customer_test

import (
	"testing"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create valid customer", func(t *testing.T) {
		c, err := customer.NewCustomer("Alice", "alice@example.com")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, "alice@example.com", c.Email())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := customer.NewCustomer("", "alice@example.com")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		_, err := customer.NewCustomer("Alice", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := customer.NewCustomer("", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "email")
	})
}

func TestCustomer_String(t *testing.T) {
	t.Run("should format display string", func(t *testing.T) {
		c, _ := customer.NewCustomer("Alice", "alice@example.com")

		assert.Equal(t, "Alice <alice@example.com>", c.String())
	})
}

func TestCustomer_IsEqual(t *testing.T) {
	t.Run("should compare by name and email", func(t *testing.T) {
		a, _ := customer.NewCustomer("Alice", "alice@example.com")
		b, _ := customer.NewCustomer("Alice", "alice@example.com")
		c, _ := customer.NewCustomer("Alice", "alice@other.org")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var c customer.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, err)
	})
}
