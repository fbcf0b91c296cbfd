package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLaptop(t *testing.T) *product.Product {
	t.Helper()

	price, err := kernel.NewPrice(1000)
	require.NoError(t, err)

	laptop, err := product.NewProduct("Laptop", price)
	require.NoError(t, err)
	return laptop
}

func TestNewAddItemCommand(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		laptop := newLaptop(t)

		cmd, err := commands.NewAddItemCommand(validID, laptop)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(validID))
		assert.Equal(t, "Laptop", cmd.Item().Name())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewAddItemCommand(invalidID, newLaptop(t))

		require.Error(t, err)
	})

	t.Run("should fail with nil item", func(t *testing.T) {
		_, err := commands.NewAddItemCommand(validID, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAddItemCommand_Validate(t *testing.T) {
	t.Run("should fail for zero value command", func(t *testing.T) {
		var cmd commands.AddItemCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrAddItemCommandIsNotConstructed, err)
	})
}
