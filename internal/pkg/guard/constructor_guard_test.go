package guard_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		assert.NotNil(t, g)
		require.NoError(t, g.Validate(errors.New("object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		err := g.Validate(errors.New("not constructed"))

		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type discount struct {
		percent int
		guard   guard.ConstructorGuard
	}

	errDiscountNotConstructed := errors.New("discount must be created via newDiscount")

	newDiscount := func(percent int) (discount, error) {
		if percent < 0 || percent > 100 {
			return discount{}, errors.New("percent must be between 0 and 100")
		}
		return discount{
			percent: percent,
			guard:   guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		d, err := newDiscount(25)

		require.NoError(t, err)
		require.NoError(t, d.guard.Validate(errDiscountNotConstructed))
		assert.Equal(t, 25, d.percent)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var d discount

		err := d.guard.Validate(errDiscountNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errDiscountNotConstructed, err)
	})
}
