package guard_test

import (
	"errors"
	"testing"

	"parcelhub/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample shows the intended embedding pattern
// for a guarded value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type declaredWeight struct {
		kg float64
		g  guard.ConstructorGuard
	}

	errNotConstructed := errors.New("weight must be created via its constructor")

	newDeclaredWeight := func(kg float64) (declaredWeight, error) {
		if kg <= 0 {
			return declaredWeight{}, errors.New("weight must be positive")
		}
		return declaredWeight{kg: kg, g: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_object_passes_validation", func(t *testing.T) {
		w, err := newDeclaredWeight(2.5)

		require.NoError(t, err)
		require.NoError(t, w.g.Validate(errNotConstructed))
		assert.InDelta(t, 2.5, w.kg, 0)
	})

	t.Run("zero_value_object_fails_validation", func(t *testing.T) {
		var w declaredWeight

		err := w.g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
