package guard_test

import (
	"errors"
	"testing"

	"parcellabel/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, errNotConstructed, g.Validate(errNotConstructed))
	})

	t.Run("zero_value_returns_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_Embedded(t *testing.T) {
	type label struct {
		name  string
		guard guard.ConstructorGuard
	}
	errLabel := errors.New("label must be created via newLabel")

	newLabel := func(name string) (label, error) {
		if name == "" {
			return label{}, errors.New("name is required")
		}
		return label{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	l, err := newLabel("shipping_label_1.pdf")
	require.NoError(t, err)
	require.NoError(t, l.guard.Validate(errLabel))

	_, err = newLabel("")
	require.Error(t, err)

	var zero label
	assert.ErrorIs(t, zero.guard.Validate(errLabel), errLabel)
}
