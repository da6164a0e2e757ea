package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
)

func TestValidate_PassesForConstructedGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	assert.NoError(t, g.Validate(errors.New("should not surface")))
}

func TestValidate_ReturnsSuppliedErrorForZeroValue(t *testing.T) {
	var g guard.ConstructorGuard
	validationErr := errors.New("thing must be created via its constructor")

	assert.ErrorIs(t, g.Validate(validationErr), validationErr)
}

func TestValidate_FallsBackToDefaultErrorForZeroValue(t *testing.T) {
	var g guard.ConstructorGuard

	assert.ErrorIs(t, g.Validate(nil), guard.ErrDefaultConstructorGuard)
}
