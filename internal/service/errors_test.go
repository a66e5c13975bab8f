package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessages(t *testing.T) {
	t.Parallel()

	withRules := &ValidationError{Title: "Talk", FailedRules: []string{"future_date", "has_speakers"}}
	assert.Equal(t, `invalid event "Talk": failed rules: future_date, has_speakers`, withRules.Error())
	assert.True(t, errors.Is(withRules, ErrValidation))
	assert.Nil(t, withRules.Unwrap())

	cause := errors.New("title is required")
	structural := &ValidationError{Title: "", Err: cause}
	assert.Equal(t, `invalid event "": title is required`, structural.Error())
	assert.True(t, errors.Is(structural, cause))

	assert.Equal(t, `invalid event "Talk"`, (&ValidationError{Title: "Talk"}).Error())
}

func TestInsufficientCapacityError(t *testing.T) {
	t.Parallel()

	err := &InsufficientCapacityError{Title: "Talk", Requested: 10, Available: 3}
	assert.Equal(t, `not enough tickets available for "Talk": requested 10, available 3`, err.Error())
	assert.True(t, errors.Is(err, ErrInsufficientCapacity))
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestRegistryError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &RegistryError{Operation: "purchase_tickets", Message: "failed", Err: cause}
	assert.Equal(t, "registry purchase_tickets failed: failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &RegistryError{Operation: "create_registry", Message: "emitter cannot be nil"}
	assert.Equal(t, "registry create_registry failed: emitter cannot be nil", bare.Error())
}
