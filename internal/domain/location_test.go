package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Parallel()

	loc, err := NewLocation("Tech Hub", "123 Main St", 100)
	require.NoError(t, err)
	assert.Equal(t, "Tech Hub", loc.Venue)
	assert.Equal(t, "123 Main St", loc.Address)
	assert.Equal(t, 100, loc.Capacity())

	zero, err := NewLocation("Closet", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Capacity())

	_, err = NewLocation("Tech Hub", "123 Main St", -1)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrNegativeCapacity)

	_, err = NewLocation("", "123 Main St", 10)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLocationReserve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		capacity int
		quantity int
		wantErr  error
		wantLeft int
	}{
		{name: "partial", capacity: 100, quantity: 10, wantLeft: 90},
		{name: "exact", capacity: 5, quantity: 5, wantLeft: 0},
		{name: "too many", capacity: 5, quantity: 6, wantErr: ErrInsufficientCapacity, wantLeft: 5},
		{name: "zero quantity", capacity: 5, quantity: 0, wantErr: ErrInvalidQuantity, wantLeft: 5},
		{name: "negative quantity", capacity: 5, quantity: -3, wantErr: ErrInvalidQuantity, wantLeft: 5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			loc, err := NewLocation("Venue", "Street", tc.capacity)
			require.NoError(t, err)

			err = loc.Reserve(tc.quantity)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantLeft, loc.Capacity())
		})
	}
}
