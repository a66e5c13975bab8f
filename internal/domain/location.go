package domain

import (
	"fmt"
	"sync"
)

// Location describes the venue an event takes place in.
// Venue and Address never change; the remaining capacity is decreased by
// ticket purchases through Reserve. A Location must always be passed by
// pointer so that every Event referencing it observes the same capacity.
type Location struct {
	Venue   string `json:"venue" validate:"required"`
	Address string `json:"address"`

	mu       sync.Mutex
	capacity int
}

// NewLocation creates a Location with the given starting capacity.
// Returns an error if the venue is empty or the capacity is negative.
func NewLocation(venue, address string, capacity int) (*Location, error) {
	loc := &Location{
		Venue:    venue,
		Address:  address,
		capacity: capacity,
	}

	if err := loc.Validate(); err != nil {
		return nil, err
	}

	return loc, nil
}

// Validate checks if the Location has valid data.
func (l *Location) Validate() error {
	if err := validateStruct(l); err != nil {
		return err
	}
	if l.Capacity() < 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNegativeCapacity)
	}
	return nil
}

// Capacity returns the number of tickets still available at the venue.
func (l *Location) Capacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.capacity
}

// Reserve removes quantity tickets from the remaining capacity.
// The check and the decrement happen atomically; on failure the capacity
// is left untouched.
func (l *Location) Reserve(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.capacity-quantity < 0 {
		return ErrInsufficientCapacity
	}
	l.capacity -= quantity
	return nil
}
