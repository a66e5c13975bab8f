package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrNilLocation is returned when an event is built without a location.
	ErrNilLocation = errors.New("event location cannot be nil")

	// ErrNegativeCapacity is returned when a location is given a capacity below zero.
	ErrNegativeCapacity = errors.New("location capacity cannot be negative")

	// ErrNegativePrice is returned when an event ticket price is below zero.
	ErrNegativePrice = errors.New("ticket price cannot be negative")

	// ErrInvalidQuantity is returned when a reservation asks for zero or fewer tickets.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInsufficientCapacity is returned when a reservation exceeds the remaining capacity.
	ErrInsufficientCapacity = errors.New("insufficient capacity")
)
