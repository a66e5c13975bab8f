package service

import (
	"errors"
	"fmt"
	"strings"
)

// Common service errors - sentinel errors used across the registry.
// Callers check for them with errors.Is; the typed errors below carry
// additional context and unwrap to these sentinels.
var (
	// ErrValidation indicates an event was rejected by structural validation
	// or by one or more registered rules. No state was changed.
	ErrValidation = errors.New("event validation failed")

	// ErrInsufficientCapacity indicates a purchase asked for more tickets than remain.
	// Capacity is left unchanged; retrying with a smaller quantity may succeed.
	ErrInsufficientCapacity = errors.New("not enough tickets available")

	// ErrNotConfigured indicates a purchase was attempted before a price calculator was set.
	ErrNotConfigured = errors.New("price calculator not configured")

	// ErrInvalidQuantity indicates a purchase quantity of zero or less.
	ErrInvalidQuantity = errors.New("ticket quantity must be positive")

	// ErrNilEvent indicates a nil event was passed to the registry.
	ErrNilEvent = errors.New("event cannot be nil")
)

// ValidationError reports why an event was not added.
type ValidationError struct {
	// Title of the rejected event
	Title string
	// FailedRules lists the names of the rules that rejected the event
	FailedRules []string
	// Err is the structural validation failure, if any
	Err error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("invalid event %q: %v", e.Title, e.Err)
	case len(e.FailedRules) > 0:
		return fmt.Sprintf("invalid event %q: failed rules: %s", e.Title, strings.Join(e.FailedRules, ", "))
	default:
		return fmt.Sprintf("invalid event %q", e.Title)
	}
}

// Is reports ErrValidation as a match so callers can use errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap returns the structural validation failure, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InsufficientCapacityError reports a purchase that exceeded the remaining capacity.
type InsufficientCapacityError struct {
	Title     string
	Requested int
	Available int
}

// Error implements the error interface for InsufficientCapacityError.
func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("not enough tickets available for %q: requested %d, available %d",
		e.Title, e.Requested, e.Available)
}

// Is reports ErrInsufficientCapacity as a match so callers can use errors.Is.
func (e *InsufficientCapacityError) Is(target error) bool {
	return target == ErrInsufficientCapacity
}

// RegistryError wraps unexpected failures while constructing or running the registry.
type RegistryError struct {
	// Operation is the operation that failed (e.g., "create_registry")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for RegistryError.
func (e *RegistryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("registry %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("registry %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RegistryError) Unwrap() error {
	return e.Err
}
