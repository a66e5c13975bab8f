// Package service contains the event registry, the application layer that
// coordinates the domain entities with validation rules, pricing and change
// notification.
//
// Key components:
//
// 1. Registry:
//   - Owns the ordered list of registered events
//   - Evaluates the registered rules before accepting an event (all must pass)
//   - Holds a single, replaceable price calculator used by ticket purchases
//   - Publishes a notification to subscribers after every accepted event
//
// 2. Setup:
//   - Installs the baseline rules and the default price calculator
//   - Applies the rule and pricing sections of the configuration
//
// 3. Error Handling:
//   - Sentinel errors (ErrValidation, ErrInsufficientCapacity, ErrNotConfigured)
//     for errors.Is checks
//   - Typed errors (ValidationError, InsufficientCapacityError) carrying context
//
// A failed operation never leaves partial state behind: a rejected event is not
// appended and a failed purchase does not touch the location's capacity.
package service
