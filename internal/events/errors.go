package events

import "errors"

// ErrHandlerPanic is returned by EmitEvent when a handler panicked.
var ErrHandlerPanic = errors.New("event handler panicked")
