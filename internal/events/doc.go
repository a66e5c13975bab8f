// Package events provides the change-notification mechanism of the registry.
//
// Subscribers implement EventHandler (or wrap a function with HandlerFunc) and
// register with an emitter. Emission is synchronous: every handler runs in
// registration order in the caller's goroutine before EmitEvent returns.
//
// The primary components are:
// - EventAddedNotification: describes an event accepted by the registry
// - EventHandler: interface for components that react to notifications
// - EventEmitter: interface for components that publish notifications
package events
