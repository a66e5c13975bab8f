package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/event-registry/internal/domain"
)

// EventAddedNotification is published when an event has been accepted into the registry.
type EventAddedNotification struct {
	// ID is a unique identifier for this notification
	ID uuid.UUID `json:"id"`

	// Event is the registered event; its Location is shared, not copied
	Event *domain.Event `json:"event"`

	// Message is a human-readable description of what happened
	Message string `json:"message"`

	// CreatedAt is the timestamp when the notification was created
	CreatedAt time.Time `json:"created_at"`
}

// NewEventAddedNotification creates the notification sent after evt is registered.
func NewEventAddedNotification(evt *domain.Event, now time.Time) *EventAddedNotification {
	return &EventAddedNotification{
		ID:        uuid.New(),
		Event:     evt,
		Message:   AddedMessage(evt),
		CreatedAt: now,
	}
}

// AddedMessage formats the success message for a registered event.
func AddedMessage(evt *domain.Event) string {
	return fmt.Sprintf("Successfully added event \"%s\" ", evt.Title())
}

// EventHandler defines an interface for components that can handle notifications.
type EventHandler interface {
	// HandleEvent processes the given notification within the provided context.
	// Returns an error if the notification cannot be handled successfully.
	HandleEvent(ctx context.Context, n *EventAddedNotification) error
}

// HandlerFunc adapts a plain (event, message) callback to an EventHandler.
type HandlerFunc func(evt *domain.Event, message string)

// HandleEvent implements EventHandler.
func (f HandlerFunc) HandleEvent(_ context.Context, n *EventAddedNotification) error {
	f(n.Event, n.Message)
	return nil
}

// EventEmitter defines an interface for components that can emit notifications.
type EventEmitter interface {
	// RegisterHandler adds a handler that receives every subsequent notification.
	RegisterHandler(handler EventHandler)

	// EmitEvent publishes the given notification to all registered handlers.
	EmitEvent(ctx context.Context, n *EventAddedNotification) error
}
