package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/event-registry/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent(t *testing.T, title string) *domain.Event {
	t.Helper()

	loc, err := domain.NewLocation("Tech Hub", "123 Main St", 100)
	require.NoError(t, err)

	evt, err := domain.NewEvent(title, time.Now().Add(time.Hour), loc,
		[]domain.Speaker{{Name: "John Doe"}}, decimal.RequireFromString("199.99"))
	require.NoError(t, err)
	return evt
}

func TestNewEventAddedNotification(t *testing.T) {
	evt := newTestEvent(t, "C# Workshop")
	now := time.Now()

	n := NewEventAddedNotification(evt, now)

	assert.NotEqual(t, uuid.Nil, n.ID)
	assert.Same(t, evt, n.Event)
	assert.Equal(t, "Successfully added event \"C# Workshop\" ", n.Message)
	assert.Equal(t, now, n.CreatedAt)
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last notification received by this handler
	LastNotification *EventAddedNotification
	// Error to return from HandleEvent
	HandlerError error
	// Count of notifications handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, n *EventAddedNotification) error {
	h.LastNotification = n
	h.HandledCount++
	return h.HandlerError
}

func TestEventHandler(t *testing.T) {
	handler := &MockEventHandler{}
	n := NewEventAddedNotification(newTestEvent(t, "Talk"), time.Now())

	err := handler.HandleEvent(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, 1, handler.HandledCount)
	assert.Equal(t, n, handler.LastNotification)

	expectedErr := errors.New("handler error")
	handler.HandlerError = expectedErr
	err = handler.HandleEvent(context.Background(), n)
	assert.Equal(t, expectedErr, err)
	assert.Equal(t, 2, handler.HandledCount)
}

func TestHandlerFunc(t *testing.T) {
	var gotEvent *domain.Event
	var gotMessage string
	h := HandlerFunc(func(evt *domain.Event, message string) {
		gotEvent = evt
		gotMessage = message
	})

	n := NewEventAddedNotification(newTestEvent(t, "Talk"), time.Now())
	require.NoError(t, h.HandleEvent(context.Background(), n))

	assert.Same(t, n.Event, gotEvent)
	assert.Equal(t, n.Message, gotMessage)
}
