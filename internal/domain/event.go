package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is a scheduled occurrence at a Location with an ordered list of
// speakers and a base ticket price.
// Events are immutable after construction; the shared Location is the only
// state reachable from an Event that can change.
type Event struct {
	id          uuid.UUID
	title       string
	date        time.Time
	location    *Location
	ticketPrice decimal.Decimal
	speakers    []Speaker
}

// eventFields is the validated view of an Event.
type eventFields struct {
	ID       uuid.UUID `validate:"required"`
	Title    string    `validate:"required"`
	Date     time.Time `validate:"required"`
	Location *Location `validate:"required"`
}

// NewEvent creates a new Event with a generated ID.
// The speakers slice is copied, so later changes to the caller's slice do not
// leak into the event. Returns an error if validation fails.
func NewEvent(
	title string,
	date time.Time,
	location *Location,
	speakers []Speaker,
	ticketPrice decimal.Decimal,
) (*Event, error) {
	evt := &Event{
		id:          uuid.New(),
		title:       title,
		date:        date,
		location:    location,
		ticketPrice: ticketPrice,
		speakers:    append([]Speaker(nil), speakers...),
	}

	if err := evt.Validate(); err != nil {
		return nil, err
	}

	return evt, nil
}

// Validate checks the structural integrity of the Event: an ID, a title, a
// date, a location, a non-negative price and named speakers.
// Business acceptance (future date, positive price...) is left to the
// registry's rule set.
func (e *Event) Validate() error {
	if e.location == nil {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNilLocation)
	}
	if err := validateStruct(eventFields{
		ID:       e.id,
		Title:    e.title,
		Date:     e.date,
		Location: e.location,
	}); err != nil {
		return err
	}
	if e.ticketPrice.IsNegative() {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNegativePrice)
	}
	for i, s := range e.speakers {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("speaker %d: %w", i, err)
		}
	}
	return nil
}

// ID returns the identifier generated at construction.
func (e *Event) ID() uuid.UUID { return e.id }

// Title returns the event title.
func (e *Event) Title() string { return e.title }

// Date returns the start of the event.
func (e *Event) Date() time.Time { return e.date }

// Location returns the shared venue. Purchases through any holder of the
// same *Location change the capacity seen here.
func (e *Event) Location() *Location { return e.location }

// TicketPrice returns the base price of a single ticket.
func (e *Event) TicketPrice() decimal.Decimal { return e.ticketPrice }

// Speakers returns a copy of the event's speakers in insertion order.
func (e *Event) Speakers() []Speaker {
	return append([]Speaker(nil), e.speakers...)
}

// SpeakerCount returns the number of speakers, duplicates included.
func (e *Event) SpeakerCount() int {
	return len(e.speakers)
}

// IsSoldOut reports whether no tickets remain at the event's location.
func (e *Event) IsSoldOut() bool {
	return e.location.Capacity() == 0
}

// DurationInHours returns the number of hours between the event start and end.
// The result is negative when end precedes the start.
func (e *Event) DurationInHours(end time.Time) float64 {
	return end.Sub(e.date).Hours()
}

// DetailedString renders a human-readable summary of the event.
func (e *Event) DetailedString() string {
	names := make([]string, len(e.speakers))
	for i, s := range e.speakers {
		names[i] = s.Name
	}

	return fmt.Sprintf(
		"Event: %s,\n  Date: %s,\n  Venue: %s,\n  Speakers: %s,\n  Price: $%s",
		e.title,
		e.date.Format(time.RFC1123),
		e.location.Venue,
		strings.Join(names, ", "),
		e.ticketPrice.StringFixed(2),
	)
}

type eventJSON struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Date        time.Time       `json:"date"`
	Location    *Location       `json:"location"`
	Speakers    []Speaker       `json:"speakers"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
}

// MarshalJSON encodes the event with its speakers and venue.
func (e *Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		ID:          e.id,
		Title:       e.title,
		Date:        e.date,
		Location:    e.location,
		Speakers:    e.Speakers(),
		TicketPrice: e.ticketPrice,
	})
}
