// Package catalog loads seed events from YAML, TOML or JSON files.
//
// Locations are declared once under a key and referenced by events through
// that key, so every event naming the same key shares one *domain.Location and
// therefore one capacity.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/phrazzld/event-registry/internal/clock"
	"github.com/phrazzld/event-registry/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Common catalog errors
var (
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrUnknownLocation   = errors.New("unknown location key")
	ErrDuplicateLocation = errors.New("duplicate location key")
	ErrInvalidDate       = errors.New("invalid event date")
	ErrInvalidPrice      = errors.New("invalid ticket price")
)

// File is the on-disk shape of a catalog.
type File struct {
	Locations []LocationRecord `json:"locations" yaml:"locations" toml:"locations" validate:"dive"`
	Events    []EventRecord    `json:"events" yaml:"events" toml:"events" validate:"dive"`
}

// LocationRecord declares a venue under a key.
type LocationRecord struct {
	Key      string `json:"key" yaml:"key" toml:"key" validate:"required"`
	Venue    string `json:"venue" yaml:"venue" toml:"venue" validate:"required"`
	Address  string `json:"address" yaml:"address" toml:"address"`
	Capacity int    `json:"capacity" yaml:"capacity" toml:"capacity" validate:"gte=0"`
}

// SpeakerRecord describes one speaker of an event.
type SpeakerRecord struct {
	Name  string `json:"name" yaml:"name" toml:"name" validate:"required"`
	Bio   string `json:"bio" yaml:"bio" toml:"bio"`
	Topic string `json:"topic" yaml:"topic" toml:"topic"`
}

// EventRecord describes one event. Date is either RFC3339, a plain
// 2006-01-02 date, or an offset from now such as "+720h".
type EventRecord struct {
	Title    string          `json:"title" yaml:"title" toml:"title" validate:"required"`
	Date     string          `json:"date" yaml:"date" toml:"date" validate:"required"`
	Location string          `json:"location" yaml:"location" toml:"location" validate:"required"`
	Price    string          `json:"price" yaml:"price" toml:"price" validate:"required"`
	Speakers []SpeakerRecord `json:"speakers" yaml:"speakers" toml:"speakers" validate:"dive"`
}

// Catalog holds the domain objects built from a File.
type Catalog struct {
	Locations map[string]*domain.Location
	Events    []*domain.Event
}

var validate = validator.New()

// Load reads the catalog file at path, choosing the decoder by extension
// (.yaml/.yml, .toml, .json).
func Load(path string, c clock.Clock) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(b, filepath.Ext(path), c)
}

// Parse decodes data in the given format (an extension such as ".yaml" or a
// bare name such as "toml") and builds the catalog.
func Parse(data []byte, format string, c clock.Clock) (*Catalog, error) {
	var f File
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode yaml catalog: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode toml catalog: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode json catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return Build(&f, c)
}

// Build validates f and turns it into domain objects.
func Build(f *File, c clock.Clock) (*Catalog, error) {
	if c == nil {
		c = clock.NewSystem()
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	cat := &Catalog{Locations: make(map[string]*domain.Location, len(f.Locations))}
	for _, rec := range f.Locations {
		if _, exists := cat.Locations[rec.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLocation, rec.Key)
		}
		loc, err := domain.NewLocation(rec.Venue, rec.Address, rec.Capacity)
		if err != nil {
			return nil, fmt.Errorf("location %s: %w", rec.Key, err)
		}
		cat.Locations[rec.Key] = loc
	}

	now := c.Now()
	for i, rec := range f.Events {
		evt, err := buildEvent(rec, cat.Locations, now)
		if err != nil {
			return nil, fmt.Errorf("event %d (%s): %w", i, rec.Title, err)
		}
		cat.Events = append(cat.Events, evt)
	}

	return cat, nil
}

func buildEvent(rec EventRecord, locations map[string]*domain.Location, now time.Time) (*domain.Event, error) {
	loc, ok := locations[rec.Location]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocation, rec.Location)
	}

	date, err := parseDate(rec.Date, now)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(rec.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}

	speakers := make([]domain.Speaker, 0, len(rec.Speakers))
	for _, s := range rec.Speakers {
		speakers = append(speakers, domain.Speaker{Name: s.Name, Bio: s.Bio, Topic: s.Topic})
	}

	return domain.NewEvent(rec.Title, date, loc, speakers, price)
}

func parseDate(s string, now time.Time) (time.Time, error) {
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		d, err := time.ParseDuration(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		return now.Add(d), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
