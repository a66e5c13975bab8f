// Package rules provides validation predicates that gate event registration.
//
// A Rule is a plain predicate over an event. Rules are collected into a Set
// and combined with AND semantics: an event is accepted only if every rule in
// the set accepts it. The baseline policy (future date, positive price, at
// least one speaker) is available through Defaults, but nothing in the
// registry depends on it.
package rules

import (
	"fmt"

	"github.com/phrazzld/event-registry/internal/clock"
	"github.com/phrazzld/event-registry/internal/domain"
)

// Rule reports whether an event is acceptable.
type Rule func(evt *domain.Event) bool

// NamedRule pairs a rule with a name used when reporting rejections.
type NamedRule struct {
	Name  string
	Check Rule
}

// Set is an ordered collection of rules evaluated in insertion order.
// The zero value is an empty set that accepts every event.
type Set struct {
	rules []NamedRule
}

// Add appends a rule to the set. Unnamed rules are labelled by position.
func (s *Set) Add(name string, rule Rule) {
	if name == "" {
		name = fmt.Sprintf("rule_%d", len(s.rules)+1)
	}
	s.rules = append(s.rules, NamedRule{Name: name, Check: rule})
}

// Len returns the number of rules in the set.
func (s *Set) Len() int {
	return len(s.rules)
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rules: append([]NamedRule(nil), s.rules...)}
}

// Evaluate runs every rule against evt and returns the names of the rules
// that rejected it, in evaluation order. An empty result means the event passed.
func (s *Set) Evaluate(evt *domain.Event) []string {
	var failed []string
	for _, r := range s.rules {
		if !r.Check(evt) {
			failed = append(failed, r.Name)
		}
	}
	return failed
}

// Rule names used by the baseline policy.
const (
	NameFutureDate    = "future_date"
	NamePositivePrice = "positive_price"
	NameHasSpeakers   = "has_speakers"
	NameMinSpeakers   = "min_speakers"
)

// FutureDate accepts events whose date is strictly after the clock's current time.
// The clock is read on every evaluation.
func FutureDate(c clock.Clock) Rule {
	return func(evt *domain.Event) bool {
		return evt.Date().After(c.Now())
	}
}

// PositivePrice accepts events with a ticket price strictly above zero.
func PositivePrice() Rule {
	return func(evt *domain.Event) bool {
		return evt.TicketPrice().IsPositive()
	}
}

// HasSpeakers accepts events with at least one speaker.
func HasSpeakers() Rule {
	return MinSpeakers(1)
}

// MinSpeakers accepts events with at least n speakers.
func MinSpeakers(n int) Rule {
	return func(evt *domain.Event) bool {
		return evt.SpeakerCount() >= n
	}
}

// Defaults returns the baseline policy: a future date, a positive price and
// at least one speaker.
func Defaults(c clock.Clock) []NamedRule {
	return []NamedRule{
		{Name: NameFutureDate, Check: FutureDate(c)},
		{Name: NamePositivePrice, Check: PositivePrice()},
		{Name: NameHasSpeakers, Check: HasSpeakers()},
	}
}
