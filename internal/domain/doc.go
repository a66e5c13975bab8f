// Package domain contains the core business entities of the event registry:
// venues (Location), speakers (Speaker) and the Event aggregate that ties
// them together with a ticket price.
//
// An Event is immutable once built. The only mutable state it reaches is the
// capacity of its Location, which is shared by reference between every Event
// (and every caller) holding the same *Location.
package domain
