package domain

import "slices"

// AggregateRoot marks the entry point of a consistency boundary.
// Repositories only accept aggregate roots. Implement it by embedding
// AggregateBase.
type AggregateRoot interface {
	Identifiable
	PullEvents() []Event
	aggregateRoot()
}

// AggregateBase provides identity and event recording to aggregate roots.
type AggregateBase struct {
	Entity
	events []Event
}

// NewAggregateBase returns an AggregateBase with a fresh ID.
func NewAggregateBase() AggregateBase {
	return AggregateBase{Entity: NewEntity()}
}

// Record appends an event to be published once the aggregate is persisted.
func (a *AggregateBase) Record(e Event) {
	a.events = append(a.events, e)
}

// PullEvents returns the recorded events and clears them.
func (a *AggregateBase) PullEvents() []Event {
	events := slices.Clone(a.events)
	a.events = nil
	return events
}

func (a *AggregateBase) aggregateRoot() {}
