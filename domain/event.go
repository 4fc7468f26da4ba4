package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a domain event that occurred.
// Events are immutable facts about something that happened.
type Event struct {
	ID          uuid.UUID
	Type        string
	AggregateID uuid.UUID
	Timestamp   time.Time
	Data        map[string]any
}

// NewEvent creates a new domain event.
func NewEvent(eventType string, aggregateID uuid.UUID, data map[string]any) Event {
	if data == nil {
		data = make(map[string]any)
	}
	return Event{
		ID:          uuid.New(),
		Type:        eventType,
		AggregateID: aggregateID,
		Timestamp:   time.Now().UTC(),
		Data:        data,
	}
}
