package service

import (
	"time"

	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

// Event is the transient trigger for a proximity fan-out. It lives only for
// the duration of a Dispatch call; persistence of the underlying report is
// the CRUD layer's job.
type Event struct {
	// ID is an opaque correlation id (the ticket row id). Used for logging
	// and the sent-notification audit trail, never for dedup policy.
	ID         string
	Coordinate entity.Coordinate
	ObservedAt time.Time
}

// NewEvent builds an Event, defaulting ObservedAt to now when unset.
func NewEvent(id string, coordinate entity.Coordinate, observedAt time.Time) Event {
	if observedAt.IsZero() {
		observedAt = time.Now()
	}
	return Event{
		ID:         id,
		Coordinate: coordinate,
		ObservedAt: observedAt,
	}
}
