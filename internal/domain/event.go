package domain

import (
	"context"
	"time"
)

// EventState is the publication state of an event.
type EventState string

const (
	EventStatePending   EventState = "PENDING"
	EventStatePublished EventState = "PUBLISHED"
	EventStateCanceled  EventState = "CANCELED"
)

// Event is the subset of an event this service reads. Events are owned by the event
// subsystem; nothing here writes them.
type Event struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	InitiatorID       int64      `json:"initiatorId"`
	State             EventState `json:"state"`
	ParticipantLimit  int        `json:"participantLimit"`
	RequestModeration bool       `json:"requestModeration"`
	PublishedOn       *time.Time `json:"publishedOn,omitempty"`
}

// Unlimited reports whether the event accepts any number of participants.
func (e *Event) Unlimited() bool {
	return e.ParticipantLimit == 0
}

// NeedsModeration reports whether new requests wait for the initiator's decision.
func (e *Event) NeedsModeration() bool {
	return e.RequestModeration && !e.Unlimited()
}

// EventView is the public representation of a published event.
// swagger:model EventView
type EventView struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	InitiatorID       int64  `json:"initiatorId"`
	ParticipantLimit  int    `json:"participantLimit"`
	RequestModeration bool   `json:"requestModeration"`
	ConfirmedRequests int    `json:"confirmedRequests"`
	Views             int64  `json:"views"`
}

// EventRepository defines read access to events.
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*Event, error)
	// GetByIDForUpdate locks the event row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id int64) (*Event, error)
}

// EventService exposes the public event view.
type EventService interface {
	GetPublishedEvent(ctx context.Context, id int64, hit Hit) (*EventView, error)
}
