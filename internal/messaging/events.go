package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType names a domain event.
type EventType string

const (
	EventJobCreated        EventType = "job.created"
	EventJobStatusChanged  EventType = "job.status_changed"
	EventJobPhotosAdded    EventType = "job.photos_added"
	EventJobDeleted        EventType = "job.deleted"
	EventClientDeactivated EventType = "client.deactivated"
	EventClientDeleted     EventType = "client.deleted"
	EventUserInvited       EventType = "user.invited"
)

// Event is the JSON body published to a company's event queue.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       EventType      `json:"type"`
	CompanyID  uuid.UUID      `json:"companyId"`
	EntityID   uuid.UUID      `json:"entityId"`
	OccurredAt time.Time      `json:"occurredAt"`
	Data       map[string]any `json:"data,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(t EventType, companyID, entityID uuid.UUID, data map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		CompanyID:  companyID,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// Publisher delivers domain events and manages per-company queues.
type Publisher interface {
	DeclareQueue(companyID uuid.UUID) error
	Publish(ctx context.Context, e Event) error
	UpdateQueueDepth(companyID uuid.UUID)
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) DeclareQueue(uuid.UUID) error { return nil }
func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) UpdateQueueDepth(uuid.UUID) {}
func (NopPublisher) Close() error { return nil }
