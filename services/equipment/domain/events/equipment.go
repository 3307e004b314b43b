package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the equipment context. Consumers subscribe via
// EventBus.Subscribe(ctx, topic).
const (
	TopicEquipmentCreated = "equipment.created"
	TopicBookingCreated   = "booking.created"
	TopicBookingDeleted   = "booking.deleted"
)

// EquipmentCreatedEvent is published after a new Equipment item is persisted.
type EquipmentCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     uuid.UUID `json:"item_id"`
	OrgID      uuid.UUID `json:"org_id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	BaseStock  int       `json:"base_stock"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingChangedEvent is published after a booking is created or deleted.
// Availability results for the org are stale once this fires; the worker bumps
// the availability cache version in response.
type BookingChangedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	BookingID   uuid.UUID `json:"booking_id"`
	OrgID       uuid.UUID `json:"org_id"`
	EquipmentID uuid.UUID `json:"equipment_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	OccurredAt  time.Time `json:"occurred_at"`
}
