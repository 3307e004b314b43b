package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/quincyapp/quincy/services/equipment/domain/events"
)

func TestEquipmentCreatedEvent_JSONRoundTrip(t *testing.T) {
	original := events.EquipmentCreatedEvent{
		EventID:    uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:    1,
		ItemID:     uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		OrgID:      uuid.MustParse("660e8400-e29b-41d4-a716-446655440000"),
		Name:       "Stage Monitor",
		Code:       "MON-12",
		BaseStock:  8,
		OccurredAt: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.EquipmentCreatedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.ItemID != original.ItemID {
		t.Errorf("ItemID: got %v, want %v", decoded.ItemID, original.ItemID)
	}
	if decoded.Code != original.Code {
		t.Errorf("Code: got %q, want %q", decoded.Code, original.Code)
	}
	if decoded.BaseStock != original.BaseStock {
		t.Errorf("BaseStock: got %d, want %d", decoded.BaseStock, original.BaseStock)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestBookingChangedEvent_JSONFieldNames(t *testing.T) {
	evt := events.BookingChangedEvent{
		EventID:     uuid.New(),
		Version:     1,
		BookingID:   uuid.New(),
		OrgID:       uuid.New(),
		EquipmentID: uuid.New(),
		StartDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		OccurredAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "booking_id", "org_id", "equipment_id", "start_date", "end_date", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopics_Values(t *testing.T) {
	if events.TopicEquipmentCreated != "equipment.created" {
		t.Errorf("expected %q, got %q", "equipment.created", events.TopicEquipmentCreated)
	}
	if events.TopicBookingCreated != "booking.created" {
		t.Errorf("expected %q, got %q", "booking.created", events.TopicBookingCreated)
	}
	if events.TopicBookingDeleted != "booking.deleted" {
		t.Errorf("expected %q, got %q", "booking.deleted", events.TopicBookingDeleted)
	}
}
