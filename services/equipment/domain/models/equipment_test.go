package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewEquipment(t *testing.T) {
	orgID := uuid.New()
	name := EquipmentName("Test Speaker")
	code := EquipmentCode("SPK-01")

	t.Run("returns equipment with non-zero ID", func(t *testing.T) {
		eq, err := NewEquipment(orgID, name, code, 10, uuid.Nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if eq.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
	})

	t.Run("sets fields correctly", func(t *testing.T) {
		folderID := uuid.New()
		eq, err := NewEquipment(orgID, name, code, 10, folderID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if eq.OrgID != orgID {
			t.Fatalf("expected OrgID %v, got %v", orgID, eq.OrgID)
		}
		if eq.Name != name {
			t.Fatalf("expected Name %v, got %v", name, eq.Name)
		}
		if eq.Code != code {
			t.Fatalf("expected Code %v, got %v", code, eq.Code)
		}
		if eq.BaseStock != 10 {
			t.Fatalf("expected BaseStock 10, got %d", eq.BaseStock)
		}
		if eq.FolderID != folderID {
			t.Fatalf("expected FolderID %v, got %v", folderID, eq.FolderID)
		}
	})

	t.Run("allows zero base stock", func(t *testing.T) {
		eq, err := NewEquipment(orgID, name, code, 0, uuid.Nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if eq.BaseStock != 0 {
			t.Fatalf("expected BaseStock 0, got %d", eq.BaseStock)
		}
	})

	t.Run("sets CreatedAt to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		eq, err := NewEquipment(orgID, name, code, 10, uuid.Nil)
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if eq.CreatedAt.IsZero() {
			t.Fatal("expected non-zero CreatedAt")
		}
		if eq.CreatedAt.Before(before) || eq.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", eq.CreatedAt, before, after)
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		eq1, _ := NewEquipment(orgID, name, code, 10, uuid.Nil)
		eq2, _ := NewEquipment(orgID, name, code, 10, uuid.Nil)
		if eq1.ID == eq2.ID {
			t.Fatal("expected unique IDs, got identical")
		}
	})
}

func TestNewBooking(t *testing.T) {
	orgID := uuid.New()
	equipmentID := uuid.New()
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("sets fields correctly", func(t *testing.T) {
		b, err := NewBooking(orgID, equipmentID, "PRJ-001", 6, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
		if b.OrgID != orgID {
			t.Fatalf("expected OrgID %v, got %v", orgID, b.OrgID)
		}
		if b.EquipmentID != equipmentID {
			t.Fatalf("expected EquipmentID %v, got %v", equipmentID, b.EquipmentID)
		}
		if b.ProjectRef != "PRJ-001" {
			t.Fatalf("expected ProjectRef %q, got %q", "PRJ-001", b.ProjectRef)
		}
		if b.Quantity != 6 {
			t.Fatalf("expected Quantity 6, got %d", b.Quantity)
		}
		if !b.StartDate.Equal(start) || !b.EndDate.Equal(end) {
			t.Fatalf("unexpected dates: %v–%v", b.StartDate, b.EndDate)
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		b1, _ := NewBooking(orgID, equipmentID, "", 1, start, end)
		b2, _ := NewBooking(orgID, equipmentID, "", 1, start, end)
		if b1.ID == b2.ID {
			t.Fatal("expected unique IDs, got identical")
		}
	})
}
