package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/quincyapp/quincy/services/equipment/domain/models"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Stage Monitor", false},
		{"valid single word", "Speaker", false},
		{"leading whitespace", " Speaker", true},
		{"trailing whitespace", "Speaker ", true},
		{"only whitespace", "   ", true},
		{"control character", "Spea\tker", true},
		{"newline", "Spea\nker", true},
		{"consecutive spaces", "Stage  Monitor", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(models.EquipmentName(tt.input))
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %q, got nil", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
		})
	}
}

func TestValidateEquipmentForCreation(t *testing.T) {
	valid := func() *models.Equipment {
		return &models.Equipment{
			ID:        uuid.New(),
			OrgID:     uuid.New(),
			Name:      models.EquipmentName("Stage Monitor"),
			Code:      models.EquipmentCode("MON-12"),
			BaseStock: 8,
		}
	}

	t.Run("valid equipment passes", func(t *testing.T) {
		if err := ValidateEquipmentForCreation(valid()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nil equipment fails", func(t *testing.T) {
		if err := ValidateEquipmentForCreation(nil); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("missing code fails", func(t *testing.T) {
		eq := valid()
		eq.Code = ""
		if err := ValidateEquipmentForCreation(eq); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("negative base stock fails", func(t *testing.T) {
		eq := valid()
		eq.BaseStock = -1
		if err := ValidateEquipmentForCreation(eq); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("zero base stock passes", func(t *testing.T) {
		eq := valid()
		eq.BaseStock = 0
		if err := ValidateEquipmentForCreation(eq); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing org fails", func(t *testing.T) {
		eq := valid()
		eq.OrgID = uuid.Nil
		if err := ValidateEquipmentForCreation(eq); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestValidateBookingForCreation(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)

	valid := func() *models.Booking {
		return &models.Booking{
			ID:          uuid.New(),
			OrgID:       uuid.New(),
			EquipmentID: uuid.New(),
			Quantity:    4,
			StartDate:   start,
			EndDate:     end,
		}
	}

	t.Run("valid booking passes", func(t *testing.T) {
		if err := ValidateBookingForCreation(valid()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nil booking fails", func(t *testing.T) {
		if err := ValidateBookingForCreation(nil); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("zero quantity fails", func(t *testing.T) {
		b := valid()
		b.Quantity = 0
		if err := ValidateBookingForCreation(b); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("missing start date fails", func(t *testing.T) {
		b := valid()
		b.StartDate = time.Time{}
		if err := ValidateBookingForCreation(b); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("zero end date passes as single-day booking", func(t *testing.T) {
		b := valid()
		b.EndDate = time.Time{}
		if err := ValidateBookingForCreation(b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("end before start fails", func(t *testing.T) {
		b := valid()
		b.EndDate = start.AddDate(0, 0, -1)
		if err := ValidateBookingForCreation(b); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("same-day end passes", func(t *testing.T) {
		b := valid()
		b.EndDate = start
		if err := ValidateBookingForCreation(b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
