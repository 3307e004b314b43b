package db

import (
	"time"

	"github.com/google/uuid"
)

// EquipmentRow mirrors the equipment table.
type EquipmentRow struct {
	ID        uuid.UUID
	OrgID     uuid.UUID
	Name      string
	Code      string
	BaseStock int32
	FolderID  uuid.NullUUID
	CreatedAt time.Time
}

// BookingRow mirrors the bookings table.
type BookingRow struct {
	ID          uuid.UUID
	OrgID       uuid.UUID
	EquipmentID uuid.UUID
	ProjectRef  string
	Quantity    int32
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
}
