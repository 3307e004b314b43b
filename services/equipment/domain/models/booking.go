package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking commits a quantity of one equipment item over an inclusive day
// range, arising from a project's scheduled event. Multiple bookings may
// overlap on the same item and days; the stock engine sums them per day.
type Booking struct {
	ID          uuid.UUID
	OrgID       uuid.UUID
	EquipmentID uuid.UUID
	ProjectRef  string // free-form reference to the owning project/event
	Quantity    int
	StartDate   time.Time // inclusive, date precision
	EndDate     time.Time // inclusive; equals StartDate for single-day bookings
	CreatedAt   time.Time
}

// NewBooking constructs a valid Booking with generated ID and current timestamp.
func NewBooking(orgID, equipmentID uuid.UUID, projectRef string, quantity int, startDate, endDate time.Time) (*Booking, error) {
	return &Booking{
		ID:          uuid.New(),
		OrgID:       orgID,
		EquipmentID: equipmentID,
		ProjectRef:  projectRef,
		Quantity:    quantity,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
