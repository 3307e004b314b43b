package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/quincyapp/quincy/services/equipment/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// EquipmentRepository is the persistence interface for the Equipment aggregate.
// The domain layer owns this interface; infrastructure implements it.
type EquipmentRepository interface {
	Save(ctx context.Context, eq *models.Equipment) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Equipment, error)

	// FindByOrgID retrieves a paginated list of equipment for the given org.
	// Returns the slice and the total count (ignoring pagination).
	FindByOrgID(ctx context.Context, orgID uuid.UUID, opts QueryOpts) ([]*models.Equipment, int, error)

	// FindAllByOrgID retrieves every equipment row for the org. Feeds the
	// stock engine; folder scoping happens in the engine's filters.
	FindAllByOrgID(ctx context.Context, orgID uuid.UUID) ([]*models.Equipment, error)

	// Delete removes an equipment item by ID scoped to the given org.
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// Exists reports whether equipment with the given ID exists for the org.
	Exists(ctx context.Context, orgID, id uuid.UUID) (bool, error)
}

// BookingRepository is the persistence interface for Bookings.
type BookingRepository interface {
	Save(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Booking, error)

	// FindByEquipmentID retrieves all bookings for one equipment item.
	FindByEquipmentID(ctx context.Context, orgID, equipmentID uuid.UUID) ([]*models.Booking, error)

	// FindOverlappingWindow retrieves every booking for the org whose day
	// range intersects [start, end]. Feeds the batch stock calculator.
	FindOverlappingWindow(ctx context.Context, orgID uuid.UUID, start, end time.Time) ([]*models.Booking, error)

	// Delete removes a booking by ID scoped to the given org.
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}
