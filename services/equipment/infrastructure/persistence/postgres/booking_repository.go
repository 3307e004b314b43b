package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/quincyapp/quincy/pkg/database"
	"github.com/quincyapp/quincy/pkg/events"
	eqdomain "github.com/quincyapp/quincy/services/equipment/domain"
	domainevents "github.com/quincyapp/quincy/services/equipment/domain/events"
	"github.com/quincyapp/quincy/services/equipment/domain/models"
	"github.com/quincyapp/quincy/services/equipment/domain/stock"
	"github.com/quincyapp/quincy/services/equipment/infrastructure/persistence/postgres/db"
)

// BookingRepository implements repositories.BookingRepository against PostgreSQL.
type BookingRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewBookingRepository returns a BookingRepository backed by the given pool
// and event bus. Booking writes publish BookingChangedEvents in the same
// transaction so availability caches are invalidated exactly when the write
// becomes visible.
func NewBookingRepository(database *database.Database, bus *events.EventBus) *BookingRepository {
	return &BookingRepository{db: database, bus: bus}
}

// Save persists a new Booking and publishes a booking.created event within
// the same transaction. Dates are stored normalized to day precision.
// Returns ErrEquipmentNotFound when the referenced equipment row is missing.
func (r *BookingRepository) Save(ctx context.Context, b *models.Booking) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		end := b.EndDate
		if end.IsZero() {
			end = b.StartDate
		}
		if err := q.InsertBooking(ctx, db.InsertBookingParams{
			ID:          b.ID,
			OrgID:       b.OrgID,
			EquipmentID: b.EquipmentID,
			ProjectRef:  b.ProjectRef,
			Quantity:    int32(b.Quantity),
			StartDate:   stock.Day(b.StartDate),
			EndDate:     stock.Day(end),
			CreatedAt:   b.CreatedAt,
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return eqdomain.ErrEquipmentNotFound
			}
			return fmt.Errorf("insert booking: %w", err)
		}

		if r.bus != nil {
			if err := r.publishChanged(tx, domainevents.TopicBookingCreated, b); err != nil {
				return fmt.Errorf("publish booking created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a Booking by ID scoped to the given org.
// Returns ErrBookingNotFound if not found.
func (r *BookingRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Booking, error) {
	q := db.New(r.db.DB())
	row, err := q.GetBookingByID(ctx, db.GetBookingByIDParams{ID: id, OrgID: orgID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, eqdomain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("query booking: %w", err)
	}
	return rowToBooking(row), nil
}

// FindByEquipmentID retrieves all bookings for one equipment item.
func (r *BookingRepository) FindByEquipmentID(ctx context.Context, orgID, equipmentID uuid.UUID) ([]*models.Booking, error) {
	q := db.New(r.db.DB())
	rows, err := q.FindBookingsByEquipmentID(ctx, db.FindBookingsByEquipmentIDParams{
		OrgID:       orgID,
		EquipmentID: equipmentID,
	})
	if err != nil {
		return nil, fmt.Errorf("query bookings by equipment: %w", err)
	}
	return rowsToBookings(rows), nil
}

// FindOverlappingWindow retrieves every booking whose range intersects
// [start, end] inclusive.
func (r *BookingRepository) FindOverlappingWindow(ctx context.Context, orgID uuid.UUID, start, end time.Time) ([]*models.Booking, error) {
	q := db.New(r.db.DB())
	rows, err := q.FindBookingsOverlapping(ctx, db.FindBookingsOverlappingParams{
		OrgID: orgID,
		Start: stock.Day(start),
		End:   stock.Day(end),
	})
	if err != nil {
		return nil, fmt.Errorf("query bookings in window: %w", err)
	}
	return rowsToBookings(rows), nil
}

// Delete removes a booking and publishes a booking.deleted event in the same
// transaction. Returns ErrBookingNotFound when no row matches.
func (r *BookingRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.GetBookingByID(ctx, db.GetBookingByIDParams{ID: id, OrgID: orgID})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return eqdomain.ErrBookingNotFound
			}
			return fmt.Errorf("query booking: %w", err)
		}

		if err := q.DeleteBooking(ctx, db.DeleteBookingParams{ID: id, OrgID: orgID}); err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}

		if r.bus != nil {
			if err := r.publishChanged(tx, domainevents.TopicBookingDeleted, rowToBooking(row)); err != nil {
				return fmt.Errorf("publish booking deleted: %w", err)
			}
		}
		return nil
	})
}

func (r *BookingRepository) publishChanged(tx *sql.Tx, topic string, b *models.Booking) error {
	event := domainevents.BookingChangedEvent{
		EventID:     uuid.New(),
		Version:     1,
		BookingID:   b.ID,
		OrgID:       b.OrgID,
		EquipmentID: b.EquipmentID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// rowToBooking maps a db.BookingRow to a domain models.Booking.
func rowToBooking(row db.BookingRow) *models.Booking {
	return &models.Booking{
		ID:          row.ID,
		OrgID:       row.OrgID,
		EquipmentID: row.EquipmentID,
		ProjectRef:  row.ProjectRef,
		Quantity:    int(row.Quantity),
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		CreatedAt:   row.CreatedAt,
	}
}

func rowsToBookings(rows []db.BookingRow) []*models.Booking {
	out := make([]*models.Booking, len(rows))
	for i, row := range rows {
		out[i] = rowToBooking(row)
	}
	return out
}
