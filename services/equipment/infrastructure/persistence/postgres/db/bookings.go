package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const insertBooking = `
INSERT INTO bookings (id, org_id, equipment_id, project_ref, quantity, start_date, end_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// InsertBookingParams holds the columns for InsertBooking.
type InsertBookingParams struct {
	ID          uuid.UUID
	OrgID       uuid.UUID
	EquipmentID uuid.UUID
	ProjectRef  string
	Quantity    int32
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
}

func (q *Queries) InsertBooking(ctx context.Context, arg InsertBookingParams) error {
	_, err := q.db.ExecContext(ctx, insertBooking,
		arg.ID, arg.OrgID, arg.EquipmentID, arg.ProjectRef, arg.Quantity,
		arg.StartDate, arg.EndDate, arg.CreatedAt)
	return err
}

const getBookingByID = `
SELECT id, org_id, equipment_id, project_ref, quantity, start_date, end_date, created_at
FROM bookings
WHERE id = $1 AND org_id = $2
`

// GetBookingByIDParams identifies one booking within an org.
type GetBookingByIDParams struct {
	ID    uuid.UUID
	OrgID uuid.UUID
}

func (q *Queries) GetBookingByID(ctx context.Context, arg GetBookingByIDParams) (BookingRow, error) {
	row := q.db.QueryRowContext(ctx, getBookingByID, arg.ID, arg.OrgID)
	var b BookingRow
	err := row.Scan(&b.ID, &b.OrgID, &b.EquipmentID, &b.ProjectRef, &b.Quantity,
		&b.StartDate, &b.EndDate, &b.CreatedAt)
	return b, err
}

const findBookingsByEquipmentID = `
SELECT id, org_id, equipment_id, project_ref, quantity, start_date, end_date, created_at
FROM bookings
WHERE org_id = $1 AND equipment_id = $2
ORDER BY start_date, id
`

// FindBookingsByEquipmentIDParams scopes the listing to one equipment item.
type FindBookingsByEquipmentIDParams struct {
	OrgID       uuid.UUID
	EquipmentID uuid.UUID
}

func (q *Queries) FindBookingsByEquipmentID(ctx context.Context, arg FindBookingsByEquipmentIDParams) ([]BookingRow, error) {
	rows, err := q.db.QueryContext(ctx, findBookingsByEquipmentID, arg.OrgID, arg.EquipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookingRows(rows)
}

const findBookingsOverlapping = `
SELECT id, org_id, equipment_id, project_ref, quantity, start_date, end_date, created_at
FROM bookings
WHERE org_id = $1 AND start_date <= $3 AND end_date >= $2
ORDER BY equipment_id, start_date, id
`

// FindBookingsOverlappingParams bounds the window intersection query.
// Both bounds are inclusive day precision.
type FindBookingsOverlappingParams struct {
	OrgID uuid.UUID
	Start time.Time
	End   time.Time
}

func (q *Queries) FindBookingsOverlapping(ctx context.Context, arg FindBookingsOverlappingParams) ([]BookingRow, error) {
	rows, err := q.db.QueryContext(ctx, findBookingsOverlapping, arg.OrgID, arg.Start, arg.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookingRows(rows)
}

const deleteBooking = `
DELETE FROM bookings WHERE id = $1 AND org_id = $2
`

// DeleteBookingParams identifies the row to delete.
type DeleteBookingParams struct {
	ID    uuid.UUID
	OrgID uuid.UUID
}

func (q *Queries) DeleteBooking(ctx context.Context, arg DeleteBookingParams) error {
	_, err := q.db.ExecContext(ctx, deleteBooking, arg.ID, arg.OrgID)
	return err
}

func scanBookingRows(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]BookingRow, error) {
	var out []BookingRow
	for rows.Next() {
		var b BookingRow
		if err := rows.Scan(&b.ID, &b.OrgID, &b.EquipmentID, &b.ProjectRef, &b.Quantity,
			&b.StartDate, &b.EndDate, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
