package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const insertEquipment = `
INSERT INTO equipment (id, org_id, name, code, base_stock, folder_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// InsertEquipmentParams holds the columns for InsertEquipment.
type InsertEquipmentParams struct {
	ID        uuid.UUID
	OrgID     uuid.UUID
	Name      string
	Code      string
	BaseStock int32
	FolderID  uuid.NullUUID
	CreatedAt time.Time
}

func (q *Queries) InsertEquipment(ctx context.Context, arg InsertEquipmentParams) error {
	_, err := q.db.ExecContext(ctx, insertEquipment,
		arg.ID, arg.OrgID, arg.Name, arg.Code, arg.BaseStock, arg.FolderID, arg.CreatedAt)
	return err
}

const getEquipmentByID = `
SELECT id, org_id, name, code, base_stock, folder_id, created_at
FROM equipment
WHERE id = $1 AND org_id = $2
`

// GetEquipmentByIDParams identifies one equipment row within an org.
type GetEquipmentByIDParams struct {
	ID    uuid.UUID
	OrgID uuid.UUID
}

func (q *Queries) GetEquipmentByID(ctx context.Context, arg GetEquipmentByIDParams) (EquipmentRow, error) {
	row := q.db.QueryRowContext(ctx, getEquipmentByID, arg.ID, arg.OrgID)
	var e EquipmentRow
	err := row.Scan(&e.ID, &e.OrgID, &e.Name, &e.Code, &e.BaseStock, &e.FolderID, &e.CreatedAt)
	return e, err
}

const findEquipmentByOrgID = `
SELECT id, org_id, name, code, base_stock, folder_id, created_at
FROM equipment
WHERE org_id = $1
ORDER BY name, id
LIMIT $2 OFFSET $3
`

// FindEquipmentByOrgIDParams holds pagination for the org-scoped listing.
type FindEquipmentByOrgIDParams struct {
	OrgID  uuid.UUID
	Limit  int32
	Offset int32
}

func (q *Queries) FindEquipmentByOrgID(ctx context.Context, arg FindEquipmentByOrgIDParams) ([]EquipmentRow, error) {
	rows, err := q.db.QueryContext(ctx, findEquipmentByOrgID, arg.OrgID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEquipmentRows(rows)
}

const findAllEquipmentByOrgID = `
SELECT id, org_id, name, code, base_stock, folder_id, created_at
FROM equipment
WHERE org_id = $1
ORDER BY name, id
`

func (q *Queries) FindAllEquipmentByOrgID(ctx context.Context, orgID uuid.UUID) ([]EquipmentRow, error) {
	rows, err := q.db.QueryContext(ctx, findAllEquipmentByOrgID, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEquipmentRows(rows)
}

const countEquipmentByOrgID = `
SELECT count(*) FROM equipment WHERE org_id = $1
`

func (q *Queries) CountEquipmentByOrgID(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countEquipmentByOrgID, orgID).Scan(&count)
	return count, err
}

const deleteEquipment = `
DELETE FROM equipment WHERE id = $1 AND org_id = $2
`

// DeleteEquipmentParams identifies the row to delete.
type DeleteEquipmentParams struct {
	ID    uuid.UUID
	OrgID uuid.UUID
}

func (q *Queries) DeleteEquipment(ctx context.Context, arg DeleteEquipmentParams) error {
	_, err := q.db.ExecContext(ctx, deleteEquipment, arg.ID, arg.OrgID)
	return err
}

const equipmentExists = `
SELECT EXISTS(SELECT 1 FROM equipment WHERE id = $1 AND org_id = $2)
`

// EquipmentExistsParams identifies the row to probe.
type EquipmentExistsParams struct {
	ID    uuid.UUID
	OrgID uuid.UUID
}

func (q *Queries) EquipmentExists(ctx context.Context, arg EquipmentExistsParams) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, equipmentExists, arg.ID, arg.OrgID).Scan(&exists)
	return exists, err
}

func scanEquipmentRows(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]EquipmentRow, error) {
	var out []EquipmentRow
	for rows.Next() {
		var e EquipmentRow
		if err := rows.Scan(&e.ID, &e.OrgID, &e.Name, &e.Code, &e.BaseStock, &e.FolderID, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
