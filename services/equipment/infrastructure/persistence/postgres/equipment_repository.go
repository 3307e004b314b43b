package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/quincyapp/quincy/pkg/database"
	"github.com/quincyapp/quincy/pkg/events"
	eqdomain "github.com/quincyapp/quincy/services/equipment/domain"
	domainevents "github.com/quincyapp/quincy/services/equipment/domain/events"
	"github.com/quincyapp/quincy/services/equipment/domain/models"
	"github.com/quincyapp/quincy/services/equipment/domain/repositories"
	"github.com/quincyapp/quincy/services/equipment/infrastructure/persistence/postgres/db"
)

// EquipmentRepository implements repositories.EquipmentRepository against PostgreSQL.
type EquipmentRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewEquipmentRepository returns an EquipmentRepository backed by the given
// pool and event bus. The bus publishes EquipmentCreatedEvents after a
// successful save, inside the same transaction (outbox pattern).
func NewEquipmentRepository(database *database.Database, bus *events.EventBus) *EquipmentRepository {
	return &EquipmentRepository{db: database, bus: bus}
}

// Save persists a new Equipment item and publishes an EquipmentCreatedEvent
// within the same transaction. Returns ErrEquipmentCodeTaken on unique
// constraint violations.
func (r *EquipmentRepository) Save(ctx context.Context, eq *models.Equipment) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertEquipment(ctx, db.InsertEquipmentParams{
			ID:        eq.ID,
			OrgID:     eq.OrgID,
			Name:      eq.Name.String(),
			Code:      eq.Code.String(),
			BaseStock: int32(eq.BaseStock),
			FolderID:  toNullUUID(eq.FolderID),
			CreatedAt: eq.CreatedAt,
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return eqdomain.ErrEquipmentCodeTaken
			}
			return fmt.Errorf("insert equipment: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, eq); err != nil {
				return fmt.Errorf("publish equipment created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an Equipment item by ID scoped to the given org.
// Returns ErrEquipmentNotFound if not found.
func (r *EquipmentRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Equipment, error) {
	q := db.New(r.db.DB())
	row, err := q.GetEquipmentByID(ctx, db.GetEquipmentByIDParams{
		ID:    id,
		OrgID: orgID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, eqdomain.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	return rowToEquipment(row), nil
}

// FindByOrgID retrieves a paginated list and total count for the given org.
func (r *EquipmentRepository) FindByOrgID(ctx context.Context, orgID uuid.UUID, opts repositories.QueryOpts) ([]*models.Equipment, int, error) {
	q := db.New(r.db.DB())

	rows, err := q.FindEquipmentByOrgID(ctx, db.FindEquipmentByOrgIDParams{
		OrgID:  orgID,
		Limit:  int32(opts.Limit),
		Offset: int32(opts.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query equipment list: %w", err)
	}

	total, err := q.CountEquipmentByOrgID(ctx, orgID)
	if err != nil {
		return nil, 0, fmt.Errorf("count equipment: %w", err)
	}

	items := make([]*models.Equipment, len(rows))
	for i, row := range rows {
		items[i] = rowToEquipment(row)
	}
	return items, int(total), nil
}

// FindAllByOrgID retrieves every equipment row for the org.
func (r *EquipmentRepository) FindAllByOrgID(ctx context.Context, orgID uuid.UUID) ([]*models.Equipment, error) {
	q := db.New(r.db.DB())
	rows, err := q.FindAllEquipmentByOrgID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("query all equipment: %w", err)
	}
	items := make([]*models.Equipment, len(rows))
	for i, row := range rows {
		items[i] = rowToEquipment(row)
	}
	return items, nil
}

// Delete removes an equipment item by ID scoped to the given org.
func (r *EquipmentRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	q := db.New(r.db.DB())
	if err := q.DeleteEquipment(ctx, db.DeleteEquipmentParams{
		ID:    id,
		OrgID: orgID,
	}); err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	return nil
}

// Exists reports whether equipment with the given ID exists for the org.
func (r *EquipmentRepository) Exists(ctx context.Context, orgID, id uuid.UUID) (bool, error) {
	q := db.New(r.db.DB())
	exists, err := q.EquipmentExists(ctx, db.EquipmentExistsParams{
		ID:    id,
		OrgID: orgID,
	})
	if err != nil {
		return false, fmt.Errorf("check equipment exists: %w", err)
	}
	return exists, nil
}

func (r *EquipmentRepository) publishCreated(tx *sql.Tx, eq *models.Equipment) error {
	event := domainevents.EquipmentCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     eq.ID,
		OrgID:      eq.OrgID,
		Name:       eq.Name.String(),
		Code:       eq.Code.String(),
		BaseStock:  eq.BaseStock,
		OccurredAt: eq.CreatedAt,
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
	return p.Publish(domainevents.TopicEquipmentCreated, msg)
}

// rowToEquipment maps a db.EquipmentRow to a domain models.Equipment.
func rowToEquipment(row db.EquipmentRow) *models.Equipment {
	return &models.Equipment{
		ID:        row.ID,
		OrgID:     row.OrgID,
		Name:      models.EquipmentName(row.Name),
		Code:      models.EquipmentCode(row.Code),
		BaseStock: int(row.BaseStock),
		FolderID:  fromNullUUID(row.FolderID),
		CreatedAt: row.CreatedAt,
	}
}

func toNullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

func fromNullUUID(id uuid.NullUUID) uuid.UUID {
	if !id.Valid {
		return uuid.Nil
	}
	return id.UUID
}
