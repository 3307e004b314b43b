package models

import (
	"time"

	"github.com/google/uuid"
)

// Equipment is the core aggregate for this bounded context: one rentable
// inventory line with a declared base stock quantity.
type Equipment struct {
	ID        uuid.UUID
	OrgID     uuid.UUID // tenant scope — always filter by this in queries
	Name      EquipmentName
	Code      EquipmentCode
	BaseStock int
	FolderID  uuid.UUID // uuid.Nil when the item is not filed in a folder
	CreatedAt time.Time
}

// NewEquipment constructs a valid Equipment aggregate with generated ID and
// current timestamp. baseStock may be zero (e.g. an item tracked before any
// units are purchased) but not negative.
func NewEquipment(orgID uuid.UUID, name EquipmentName, code EquipmentCode, baseStock int, folderID uuid.UUID) (*Equipment, error) {
	return &Equipment{
		ID:        uuid.New(),
		OrgID:     orgID,
		Name:      name,
		Code:      code,
		BaseStock: baseStock,
		FolderID:  folderID,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Folder groups equipment for filtering and reporting.
type Folder struct {
	ID    uuid.UUID
	OrgID uuid.UUID
	Name  string
}
