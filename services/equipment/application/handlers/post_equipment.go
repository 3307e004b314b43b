package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/quincyapp/quincy/pkg/auth"
	"github.com/quincyapp/quincy/pkg/errhttp"
	"github.com/quincyapp/quincy/pkg/httpx"
	pkgvalidator "github.com/quincyapp/quincy/pkg/validator"
	appsvcs "github.com/quincyapp/quincy/services/equipment/application/services"
)

// CreateEquipmentRequest is the request body for POST /equipment.
type CreateEquipmentRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255" example:"Speaker d&b V8"`
	Code      string `json:"code" validate:"required,min=1,max=64" example:"SPK-V8"`
	BaseStock int    `json:"base_stock" validate:"gte=0" example:"10"`
	FolderID  string `json:"folder_id,omitempty" validate:"omitempty,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name CreateEquipmentRequest

// EquipmentResponse is the JSON representation of an equipment item.
type EquipmentResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	OrgID     uuid.UUID `json:"org_id"     example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name"       example:"Speaker d&b V8"`
	Code      string    `json:"code"       example:"SPK-V8"`
	BaseStock int       `json:"base_stock" example:"10"`
	FolderID  string    `json:"folder_id,omitempty"`
	CreatedAt time.Time `json:"created_at" example:"2026-01-15T10:30:00Z"`
} // @name EquipmentResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"equipment not found"`
} // @name ErrorResponse

// PostEquipmentHandler handles POST /equipment requests.
type PostEquipmentHandler struct {
	svc *appsvcs.Services
}

// NewPostEquipmentHandler returns a PostEquipmentHandler backed by the given services.
func NewPostEquipmentHandler(svc *appsvcs.Services) *PostEquipmentHandler {
	return &PostEquipmentHandler{svc: svc}
}

// Execute creates a new equipment item.
//
//	@Summary		Create equipment
//	@Description	Creates a new equipment item scoped to the authenticated organization
//	@Tags			equipment
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateEquipmentRequest	true	"Equipment creation request"
//	@Success		201		{object}	EquipmentResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/equipment [post]
func (h *PostEquipmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateEquipmentRequest](w, r)
	if !ok {
		return
	}

	folderID := uuid.Nil
	if req.FolderID != "" {
		folderID, _ = uuid.Parse(req.FolderID) // validated above
	}

	eq, err := h.svc.Equipment.Create(r.Context(), orgID, req.Name, req.Code, req.BaseStock, folderID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toEquipmentResponse(eq))
}
