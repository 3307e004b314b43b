package handlers

import (
	"net/http"
	"time"

	"github.com/quincyapp/quincy/pkg/auth"
	"github.com/quincyapp/quincy/pkg/errhttp"
	"github.com/quincyapp/quincy/pkg/httpx"
	appsvcs "github.com/quincyapp/quincy/services/equipment/application/services"
	"github.com/quincyapp/quincy/services/equipment/domain/stock"
)

// GetAvailabilityHandler handles GET /availability requests.
type GetAvailabilityHandler struct {
	svc *appsvcs.Services
}

// NewGetAvailabilityHandler returns a GetAvailabilityHandler backed by the given services.
func NewGetAvailabilityHandler(svc *appsvcs.Services) *GetAvailabilityHandler {
	return &GetAvailabilityHandler{svc: svc}
}

// Execute returns the per-day effective stock matrix for the org.
//
//	@Summary		Effective stock matrix
//	@Description	Per-equipment per-day base stock, committed quantity and remaining availability. Defaults to the forward-looking warning window when no dates are given.
//	@Tags			availability
//	@Produce		json
//	@Param			start			query		string	false	"Window start (YYYY-MM-DD)"
//	@Param			end				query		string	false	"Window end (YYYY-MM-DD)"
//	@Param			equipment_id	query		string	false	"Equipment ID filter (repeatable or comma-separated)"
//	@Param			folder_id		query		string	false	"Folder ID filter (repeatable or comma-separated)"
//	@Success		200				{array}		EffectiveStockResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Router			/availability [get]
func (h *GetAvailabilityHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	window, err := parseWindow(r, h.svc.Availability.WarningWindow(time.Now()))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	equipmentIDs, err := parseUUIDList(r, "equipment_id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	folderIDs, err := parseUUIDList(r, "folder_id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	matrix, err := h.svc.Availability.EffectiveStock(r.Context(), orgID, window, stock.ConflictFilters{
		EquipmentIDs: equipmentIDs,
		FolderIDs:    folderIDs,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toEffectiveStockResponses(matrix))
}
