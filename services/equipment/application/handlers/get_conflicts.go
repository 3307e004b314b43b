package handlers

import (
	"net/http"
	"time"

	"github.com/quincyapp/quincy/pkg/auth"
	"github.com/quincyapp/quincy/pkg/errhttp"
	"github.com/quincyapp/quincy/pkg/httpx"
	appsvcs "github.com/quincyapp/quincy/services/equipment/application/services"
)

// GetConflictsHandler handles GET /conflicts requests.
type GetConflictsHandler struct {
	svc *appsvcs.Services
}

// NewGetConflictsHandler returns a GetConflictsHandler backed by the given services.
func NewGetConflictsHandler(svc *appsvcs.Services) *GetConflictsHandler {
	return &GetConflictsHandler{svc: svc}
}

// Execute analyzes overbooking conflicts for the org.
//
//	@Summary		Conflict analysis
//	@Description	Maximal contiguous overbooked ranges per equipment item, each carrying its worst shortfall and a severity classification.
//	@Tags			availability
//	@Produce		json
//	@Param			start			query		string	false	"Window start (YYYY-MM-DD)"
//	@Param			end				query		string	false	"Window end (YYYY-MM-DD)"
//	@Param			equipment_id	query		string	false	"Equipment ID filter (repeatable or comma-separated)"
//	@Param			folder_id		query		string	false	"Folder ID filter (repeatable or comma-separated)"
//	@Param			from			query		string	false	"Only count conflict days on or after this date (YYYY-MM-DD)"
//	@Param			to				query		string	false	"Only count conflict days on or before this date (YYYY-MM-DD)"
//	@Success		200				{object}	ConflictAnalysisResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Router			/conflicts [get]
func (h *GetConflictsHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	filters, err := parseConflictFilters(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	analysis, err := h.svc.Availability.Conflicts(r.Context(), orgID, window, filters)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toConflictAnalysisResponse(analysis))
}
