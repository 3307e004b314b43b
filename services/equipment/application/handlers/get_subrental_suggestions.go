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

// GetSubrentalSuggestionsHandler handles GET /subrental-suggestions requests.
type GetSubrentalSuggestionsHandler struct {
	svc *appsvcs.Services
}

// NewGetSubrentalSuggestionsHandler returns a GetSubrentalSuggestionsHandler
// backed by the given services.
func NewGetSubrentalSuggestionsHandler(svc *appsvcs.Services) *GetSubrentalSuggestionsHandler {
	return &GetSubrentalSuggestionsHandler{svc: svc}
}

// Execute proposes external rentals covering the org's shortfalls.
//
//	@Summary		Subrental suggestions
//	@Description	Merges overlapping and adjacent conflicts per equipment item into single rental windows and applies the quantity rounding policy.
//	@Tags			availability
//	@Produce		json
//	@Param			start			query		string	false	"Window start (YYYY-MM-DD)"
//	@Param			end				query		string	false	"Window end (YYYY-MM-DD)"
//	@Param			equipment_id	query		string	false	"Equipment ID filter (repeatable or comma-separated)"
//	@Param			from			query		string	false	"Only suggest for conflicts starting on or after this date (YYYY-MM-DD)"
//	@Param			to				query		string	false	"Only suggest for conflicts starting on or before this date (YYYY-MM-DD)"
//	@Success		200				{array}		SubrentalSuggestionResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Router			/subrental-suggestions [get]
func (h *GetSubrentalSuggestionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
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
	from, to, err := parseFromTo(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	suggestions, err := h.svc.Availability.SubrentalSuggestions(r.Context(), orgID, window, stock.SuggestionFilters{
		EquipmentIDs: equipmentIDs,
		From:         from,
		To:           to,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toSubrentalSuggestionResponses(suggestions))
}
