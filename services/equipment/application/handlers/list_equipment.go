package handlers

import (
	"net/http"

	"github.com/quincyapp/quincy/pkg/auth"
	"github.com/quincyapp/quincy/pkg/errhttp"
	"github.com/quincyapp/quincy/pkg/httpx"
	appsvcs "github.com/quincyapp/quincy/services/equipment/application/services"
	"github.com/quincyapp/quincy/services/equipment/domain/repositories"
)

// ListEquipmentResponse is the paginated equipment listing.
type ListEquipmentResponse struct {
	Items []EquipmentResponse `json:"items"`
	Total int                 `json:"total"`
} // @name ListEquipmentResponse

// ListEquipmentHandler handles GET /equipment requests.
type ListEquipmentHandler struct {
	svc *appsvcs.Services
}

// NewListEquipmentHandler returns a ListEquipmentHandler backed by the given services.
func NewListEquipmentHandler(svc *appsvcs.Services) *ListEquipmentHandler {
	return &ListEquipmentHandler{svc: svc}
}

// Execute lists equipment for the org with pagination.
//
//	@Summary		List equipment
//	@Tags			equipment
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (max 200)"
//	@Param			offset	query		int	false	"Offset"
//	@Success		200		{object}	ListEquipmentResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/equipment [get]
func (h *ListEquipmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	limit, offset := parsePagination(r)
	items, total, err := h.svc.Equipment.List(r.Context(), orgID, repositories.QueryOpts{Limit: limit, Offset: offset})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListEquipmentResponse{Items: make([]EquipmentResponse, len(items)), Total: total}
	for i, eq := range items {
		resp.Items[i] = toEquipmentResponse(eq)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
