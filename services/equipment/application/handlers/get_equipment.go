package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quincyapp/quincy/pkg/auth"
	"github.com/quincyapp/quincy/pkg/errhttp"
	"github.com/quincyapp/quincy/pkg/httpx"
	appsvcs "github.com/quincyapp/quincy/services/equipment/application/services"
)

// GetEquipmentHandler handles GET /equipment/{id} requests.
type GetEquipmentHandler struct {
	svc *appsvcs.Services
}

// NewGetEquipmentHandler returns a GetEquipmentHandler backed by the given services.
func NewGetEquipmentHandler(svc *appsvcs.Services) *GetEquipmentHandler {
	return &GetEquipmentHandler{svc: svc}
}

// Execute fetches one equipment item.
//
//	@Summary		Get equipment
//	@Tags			equipment
//	@Produce		json
//	@Param			id	path		string	true	"Equipment ID"
//	@Success		200	{object}	EquipmentResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/equipment/{id} [get]
func (h *GetEquipmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}

	eq, err := h.svc.Equipment.GetByID(r.Context(), orgID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toEquipmentResponse(eq))
}
