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

// DeleteEquipmentHandler handles DELETE /equipment/{id} requests.
type DeleteEquipmentHandler struct {
	svc *appsvcs.Services
}

// NewDeleteEquipmentHandler returns a DeleteEquipmentHandler backed by the given services.
func NewDeleteEquipmentHandler(svc *appsvcs.Services) *DeleteEquipmentHandler {
	return &DeleteEquipmentHandler{svc: svc}
}

// Execute deletes one equipment item.
//
//	@Summary		Delete equipment
//	@Tags			equipment
//	@Param			id	path	string	true	"Equipment ID"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/equipment/{id} [delete]
func (h *DeleteEquipmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Equipment.Delete(r.Context(), orgID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
