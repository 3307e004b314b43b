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

// DeleteBookingHandler handles DELETE /bookings/{id} requests.
type DeleteBookingHandler struct {
	svc *appsvcs.Services
}

// NewDeleteBookingHandler returns a DeleteBookingHandler backed by the given services.
func NewDeleteBookingHandler(svc *appsvcs.Services) *DeleteBookingHandler {
	return &DeleteBookingHandler{svc: svc}
}

// Execute cancels a booking.
//
//	@Summary		Delete booking
//	@Tags			bookings
//	@Param			id	path	string	true	"Booking ID"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/bookings/{id} [delete]
func (h *DeleteBookingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	if err := h.svc.Booking.Delete(r.Context(), orgID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
