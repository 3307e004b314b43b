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

// ListBookingsHandler handles GET /equipment/{id}/bookings requests.
type ListBookingsHandler struct {
	svc *appsvcs.Services
}

// NewListBookingsHandler returns a ListBookingsHandler backed by the given services.
func NewListBookingsHandler(svc *appsvcs.Services) *ListBookingsHandler {
	return &ListBookingsHandler{svc: svc}
}

// Execute lists every booking for one equipment item.
//
//	@Summary		List bookings for equipment
//	@Tags			bookings
//	@Produce		json
//	@Param			id	path		string	true	"Equipment ID"
//	@Success		200	{array}		BookingResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/equipment/{id}/bookings [get]
func (h *ListBookingsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	equipmentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}

	bookings, err := h.svc.Booking.ListByEquipment(r.Context(), orgID, equipmentID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = toBookingResponse(b)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
