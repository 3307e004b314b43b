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

// CreateBookingRequest is the request body for POST /bookings.
// EndDate may be omitted for single-day bookings.
type CreateBookingRequest struct {
	EquipmentID string `json:"equipment_id" validate:"required,uuid" example:"123e4567-e89b-12d3-a456-426614174000"`
	ProjectRef  string `json:"project_ref" validate:"max=255" example:"PRJ-2026-014 load-in"`
	Quantity    int    `json:"quantity" validate:"required,gte=1" example:"6"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02" example:"2026-06-01"`
	EndDate     string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-06-03"`
} // @name CreateBookingRequest

// PostBookingHandler handles POST /bookings requests.
type PostBookingHandler struct {
	svc *appsvcs.Services
}

// NewPostBookingHandler returns a PostBookingHandler backed by the given services.
func NewPostBookingHandler(svc *appsvcs.Services) *PostBookingHandler {
	return &PostBookingHandler{svc: svc}
}

// Execute books a quantity of equipment over a date range.
//
//	@Summary		Create booking
//	@Description	Commits a quantity of one equipment item over an inclusive day range
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateBookingRequest	true	"Booking creation request"
//	@Success		201		{object}	BookingResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/bookings [post]
func (h *PostBookingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateBookingRequest](w, r)
	if !ok {
		return
	}

	equipmentID, _ := uuid.Parse(req.EquipmentID)             // validated above
	startDate, _ := time.Parse(dateParamLayout, req.StartDate) // validated above

	var endDate time.Time
	if req.EndDate != "" {
		endDate, _ = time.Parse(dateParamLayout, req.EndDate) // validated above
	}

	b, err := h.svc.Booking.Create(r.Context(), orgID, equipmentID, req.ProjectRef, req.Quantity, startDate, endDate)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toBookingResponse(b))
}
