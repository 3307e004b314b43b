// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/quincyapp/quincy/pkg/httpx"
	eqdomain "github.com/quincyapp/quincy/services/equipment/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, eqdomain.ErrEquipmentNotFound),
		errors.Is(err, eqdomain.ErrBookingNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, eqdomain.ErrEquipmentCodeTaken):
		return http.StatusConflict // 409
	case errors.Is(err, eqdomain.ErrInvalidEquipment),
		errors.Is(err, eqdomain.ErrInvalidBooking):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, eqdomain.ErrInvalidDateRange),
		errors.Is(err, eqdomain.ErrInvalidFilter):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
