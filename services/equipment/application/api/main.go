package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/quincyapp/quincy/pkg/app"
	"github.com/quincyapp/quincy/services/equipment/application/handlers"
	appsvcs "github.com/quincyapp/quincy/services/equipment/application/services"
)

// EquipmentRoutes registers equipment, booking and availability endpoints on
// the provided chi router.
func EquipmentRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/equipment", func(r chi.Router) {
			r.Post("/", handlers.NewPostEquipmentHandler(svcs).Execute)
			r.Get("/", handlers.NewListEquipmentHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetEquipmentHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteEquipmentHandler(svcs).Execute)
			r.Get("/{id}/bookings", handlers.NewListBookingsHandler(svcs).Execute)
		})
		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", handlers.NewPostBookingHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteBookingHandler(svcs).Execute)
		})
		r.Get("/availability", handlers.NewGetAvailabilityHandler(svcs).Execute)
		r.Get("/conflicts", handlers.NewGetConflictsHandler(svcs).Execute)
		r.Get("/subrental-suggestions", handlers.NewGetSubrentalSuggestionsHandler(svcs).Execute)
	})
}
