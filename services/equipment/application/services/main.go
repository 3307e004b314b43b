package services

import (
	"github.com/quincyapp/quincy/pkg/app"
	"github.com/quincyapp/quincy/pkg/cache"
	"github.com/quincyapp/quincy/services/equipment/domain/stock"
	"github.com/quincyapp/quincy/services/equipment/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Equipment    *EquipmentService
	Booking      *BookingService
	Availability *AvailabilityService
}

// New wires all equipment application services with infrastructure from the
// Application container. Engine policy comes from configuration, never from
// constants inside the engine.
func New(a *app.Application) *Services {
	equipmentRepo := postgres.NewEquipmentRepository(a.Db, a.EventBus)
	bookingRepo := postgres.NewBookingRepository(a.Db, a.EventBus)
	equipmentCache := cache.NewEquipmentCache(a.Redis)
	availabilityCache := cache.NewAvailabilityCache(a.Redis)

	availability := NewAvailabilityService(
		equipmentRepo,
		bookingRepo,
		availabilityCache,
		EnginePolicy{
			WindowDays: a.Cfg.ConflictWindowDays,
			Conflict: stock.ConflictPolicy{
				CriticalShortfall:  a.Cfg.ConflictCriticalShortfall,
				CriticalWithinDays: a.Cfg.ConflictCriticalWithin,
			},
			Suggestion: stock.SuggestionPolicy{
				PackSize:      a.Cfg.SubrentalPackSize,
				BufferPercent: a.Cfg.SubrentalBufferPercent,
			},
		},
		a.Logger,
	)

	return &Services{
		Equipment:    NewEquipmentService(equipmentRepo, equipmentCache, availabilityCache),
		Booking:      NewBookingService(bookingRepo, equipmentRepo, availabilityCache),
		Availability: availability,
	}
}
