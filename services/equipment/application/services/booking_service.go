package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgcache "github.com/quincyapp/quincy/pkg/cache"
	eqdomain "github.com/quincyapp/quincy/services/equipment/domain"
	"github.com/quincyapp/quincy/services/equipment/domain/models"
	"github.com/quincyapp/quincy/services/equipment/domain/repositories"
	domainsvcs "github.com/quincyapp/quincy/services/equipment/domain/services"
)

// BookingService orchestrates booking writes. Every successful write
// invalidates the org's cached availability results; the worker does the same
// on the published events, covering writers that bypass this process.
type BookingService struct {
	repo          repositories.BookingRepository
	equipmentRepo repositories.EquipmentRepository
	availability  *pkgcache.AvailabilityCache
}

// NewBookingService returns a BookingService wired with the given repositories
// and availability cache.
func NewBookingService(repo repositories.BookingRepository, equipmentRepo repositories.EquipmentRepository, availability *pkgcache.AvailabilityCache) *BookingService {
	return &BookingService{repo: repo, equipmentRepo: equipmentRepo, availability: availability}
}

// Create validates and persists a Booking against existing equipment.
// The repository publishes booking.created in the same transaction.
func (s *BookingService) Create(ctx context.Context, orgID, equipmentID uuid.UUID, projectRef string, quantity int, startDate, endDate time.Time) (*models.Booking, error) {
	exists, err := s.equipmentRepo.Exists(ctx, orgID, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("check equipment: %w", err)
	}
	if !exists {
		return nil, eqdomain.ErrEquipmentNotFound
	}

	// Single-day bookings may omit the end date.
	if endDate.IsZero() {
		endDate = startDate
	}

	b, err := models.NewBooking(orgID, equipmentID, projectRef, quantity, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err := domainsvcs.ValidateBookingForCreation(b); err != nil {
		return nil, fmt.Errorf("%w: %w", eqdomain.ErrInvalidBooking, err)
	}

	if err := s.repo.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}

	if s.availability != nil {
		_ = s.availability.Invalidate(context.WithoutCancel(ctx), orgID)
	}

	return b, nil
}

// ListByEquipment returns all bookings for one equipment item.
func (s *BookingService) ListByEquipment(ctx context.Context, orgID, equipmentID uuid.UUID) ([]*models.Booking, error) {
	bookings, err := s.repo.FindByEquipmentID(ctx, orgID, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// Delete removes a booking by ID scoped to the given org.
// Returns ErrBookingNotFound if no matching booking exists.
func (s *BookingService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if s.availability != nil {
		_ = s.availability.Invalidate(context.Background(), orgID)
	}
	return nil
}
