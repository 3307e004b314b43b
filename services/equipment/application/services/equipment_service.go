package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/quincyapp/quincy/pkg/cache"
	eqdomain "github.com/quincyapp/quincy/services/equipment/domain"
	"github.com/quincyapp/quincy/services/equipment/domain/models"
	"github.com/quincyapp/quincy/services/equipment/domain/repositories"
	domainsvcs "github.com/quincyapp/quincy/services/equipment/domain/services"
)

// EquipmentService orchestrates creation and retrieval of Equipment.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from the Redis read model when available.
type EquipmentService struct {
	repo         repositories.EquipmentRepository
	cache        *pkgcache.EquipmentCache
	availability *pkgcache.AvailabilityCache
}

// NewEquipmentService returns an EquipmentService wired with the given
// repository and caches.
func NewEquipmentService(repo repositories.EquipmentRepository, eqCache *pkgcache.EquipmentCache, availability *pkgcache.AvailabilityCache) *EquipmentService {
	return &EquipmentService{repo: repo, cache: eqCache, availability: availability}
}

// Create validates and persists an Equipment item. The repository publishes
// EquipmentCreatedEvent. A new item changes the availability picture (its
// base stock enters the matrix), so cached engine outputs are invalidated.
func (s *EquipmentService) Create(ctx context.Context, orgID uuid.UUID, name, code string, baseStock int, folderID uuid.UUID) (*models.Equipment, error) {
	eqName, err := models.NewEquipmentName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", eqdomain.ErrInvalidEquipment, err)
	}

	eqCode, err := models.NewEquipmentCode(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", eqdomain.ErrInvalidEquipment, err)
	}

	eq, err := models.NewEquipment(orgID, eqName, eqCode, baseStock, folderID)
	if err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}

	if err := domainsvcs.ValidateEquipmentForCreation(eq); err != nil {
		return nil, fmt.Errorf("%w: %w", eqdomain.ErrInvalidEquipment, err)
	}

	if err := s.repo.Save(ctx, eq); err != nil {
		return nil, fmt.Errorf("save equipment: %w", err)
	}

	if s.availability != nil {
		_ = s.availability.Invalidate(context.WithoutCancel(ctx), orgID)
	}

	return eq, nil
}

// GetByID retrieves an Equipment item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
//
// The cached read model does not carry the folder, so cache hits return
// FolderID unset; list and availability paths always read Postgres.
func (s *EquipmentService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Equipment, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, orgID, id); err == nil {
			return &models.Equipment{
				ID:        cached.ID,
				OrgID:     cached.OrgID,
				Name:      models.EquipmentName(cached.Name),
				Code:      models.EquipmentCode(cached.Code),
				BaseStock: cached.BaseStock,
				CreatedAt: cached.CreatedAt,
			}, nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — fall through to Postgres.
			_ = err
		}
	}

	eq, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedEquipment{
				ID:        eq.ID,
				OrgID:     eq.OrgID,
				Name:      eq.Name.String(),
				Code:      eq.Code.String(),
				BaseStock: eq.BaseStock,
				CreatedAt: eq.CreatedAt,
			})
		}()
	}

	return eq, nil
}

// List returns a paginated slice of equipment for the org plus total count.
func (s *EquipmentService) List(ctx context.Context, orgID uuid.UUID, opts repositories.QueryOpts) ([]*models.Equipment, int, error) {
	items, total, err := s.repo.FindByOrgID(ctx, orgID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list equipment: %w", err)
	}
	return items, total, nil
}

// Delete removes an equipment item by ID scoped to the given org.
// Returns ErrEquipmentNotFound if no matching item exists.
func (s *EquipmentService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, orgID, id)
	if err != nil {
		return fmt.Errorf("check equipment: %w", err)
	}
	if !exists {
		return eqdomain.ErrEquipmentNotFound
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), orgID, id)
	}
	if s.availability != nil {
		_ = s.availability.Invalidate(context.Background(), orgID)
	}
	return nil
}
