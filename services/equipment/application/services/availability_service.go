package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgcache "github.com/quincyapp/quincy/pkg/cache"
	"github.com/quincyapp/quincy/pkg/logger"
	"github.com/quincyapp/quincy/services/equipment/domain/models"
	"github.com/quincyapp/quincy/services/equipment/domain/repositories"
	"github.com/quincyapp/quincy/services/equipment/domain/stock"
)

// EnginePolicy bundles the injected stock-engine configuration.
type EnginePolicy struct {
	WindowDays int
	Conflict   stock.ConflictPolicy
	Suggestion stock.SuggestionPolicy
}

// AvailabilityService runs the pure stock engine over freshly fetched
// snapshots and caches the final outputs. The engine itself stays stateless;
// this layer owns all I/O and caching around it.
type AvailabilityService struct {
	equipmentRepo repositories.EquipmentRepository
	bookingRepo   repositories.BookingRepository
	cache         *pkgcache.AvailabilityCache
	policy        EnginePolicy
	log           logger.Logger
}

// NewAvailabilityService returns an AvailabilityService with the given
// repositories, output cache and engine policy.
func NewAvailabilityService(
	equipmentRepo repositories.EquipmentRepository,
	bookingRepo repositories.BookingRepository,
	cache *pkgcache.AvailabilityCache,
	policy EnginePolicy,
	log logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
		cache:         cache,
		policy:        policy,
		log:           log,
	}
}

// WarningWindow returns the configured forward-looking window starting at now.
func (s *AvailabilityService) WarningWindow(now time.Time) stock.Window {
	return stock.WarningWindow(now, s.policy.WindowDays)
}

// EffectiveStock computes the per-day effective stock matrix for the org
// within the window, scoped by the filters' equipment/folder allow-lists.
func (s *AvailabilityService) EffectiveStock(ctx context.Context, orgID uuid.UUID, window stock.Window, filters stock.ConflictFilters) ([]stock.EffectiveStock, error) {
	if window.Empty() {
		return nil, nil
	}

	type request struct {
		Op      string
		Window  stock.Window
		Filters stock.ConflictFilters
	}
	key := pkgcache.RequestKey(request{Op: "matrix", Window: window, Filters: filters})

	var cached []stock.EffectiveStock
	if s.cacheGet(ctx, orgID, key, &cached) {
		return cached, nil
	}

	items, commitments, err := s.snapshot(ctx, orgID, window)
	if err != nil {
		return nil, err
	}

	matrix := stock.BatchEffectiveStock(scopeItems(items, filters), commitments, window)
	s.cacheSet(ctx, orgID, key, matrix)
	return matrix, nil
}

// Conflicts runs the conflict analyzer for the org within the window.
func (s *AvailabilityService) Conflicts(ctx context.Context, orgID uuid.UUID, window stock.Window, filters stock.ConflictFilters) (stock.ConflictAnalysis, error) {
	if window.Empty() {
		return stock.ConflictAnalysis{}, nil
	}

	type request struct {
		Op      string
		Window  stock.Window
		Filters stock.ConflictFilters
		Policy  stock.ConflictPolicy
	}
	key := pkgcache.RequestKey(request{Op: "conflicts", Window: window, Filters: filters, Policy: s.policy.Conflict})

	var cached stock.ConflictAnalysis
	if s.cacheGet(ctx, orgID, key, &cached) {
		return cached, nil
	}

	items, commitments, err := s.snapshot(ctx, orgID, window)
	if err != nil {
		return stock.ConflictAnalysis{}, err
	}

	matrix := stock.BatchEffectiveStock(items, commitments, window)
	analysis := stock.AnalyzeConflicts(items, matrix, filters, s.policy.Conflict)
	s.cacheSet(ctx, orgID, key, analysis)
	return analysis, nil
}

// SubrentalSuggestions generates subrental proposals for the org's conflicts
// within the window.
func (s *AvailabilityService) SubrentalSuggestions(ctx context.Context, orgID uuid.UUID, window stock.Window, filters stock.SuggestionFilters) ([]stock.SubrentalSuggestion, error) {
	if window.Empty() {
		return nil, nil
	}

	type request struct {
		Op      string
		Window  stock.Window
		Filters stock.SuggestionFilters
		Policy  stock.SuggestionPolicy
	}
	key := pkgcache.RequestKey(request{Op: "subrentals", Window: window, Filters: filters, Policy: s.policy.Suggestion})

	var cached []stock.SubrentalSuggestion
	if s.cacheGet(ctx, orgID, key, &cached) {
		return cached, nil
	}

	// Suggestions derive from the unfiltered analysis so ranges stay maximal;
	// the suggestion filters narrow afterwards.
	analysis, err := s.Conflicts(ctx, orgID, window, stock.ConflictFilters{})
	if err != nil {
		return nil, err
	}

	suggestions := stock.SuggestSubrentals(analysis.Records, filters, s.policy.Suggestion)
	s.cacheSet(ctx, orgID, key, suggestions)
	return suggestions, nil
}

// snapshot fetches the engine's inputs: all equipment for the org plus every
// booking overlapping the window, mapped to engine types at this boundary.
func (s *AvailabilityService) snapshot(ctx context.Context, orgID uuid.UUID, window stock.Window) ([]stock.Item, []stock.Commitment, error) {
	equipment, err := s.equipmentRepo.FindAllByOrgID(ctx, orgID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch equipment: %w", err)
	}
	bookings, err := s.bookingRepo.FindOverlappingWindow(ctx, orgID, window.Start, window.End)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch bookings: %w", err)
	}
	return toStockItems(equipment), toCommitments(bookings), nil
}

func (s *AvailabilityService) cacheGet(ctx context.Context, orgID uuid.UUID, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, orgID, key, out)
	if err != nil {
		s.log.WarnContext(ctx, "availability cache read failed", "error", err)
		return false
	}
	return hit
}

func (s *AvailabilityService) cacheSet(ctx context.Context, orgID uuid.UUID, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, orgID, key, v); err != nil {
		s.log.WarnContext(ctx, "availability cache write failed", "error", err)
	}
}

// toStockItems maps Equipment aggregates to the engine's Item view.
func toStockItems(equipment []*models.Equipment) []stock.Item {
	items := make([]stock.Item, len(equipment))
	for i, eq := range equipment {
		items[i] = stock.Item{
			ID:        eq.ID,
			Name:      eq.Name.String(),
			Code:      eq.Code.String(),
			BaseStock: eq.BaseStock,
			FolderID:  eq.FolderID,
		}
	}
	return items
}

// toCommitments maps Bookings to engine Commitments.
func toCommitments(bookings []*models.Booking) []stock.Commitment {
	commitments := make([]stock.Commitment, len(bookings))
	for i, b := range bookings {
		commitments[i] = stock.Commitment{
			EquipmentID: b.EquipmentID,
			Start:       b.StartDate,
			End:         b.EndDate,
			Quantity:    b.Quantity,
		}
	}
	return commitments
}

// scopeItems narrows the item set for matrix computation using the same
// allow-list semantics as the conflict analyzer.
func scopeItems(items []stock.Item, filters stock.ConflictFilters) []stock.Item {
	if len(filters.EquipmentIDs) == 0 && len(filters.FolderIDs) == 0 {
		return items
	}
	byID := make(map[uuid.UUID]struct{}, len(filters.EquipmentIDs))
	for _, id := range filters.EquipmentIDs {
		byID[id] = struct{}{}
	}
	byFolder := make(map[uuid.UUID]struct{}, len(filters.FolderIDs))
	for _, id := range filters.FolderIDs {
		byFolder[id] = struct{}{}
	}
	scoped := make([]stock.Item, 0, len(items))
	for _, it := range items {
		if _, ok := byID[it.ID]; ok {
			scoped = append(scoped, it)
			continue
		}
		if _, ok := byFolder[it.FolderID]; ok {
			scoped = append(scoped, it)
		}
	}
	return scoped
}
