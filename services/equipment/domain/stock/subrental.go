package stock

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// SuggestionPolicy is the injected sizing policy for subrental suggestions.
// The recommended quantity is the shortfall plus BufferPercent, rounded up to
// the nearest multiple of PackSize. A PackSize below 1 is treated as 1.
type SuggestionPolicy struct {
	PackSize      int
	BufferPercent int
}

// SubrentalSuggestion proposes an external rental covering a shortfall range.
type SubrentalSuggestion struct {
	EquipmentID   uuid.UUID
	EquipmentName string
	Start         time.Time
	End           time.Time
	Shortfall     int // worst shortfall across the covered range
	Quantity      int // recommended rental quantity after buffer and rounding
	Severity      Severity
}

// SuggestionFilters narrows which conflicts suggestions are generated for.
type SuggestionFilters struct {
	EquipmentIDs []uuid.UUID
	From         time.Time
	To           time.Time
}

// SuggestSubrentals turns conflict records into subrental suggestions.
// Conflicts for the same item with overlapping or adjacent ranges are merged
// first, so a caller can rent once to cover a whole contiguous shortfall even
// if the input arrived split. Filtering happens before merging.
func SuggestSubrentals(conflicts []ConflictRecord, filters SuggestionFilters, policy SuggestionPolicy) []SubrentalSuggestion {
	scoped := make([]ConflictRecord, 0, len(conflicts))
	allow := make(map[uuid.UUID]struct{}, len(filters.EquipmentIDs))
	for _, id := range filters.EquipmentIDs {
		allow[id] = struct{}{}
	}
	for _, c := range conflicts {
		if len(allow) > 0 {
			if _, ok := allow[c.EquipmentID]; !ok {
				continue
			}
		}
		if !filters.From.IsZero() && c.End.Before(Day(filters.From)) {
			continue
		}
		if !filters.To.IsZero() && c.Start.After(Day(filters.To)) {
			continue
		}
		scoped = append(scoped, c)
	}
	if len(scoped) == 0 {
		return nil
	}

	merged := mergeConflictRanges(scoped)

	suggestions := make([]SubrentalSuggestion, 0, len(merged))
	for _, c := range merged {
		suggestions = append(suggestions, SubrentalSuggestion{
			EquipmentID:   c.EquipmentID,
			EquipmentName: c.EquipmentName,
			Start:         c.Start,
			End:           c.End,
			Shortfall:     c.Shortfall,
			Quantity:      recommendedQuantity(c.Shortfall, policy),
			Severity:      c.Severity,
		})
	}
	return suggestions
}

// mergeConflictRanges merges overlapping or day-adjacent ranges per item:
// sort by (item, start), then fold each range into the previous one when it
// starts no later than the day after the previous end. The merged range keeps
// the worst shortfall and severity of its parts.
func mergeConflictRanges(conflicts []ConflictRecord) []ConflictRecord {
	sorted := make([]ConflictRecord, len(conflicts))
	copy(sorted, conflicts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].EquipmentID != sorted[j].EquipmentID {
			return sorted[i].EquipmentID.String() < sorted[j].EquipmentID.String()
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := sorted[:1]
	for _, c := range sorted[1:] {
		last := &merged[len(merged)-1]
		if c.EquipmentID == last.EquipmentID && !c.Start.After(last.End.AddDate(0, 0, 1)) {
			if c.End.After(last.End) {
				last.End = c.End
			}
			if c.Shortfall > last.Shortfall {
				last.Shortfall = c.Shortfall
			}
			if c.Severity == SeverityCritical {
				last.Severity = SeverityCritical
			}
			continue
		}
		merged = append(merged, c)
	}
	return merged
}

// recommendedQuantity applies the buffer percentage and rounds up to the pack size.
func recommendedQuantity(shortfall int, policy SuggestionPolicy) int {
	if shortfall <= 0 {
		return 0
	}
	qty := shortfall
	if policy.BufferPercent > 0 {
		buffer := shortfall * policy.BufferPercent
		qty += (buffer + 99) / 100 // ceil(shortfall * pct / 100)
	}
	pack := policy.PackSize
	if pack < 1 {
		pack = 1
	}
	if rem := qty % pack; rem != 0 {
		qty += pack - rem
	}
	return qty
}
