package stock

import (
	"testing"

	"github.com/google/uuid"
)

func TestSuggestSubrentals_speakerScenario(t *testing.T) {
	item, commitments, window := speakerScenario()
	matrix := BatchEffectiveStock([]Item{item}, commitments, window)
	analysis := AnalyzeConflicts([]Item{item}, matrix, ConflictFilters{}, ConflictPolicy{})

	suggestions := SuggestSubrentals(analysis.Records, SuggestionFilters{}, SuggestionPolicy{PackSize: 1})

	if len(suggestions) != 1 {
		t.Fatalf("expected one suggestion, got %d", len(suggestions))
	}
	s := suggestions[0]
	if s.EquipmentID != item.ID {
		t.Fatalf("suggestion for wrong item: %+v", s)
	}
	if !s.Start.Equal(date(2026, 6, 4)) || !s.End.Equal(date(2026, 6, 4)) {
		t.Fatalf("expected day-4 range, got %v–%v", s.Start, s.End)
	}
	if s.Quantity < 2 {
		t.Fatalf("recommended quantity %d does not cover shortfall 2", s.Quantity)
	}
}

func TestSuggestSubrentals_quantityPolicy(t *testing.T) {
	base := ConflictRecord{EquipmentID: uuid.New(), EquipmentName: "Truss", Start: date(2026, 6, 4), End: date(2026, 6, 5), Shortfall: 7}

	tests := []struct {
		name   string
		policy SuggestionPolicy
		want   int
	}{
		{"no rounding", SuggestionPolicy{PackSize: 1}, 7},
		{"round up to pack of 4", SuggestionPolicy{PackSize: 4}, 8},
		{"exact pack multiple untouched", SuggestionPolicy{PackSize: 7}, 7},
		{"buffer then round", SuggestionPolicy{PackSize: 5, BufferPercent: 20}, 10}, // 7 + ceil(1.4) = 9 → 10
		{"zero pack size treated as 1", SuggestionPolicy{}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestSubrentals([]ConflictRecord{base}, SuggestionFilters{}, tt.policy)
			if len(got) != 1 {
				t.Fatalf("expected one suggestion, got %d", len(got))
			}
			if got[0].Quantity != tt.want {
				t.Fatalf("quantity = %d, want %d", got[0].Quantity, tt.want)
			}
			if got[0].Shortfall != base.Shortfall {
				t.Fatalf("shortfall must pass through untouched, got %d", got[0].Shortfall)
			}
		})
	}
}

func TestSuggestSubrentals_mergesAdjacentRanges(t *testing.T) {
	id := uuid.New()
	conflicts := []ConflictRecord{
		{EquipmentID: id, EquipmentName: "Desk", Start: date(2026, 6, 8), End: date(2026, 6, 9), Shortfall: 1, Severity: SeverityCritical},
		{EquipmentID: id, EquipmentName: "Desk", Start: date(2026, 6, 4), End: date(2026, 6, 5), Shortfall: 3, Severity: SeverityMinor},
		{EquipmentID: id, EquipmentName: "Desk", Start: date(2026, 6, 6), End: date(2026, 6, 7), Shortfall: 2, Severity: SeverityMinor},
	}

	suggestions := SuggestSubrentals(conflicts, SuggestionFilters{}, SuggestionPolicy{PackSize: 1})
	if len(suggestions) != 1 {
		t.Fatalf("adjacent ranges must merge into one suggestion, got %d", len(suggestions))
	}
	s := suggestions[0]
	if !s.Start.Equal(date(2026, 6, 4)) || !s.End.Equal(date(2026, 6, 9)) {
		t.Fatalf("merged range %v–%v, want Jun 4–9", s.Start, s.End)
	}
	if s.Shortfall != 3 {
		t.Fatalf("merged shortfall = %d, want worst part 3", s.Shortfall)
	}
	if s.Severity != SeverityCritical {
		t.Fatalf("merged severity = %s, want critical to win", s.Severity)
	}
}

func TestSuggestSubrentals_doesNotMergeAcrossGapsOrItems(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	conflicts := []ConflictRecord{
		{EquipmentID: a, Start: date(2026, 6, 1), End: date(2026, 6, 2), Shortfall: 1},
		{EquipmentID: a, Start: date(2026, 6, 5), End: date(2026, 6, 5), Shortfall: 1}, // 2-day gap
		{EquipmentID: b, Start: date(2026, 6, 3), End: date(2026, 6, 3), Shortfall: 1}, // other item
	}

	suggestions := SuggestSubrentals(conflicts, SuggestionFilters{}, SuggestionPolicy{PackSize: 1})
	if len(suggestions) != 3 {
		t.Fatalf("expected 3 separate suggestions, got %d: %+v", len(suggestions), suggestions)
	}
}

func TestSuggestSubrentals_filters(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	conflicts := []ConflictRecord{
		{EquipmentID: a, Start: date(2026, 6, 1), End: date(2026, 6, 2), Shortfall: 2},
		{EquipmentID: b, Start: date(2026, 6, 10), End: date(2026, 6, 12), Shortfall: 4},
	}

	t.Run("by equipment id", func(t *testing.T) {
		got := SuggestSubrentals(conflicts, SuggestionFilters{EquipmentIDs: []uuid.UUID{b}}, SuggestionPolicy{PackSize: 1})
		if len(got) != 1 || got[0].EquipmentID != b {
			t.Fatalf("expected only item b, got %+v", got)
		}
	})

	t.Run("by date window", func(t *testing.T) {
		got := SuggestSubrentals(conflicts, SuggestionFilters{From: date(2026, 6, 5), To: date(2026, 6, 30)}, SuggestionPolicy{PackSize: 1})
		if len(got) != 1 || got[0].EquipmentID != b {
			t.Fatalf("expected only the June 10–12 conflict, got %+v", got)
		}
	})

	t.Run("empty after filtering yields nil", func(t *testing.T) {
		got := SuggestSubrentals(conflicts, SuggestionFilters{From: date(2026, 7, 1)}, SuggestionPolicy{PackSize: 1})
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}
