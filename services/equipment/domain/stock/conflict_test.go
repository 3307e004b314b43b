package stock

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestAnalyzeConflicts_speakerScenario(t *testing.T) {
	item, commitments, window := speakerScenario()
	matrix := BatchEffectiveStock([]Item{item}, commitments, window)

	analysis := AnalyzeConflicts([]Item{item}, matrix, ConflictFilters{}, ConflictPolicy{})

	if analysis.TotalConflicts != 1 {
		t.Fatalf("expected exactly one conflict, got %d", analysis.TotalConflicts)
	}
	rec := analysis.Records[0]
	if rec.EquipmentID != item.ID || rec.EquipmentName != "Speaker-A" {
		t.Fatalf("unexpected record identity: %+v", rec)
	}
	if !rec.Start.Equal(date(2026, 6, 4)) || !rec.End.Equal(date(2026, 6, 4)) {
		t.Fatalf("expected single-day range on day 4, got %v–%v", rec.Start, rec.End)
	}
	if rec.Shortfall != 2 {
		t.Fatalf("expected shortfall 2, got %d", rec.Shortfall)
	}
	if analysis.EquipmentAffected != 1 {
		t.Fatalf("expected 1 affected item, got %d", analysis.EquipmentAffected)
	}
}

func TestAnalyzeConflicts_conflictIffNegative(t *testing.T) {
	item, commitments, window := speakerScenario()
	matrix := BatchEffectiveStock([]Item{item}, commitments, window)
	analysis := AnalyzeConflicts([]Item{item}, matrix, ConflictFilters{}, ConflictPolicy{})

	covered := func(es EffectiveStock) bool {
		for _, rec := range analysis.Records {
			if rec.EquipmentID == es.EquipmentID && !es.Day.Before(rec.Start) && !es.Day.After(rec.End) {
				return true
			}
		}
		return false
	}

	for _, es := range matrix {
		if es.Overbooked() != covered(es) {
			t.Fatalf("day %v: overbooked=%v but conflict coverage=%v", es.Day, es.Overbooked(), covered(es))
		}
	}
}

func TestAnalyzeConflicts_maximalRanges(t *testing.T) {
	item := Item{ID: uuid.New(), Name: "Moving Head", BaseStock: 2}
	// Overbooked on days 2–4 (worsening), fine day 5, overbooked again on day 6.
	commitments := []Commitment{
		{EquipmentID: item.ID, Start: date(2026, 7, 2), End: date(2026, 7, 4), Quantity: 3},
		{EquipmentID: item.ID, Start: date(2026, 7, 3), End: date(2026, 7, 4), Quantity: 2},
		{EquipmentID: item.ID, Start: date(2026, 7, 6), End: date(2026, 7, 6), Quantity: 4},
	}
	window := NewWindow(date(2026, 7, 1), date(2026, 7, 7))
	matrix := BatchEffectiveStock([]Item{item}, commitments, window)

	analysis := AnalyzeConflicts([]Item{item}, matrix, ConflictFilters{}, ConflictPolicy{})
	if analysis.TotalConflicts != 2 {
		t.Fatalf("expected two maximal ranges, got %d: %+v", analysis.TotalConflicts, analysis.Records)
	}

	first, second := analysis.Records[0], analysis.Records[1]
	if !first.Start.Equal(date(2026, 7, 2)) || !first.End.Equal(date(2026, 7, 4)) {
		t.Fatalf("first range %v–%v, want Jul 2–4", first.Start, first.End)
	}
	// Worst day in the run is Jul 3–4: committed 5 against base 2.
	if first.Shortfall != 3 {
		t.Fatalf("first range shortfall = %d, want max magnitude 3", first.Shortfall)
	}
	if !second.Start.Equal(date(2026, 7, 6)) || !second.End.Equal(date(2026, 7, 6)) {
		t.Fatalf("second range %v–%v, want Jul 6 only", second.Start, second.End)
	}

	// No two ranges for the same item may touch or overlap.
	if !first.End.AddDate(0, 0, 1).Before(second.Start) {
		t.Fatal("ranges are adjacent or overlapping; they must be maximal and separated")
	}
}

func TestAnalyzeConflicts_noConflictsWithoutOverbooking(t *testing.T) {
	item := Item{ID: uuid.New(), Name: "Projector", BaseStock: 4}
	window := NewWindow(date(2026, 7, 1), date(2026, 7, 31))
	matrix := BatchEffectiveStock([]Item{item}, nil, window)

	analysis := AnalyzeConflicts([]Item{item}, matrix, ConflictFilters{}, ConflictPolicy{})
	if analysis.TotalConflicts != 0 || len(analysis.Records) != 0 {
		t.Fatalf("expected no conflicts, got %+v", analysis)
	}
}

func TestAnalyzeConflicts_severityPolicy(t *testing.T) {
	folder := uuid.New()
	item := Item{ID: uuid.New(), Name: "Wireless Kit", BaseStock: 1, FolderID: folder}
	commitments := []Commitment{
		// Shortfall of 1 early in the window, shortfall of 6 late in the window.
		{EquipmentID: item.ID, Start: date(2026, 7, 2), End: date(2026, 7, 2), Quantity: 2},
		{EquipmentID: item.ID, Start: date(2026, 7, 20), End: date(2026, 7, 21), Quantity: 7},
	}
	window := NewWindow(date(2026, 7, 1), date(2026, 7, 31))
	matrix := BatchEffectiveStock([]Item{item}, commitments, window)

	t.Run("shortfall threshold marks critical", func(t *testing.T) {
		analysis := AnalyzeConflicts([]Item{item}, matrix, ConflictFilters{}, ConflictPolicy{CriticalShortfall: 5})
		if analysis.Records[0].Severity != SeverityMinor {
			t.Fatalf("early small conflict should be minor, got %s", analysis.Records[0].Severity)
		}
		if analysis.Records[1].Severity != SeverityCritical {
			t.Fatalf("large conflict should be critical, got %s", analysis.Records[1].Severity)
		}
		if analysis.CriticalCount != 1 {
			t.Fatalf("critical count = %d, want 1", analysis.CriticalCount)
		}
	})

	t.Run("proximity to window start marks critical", func(t *testing.T) {
		analysis := AnalyzeConflicts([]Item{item}, matrix, ConflictFilters{}, ConflictPolicy{CriticalWithinDays: 7})
		if analysis.Records[0].Severity != SeverityCritical {
			t.Fatalf("imminent conflict should be critical, got %s", analysis.Records[0].Severity)
		}
		if analysis.Records[1].Severity != SeverityMinor {
			t.Fatalf("distant small conflict should be minor, got %s", analysis.Records[1].Severity)
		}
	})

	t.Run("zero policy classifies everything minor", func(t *testing.T) {
		analysis := AnalyzeConflicts([]Item{item}, matrix, ConflictFilters{}, ConflictPolicy{})
		for _, rec := range analysis.Records {
			if rec.Severity != SeverityMinor {
				t.Fatalf("expected minor, got %s", rec.Severity)
			}
		}
	})
}

func TestAnalyzeConflicts_filters(t *testing.T) {
	folderA, folderB := uuid.New(), uuid.New()
	speakers := Item{ID: uuid.New(), Name: "Speaker", BaseStock: 1, FolderID: folderA}
	lights := Item{ID: uuid.New(), Name: "Light", BaseStock: 1, FolderID: folderB}
	items := []Item{speakers, lights}
	commitments := []Commitment{
		{EquipmentID: speakers.ID, Start: date(2026, 7, 5), End: date(2026, 7, 6), Quantity: 3},
		{EquipmentID: lights.ID, Start: date(2026, 7, 10), End: date(2026, 7, 10), Quantity: 3},
	}
	window := NewWindow(date(2026, 7, 1), date(2026, 7, 31))
	matrix := BatchEffectiveStock(items, commitments, window)

	t.Run("by equipment id", func(t *testing.T) {
		analysis := AnalyzeConflicts(items, matrix, ConflictFilters{EquipmentIDs: []uuid.UUID{lights.ID}}, ConflictPolicy{})
		if analysis.TotalConflicts != 1 || analysis.Records[0].EquipmentID != lights.ID {
			t.Fatalf("expected only lights conflict, got %+v", analysis.Records)
		}
	})

	t.Run("by folder", func(t *testing.T) {
		analysis := AnalyzeConflicts(items, matrix, ConflictFilters{FolderIDs: []uuid.UUID{folderA}}, ConflictPolicy{})
		if analysis.TotalConflicts != 1 || analysis.Records[0].EquipmentID != speakers.ID {
			t.Fatalf("expected only speaker conflict, got %+v", analysis.Records)
		}
	})

	t.Run("by date sub-range", func(t *testing.T) {
		analysis := AnalyzeConflicts(items, matrix, ConflictFilters{From: date(2026, 7, 8), To: date(2026, 7, 12)}, ConflictPolicy{})
		if analysis.TotalConflicts != 1 || analysis.Records[0].EquipmentID != lights.ID {
			t.Fatalf("expected only the conflict inside the sub-range, got %+v", analysis.Records)
		}
	})
}

func TestAnalyzeConflicts_idempotent(t *testing.T) {
	item, commitments, window := speakerScenario()
	matrix := BatchEffectiveStock([]Item{item}, commitments, window)

	a := AnalyzeConflicts([]Item{item}, matrix, ConflictFilters{}, ConflictPolicy{CriticalShortfall: 2})
	b := AnalyzeConflicts([]Item{item}, matrix, ConflictFilters{}, ConflictPolicy{CriticalShortfall: 2})
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different analyses")
	}
}
