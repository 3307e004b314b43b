package stock

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Severity classifies how urgent a conflict is. The thresholds live in
// ConflictPolicy, not here.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityCritical Severity = "critical"
)

// ConflictPolicy is the injected severity classification policy.
// A conflict is critical when its shortfall reaches CriticalShortfall, or when
// its range starts within CriticalWithinDays of the scanned window's first day.
type ConflictPolicy struct {
	CriticalShortfall  int
	CriticalWithinDays int
}

// ConflictRecord is a maximal contiguous run of shortfall days for one item.
// Shortfall is the worst (largest) magnitude of negative availability in the
// run — the quantity a caller must provision for the worst day.
type ConflictRecord struct {
	EquipmentID   uuid.UUID
	EquipmentName string
	Start         time.Time
	End           time.Time
	Shortfall     int
	Severity      Severity
}

// ConflictFilters optionally narrows analysis. Empty slices and zero times
// mean "no restriction".
type ConflictFilters struct {
	EquipmentIDs []uuid.UUID
	FolderIDs    []uuid.UUID
	From         time.Time
	To           time.Time
}

// ConflictAnalysis is the analyzer's output: records plus summary counts.
type ConflictAnalysis struct {
	Records           []ConflictRecord
	TotalConflicts    int
	CriticalCount     int
	EquipmentAffected int
}

// AnalyzeConflicts scans the effective-stock matrix and emits one
// ConflictRecord per maximal run of consecutive overbooked days per item.
// A record exists iff some day in its range has Available < 0; no record is
// emitted for non-negative days. Proximity-based severity is measured from the
// earliest day present in the (filtered) matrix, which for the standard
// pipeline is the warning window's first day.
//
// items supplies display names and folder grouping; matrix rows for items not
// in the slice are dropped, matching the batch calculator's unknown-item rule.
func AnalyzeConflicts(items []Item, matrix []EffectiveStock, filters ConflictFilters, policy ConflictPolicy) ConflictAnalysis {
	wanted := filterItems(items, filters.EquipmentIDs, filters.FolderIDs)

	perItem := make(map[uuid.UUID][]EffectiveStock, len(wanted))
	var origin time.Time
	for _, es := range matrix {
		if _, ok := wanted[es.EquipmentID]; !ok {
			continue
		}
		if !filters.From.IsZero() && es.Day.Before(Day(filters.From)) {
			continue
		}
		if !filters.To.IsZero() && es.Day.After(Day(filters.To)) {
			continue
		}
		if origin.IsZero() || es.Day.Before(origin) {
			origin = es.Day
		}
		perItem[es.EquipmentID] = append(perItem[es.EquipmentID], es)
	}

	var analysis ConflictAnalysis
	affected := make(map[uuid.UUID]struct{})

	// Deterministic output order: input item order, then date order.
	for _, it := range items {
		rows, ok := perItem[it.ID]
		if !ok {
			continue
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].Day.Before(rows[j].Day) })

		var open *ConflictRecord
		emit := func() {
			open.Severity = classify(*open, origin, policy)
			analysis.Records = append(analysis.Records, *open)
			affected[open.EquipmentID] = struct{}{}
			if open.Severity == SeverityCritical {
				analysis.CriticalCount++
			}
			open = nil
		}

		for _, es := range rows {
			if !es.Overbooked() {
				if open != nil {
					emit()
				}
				continue
			}
			shortfall := -es.Available
			switch {
			case open == nil:
				open = &ConflictRecord{
					EquipmentID:   it.ID,
					EquipmentName: it.Name,
					Start:         es.Day,
					End:           es.Day,
					Shortfall:     shortfall,
				}
			case es.Day.Sub(open.End) == 24*time.Hour:
				open.End = es.Day
				if shortfall > open.Shortfall {
					open.Shortfall = shortfall
				}
			default:
				// Gap in the matrix itself (filtered sub-range); runs must not
				// merge across non-adjacent days.
				emit()
				open = &ConflictRecord{
					EquipmentID:   it.ID,
					EquipmentName: it.Name,
					Start:         es.Day,
					End:           es.Day,
					Shortfall:     shortfall,
				}
			}
		}
		if open != nil {
			emit()
		}
	}

	analysis.TotalConflicts = len(analysis.Records)
	analysis.EquipmentAffected = len(affected)
	return analysis
}

// classify applies the severity policy to a closed conflict range.
func classify(rec ConflictRecord, origin time.Time, policy ConflictPolicy) Severity {
	if policy.CriticalShortfall > 0 && rec.Shortfall >= policy.CriticalShortfall {
		return SeverityCritical
	}
	if policy.CriticalWithinDays > 0 && !origin.IsZero() {
		cutoff := origin.AddDate(0, 0, policy.CriticalWithinDays)
		if rec.Start.Before(cutoff) {
			return SeverityCritical
		}
	}
	return SeverityMinor
}

// filterItems resolves the equipment/folder allow-lists to the set of item IDs
// in scope. Both lists empty means every item is in scope.
func filterItems(items []Item, equipmentIDs, folderIDs []uuid.UUID) map[uuid.UUID]struct{} {
	byID := make(map[uuid.UUID]struct{}, len(equipmentIDs))
	for _, id := range equipmentIDs {
		byID[id] = struct{}{}
	}
	byFolder := make(map[uuid.UUID]struct{}, len(folderIDs))
	for _, id := range folderIDs {
		byFolder[id] = struct{}{}
	}

	wanted := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		if len(byID) == 0 && len(byFolder) == 0 {
			wanted[it.ID] = struct{}{}
			continue
		}
		if _, ok := byID[it.ID]; ok {
			wanted[it.ID] = struct{}{}
			continue
		}
		if _, ok := byFolder[it.FolderID]; ok {
			wanted[it.ID] = struct{}{}
		}
	}
	return wanted
}
