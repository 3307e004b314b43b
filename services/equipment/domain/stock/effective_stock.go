package stock

import (
	"time"

	"github.com/google/uuid"
)

// EffectiveStockOn computes the stock remaining for one item on one day after
// subtracting every commitment that covers the day. A day with no commitments
// yields Committed = 0, not an absent record. Commitments for other items and
// malformed commitments contribute nothing.
func EffectiveStockOn(item Item, commitments []Commitment, day time.Time) EffectiveStock {
	d := Day(day)
	committed := 0
	for _, c := range commitments {
		if c.EquipmentID != item.ID {
			continue
		}
		if c.covers(d) {
			committed += c.Quantity
		}
	}
	return EffectiveStock{
		EquipmentID: item.ID,
		Day:         d,
		BaseStock:   item.BaseStock,
		Committed:   committed,
		Available:   item.BaseStock - committed,
	}
}

// BatchEffectiveStock computes the full day×item matrix for the window in one
// pass. Commitments are grouped by (item, day) once up front, so the cost is
// proportional to items×days + commitment-days instead of rescanning the
// commitment set per item per day.
//
// The result is ordered: items in input order, days ascending within each
// item. Commitments referencing items not present in the input and malformed
// commitments are ignored. The output equals running EffectiveStockOn
// independently for every (item, day) pair.
func BatchEffectiveStock(items []Item, commitments []Commitment, w Window) []EffectiveStock {
	days := w.Days()
	if len(days) == 0 || len(items) == 0 {
		return nil
	}

	known := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		known[it.ID] = struct{}{}
	}

	// committed[itemID][day] — only days inside the window are indexed.
	committed := make(map[uuid.UUID]map[time.Time]int, len(items))
	for _, c := range commitments {
		if _, ok := known[c.EquipmentID]; !ok {
			continue
		}
		start, end, ok := c.normalized()
		if !ok {
			continue
		}
		// Clamp the commitment's range to the window.
		if start.Before(w.Start) {
			start = w.Start
		}
		if end.After(w.End) {
			end = w.End
		}
		if end.Before(start) {
			continue
		}
		byDay := committed[c.EquipmentID]
		if byDay == nil {
			byDay = make(map[time.Time]int)
			committed[c.EquipmentID] = byDay
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			byDay[d] += c.Quantity
		}
	}

	matrix := make([]EffectiveStock, 0, len(items)*len(days))
	for _, it := range items {
		byDay := committed[it.ID]
		for _, d := range days {
			qty := byDay[d]
			matrix = append(matrix, EffectiveStock{
				EquipmentID: it.ID,
				Day:         d,
				BaseStock:   it.BaseStock,
				Committed:   qty,
				Available:   it.BaseStock - qty,
			})
		}
	}
	return matrix
}
