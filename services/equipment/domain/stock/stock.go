// Package stock is the equipment availability and overbooking conflict engine.
//
// Everything in this package is pure computation: functions take an in-memory
// snapshot of equipment and booking commitments and derive per-day effective
// stock, conflict records, and subrental suggestions. No I/O, no hidden state,
// no clocks — callers supply the window and the policy. Results are
// deterministic for a given input, so the application layer is free to cache
// final outputs and recompute on every input change.
package stock

import (
	"time"

	"github.com/google/uuid"
)

// Item is the engine's read-only view of an equipment row. The application
// layer maps the Equipment aggregate into this shape once at the boundary so
// the engine never re-checks row shapes.
type Item struct {
	ID        uuid.UUID
	Name      string
	Code      string
	BaseStock int       // declared base quantity; may be negative on bad upstream data, propagated as-is
	FolderID  uuid.UUID // uuid.Nil when the item is unfiled
}

// Commitment is a booked quantity for one item over an inclusive day range.
// A single-day commitment has Start == End. A zero End is coerced to Start.
// A zero Start marks the commitment malformed; malformed commitments are
// excluded from all calculations rather than failing the batch.
type Commitment struct {
	EquipmentID uuid.UUID
	Start       time.Time
	End         time.Time
	Quantity    int
}

// covers reports whether the commitment occupies the given day.
// day must already be normalized to UTC midnight.
func (c Commitment) covers(day time.Time) bool {
	start, end, ok := c.normalized()
	if !ok {
		return false
	}
	return !day.Before(start) && !day.After(end)
}

// normalized returns the commitment's day range in UTC-midnight form.
// ok is false for malformed commitments (missing start, end before start).
func (c Commitment) normalized() (start, end time.Time, ok bool) {
	if c.Start.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	start = Day(c.Start)
	if c.End.IsZero() {
		end = start
	} else {
		end = Day(c.End)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// EffectiveStock is the derived per-(item, day) record. Available is always
// exactly BaseStock - Committed; it may be negative, which signals overbooking.
type EffectiveStock struct {
	EquipmentID uuid.UUID
	Day         time.Time // UTC midnight
	BaseStock   int
	Committed   int
	Available   int
}

// Overbooked reports whether more units are committed than exist.
func (e EffectiveStock) Overbooked() bool {
	return e.Available < 0
}

// Bookable returns the quantity a caller may still book on this day:
// max(Available, 0). The raw, possibly negative Available stays on the
// record for diagnostic use.
func (e EffectiveStock) Bookable() int {
	if e.Available < 0 {
		return 0
	}
	return e.Available
}
