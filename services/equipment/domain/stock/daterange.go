package stock

import "time"

// Day normalizes t to midnight UTC. All per-day arithmetic in the engine runs
// on this normal form so daylight-saving and locale drift cannot split or
// duplicate days.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayRange returns every calendar day from start to end inclusive, normalized
// to UTC midnight and in ascending order. Returns an empty slice when end is
// before start. DayRange(d, d) yields exactly one day.
func DayRange(start, end time.Time) []time.Time {
	s, e := Day(start), Day(end)
	if e.Before(s) {
		return nil
	}
	n := int(e.Sub(s).Hours()/24) + 1
	days := make([]time.Time, 0, n)
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Window is an inclusive day range, the bound on every engine computation.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds a Window with both bounds normalized to UTC midnight.
func NewWindow(start, end time.Time) Window {
	return Window{Start: Day(start), End: Day(end)}
}

// WarningWindow returns the forward-looking window conflicts and suggestions
// are computed within: now through now+days, inclusive.
func WarningWindow(now time.Time, days int) Window {
	start := Day(now)
	return Window{Start: start, End: start.AddDate(0, 0, days)}
}

// Days returns the window's day axis via DayRange.
func (w Window) Days() []time.Time {
	return DayRange(w.Start, w.End)
}

// Contains reports whether day falls inside the window. day must be normalized.
func (w Window) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

// Empty reports whether the window holds no days (end before start).
func (w Window) Empty() bool {
	return w.End.Before(w.Start)
}
