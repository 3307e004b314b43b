package handlers

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	eqdomain "github.com/quincyapp/quincy/services/equipment/domain"
	"github.com/quincyapp/quincy/services/equipment/domain/stock"
)

func TestParseWindow(t *testing.T) {
	def := stock.NewWindow(
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	)

	t.Run("no params returns default", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/availability", nil)
		w, err := parseWindow(r, def)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !w.Start.Equal(def.Start) || !w.End.Equal(def.End) {
			t.Fatalf("expected default window, got %v–%v", w.Start, w.End)
		}
	})

	t.Run("explicit start and end", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/availability?start=2026-07-01&end=2026-07-05", nil)
		w, err := parseWindow(r, def)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := len(w.Days()); got != 5 {
			t.Fatalf("expected 5 days, got %d", got)
		}
	})

	t.Run("start only keeps default end", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/availability?start=2026-06-10", nil)
		w, err := parseWindow(r, def)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !w.End.Equal(def.End) {
			t.Fatalf("expected default end %v, got %v", def.End, w.End)
		}
	})

	t.Run("bad date returns ErrInvalidDateRange", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/availability?start=06-01-2026", nil)
		_, err := parseWindow(r, def)
		if !errors.Is(err, eqdomain.ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("reversed window is returned not rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/availability?start=2026-07-05&end=2026-07-01", nil)
		w, err := parseWindow(r, def)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !w.Empty() {
			t.Fatal("expected empty window for reversed bounds")
		}
	})
}

func TestParseUUIDList(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	t.Run("absent param yields nil", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/conflicts", nil)
		ids, err := parseUUIDList(r, "equipment_id")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ids != nil {
			t.Fatalf("expected nil, got %v", ids)
		}
	})

	t.Run("comma separated", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/conflicts?equipment_id="+a.String()+","+b.String(), nil)
		ids, err := parseUUIDList(r, "equipment_id")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 2 || ids[0] != a || ids[1] != b {
			t.Fatalf("unexpected ids: %v", ids)
		}
	})

	t.Run("repeated param", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/conflicts?equipment_id="+a.String()+"&equipment_id="+b.String(), nil)
		ids, err := parseUUIDList(r, "equipment_id")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 2 {
			t.Fatalf("expected 2 ids, got %d", len(ids))
		}
	})

	t.Run("bad uuid returns ErrInvalidFilter", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/conflicts?equipment_id=not-a-uuid", nil)
		_, err := parseUUIDList(r, "equipment_id")
		if !errors.Is(err, eqdomain.ErrInvalidFilter) {
			t.Fatalf("expected ErrInvalidFilter, got %v", err)
		}
	})
}

func TestParseFromTo(t *testing.T) {
	t.Run("absent params yield zero times", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/conflicts", nil)
		from, to, err := parseFromTo(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !from.IsZero() || !to.IsZero() {
			t.Fatalf("expected zero times, got %v / %v", from, to)
		}
	})

	t.Run("both bounds parsed", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/conflicts?from=2026-06-01&to=2026-06-15", nil)
		from, to, err := parseFromTo(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if from.Day() != 1 || to.Day() != 15 {
			t.Fatalf("unexpected bounds: %v / %v", from, to)
		}
	})

	t.Run("bad bound returns ErrInvalidDateRange", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/conflicts?from=yesterday", nil)
		_, _, err := parseFromTo(r)
		if !errors.Is(err, eqdomain.ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 50, 0},
		{"explicit values", "?limit=20&offset=40", 20, 40},
		{"limit above cap ignored", "?limit=500", 50, 0},
		{"negative offset ignored", "?offset=-5", 50, 0},
		{"non-numeric ignored", "?limit=abc&offset=xyz", 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/equipment"+tt.query, nil)
			limit, offset := parsePagination(r)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Fatalf("got limit=%d offset=%d, want limit=%d offset=%d",
					limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
