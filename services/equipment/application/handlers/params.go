package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	eqdomain "github.com/quincyapp/quincy/services/equipment/domain"
	"github.com/quincyapp/quincy/services/equipment/domain/stock"
)

const dateParamLayout = "2006-01-02"

// parseWindow reads optional start/end query parameters (YYYY-MM-DD).
// Missing parameters fall back to the corresponding bound of def. A window
// with end before start is returned as-is — the engine yields empty results
// for it, which is the contract, not an error.
func parseWindow(r *http.Request, def stock.Window) (stock.Window, error) {
	start, end := def.Start, def.End

	if v := r.URL.Query().Get("start"); v != "" {
		t, err := time.Parse(dateParamLayout, v)
		if err != nil {
			return stock.Window{}, fmt.Errorf("%w: start %q", eqdomain.ErrInvalidDateRange, v)
		}
		start = t
	}
	if v := r.URL.Query().Get("end"); v != "" {
		t, err := time.Parse(dateParamLayout, v)
		if err != nil {
			return stock.Window{}, fmt.Errorf("%w: end %q", eqdomain.ErrInvalidDateRange, v)
		}
		end = t
	}
	return stock.NewWindow(start, end), nil
}

// parseUUIDList reads a repeatable/comma-separated UUID query parameter.
func parseUUIDList(r *http.Request, name string) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, raw := range r.URL.Query()[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %s %q", eqdomain.ErrInvalidFilter, name, part)
			}
			out = append(out, id)
		}
	}
	return out, nil
}

// parseConflictFilters reads the analyzer's allow-lists and date bounds.
func parseConflictFilters(r *http.Request) (stock.ConflictFilters, error) {
	equipmentIDs, err := parseUUIDList(r, "equipment_id")
	if err != nil {
		return stock.ConflictFilters{}, err
	}
	folderIDs, err := parseUUIDList(r, "folder_id")
	if err != nil {
		return stock.ConflictFilters{}, err
	}
	from, to, err := parseFromTo(r)
	if err != nil {
		return stock.ConflictFilters{}, err
	}
	return stock.ConflictFilters{
		EquipmentIDs: equipmentIDs,
		FolderIDs:    folderIDs,
		From:         from,
		To:           to,
	}, nil
}

// parseFromTo reads the optional from/to date bounds.
func parseFromTo(r *http.Request) (from, to time.Time, err error) {
	if v := r.URL.Query().Get("from"); v != "" {
		from, err = time.Parse(dateParamLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: from %q", eqdomain.ErrInvalidDateRange, v)
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err = time.Parse(dateParamLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: to %q", eqdomain.ErrInvalidDateRange, v)
		}
	}
	return from, to, nil
}

// parsePagination reads limit/offset with sane defaults and caps.
func parsePagination(r *http.Request) (limit, offset int) {
	limit, offset = 50, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// dateOnly formats a normalized day for responses.
func dateOnly(t time.Time) string {
	return t.Format(dateParamLayout)
}
