package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/quincyapp/quincy/services/equipment/domain/models"
	"github.com/quincyapp/quincy/services/equipment/domain/stock"
)

func toEquipmentResponse(eq *models.Equipment) EquipmentResponse {
	resp := EquipmentResponse{
		ID:        eq.ID,
		OrgID:     eq.OrgID,
		Name:      eq.Name.String(),
		Code:      eq.Code.String(),
		BaseStock: eq.BaseStock,
		CreatedAt: eq.CreatedAt,
	}
	if eq.FolderID != uuid.Nil {
		resp.FolderID = eq.FolderID.String()
	}
	return resp
}

// BookingResponse is the JSON representation of a booking.
type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	OrgID       uuid.UUID `json:"org_id"`
	EquipmentID uuid.UUID `json:"equipment_id"`
	ProjectRef  string    `json:"project_ref,omitempty"`
	Quantity    int       `json:"quantity"`
	StartDate   string    `json:"start_date" example:"2026-06-01"`
	EndDate     string    `json:"end_date"   example:"2026-06-03"`
	CreatedAt   time.Time `json:"created_at"`
} // @name BookingResponse

func toBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		OrgID:       b.OrgID,
		EquipmentID: b.EquipmentID,
		ProjectRef:  b.ProjectRef,
		Quantity:    b.Quantity,
		StartDate:   dateOnly(stock.Day(b.StartDate)),
		EndDate:     dateOnly(stock.Day(b.EndDate)),
		CreatedAt:   b.CreatedAt,
	}
}

// EffectiveStockResponse is one cell of the availability matrix.
type EffectiveStockResponse struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Date        string    `json:"date"       example:"2026-06-04"`
	BaseStock   int       `json:"base_stock"`
	Committed   int       `json:"committed"`
	Available   int       `json:"available"` // negative means overbooked
	Bookable    int       `json:"bookable"`  // max(available, 0)
	Overbooked  bool      `json:"overbooked"`
} // @name EffectiveStockResponse

func toEffectiveStockResponses(matrix []stock.EffectiveStock) []EffectiveStockResponse {
	out := make([]EffectiveStockResponse, len(matrix))
	for i, es := range matrix {
		out[i] = EffectiveStockResponse{
			EquipmentID: es.EquipmentID,
			Date:        dateOnly(es.Day),
			BaseStock:   es.BaseStock,
			Committed:   es.Committed,
			Available:   es.Available,
			Bookable:    es.Bookable(),
			Overbooked:  es.Overbooked(),
		}
	}
	return out
}

// ConflictRecordResponse is one maximal shortfall range.
type ConflictRecordResponse struct {
	EquipmentID   uuid.UUID `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	StartDate     string    `json:"start_date" example:"2026-06-04"`
	EndDate       string    `json:"end_date"   example:"2026-06-04"`
	Shortfall     int       `json:"shortfall"`
	Severity      string    `json:"severity" enums:"minor,critical"`
} // @name ConflictRecordResponse

// ConflictAnalysisResponse is the conflict analyzer's output.
type ConflictAnalysisResponse struct {
	Records           []ConflictRecordResponse `json:"records"`
	TotalConflicts    int                      `json:"total_conflicts"`
	CriticalCount     int                      `json:"critical_count"`
	EquipmentAffected int                      `json:"equipment_affected"`
} // @name ConflictAnalysisResponse

func toConflictAnalysisResponse(a stock.ConflictAnalysis) ConflictAnalysisResponse {
	records := make([]ConflictRecordResponse, len(a.Records))
	for i, rec := range a.Records {
		records[i] = ConflictRecordResponse{
			EquipmentID:   rec.EquipmentID,
			EquipmentName: rec.EquipmentName,
			StartDate:     dateOnly(rec.Start),
			EndDate:       dateOnly(rec.End),
			Shortfall:     rec.Shortfall,
			Severity:      string(rec.Severity),
		}
	}
	return ConflictAnalysisResponse{
		Records:           records,
		TotalConflicts:    a.TotalConflicts,
		CriticalCount:     a.CriticalCount,
		EquipmentAffected: a.EquipmentAffected,
	}
}

// SubrentalSuggestionResponse proposes an external rental covering a shortfall.
type SubrentalSuggestionResponse struct {
	EquipmentID   uuid.UUID `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	StartDate     string    `json:"start_date" example:"2026-06-04"`
	EndDate       string    `json:"end_date"   example:"2026-06-04"`
	Shortfall     int       `json:"shortfall"`
	Quantity      int       `json:"quantity"`
	Severity      string    `json:"severity" enums:"minor,critical"`
} // @name SubrentalSuggestionResponse

func toSubrentalSuggestionResponses(suggestions []stock.SubrentalSuggestion) []SubrentalSuggestionResponse {
	out := make([]SubrentalSuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		out[i] = SubrentalSuggestionResponse{
			EquipmentID:   s.EquipmentID,
			EquipmentName: s.EquipmentName,
			StartDate:     dateOnly(s.Start),
			EndDate:       dateOnly(s.End),
			Shortfall:     s.Shortfall,
			Quantity:      s.Quantity,
			Severity:      string(s.Severity),
		}
	}
	return out
}
