// Package services contains stateless domain services for the equipment
// bounded context. They enforce business rules that operate purely on domain
// types and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/quincyapp/quincy/services/equipment/domain/models"
	"github.com/quincyapp/quincy/services/equipment/domain/stock"
)

// ValidateName enforces business rules for EquipmentName beyond the structural
// constraints enforced by the constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
//   - Must not be only whitespace characters
func ValidateName(name models.EquipmentName) error {
	s := name.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("equipment name must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("equipment name must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("equipment name must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("equipment name must not contain consecutive spaces")
	}

	return nil
}

// ValidateEquipmentForCreation performs cross-field validation on a fully
// constructed Equipment aggregate before it is persisted.
func ValidateEquipmentForCreation(eq *models.Equipment) error {
	if eq == nil {
		return fmt.Errorf("equipment cannot be nil")
	}

	if err := ValidateName(eq.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if eq.Code == "" {
		return fmt.Errorf("code must be set")
	}

	if eq.BaseStock < 0 {
		return fmt.Errorf("base stock must not be negative")
	}

	if eq.OrgID == uuid.Nil {
		return fmt.Errorf("org_id must be set")
	}

	if eq.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	return nil
}

// ValidateBookingForCreation checks a Booking before it is persisted.
// The stock engine tolerates malformed rows by skipping them, but new rows
// must never be written malformed in the first place.
func ValidateBookingForCreation(b *models.Booking) error {
	if b == nil {
		return fmt.Errorf("booking cannot be nil")
	}

	if b.OrgID == uuid.Nil {
		return fmt.Errorf("org_id must be set")
	}

	if b.EquipmentID == uuid.Nil {
		return fmt.Errorf("equipment_id must be set")
	}

	if b.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	if b.StartDate.IsZero() {
		return fmt.Errorf("start date must be set")
	}

	if !b.EndDate.IsZero() && stock.Day(b.EndDate).Before(stock.Day(b.StartDate)) {
		return fmt.Errorf("end date must not be before start date")
	}

	return nil
}
