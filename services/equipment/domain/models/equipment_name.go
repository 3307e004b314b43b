package models

import (
	"fmt"
	"strings"
)

// EquipmentName is a value object representing a valid equipment display name.
// Encapsulates validation rules: 1 <= len(name) <= 255.
type EquipmentName string

const (
	minEquipmentNameLength = 1
	maxEquipmentNameLength = 255
)

// NewEquipmentName constructs a valid EquipmentName or returns an error if
// constraints are violated.
func NewEquipmentName(s string) (EquipmentName, error) {
	if len(s) < minEquipmentNameLength {
		return "", fmt.Errorf("equipment name must be at least %d character", minEquipmentNameLength)
	}
	if len(s) > maxEquipmentNameLength {
		return "", fmt.Errorf("equipment name must not exceed %d characters", maxEquipmentNameLength)
	}
	return EquipmentName(s), nil
}

// String returns the underlying string value.
func (n EquipmentName) String() string {
	return string(n)
}

// EquipmentCode is a short, org-unique identifier used on labels and packing
// lists. Uppercase letters, digits and dashes, up to 64 characters.
type EquipmentCode string

const maxEquipmentCodeLength = 64

// NewEquipmentCode normalizes s to uppercase and validates the character set.
func NewEquipmentCode(s string) (EquipmentCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("equipment code must not be empty")
	}
	if len(s) > maxEquipmentCodeLength {
		return "", fmt.Errorf("equipment code must not exceed %d characters", maxEquipmentCodeLength)
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '-' {
			return "", fmt.Errorf("equipment code may contain only letters, digits and dashes")
		}
	}
	return EquipmentCode(s), nil
}

// String returns the underlying string value.
func (c EquipmentCode) String() string {
	return string(c)
}
