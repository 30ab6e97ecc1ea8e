package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// documentExtensions lists the mind-map file extensions the loaders accept.
var documentExtensions = map[string]bool{
	".mm":   true,
	".json": true,
	".xml":  true,
}

// ValidateDocumentName validates a mind-map document filename.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - A known extension (.mm, .xml, .json)
func ValidateDocumentName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "document name cannot be empty")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "document name contains invalid control characters")
		}
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !documentExtensions[ext] {
		return New(ErrCodeInvalidDocument, "unsupported document type %q (must be .mm, .xml or .json)", ext)
	}
	return nil
}

// ValidateMapID validates the identifier of a published map.
// Published maps are addressed by UUIDs; anything else is rejected before
// it reaches the storage backend.
func ValidateMapID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "map id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid map id %q", id)
	}
	return nil
}

// ValidatePositive rejects zero, negative, NaN and infinite values.
// name is used in the error message (e.g. "radius_step").
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be finite, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be > 0, got %v", name, v)
	}
	return nil
}

// ValidateNonNegative rejects negative, NaN and infinite values.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be finite, got %v", name, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidConfig, "%s must be >= 0, got %v", name, v)
	}
	return nil
}
