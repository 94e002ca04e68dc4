package errors

import (
	"strings"
	"unicode"
)

// ValidateDimensions validates a layer's width and height.
// Zero or negative dimensions break corner math and connector anchoring,
// so they are rejected up front rather than at render time.
func ValidateDimensions(width, height float64) error {
	if width <= 0 {
		return New(ErrCodeInvalidGeometry, "width must be positive, got %g", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidGeometry, "height must be positive, got %g", height)
	}
	return nil
}

// ValidateCount validates a shape repetition count (channels, features, anchors).
func ValidateCount(name string, n int) error {
	if n < 1 {
		return New(ErrCodeInvalidGeometry, "%s must be at least 1, got %d", name, n)
	}
	return nil
}

// ValidateLimit validates a display limit against the total shape count.
// A limit of zero disables limiting; a non-zero limit must be below the total.
func ValidateLimit(limit, total int) error {
	if limit < 0 {
		return New(ErrCodeInvalidGeometry, "display limit cannot be negative, got %d", limit)
	}
	if limit > 0 && limit >= total {
		return New(ErrCodeInvalidGeometry, "display limit %d must be less than the shape count %d", limit, total)
	}
	return nil
}

// ValidateLayerID validates a user-supplied layer identifier.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - Maximum length of 128 characters
//
// Identifiers appear verbatim in SVG group IDs, so characters that would
// require escaping there are rejected as well.
func ValidateLayerID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDiagram, "layer id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidDiagram, "layer id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDiagram, "layer id contains invalid control characters")
		}
	}

	if strings.ContainsAny(id, `"'<>&`) {
		return New(ErrCodeInvalidDiagram, "layer id contains characters not representable in output ids: %q", id)
	}

	return nil
}

// ValidateLabelLoc validates a label placement keyword.
// Only "above" and "below" are recognized.
func ValidateLabelLoc(loc string) error {
	if loc != "above" && loc != "below" {
		return New(ErrCodeInvalidStyle, "label location must be 'above' or 'below', got %q", loc)
	}
	return nil
}
