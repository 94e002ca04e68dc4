package errors

import (
	"strings"
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantErr       bool
	}{
		{"positive", 10, 20, false},
		{"fractional", 0.5, 0.1, false},
		{"zero width", 0, 20, true},
		{"zero height", 10, 0, true},
		{"negative width", -1, 20, true},
		{"negative height", 10, -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%g, %g) error = %v, wantErr %v",
					tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGeometry) {
				t.Errorf("want INVALID_GEOMETRY code, got %v", err)
			}
		})
	}
}

func TestValidateCount(t *testing.T) {
	if err := ValidateCount("channels", 1); err != nil {
		t.Errorf("count of 1 should pass: %v", err)
	}
	if err := ValidateCount("channels", 0); err == nil {
		t.Error("count of 0 should fail")
	}
	if err := ValidateCount("features", -3); err == nil {
		t.Error("negative count should fail")
	}
}

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		name         string
		limit, total int
		wantErr      bool
	}{
		{"disabled", 0, 10, false},
		{"below total", 5, 10, false},
		{"equal to total", 10, 10, true},
		{"above total", 11, 10, true},
		{"negative", -1, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLimit(tt.limit, tt.total)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLimit(%d, %d) error = %v, wantErr %v",
					tt.limit, tt.total, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLayerID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "conv1", false},
		{"with separators", "encoder.block-2_out", false},
		{"unicode", "schicht", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"control character", "conv\x001", true},
		{"markup character", "a<b", true},
		{"quote", `say"cheese`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayerID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayerID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLabelLoc(t *testing.T) {
	if err := ValidateLabelLoc("above"); err != nil {
		t.Errorf("above should pass: %v", err)
	}
	if err := ValidateLabelLoc("below"); err != nil {
		t.Errorf("below should pass: %v", err)
	}
	if err := ValidateLabelLoc("left"); err == nil {
		t.Error("unknown location should fail")
	}
}
