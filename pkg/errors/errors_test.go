package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidGeometry, "width must be positive, got %g", -4.0)

	if err.Code != ErrCodeInvalidGeometry {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidGeometry)
	}
	if !strings.Contains(err.Error(), "INVALID_GEOMETRY") {
		t.Errorf("Error() = %q, should contain the code", err.Error())
	}
	if !strings.Contains(err.Error(), "-4") {
		t.Errorf("Error() = %q, should contain the formatted value", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("file does not exist")
	err := Wrap(ErrCodeFileNotFound, cause, "load image %s", "missing.png")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	if !strings.Contains(err.Error(), "file does not exist") {
		t.Errorf("Error() = %q, should contain the cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeInvalidDiagram, "bad"), ErrCodeInvalidDiagram, true},
		{"different code", New(ErrCodeInvalidDiagram, "bad"), ErrCodeInvalidGeometry, false},
		{"wrapped in fmt", fmt.Errorf("outer: %w", New(ErrCodeDuplicateLayer, "dup")), ErrCodeDuplicateLayer, true},
		{"plain error", fmt.Errorf("plain"), ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnresolvedEndpoint, "missing")); got != ErrCodeUnresolvedEndpoint {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeUnresolvedEndpoint)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty for plain errors", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "invalid format: webp")
	if got := UserMessage(err); got != "invalid format: webp" {
		t.Errorf("UserMessage() = %q, want message without code prefix", got)
	}

	plain := fmt.Errorf("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q, want error string", got)
	}
}
