package errors

import (
	"strings"
	"testing"
)

func TestSentinelClassification(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", NewNotFoundError("class %q not found", "demo:Person"), IsNotFound},
		{"validation", NewValidationError("class %q already exists", "demo:Person"), IsValidation},
		{"invalid operation", NewInvalidOperationError("cannot delete %q", "demo:Person"), IsInvalidOperation},
	}

	for _, tt := range tests {
		if !tt.check(tt.err) {
			t.Errorf("%s: classification check failed for %v", tt.name, tt.err)
		}
	}
}

func TestClassificationSurvivesWrapping(t *testing.T) {
	err := NewNotFoundError("parent class %q not found", "demo:Missing")
	wrapped := Wrap(err, "create class")

	if !IsNotFound(wrapped) {
		t.Errorf("IsNotFound() = false after Wrap, want true")
	}
	if IsValidation(wrapped) {
		t.Errorf("IsValidation() = true for a not-found error, want false")
	}
}

func TestNilErrors(t *testing.T) {
	if IsNotFound(nil) || IsValidation(nil) || IsInvalidOperation(nil) {
		t.Error("nil error should not match any taxonomy member")
	}
}

func TestMessagesCarryContext(t *testing.T) {
	err := NewNotFoundError("class %q not found", "demo:Dog")
	if got := err.Error(); !strings.Contains(got, "demo:Dog") {
		t.Errorf("error message %q does not name the missing entity", got)
	}
}
