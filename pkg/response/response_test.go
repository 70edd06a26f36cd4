package response

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMatching(t *testing.T) {
	notFound := NewError(404, "session not found")
	wrapped := fmt.Errorf("reset: %w", notFound)

	if !errors.Is(wrapped, notFound) {
		t.Error("wrapped error should match its sentinel")
	}
	if errors.Is(wrapped, NewError(400, "session not found")) {
		t.Error("different code must not match")
	}
	if code, ok := StatusOf(wrapped); !ok || code != 404 {
		t.Errorf("StatusOf = %d, %v", code, ok)
	}
	if _, ok := StatusOf(errors.New("plain")); ok {
		t.Error("plain errors carry no status")
	}
}
