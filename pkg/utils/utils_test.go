package utils

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()
	now := time.Now()

	first, err := u.NewULIDFromTimestamp(now)
	if err != nil {
		t.Fatalf("NewULIDFromTimestamp error: %v", err)
	}
	second, err := u.NewULIDFromTimestamp(now)
	if err != nil {
		t.Fatalf("NewULIDFromTimestamp error: %v", err)
	}

	if first >= second {
		t.Errorf("ids not increasing: %s then %s", first, second)
	}

	id, err := ulid.Parse(first)
	if err != nil {
		t.Fatalf("ulid.Parse(%q): %v", first, err)
	}
	if id.Time() != ulid.Timestamp(now) {
		t.Errorf("timestamp = %d, want %d", id.Time(), ulid.Timestamp(now))
	}
}
