package shared

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestNewID(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		before := time.Now().UnixMilli()
		id := NewID()
		after := time.Now().UnixMilli()

		prefix, suffix, ok := strings.Cut(id, "_")
		if !ok {
			t.Fatalf("expected millis_random format, got %s", id)
		}

		millis, err := strconv.ParseInt(prefix, 10, 64)
		if err != nil {
			t.Fatalf("identifier prefix should be a timestamp: %v", err)
		}
		if millis < before || millis > after {
			t.Errorf("timestamp %d outside [%d, %d]", millis, before, after)
		}

		if len(suffix) != 8 {
			t.Errorf("expected 8-character random suffix, got %q", suffix)
		}
	})

	t.Run("uniqueness", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			id := NewID()
			if seen[id] {
				t.Fatalf("duplicate identifier: %s", id)
			}
			seen[id] = true
		}
	})
}

func TestNowMillis(t *testing.T) {
	before := time.Now().UnixMilli()
	got := NowMillis()
	after := time.Now().UnixMilli()

	if got < before || got > after {
		t.Errorf("NowMillis() = %d, want within [%d, %d]", got, before, after)
	}
}
