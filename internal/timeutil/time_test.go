package timeutil

import (
	"strings"
	"testing"
	"time"
)

func TestNowMillisFormat(t *testing.T) {
	before := time.Now().UTC()
	got := NowMillis()
	after := time.Now().UTC()

	if !strings.HasSuffix(got, "Z") {
		t.Fatalf("expected UTC timestamp ending in Z, got %q", got)
	}

	parsed, err := time.Parse(time.RFC3339, got)
	if err != nil {
		t.Fatalf("NowMillis output %q is not RFC 3339: %v", got, err)
	}
	if parsed.Before(before.Truncate(time.Millisecond)) || parsed.After(after) {
		t.Fatalf("NowMillis %v outside [%v, %v]", parsed, before, after)
	}
}

func TestNowMillisFixedPrecision(t *testing.T) {
	got := NowMillis()
	// "2006-01-02T15:04:05.000Z" is always 24 characters.
	if len(got) != len(RFC3339Millis) {
		t.Fatalf("expected fixed-width timestamp (%d chars), got %d: %q", len(RFC3339Millis), len(got), got)
	}
}
