package timeutil

import "time"

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision.
// Use this format for timestamp fields in response payloads.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision.
// Use this format for log timestamps where higher precision is needed.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// NowMillis returns the current UTC time formatted as RFC3339Millis.
func NowMillis() string {
	return time.Now().UTC().Format(RFC3339Millis)
}
