package config

import (
	"log"
	"time"

	"github.com/pkg/errors"
)

// iso8601Millis matches the runtime's expected timestamp precision.
const iso8601Millis = "2006-01-02T15:04:05.000Z07:00"

// zonelessLayouts are accepted with a warning and interpreted as UTC.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// NowStartRealTime returns the default simulation start timestamp.
func NowStartRealTime() string {
	return time.Now().UTC().Format(iso8601Millis)
}

// NormalizeStartRealTime validates an ISO-8601 timestamp and reformats it
// with millisecond precision. Timestamps without a zone are assumed UTC.
func NormalizeStartRealTime(raw string) (string, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.Format(iso8601Millis), nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			log.Printf("timestamp %q has no timezone, assuming UTC", raw)
			return t.Format(iso8601Millis), nil
		}
	}
	return "", errors.Errorf("invalid ISO 8601 timestamp %q (expected e.g. 2025-01-27T12:30:45.123Z)", raw)
}
