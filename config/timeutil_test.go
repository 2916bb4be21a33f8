package config

import (
	"testing"
	"time"
)

func TestNormalizeStartRealTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "utc with millis",
			input:    "2025-01-27T12:30:45.123Z",
			expected: "2025-01-27T12:30:45.123Z",
		},
		{
			name:     "utc without millis gains them",
			input:    "2025-01-27T12:30:45Z",
			expected: "2025-01-27T12:30:45.000Z",
		},
		{
			name:     "offset preserved",
			input:    "2025-01-27T12:30:45.5-03:00",
			expected: "2025-01-27T12:30:45.500-03:00",
		},
		{
			name:     "zoneless assumed utc",
			input:    "2025-01-27T12:30:45",
			expected: "2025-01-27T12:30:45.000Z",
		},
		{
			name:     "zoneless with minutes only",
			input:    "2025-01-27T12:30",
			expected: "2025-01-27T12:30:00.000Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizeStartRealTime(tt.input)
			if err != nil {
				t.Fatalf("NormalizeStartRealTime: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestNormalizeStartRealTimeRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "yesterday", "27/01/2025", "2025-13-45T99:99:99Z"} {
		if _, err := NormalizeStartRealTime(input); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestNowStartRealTime(t *testing.T) {
	result := NowStartRealTime()
	parsed, err := time.Parse("2006-01-02T15:04:05.000Z07:00", result)
	if err != nil {
		t.Fatalf("default timestamp not ISO 8601 millis: %v", err)
	}
	if d := time.Since(parsed); d < -time.Minute || d > time.Minute {
		t.Errorf("default timestamp not near now: %s", result)
	}
}
