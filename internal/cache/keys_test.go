package cache

import (
	"testing"
	"time"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		parts       []string
		expectedKey string
	}{
		{
			name:        "prefix only",
			parts:       nil,
			expectedKey: "tf",
		},
		{
			name:        "single part",
			parts:       []string{"generate_quiz_total"},
			expectedKey: "tf:generate_quiz_total",
		},
		{
			name:        "multiple parts",
			parts:       []string{"generate_quiz_hour", "2024-03-09T14"},
			expectedKey: "tf:generate_quiz_hour:2024-03-09T14",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.parts...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestGenerationKeys(t *testing.T) {
	if got := GenerationTotalKey(); got != "tf:generate_quiz_total" {
		t.Errorf("GenerationTotalKey() = %v", got)
	}

	loc := time.FixedZone("UTC+9", 9*60*60)
	at := time.Date(2024, 3, 10, 1, 30, 0, 0, loc)
	if got := GenerationHourKey(at); got != "tf:generate_quiz_hour:2024-03-09T16" {
		t.Errorf("GenerationHourKey() = %v, want UTC hour", got)
	}
}

func TestLastHours(t *testing.T) {
	now := time.Date(2024, 3, 10, 1, 59, 0, 0, time.UTC)
	hours := LastHours(now, 24)

	if len(hours) != 24 {
		t.Fatalf("len(LastHours) = %d, want 24", len(hours))
	}
	if got := HourBucket(hours[0]); got != "2024-03-10T01" {
		t.Errorf("first bucket = %v, want current hour", got)
	}
	if got := HourBucket(hours[1]); got != "2024-03-10T00" {
		t.Errorf("second bucket = %v", got)
	}
	if got := HourBucket(hours[23]); got != "2024-03-09T02" {
		t.Errorf("last bucket = %v", got)
	}
}
