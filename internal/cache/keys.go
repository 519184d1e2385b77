package cache

import (
	"strings"
	"time"
)

const (
	GlobalKeyPrefix = "tf"

	// HourLayout formats an hour bucket identifier, e.g. 2024-03-09T14.
	HourLayout = "2006-01-02T15"
)

// GenerateCacheKey joins the global prefix and the given parts with ":".
func GenerateCacheKey(parts ...string) string {
	return strings.Join(append([]string{GlobalKeyPrefix}, parts...), ":")
}

// GenerationTotalKey is the key holding the all-time generation count.
func GenerationTotalKey() string {
	return GenerateCacheKey("generate_quiz_total")
}

// HourBucket returns the UTC hour identifier for t.
func HourBucket(t time.Time) string {
	return t.UTC().Format(HourLayout)
}

// GenerationHourKey is the key holding the generation count for the UTC hour containing t.
func GenerationHourKey(t time.Time) string {
	return GenerateCacheKey("generate_quiz_hour", HourBucket(t))
}

// LastHours returns the n hour buckets ending at now, walking backwards in
// one hour steps. Index 0 is the hour containing now.
func LastHours(now time.Time, n int) []time.Time {
	hours := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		hours = append(hours, now.Add(-time.Duration(i)*time.Hour))
	}
	return hours
}
