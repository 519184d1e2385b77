package util

import (
	"regexp"
	"strings"
)

// MaxSlugLength bounds the input considered when slugifying.
const MaxSlugLength = 80

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases and trims name, keeps its first MaxSlugLength runes,
// collapses every run of characters outside [a-z0-9] into a single hyphen and
// strips leading and trailing hyphens. The result may be empty.
func Slugify(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if r := []rune(s); len(r) > MaxSlugLength {
		s = string(r[:MaxSlugLength])
	}
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugOrDefault returns Slugify(name), or fallback when that is empty.
func SlugOrDefault(name, fallback string) string {
	if s := Slugify(name); s != "" {
		return s
	}
	return fallback
}
