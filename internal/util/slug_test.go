package util

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Quiz!", "my-quiz"},
		{"  Photosynthesis – Chapter 5  ", "photosynthesis-chapter-5"},
		{"---Hello___World---", "hello-world"},
		{"ALLCAPS", "allcaps"},
		{"already-a-slug", "already-a-slug"},
		{"Ünïcödé títlé", "n-c-d-t-tl"},
		{"!!!", ""},
		{"", ""},
		{"日本語", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestSlugify_Truncates(t *testing.T) {
	in := strings.Repeat("ab", 60)
	got := Slugify(in)
	assert.Equal(t, strings.Repeat("ab", 40), got)
}

func TestSlugify_IdempotentAndWellFormed(t *testing.T) {
	inputs := []string{
		"My Quiz!",
		"  spaced   out  ",
		"a--b",
		"Ünïcödé títlé",
		strings.Repeat("x y ", 50),
		"-lead and trail-",
		"Q1) What is 2+2?",
		"\t\n",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "idempotence for %q", in)
		if once != "" {
			assert.Regexp(t, slugPattern, once, "shape for %q", in)
		}
	}
}

func TestSlugOrDefault(t *testing.T) {
	assert.Equal(t, "my-quiz", SlugOrDefault("My Quiz!", "testforge-quiz"))
	assert.Equal(t, "testforge-quiz", SlugOrDefault("", "testforge-quiz"))
	assert.Equal(t, "testforge-quiz", SlugOrDefault("???", "testforge-quiz"))
}
