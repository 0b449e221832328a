package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name and collapses everything non-alphanumeric
// into single hyphens.
func Slugify(name string) string {
	s := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// MakeSlug appends a short random suffix so two products with the same
// name still get unique slugs.
func MakeSlug(name string) string {
	return Slugify(name) + "-" + uuid.NewString()[:10]
}
