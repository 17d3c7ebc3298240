package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// IsValidSlug reports whether s is a usable URL path segment:
// lowercase alphanumerics and hyphens only.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// GenerateSlug derives a URL slug from free text.
// "My First Newsletter!" -> "my-first-newsletter"
func GenerateSlug(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))

	hyphenated := strings.ReplaceAll(lower, " ", "-")

	// Keep only a-z, 0-9, hyphens
	reg := regexp.MustCompile(`[^a-z0-9-]+`)
	cleaned := reg.ReplaceAllString(hyphenated, "")

	// Collapse consecutive hyphens
	reg = regexp.MustCompile(`-+`)
	normalized := reg.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}
