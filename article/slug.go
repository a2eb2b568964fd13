package article

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// NormalizeSlug applies the default slug normalization rules.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

// CanonicalSlug produces the key used for store lookups: trimmed, lowered,
// and normalized when possible. Lookups and indexing must agree on this form
// so author-supplied casing does not split identities.
func CanonicalSlug(value string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if normalized, err := slug.Normalize(trimmed); err == nil && normalized != "" {
		return normalized
	}
	return trimmed
}
