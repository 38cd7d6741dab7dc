// Package slug turns arbitrary titles into URL-safe identifiers and
// allocates unique ones against existing rows.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

const maxProbes = 1000

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9_\s-]`)
	separators   = regexp.MustCompile(`[\s_-]+`)
)

// ExistsFunc reports whether a slug is already taken, ignoring the row
// identified by excludeID (pass "" when creating).
type ExistsFunc func(slug, excludeID string) (bool, error)

// Slugify normalizes a title into a slug: lowercase, strip everything
// but letters, digits, underscores, spaces and hyphens, then collapse
// runs of separators into a single hyphen. Idempotent, so a slug fed
// back in comes out unchanged.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// AllocateUnique finds the first free slug by probing base, base-1,
// base-2 and so on. It gives up after 1000 probes. The unique index on
// the slug column is the real guarantee; a concurrent writer can still
// win the race between the probe and the insert.
func AllocateUnique(base string, exists ExistsFunc, excludeID string) (string, error) {
	candidate := base
	for i := 0; i < maxProbes; i++ {
		taken, err := exists(candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i+1)
	}
	return "", fmt.Errorf("unable to generate unique slug after %d attempts", maxProbes)
}
