package domain

import (
	"regexp"
	"strings"
)

const (
	slugMinLen = 3
	slugMaxLen = 50
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// reservedSlugs are path segments the frontend router claims for itself.
// A family slug colliding with any of these would shadow an application route.
var reservedSlugs = map[string]struct{}{
	"account":        {},
	"api":            {},
	"coming-soon":    {},
	"family-manager": {},
	"family-select":  {},
	"setup":          {},
	"sphome":         {},
	"login":          {},
	"auth":           {},
	"context":        {},
	"globals":        {},
	"layout":         {},
	"metadata":       {},
	"page":           {},
	"template":       {},
}

// ValidateSlug checks a candidate family slug. Rules are applied in order:
// non-empty, allowed characters, length bounds, then the reserved set.
func ValidateSlug(slug string) error {
	if slug == "" {
		return ErrSlugRequired
	}
	if !slugPattern.MatchString(slug) {
		return ErrSlugInvalidChars
	}
	if len(slug) < slugMinLen || len(slug) > slugMaxLen {
		return ErrSlugLength
	}
	if IsReservedSlug(slug) {
		return ErrSlugReserved
	}
	return nil
}

// IsReservedSlug reports whether the slug collides with an application
// route. The comparison is case-insensitive.
func IsReservedSlug(slug string) bool {
	_, ok := reservedSlugs[strings.ToLower(slug)]
	return ok
}
