// Package catalog provides the static, read-only challenge catalog.
package catalog

import (
	"strings"

	"degen-prop/internal/errors"
	"degen-prop/internal/models"
)

// Catalog is a read-only list of challenge definitions in fixed order.
type Catalog struct {
	challenges []models.ChallengeDefinition
}

// New returns a catalog backed by the built-in challenge definitions.
func New() *Catalog {
	return &Catalog{challenges: builtinChallenges}
}

// NewWithChallenges returns a catalog over the given definitions. Used by
// tests and by deployments that load a custom catalog.
func NewWithChallenges(challenges []models.ChallengeDefinition) *Catalog {
	return &Catalog{challenges: challenges}
}

// List returns challenges whose name or platform contains searchTerm
// (case-insensitive). An empty term matches everything. limit > 0 truncates
// the filtered result; catalog order is preserved, never re-sorted.
func (c *Catalog) List(searchTerm string, limit int) []models.ChallengeDefinition {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	var filtered []models.ChallengeDefinition
	for _, ch := range c.challenges {
		if term == "" ||
			strings.Contains(strings.ToLower(ch.Name), term) ||
			strings.Contains(strings.ToLower(string(ch.Platform)), term) {
			filtered = append(filtered, ch)
		}
	}

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

// Get returns the challenge with the given id. A missing id is a valid,
// non-exceptional result reported as a NotFoundError.
func (c *Catalog) Get(id string) (models.ChallengeDefinition, error) {
	for _, ch := range c.challenges {
		if ch.ID == id {
			return ch, nil
		}
	}
	return models.ChallengeDefinition{}, errors.NewNotFoundError("challenge", id)
}

// Platforms returns the distinct platforms in catalog order.
func (c *Catalog) Platforms() []models.Platform {
	seen := make(map[models.Platform]bool)
	var platforms []models.Platform
	for _, ch := range c.challenges {
		if !seen[ch.Platform] {
			seen[ch.Platform] = true
			platforms = append(platforms, ch.Platform)
		}
	}
	return platforms
}
