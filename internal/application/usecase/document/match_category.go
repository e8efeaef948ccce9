// Package document contains document preprocessing and extraction use cases.
package document

import (
	"strings"

	"github.com/google/uuid"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// matchCategory resolves the category name returned by the extraction service
// against the known categories.
//
// Matching is case-insensitive: an exact name match wins, otherwise the first
// category whose name contains the returned name (or is contained in it) is
// used. When nothing matches, the previously selected category id is returned
// unchanged.
func matchCategory(categories []*entity.Category, name string, selected uuid.UUID) uuid.UUID {
	if name == "" {
		return selected
	}
	lowered := strings.ToLower(name)

	for _, cat := range categories {
		if strings.ToLower(cat.Name) == lowered {
			return cat.ID
		}
	}

	for _, cat := range categories {
		catName := strings.ToLower(cat.Name)
		if strings.Contains(catName, lowered) || strings.Contains(lowered, catName) {
			return cat.ID
		}
	}

	return selected
}
