// Package engine holds the pure recipe matching and aggregation logic.
// Every function here is a side-effect-free computation over a snapshot
// of rows handed in by the caller; nothing in this package touches the
// database or gin.
package engine

import "github.com/Bishesh15/smartpantry/models"

// Catalog is a read-only ingredient lookup built from a snapshot of
// ingredient rows.
type Catalog struct {
	byID map[uint]models.Ingredient
}

func NewCatalog(ingredients []models.Ingredient) Catalog {
	byID := make(map[uint]models.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}
	return Catalog{byID: byID}
}

// Get returns the ingredient and whether it exists. A missing id is
// not an error here; callers decide whether it is worth logging.
func (c Catalog) Get(id uint) (models.Ingredient, bool) {
	ing, ok := c.byID[id]
	return ing, ok
}

func (c Catalog) Len() int { return len(c.byID) }
