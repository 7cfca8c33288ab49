package engine

import "github.com/Bishesh15/smartpantry/models"

// ComputeCalories totals a recipe's calories from its ingredient links:
// sum of quantity * calories-per-unit. An ingredient id missing from
// the catalog contributes 0 rather than failing; that is missing
// reference data, not a fatal condition. This is always a full
// recompute over the current link set — there is deliberately no
// incremental delta path, so a missed update can never leave the
// stored total drifting from the rows.
func ComputeCalories(links []models.RecipeIngredient, catalog Catalog) float64 {
	var total float64
	for _, link := range links {
		ing, ok := catalog.Get(link.IngredientID)
		if !ok {
			continue
		}
		total += link.Quantity * ing.CaloriesPerUnit
	}
	return total
}
