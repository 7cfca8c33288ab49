package engine

import (
	"sort"

	"github.com/Bishesh15/smartpantry/models"
)

// ScoredRecipe is one match result: how many of the selected
// ingredients the recipe uses, its full ingredient count, and the
// ratio of the two.
type ScoredRecipe struct {
	Recipe           models.Recipe `json:"recipe"`
	MatchCount       int           `json:"match_count"`
	TotalIngredients int           `json:"total_ingredients"`
	Score            float64       `json:"score"`
}

// Match scores every candidate recipe against the selected ingredient
// ids and returns them ranked. A recipe using none of the selected
// ingredients is never a match, and a recipe with no ingredients at
// all is excluded rather than producing an undefined score. Ordering
// is descending on (score, match count, average rating); remaining
// ties keep the input order, so identical inputs always produce
// identical output.
func Match(selectedIngredientIDs []uint, recipes []models.Recipe) []ScoredRecipe {
	if len(selectedIngredientIDs) == 0 {
		return nil
	}

	selected := make(map[uint]struct{}, len(selectedIngredientIDs))
	for _, id := range selectedIngredientIDs {
		selected[id] = struct{}{}
	}

	var scored []ScoredRecipe
	for _, r := range recipes {
		total := len(r.Ingredients)
		if total == 0 {
			continue
		}
		matchCount := 0
		for _, link := range r.Ingredients {
			if _, ok := selected[link.IngredientID]; ok {
				matchCount++
			}
		}
		if matchCount == 0 {
			continue
		}
		scored = append(scored, ScoredRecipe{
			Recipe:           r,
			MatchCount:       matchCount,
			TotalIngredients: total,
			Score:            float64(matchCount) / float64(total),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].MatchCount != scored[j].MatchCount {
			return scored[i].MatchCount > scored[j].MatchCount
		}
		return scored[i].Recipe.AverageRating > scored[j].Recipe.AverageRating
	})

	return scored
}
