package engine

import (
	"math/rand"
	"testing"

	"github.com/Bishesh15/smartpantry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecipe(id uint, name, category string, rating float64, ingredientIDs ...uint) models.Recipe {
	r := models.Recipe{
		Name:          name,
		Category:      category,
		AverageRating: rating,
	}
	r.ID = id
	for _, ingID := range ingredientIDs {
		r.Ingredients = append(r.Ingredients, models.RecipeIngredient{
			RecipeID:     id,
			IngredientID: ingID,
			Quantity:     1,
		})
	}
	return r
}

func TestMatchScoring(t *testing.T) {
	// recipe A uses 3 ingredients, 2 selected; recipe B uses exactly
	// the 1 selected ingredient and must outrank A on score
	a := makeRecipe(1, "Veg Pulao", "Nepali", 4.5, 1, 2, 3)
	b := makeRecipe(2, "Steamed Rice", "Nepali", 3.0, 1)

	results := Match([]uint{1, 2}, []models.Recipe{a, b})
	require.Len(t, results, 2)

	assert.Equal(t, uint(2), results[0].Recipe.ID)
	assert.Equal(t, 1, results[0].MatchCount)
	assert.Equal(t, 1, results[0].TotalIngredients)
	assert.Equal(t, 1.0, results[0].Score)

	assert.Equal(t, uint(1), results[1].Recipe.ID)
	assert.Equal(t, 2, results[1].MatchCount)
	assert.Equal(t, 3, results[1].TotalIngredients)
	assert.InDelta(t, 0.667, results[1].Score, 0.001)
}

func TestMatchExcludesZeroMatch(t *testing.T) {
	a := makeRecipe(1, "Dal Bhat", "Nepali", 4.0, 1, 2)
	b := makeRecipe(2, "Pasta", "Italian", 5.0, 7, 8)

	results := Match([]uint{1}, []models.Recipe{a, b})
	require.Len(t, results, 1)
	assert.Equal(t, uint(1), results[0].Recipe.ID)
}

func TestMatchExcludesRecipesWithoutIngredients(t *testing.T) {
	empty := makeRecipe(1, "Mystery Dish", "Other", 5.0)
	full := makeRecipe(2, "Salad", "Continental", 2.0, 1)

	results := Match([]uint{1, 2, 3}, []models.Recipe{empty, full})
	require.Len(t, results, 1)
	assert.Equal(t, uint(2), results[0].Recipe.ID)
}

func TestMatchEmptySelection(t *testing.T) {
	recipes := []models.Recipe{
		makeRecipe(1, "Dal Bhat", "Nepali", 4.0, 1, 2),
		makeRecipe(2, "Pasta", "Italian", 5.0, 3),
	}

	assert.Empty(t, Match(nil, recipes))
	assert.Empty(t, Match([]uint{}, recipes))
}

func TestMatchTieBreaks(t *testing.T) {
	// identical score 0.5: higher matchCount wins
	twoOfFour := makeRecipe(1, "Curry", "Indian", 1.0, 1, 2, 3, 4)
	oneOfTwo := makeRecipe(2, "Soup", "Chinese", 5.0, 1, 9)

	results := Match([]uint{1, 2}, []models.Recipe{oneOfTwo, twoOfFour})
	require.Len(t, results, 2)
	assert.Equal(t, uint(1), results[0].Recipe.ID, "equal score resolves on match count")

	// identical score and matchCount: higher rating wins
	lowRated := makeRecipe(3, "Stew A", "Other", 2.0, 1, 9)
	highRated := makeRecipe(4, "Stew B", "Other", 4.0, 1, 8)

	results = Match([]uint{1}, []models.Recipe{lowRated, highRated})
	require.Len(t, results, 2)
	assert.Equal(t, uint(4), results[0].Recipe.ID, "equal score and count resolve on rating")

	// fully tied recipes keep input order
	tiedA := makeRecipe(5, "Tied A", "Other", 3.0, 1, 8)
	tiedB := makeRecipe(6, "Tied B", "Other", 3.0, 1, 9)

	results = Match([]uint{1}, []models.Recipe{tiedA, tiedB})
	require.Len(t, results, 2)
	assert.Equal(t, uint(5), results[0].Recipe.ID)
	assert.Equal(t, uint(6), results[1].Recipe.ID)
}

func TestMatchEveryResultHasOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		var recipes []models.Recipe
		for i := 0; i < 20; i++ {
			var ings []uint
			for ing := uint(1); ing <= 15; ing++ {
				if rng.Intn(3) == 0 {
					ings = append(ings, ing)
				}
			}
			recipes = append(recipes, makeRecipe(uint(i+1), "R", "Other", rng.Float64()*5, ings...))
		}
		var selected []uint
		for ing := uint(1); ing <= 15; ing++ {
			if rng.Intn(4) == 0 {
				selected = append(selected, ing)
			}
		}

		for _, res := range Match(selected, recipes) {
			assert.GreaterOrEqual(t, res.MatchCount, 1)
			assert.Greater(t, res.TotalIngredients, 0)
			assert.Greater(t, res.Score, 0.0)
			assert.LessOrEqual(t, res.Score, 1.0)
		}
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	var recipes []models.Recipe
	for i := 0; i < 30; i++ {
		var ings []uint
		for ing := uint(1); ing <= 10; ing++ {
			if rng.Intn(2) == 0 {
				ings = append(ings, ing)
			}
		}
		recipes = append(recipes, makeRecipe(uint(i+1), "R", "Other", float64(rng.Intn(6)), ings...))
	}
	selected := []uint{1, 3, 5, 7}

	first := Match(selected, recipes)
	second := Match(selected, recipes)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Recipe.ID, second[i].Recipe.ID)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}
