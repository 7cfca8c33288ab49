package services

import (
	"errors"

	"github.com/Bishesh15/smartpantry/config"
	"github.com/Bishesh15/smartpantry/engine"
	"github.com/Bishesh15/smartpantry/models"
)

// ListCandidateRecipes pre-filters to recipes touching at least one of
// the selected ingredients, with their link sets loaded. Purely an
// optimization — the matcher re-checks overlap itself, so correctness
// does not depend on this narrowing.
func ListCandidateRecipes(ingredientIDs []uint) ([]models.Recipe, error) {
	if len(ingredientIDs) == 0 {
		return nil, nil
	}

	var recipeIDs []uint
	if err := config.DB.Model(&models.RecipeIngredient{}).
		Where("ingredient_id IN ?", ingredientIDs).
		Distinct("recipe_id").
		Pluck("recipe_id", &recipeIDs).Error; err != nil {
		return nil, err
	}
	if len(recipeIDs) == 0 {
		return nil, nil
	}

	var recipes []models.Recipe
	err := config.DB.
		Preload("Ingredients").
		Where("id IN ?", recipeIDs).
		Order("created_at DESC").
		Find(&recipes).Error
	return recipes, err
}

// MatchRecipes runs the full pipeline: candidate load, scoring and
// ranking, then the profile filter. Ingredient ids must already be
// validated as positive integers by the controller. A nil user means
// an anonymous caller with the empty profile.
func MatchRecipes(ingredientIDs []uint, user *models.User) ([]engine.ScoredRecipe, error) {
	for _, id := range ingredientIDs {
		if id == 0 {
			return nil, errors.New("ingredient ids must be positive")
		}
	}

	candidates, err := ListCandidateRecipes(ingredientIDs)
	if err != nil {
		return nil, err
	}

	scored := engine.Match(ingredientIDs, candidates)

	profile := engine.DietProfile{}
	if user != nil {
		profile.FoodPreferences = user.FoodPreferenceList()
		profile.DietaryRestrictions = user.DietaryRestrictionList()
	}

	return engine.FilterByProfile(scored, profile), nil
}

// SearchRecipes runs the substring search over the whole catalog.
func SearchRecipes(term string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := config.DB.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return engine.Search(term, recipes), nil
}
