package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRating(t *testing.T) {
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(0))
	assert.False(t, ValidRating(6))
}

func TestVocabularies(t *testing.T) {
	assert.True(t, ValidRecipeCategory("Nepali"))
	assert.False(t, ValidRecipeCategory("Fusion"))

	assert.True(t, ValidIngredientCategory("Spices"))
	assert.False(t, ValidIngredientCategory("Snacks"))

	assert.True(t, ValidFoodPreference("Mixed"))
	assert.False(t, ValidFoodPreference("Nordic"))

	assert.True(t, ValidDietaryRestriction("None"))
	assert.True(t, ValidDietaryRestriction("Gluten-Free"))
	assert.False(t, ValidDietaryRestriction("Pescatarian"))
}

func TestPreferenceListSplitting(t *testing.T) {
	u := User{
		FoodPreferences:     "Nepali, Indian ,Thai",
		DietaryRestrictions: "",
	}
	assert.Equal(t, []string{"Nepali", "Indian", "Thai"}, u.FoodPreferenceList())
	assert.Nil(t, u.DietaryRestrictionList())
}
