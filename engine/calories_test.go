package engine

import (
	"testing"

	"github.com/Bishesh15/smartpantry/models"

	"github.com/stretchr/testify/assert"
)

func ingredient(id uint, name string, caloriesPerUnit float64) models.Ingredient {
	ing := models.Ingredient{Name: name, Category: "Other", CaloriesPerUnit: caloriesPerUnit}
	ing.ID = id
	return ing
}

func link(ingredientID uint, quantity float64) models.RecipeIngredient {
	return models.RecipeIngredient{IngredientID: ingredientID, Quantity: quantity}
}

func TestComputeCalories(t *testing.T) {
	catalog := NewCatalog([]models.Ingredient{
		ingredient(1, "Rice", 130), // per 100g
		ingredient(2, "Lentils", 116),
		ingredient(3, "Ghee", 900),
	})

	tests := []struct {
		name  string
		links []models.RecipeIngredient
		want  float64
	}{
		{"single link", []models.RecipeIngredient{link(1, 2)}, 260},
		{"multiple links", []models.RecipeIngredient{link(1, 2), link(2, 1.5), link(3, 0.1)}, 260 + 174 + 90},
		{"zero quantity", []models.RecipeIngredient{link(1, 0)}, 0},
		{"no links", nil, 0},
		{"unknown ingredient contributes zero", []models.RecipeIngredient{link(1, 1), link(99, 5)}, 130},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeCalories(tt.links, catalog), 1e-9)
		})
	}
}

func TestComputeCaloriesIdempotent(t *testing.T) {
	catalog := NewCatalog([]models.Ingredient{ingredient(1, "Rice", 130)})
	links := []models.RecipeIngredient{link(1, 2.5)}

	first := ComputeCalories(links, catalog)
	second := ComputeCalories(links, catalog)
	assert.Equal(t, first, second)

	// removing every link always lands exactly on zero
	assert.Zero(t, ComputeCalories(nil, catalog))
}

func TestCatalogLookup(t *testing.T) {
	catalog := NewCatalog([]models.Ingredient{ingredient(1, "Rice", 130)})

	ing, ok := catalog.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "Rice", ing.Name)

	_, ok = catalog.Get(42)
	assert.False(t, ok)

	assert.Equal(t, 1, catalog.Len())
}
