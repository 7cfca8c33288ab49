package engine

import (
	"testing"

	"github.com/Bishesh15/smartpantry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredList(categories ...string) []ScoredRecipe {
	var out []ScoredRecipe
	for i, cat := range categories {
		r := models.Recipe{Category: cat}
		r.ID = uint(i + 1)
		out = append(out, ScoredRecipe{Recipe: r, MatchCount: 1, TotalIngredients: 1, Score: 1})
	}
	return out
}

func TestFilterByFoodPreferences(t *testing.T) {
	scored := scoredList("Nepali", "Italian", "Chinese")

	kept := FilterByProfile(scored, DietProfile{FoodPreferences: []string{"Nepali", "Chinese"}})
	require.Len(t, kept, 2)
	assert.Equal(t, "Nepali", kept[0].Recipe.Category)
	assert.Equal(t, "Chinese", kept[1].Recipe.Category)
}

func TestFilterEmptyProfileKeepsAll(t *testing.T) {
	scored := scoredList("Nepali", "Italian", "Meat Curry")

	kept := FilterByProfile(scored, DietProfile{})
	assert.Len(t, kept, len(scored))
}

func TestVegetarianExcludesMeatCategories(t *testing.T) {
	scored := scoredList("Meat Curry", "Vegetable Curry")

	kept := FilterByProfile(scored, DietProfile{DietaryRestrictions: []string{"Vegetarian"}})
	require.Len(t, kept, 1)
	assert.Equal(t, "Vegetable Curry", kept[0].Recipe.Category)
}

func TestOtherRestrictionsDoNotFilter(t *testing.T) {
	// only the Vegetarian rule is in effect today
	scored := scoredList("Meat Curry", "Italian")

	for _, restriction := range []string{"Vegan", "Gluten-Free", "Dairy-Free", "Nut-Free"} {
		kept := FilterByProfile(scored, DietProfile{DietaryRestrictions: []string{restriction}})
		assert.Len(t, kept, 2, "restriction %s should not filter", restriction)
	}
}

func TestNoneDisablesRestrictionFiltering(t *testing.T) {
	scored := scoredList("Meat Curry")

	kept := FilterByProfile(scored, DietProfile{
		DietaryRestrictions: []string{"Vegetarian", models.RestrictionNone},
	})
	assert.Len(t, kept, 1)
}

func TestFilterPreservesOrder(t *testing.T) {
	scored := scoredList("Nepali", "Meat Curry", "Nepali", "Thai", "Nepali")

	kept := FilterByProfile(scored, DietProfile{
		FoodPreferences:     []string{"Nepali", "Thai"},
		DietaryRestrictions: []string{"Vegetarian"},
	})
	require.Len(t, kept, 4)
	var ids []uint
	for _, s := range kept {
		ids = append(ids, s.Recipe.ID)
	}
	assert.Equal(t, []uint{1, 3, 4, 5}, ids)
}

func TestMatchesDietaryRestrictions(t *testing.T) {
	tests := []struct {
		name         string
		restrictions []string
		category     string
		want         bool
	}{
		{"no restrictions", nil, "Meat Curry", true},
		{"none sentinel", []string{"None"}, "Meat Curry", true},
		{"vegetarian vs meat", []string{"Vegetarian"}, "Meat Curry", false},
		{"vegetarian vs veg", []string{"Vegetarian"}, "Vegetable Curry", true},
		{"vegan alone passes meat", []string{"Vegan"}, "Meat Curry", true},
		{"vegetarian plus none", []string{"Vegetarian", "None"}, "Meat Curry", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesDietaryRestrictions(tt.restrictions, tt.category))
		})
	}
}
