package models

// Rating scale
const (
	MinRating = 1
	MaxRating = 5
)

const MaxCommentLength = 1000

// RestrictionNone disables restriction filtering when present in a
// user's dietary restrictions.
const RestrictionNone = "None"

var RecipeCategories = []string{
	"Nepali",
	"Indian",
	"Continental",
	"Chinese",
	"Italian",
	"Mexican",
	"Thai",
	"Other",
}

var IngredientCategories = []string{
	"Vegetables",
	"Fruits",
	"Proteins",
	"Grains",
	"Legumes",
	"Dairy",
	"Spices",
	"Oils",
	"Herbs",
	"Other",
}

var FoodPreferences = []string{
	"Nepali",
	"Indian",
	"Continental",
	"Chinese",
	"Italian",
	"Mexican",
	"Thai",
	"Mixed",
}

var DietaryRestrictions = []string{
	"Vegetarian",
	"Vegan",
	"Gluten-Free",
	"Dairy-Free",
	"Nut-Free",
	RestrictionNone,
}

// ValidRating reports whether v is inside the rating scale. Callers
// must check this before handing the value to the aggregation engine.
func ValidRating(v int) bool {
	return v >= MinRating && v <= MaxRating
}

func ValidRecipeCategory(c string) bool     { return contains(RecipeCategories, c) }
func ValidIngredientCategory(c string) bool { return contains(IngredientCategories, c) }
func ValidFoodPreference(p string) bool     { return contains(FoodPreferences, p) }
func ValidDietaryRestriction(r string) bool { return contains(DietaryRestrictions, r) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
