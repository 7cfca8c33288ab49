package engine

import (
	"strings"

	"github.com/Bishesh15/smartpantry/models"
)

// DietProfile narrows a ranked match list. Both sets may be empty,
// which means "no filtering" for that dimension.
type DietProfile struct {
	FoodPreferences     []string
	DietaryRestrictions []string
}

// FilterByProfile keeps only recipes that conform to the profile,
// preserving the ranked order. Preferences keep recipes whose category
// is in the preference set; restrictions apply the (narrow) category
// rule below. The "None" restriction disables restriction filtering
// entirely, whatever else is in the set.
func FilterByProfile(scored []ScoredRecipe, profile DietProfile) []ScoredRecipe {
	out := make([]ScoredRecipe, 0, len(scored))
	for _, s := range scored {
		if len(profile.FoodPreferences) > 0 && !containsString(profile.FoodPreferences, s.Recipe.Category) {
			continue
		}
		if !MatchesDietaryRestrictions(profile.DietaryRestrictions, s.Recipe.Category) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// MatchesDietaryRestrictions reports whether a recipe category passes
// the restriction set. The only rule currently in effect: Vegetarian
// excludes categories containing "Meat". Vegan, Gluten-Free,
// Dairy-Free and Nut-Free do not filter anything yet — see the open
// question in DESIGN.md before extending this.
func MatchesDietaryRestrictions(restrictions []string, recipeCategory string) bool {
	if len(restrictions) == 0 || containsString(restrictions, models.RestrictionNone) {
		return true
	}
	if containsString(restrictions, "Vegetarian") && strings.Contains(recipeCategory, "Meat") {
		return false
	}
	return true
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
