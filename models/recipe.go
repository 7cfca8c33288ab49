package models

import "gorm.io/gorm"

// Recipe with its ingredient links and derived fields. Calories,
// AverageRating and TotalRatings are always recomputed in full from the
// link/rating rows, never adjusted incrementally.
type Recipe struct {
	gorm.Model
	Name            string  `gorm:"not null" json:"name"`
	Description     string  `json:"description"`
	Instructions    string  `gorm:"type:text" json:"instructions"`
	PrepTimeMinutes int     `json:"prep_time_minutes"`
	ImageURL        string  `json:"image_url"`
	Category        string  `gorm:"not null" json:"category"` // one of RecipeCategories
	Calories        float64 `gorm:"default:0" json:"calories"`
	AverageRating   float64 `gorm:"default:0" json:"average_rating"`
	TotalRatings    int     `gorm:"default:0" json:"total_ratings"`

	Ingredients []RecipeIngredient `json:"ingredients,omitempty"`
}

// One ingredient row of a recipe. Quantity is a unit-less multiplier
// against the ingredient's CaloriesPerUnit. A recipe never holds two
// rows for the same ingredient; on edit the whole set is replaced.
type RecipeIngredient struct {
	gorm.Model
	RecipeID     uint    `gorm:"index;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uint    `gorm:"uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Quantity     float64 `gorm:"not null;default:0" json:"quantity"`
}
