package models

import "gorm.io/gorm"

// Reference data managed by admins; users only read it.
type Ingredient struct {
	gorm.Model
	Name            string  `gorm:"uniqueIndex;not null" json:"name"`
	Category        string  `gorm:"not null" json:"category"` // one of IngredientCategories
	CaloriesPerUnit float64 `gorm:"not null;default:0" json:"calories_per_unit"`
	Unit            string  `json:"unit"` // display label only, e.g. "100g", "tbsp"
	ImageURL        string  `json:"image_url"`
}
