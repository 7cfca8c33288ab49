package models

import "gorm.io/gorm"

// At most one rating per (user, recipe); a later submission overwrites
// the existing row instead of adding another.
type Rating struct {
	gorm.Model
	UserID   uint   `gorm:"uniqueIndex:idx_user_recipe" json:"user_id"`
	RecipeID uint   `gorm:"index;uniqueIndex:idx_user_recipe" json:"recipe_id"`
	Value    int    `gorm:"not null" json:"value"` // MinRating..MaxRating
	Comment  string `gorm:"size:1000" json:"comment"`
}
