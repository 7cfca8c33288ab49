package models

import "gorm.io/gorm"

type Favorite struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex:idx_user_favorite" json:"user_id"`
	RecipeID uint `gorm:"uniqueIndex:idx_user_favorite" json:"recipe_id"`
}
