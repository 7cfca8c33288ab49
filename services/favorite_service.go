package services

import (
	"errors"

	"github.com/Bishesh15/smartpantry/config"
	"github.com/Bishesh15/smartpantry/models"

	"gorm.io/gorm"
)

// AddFavorite is a no-op when the recipe is already favorited.
func AddFavorite(userID, recipeID uint) error {
	var recipe models.Recipe
	if err := config.DB.First(&recipe, recipeID).Error; err != nil {
		return errors.New("recipe not found")
	}

	var existing models.Favorite
	err := config.DB.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return config.DB.Create(&models.Favorite{UserID: userID, RecipeID: recipeID}).Error
}

// RemoveFavorite hard-deletes the row so the recipe can be favorited
// again later without hitting the unique index.
func RemoveFavorite(userID, recipeID uint) error {
	return config.DB.Unscoped().
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{}).Error
}

func IsFavorited(userID, recipeID uint) bool {
	var count int64
	config.DB.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count)
	return count > 0
}

func ListFavorites(userID uint) ([]models.Recipe, error) {
	var recipeIDs []uint
	if err := config.DB.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("recipe_id", &recipeIDs).Error; err != nil {
		return nil, err
	}
	if len(recipeIDs) == 0 {
		return nil, nil
	}

	var recipes []models.Recipe
	err := config.DB.Where("id IN ?", recipeIDs).Order("name ASC").Find(&recipes).Error
	return recipes, err
}
