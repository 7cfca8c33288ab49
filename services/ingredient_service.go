package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Bishesh15/smartpantry/config"
	"github.com/Bishesh15/smartpantry/models"
	"github.com/Bishesh15/smartpantry/utils"

	"gorm.io/gorm"
)

type IngredientInput struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	CaloriesPerUnit float64 `json:"calories_per_unit"`
	Unit            string  `json:"unit"`
	ImageBase64     string  `json:"image_base64,omitempty"`
}

func (in *IngredientInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("ingredient name is required")
	}
	if !models.ValidIngredientCategory(in.Category) {
		return fmt.Errorf("unknown ingredient category: %s", in.Category)
	}
	if in.CaloriesPerUnit < 0 {
		return errors.New("calories_per_unit must be non-negative")
	}
	return nil
}

func ListIngredients(category string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	q := config.DB.Order("category, name ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&ingredients).Error
	return ingredients, err
}

// ListIngredientsByCategory groups the full catalog for the selection UI.
func ListIngredientsByCategory() (map[string][]models.Ingredient, error) {
	ingredients, err := ListIngredients("")
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]models.Ingredient)
	for _, ing := range ingredients {
		grouped[ing.Category] = append(grouped[ing.Category], ing)
	}
	return grouped, nil
}

func GetIngredient(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := config.DB.First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func SearchIngredients(term string) ([]models.Ingredient, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	var ingredients []models.Ingredient
	err := config.DB.
		Where("name ILIKE ?", "%"+term+"%").
		Order("name ASC").
		Find(&ingredients).Error
	return ingredients, err
}

func CreateIngredient(input IngredientInput) (*models.Ingredient, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	ingredient := models.Ingredient{
		Name:            strings.TrimSpace(input.Name),
		Category:        input.Category,
		CaloriesPerUnit: input.CaloriesPerUnit,
		Unit:            input.Unit,
	}

	if input.ImageBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(input.ImageBase64, "ingredients")
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		ingredient.ImageURL = url
	}

	if err := config.DB.Create(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("ingredient name already exists")
		}
		return nil, err
	}
	return &ingredient, nil
}

// UpdateIngredient edits reference data. A changed CaloriesPerUnit
// invalidates every recipe using the ingredient, so their stored
// totals are recomputed before returning.
func UpdateIngredient(id uint, input IngredientInput) (*models.Ingredient, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var ingredient models.Ingredient
	if err := config.DB.First(&ingredient, id).Error; err != nil {
		return nil, err
	}

	caloriesChanged := ingredient.CaloriesPerUnit != input.CaloriesPerUnit

	ingredient.Name = strings.TrimSpace(input.Name)
	ingredient.Category = input.Category
	ingredient.CaloriesPerUnit = input.CaloriesPerUnit
	ingredient.Unit = input.Unit

	if input.ImageBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(input.ImageBase64, "ingredients")
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		ingredient.ImageURL = url
	}

	if err := config.DB.Save(&ingredient).Error; err != nil {
		return nil, err
	}

	if caloriesChanged {
		if err := recalculateCaloriesForIngredient(ingredient.ID); err != nil {
			return nil, err
		}
	}

	return &ingredient, nil
}

func DeleteIngredient(id uint) error {
	if err := config.DB.Unscoped().Delete(&models.Ingredient{}, id).Error; err != nil {
		return err
	}
	// affected recipes keep their links but the missing ingredient now
	// contributes zero calories; bring stored totals back in line
	return recalculateCaloriesForIngredient(id)
}

func recalculateCaloriesForIngredient(ingredientID uint) error {
	var recipeIDs []uint
	if err := config.DB.Model(&models.RecipeIngredient{}).
		Where("ingredient_id = ?", ingredientID).
		Distinct("recipe_id").
		Pluck("recipe_id", &recipeIDs).Error; err != nil {
		return err
	}
	for _, id := range recipeIDs {
		if err := RecalculateCalories(id); err != nil {
			return err
		}
	}
	return nil
}
