package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Bishesh15/smartpantry/config"
	"github.com/Bishesh15/smartpantry/engine"
	"github.com/Bishesh15/smartpantry/models"
	"github.com/Bishesh15/smartpantry/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipeIngredientInput struct {
	IngredientID uint    `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

type RecipeInput struct {
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	Instructions    string                  `json:"instructions"`
	PrepTimeMinutes int                     `json:"prep_time_minutes"`
	Category        string                  `json:"category"`
	ImageBase64     string                  `json:"image_base64,omitempty"`
	Ingredients     []RecipeIngredientInput `json:"ingredients"`
}

func (in *RecipeInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("recipe name is required")
	}
	if !models.ValidRecipeCategory(in.Category) {
		return fmt.Errorf("unknown recipe category: %s", in.Category)
	}
	if in.PrepTimeMinutes <= 0 {
		return errors.New("prep_time_minutes must be positive")
	}
	seen := make(map[uint]bool, len(in.Ingredients))
	for _, link := range in.Ingredients {
		if link.IngredientID == 0 {
			return errors.New("ingredient_id is required for every ingredient")
		}
		if link.Quantity < 0 {
			return errors.New("ingredient quantity must be non-negative")
		}
		if seen[link.IngredientID] {
			return fmt.Errorf("duplicate ingredient %d in recipe", link.IngredientID)
		}
		seen[link.IngredientID] = true
	}
	return nil
}

func ListRecipes(limit, offset int) ([]models.Recipe, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var recipes []models.Recipe
	err := config.DB.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&recipes).Error
	return recipes, err
}

// GetRecipeWithLinks loads a recipe and its ingredient link rows.
func GetRecipeWithLinks(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := config.DB.Preload("Ingredients").First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// RecipeDetail is the full detail payload: recipe, resolved
// ingredients with quantities, and its ratings.
type RecipeDetail struct {
	Recipe      models.Recipe      `json:"recipe"`
	Ingredients []DetailIngredient `json:"ingredients"`
	Ratings     []RatingWithUser   `json:"ratings"`
}

type DetailIngredient struct {
	models.Ingredient
	Quantity float64 `json:"quantity"`
}

func GetRecipeDetail(id uint) (*RecipeDetail, error) {
	recipe, err := GetRecipeWithLinks(id)
	if err != nil {
		return nil, err
	}

	detail := &RecipeDetail{Recipe: *recipe}

	for _, link := range recipe.Ingredients {
		var ing models.Ingredient
		if err := config.DB.First(&ing, link.IngredientID).Error; err != nil {
			continue // ingredient deleted since the link was created
		}
		detail.Ingredients = append(detail.Ingredients, DetailIngredient{Ingredient: ing, Quantity: link.Quantity})
	}

	ratings, err := ListRatings(id)
	if err != nil {
		return nil, err
	}
	detail.Ratings = ratings

	return detail, nil
}

func CreateRecipe(input RecipeInput) (*models.Recipe, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		Instructions:    input.Instructions,
		PrepTimeMinutes: input.PrepTimeMinutes,
		Category:        input.Category,
	}

	if input.ImageBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(input.ImageBase64, "recipes")
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		recipe.ImageURL = url
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		return replaceIngredientLinks(tx, recipe.ID, input.Ingredients)
	})
	if err != nil {
		return nil, err
	}

	if err := RecalculateCalories(recipe.ID); err != nil {
		return nil, err
	}
	return GetRecipeWithLinks(recipe.ID)
}

// UpdateRecipe edits the recipe row and replaces its ingredient links
// wholesale (remove-all-then-insert, never a diff), then recomputes
// the calorie total from the new link set.
func UpdateRecipe(id uint, input RecipeInput) (*models.Recipe, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var recipe models.Recipe
	if err := config.DB.First(&recipe, id).Error; err != nil {
		return nil, err
	}

	recipe.Name = strings.TrimSpace(input.Name)
	recipe.Description = input.Description
	recipe.Instructions = input.Instructions
	recipe.PrepTimeMinutes = input.PrepTimeMinutes
	recipe.Category = input.Category

	if input.ImageBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(input.ImageBase64, "recipes")
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		recipe.ImageURL = url
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return replaceIngredientLinks(tx, recipe.ID, input.Ingredients)
	})
	if err != nil {
		return nil, err
	}

	if err := RecalculateCalories(recipe.ID); err != nil {
		return nil, err
	}
	return GetRecipeWithLinks(recipe.ID)
}

// DeleteRecipe removes the recipe and everything hanging off it. Rows
// are hard-deleted so a later recipe can reuse the ingredient pairs
// without tripping the unique indexes.
func DeleteRecipe(id uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("recipe_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Recipe{}, id).Error
	})
}

func replaceIngredientLinks(tx *gorm.DB, recipeID uint, inputs []RecipeIngredientInput) error {
	for _, in := range inputs {
		link := models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: in.IngredientID,
			Quantity:     in.Quantity,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// RecalculateCalories recomputes a recipe's calorie total from its
// current link set and persists it. The recipe row is locked for the
// duration so a racing rating upsert or link edit on the same recipe
// serializes; recipes are independent, so no wider lock is taken.
func RecalculateCalories(recipeID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&recipe, recipeID).Error; err != nil {
			return err
		}

		var links []models.RecipeIngredient
		if err := tx.Where("recipe_id = ?", recipeID).Find(&links).Error; err != nil {
			return err
		}

		ids := make([]uint, 0, len(links))
		for _, link := range links {
			ids = append(ids, link.IngredientID)
		}
		var ingredients []models.Ingredient
		if len(ids) > 0 {
			if err := tx.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
				return err
			}
		}

		total := engine.ComputeCalories(links, engine.NewCatalog(ingredients))
		return tx.Model(&recipe).Update("calories", total).Error
	})
}
