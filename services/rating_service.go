package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Bishesh15/smartpantry/config"
	"github.com/Bishesh15/smartpantry/engine"
	"github.com/Bishesh15/smartpantry/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ValidateRatingInput is the boundary check required before anything
// reaches the aggregation engine: value inside the scale, comment
// within bounds.
func ValidateRatingInput(value int, comment string) error {
	if !models.ValidRating(value) {
		return fmt.Errorf("rating must be between %d and %d", models.MinRating, models.MaxRating)
	}
	if len(comment) > models.MaxCommentLength {
		return fmt.Errorf("comment must be at most %d characters", models.MaxCommentLength)
	}
	return nil
}

// AddRating adds or replaces the user's rating for a recipe and then
// recomputes the stored aggregate from the full rating set. The whole
// read-recompute-write runs with the recipe row locked, so two
// concurrent submissions for the same recipe serialize and the stored
// aggregate always matches some ordering of the writes.
func AddRating(userID, recipeID uint, value int, comment string) (*models.Rating, error) {
	if err := ValidateRatingInput(value, comment); err != nil {
		return nil, err
	}

	var saved models.Rating
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&recipe, recipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("recipe not found")
			}
			return err
		}

		var existing models.Rating
		err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&existing).Error
		switch {
		case err == nil:
			existing.Value = value
			existing.Comment = comment
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			saved = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			saved = models.Rating{UserID: userID, RecipeID: recipeID, Value: value, Comment: comment}
			if err := tx.Create(&saved).Error; err != nil {
				return err
			}
		default:
			return err
		}

		var ratings []models.Rating
		if err := tx.Where("recipe_id = ?", recipeID).Find(&ratings).Error; err != nil {
			return err
		}
		average, count := engine.RecomputeAggregate(ratings)

		return tx.Model(&recipe).Updates(map[string]interface{}{
			"average_rating": average,
			"total_ratings":  count,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

type RatingWithUser struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Value     int       `json:"value"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ListRatings returns a recipe's ratings with usernames, newest first.
func ListRatings(recipeID uint) ([]RatingWithUser, error) {
	var rows []RatingWithUser
	err := config.DB.
		Table("ratings r").
		Joins("JOIN users u ON u.id = r.user_id").
		Where("r.recipe_id = ? AND r.deleted_at IS NULL", recipeID).
		Select("r.id, r.user_id, u.username, r.value, r.comment, r.created_at").
		Order("r.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func GetUserRating(userID, recipeID uint) (*models.Rating, error) {
	var rating models.Rating
	err := config.DB.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}
