package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Bishesh15/smartpantry/config"
	"github.com/Bishesh15/smartpantry/models"
)

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":                   user.ID,
		"username":             user.Username,
		"email":                user.Email,
		"food_preferences":     user.FoodPreferenceList(),
		"dietary_restrictions": user.DietaryRestrictionList(),
		"is_admin":             user.IsAdmin,
	}, nil
}

// UpdatePreferences replaces both preference sets. Every entry must
// come from the fixed vocabularies; empty slices clear the columns.
func UpdatePreferences(email string, foodPreferences, dietaryRestrictions []string) error {
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	for _, p := range foodPreferences {
		if !models.ValidFoodPreference(p) {
			return fmt.Errorf("unknown food preference: %s", p)
		}
	}
	for _, r := range dietaryRestrictions {
		if !models.ValidDietaryRestriction(r) {
			return fmt.Errorf("unknown dietary restriction: %s", r)
		}
	}

	user.FoodPreferences = strings.Join(foodPreferences, ",")
	user.DietaryRestrictions = strings.Join(dietaryRestrictions, ",")

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
