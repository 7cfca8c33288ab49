package models

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username            string `gorm:"uniqueIndex;not null" json:"username"`
	Email               string `gorm:"uniqueIndex;not null" json:"email"`
	Password            string `gorm:"not null" json:"-"`
	FoodPreferences     string `json:"food_preferences"`     // comma-separated, subset of FoodPreferences
	DietaryRestrictions string `json:"dietary_restrictions"` // comma-separated, subset of DietaryRestrictions
	IsAdmin             bool   `gorm:"default:false" json:"is_admin"`
	Disabled            bool   `gorm:"default:false" json:"-"`
}

// FoodPreferenceList splits the stored comma-joined preferences.
// Empty column means no preference filter.
func (u *User) FoodPreferenceList() []string {
	return splitCSV(u.FoodPreferences)
}

// DietaryRestrictionList splits the stored comma-joined restrictions.
func (u *User) DietaryRestrictionList() []string {
	return splitCSV(u.DietaryRestrictions)
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
