package controllers

import (
	"net/http"
	"strconv"

	"github.com/Bishesh15/smartpantry/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	email := c.GetString("email")

	profile, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

type PreferencesInput struct {
	FoodPreferences     []string `json:"food_preferences"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

func UpdatePreferences(c *gin.Context) {
	var input PreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := c.GetString("email")
	if err := services.UpdatePreferences(email, input.FoodPreferences, input.DietaryRestrictions); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "preferences updated"})
}

func AddFavorite(c *gin.Context) {
	recipeID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userID := c.GetUint("userID")
	if err := services.AddFavorite(userID, recipeID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe added to favorites"})
}

func RemoveFavorite(c *gin.Context) {
	recipeID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userID := c.GetUint("userID")
	if err := services.RemoveFavorite(userID, recipeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe removed from favorites"})
}

func ListFavorites(c *gin.Context) {
	userID := c.GetUint("userID")

	recipes, err := services.ListFavorites(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": recipes})
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}
