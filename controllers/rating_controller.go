package controllers

import (
	"net/http"

	"github.com/Bishesh15/smartpantry/services"

	"github.com/gin-gonic/gin"
)

type RatingInput struct {
	Value   int    `json:"value" binding:"required"`
	Comment string `json:"comment"`
}

// AddRating saves or replaces the caller's rating for a recipe.
func AddRating(c *gin.Context) {
	recipeID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	rating, err := services.AddRating(userID, recipeID, input.Value, input.Comment)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rating)
}

func ListRatings(c *gin.Context) {
	recipeID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	ratings, err := services.ListRatings(recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

func GetMyRating(c *gin.Context) {
	recipeID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userID := c.GetUint("userID")
	rating, err := services.GetUserRating(userID, recipeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no rating yet"})
		return
	}
	c.JSON(http.StatusOK, rating)
}
