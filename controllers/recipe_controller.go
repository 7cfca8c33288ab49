package controllers

import (
	"net/http"
	"strconv"

	"github.com/Bishesh15/smartpantry/models"
	"github.com/Bishesh15/smartpantry/services"

	"github.com/gin-gonic/gin"
)

func ListRecipes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	recipes, err := services.ListRecipes(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func GetRecipe(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	detail, err := services.GetRecipeDetail(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	resp := gin.H{
		"recipe":      detail.Recipe,
		"ingredients": detail.Ingredients,
		"ratings":     detail.Ratings,
	}
	if userID := c.GetUint("userID"); userID != 0 {
		resp["is_favorited"] = services.IsFavorited(userID, id)
		if mine, err := services.GetUserRating(userID, id); err == nil {
			resp["my_rating"] = mine
		}
	}
	c.JSON(http.StatusOK, resp)
}

type MatchInput struct {
	IngredientIDs []uint `json:"ingredient_ids" binding:"required"`
}

// MatchRecipes ranks recipes against the selected ingredients. When
// the request carries a valid token the user's diet profile narrows
// the result; anonymous callers get the unfiltered ranking.
func MatchRecipes(c *gin.Context) {
	var input MatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid := make([]uint, 0, len(input.IngredientIDs))
	for _, id := range input.IngredientIDs {
		if id > 0 {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "select at least one valid ingredient"})
		return
	}

	var user *models.User
	if email := c.GetString("email"); email != "" {
		if u, err := services.FindUserByEmail(email); err == nil {
			user = u
		}
	}

	matches, err := services.MatchRecipes(valid, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

func SearchRecipes(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search term required"})
		return
	}

	recipes, err := services.SearchRecipes(term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func CreateRecipe(c *gin.Context) {
	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := services.CreateRecipe(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func UpdateRecipe(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := services.UpdateRecipe(id, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func DeleteRecipe(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := services.DeleteRecipe(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}
