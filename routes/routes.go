package routes

import (
	"github.com/Bishesh15/smartpantry/controllers"
	"github.com/Bishesh15/smartpantry/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Public catalog routes
	ingredients := r.Group("/ingredients")
	{
		ingredients.GET("", controllers.ListIngredients)
		ingredients.GET("/grouped", controllers.ListIngredientsByCategory)
		ingredients.GET("/search", controllers.SearchIngredients)
		ingredients.GET("/:id", controllers.GetIngredient)
	}

	// Public recipe routes; matching picks up the diet profile when a
	// token is supplied
	recipes := r.Group("/recipes")
	recipes.Use(middlewares.OptionalAuthMiddleware())
	{
		recipes.GET("", controllers.ListRecipes)
		recipes.POST("/match", controllers.MatchRecipes)
		recipes.GET("/search", controllers.SearchRecipes)
		recipes.GET("/:id", controllers.GetRecipe)
		recipes.GET("/:id/ratings", controllers.ListRatings)
	}

	r.POST("/feedback", middlewares.OptionalAuthMiddleware(), controllers.SubmitFeedback)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/preferences", controllers.UpdatePreferences)
		user.GET("/favorites", controllers.ListFavorites)
		user.POST("/favorites/:id", controllers.AddFavorite)
		user.DELETE("/favorites/:id", controllers.RemoveFavorite)
		user.POST("/recipes/:id/ratings", controllers.AddRating)
		user.GET("/recipes/:id/rating", controllers.GetMyRating)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		admin.POST("/ingredients", controllers.CreateIngredient)
		admin.PUT("/ingredients/:id", controllers.UpdateIngredient)
		admin.DELETE("/ingredients/:id", controllers.DeleteIngredient)

		admin.POST("/recipes", controllers.CreateRecipe)
		admin.PUT("/recipes/:id", controllers.UpdateRecipe)
		admin.DELETE("/recipes/:id", controllers.DeleteRecipe)

		admin.GET("/feedback", controllers.ListFeedback)
		admin.PUT("/feedback/:id", controllers.RespondToFeedback)
		admin.DELETE("/feedback/:id", controllers.DeleteFeedback)
	}

	return r
}
