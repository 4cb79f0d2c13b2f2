package routes

import (
	"github.com/seangowans32/burnbyte/controllers"
	"github.com/seangowans32/burnbyte/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/logout", controllers.Logout)
	}

	// Protected routes (require authentication)
	protected := api.Group("/auth")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/user", controllers.GetUser)
		protected.PUT("/body-data", controllers.UpdateBodyData)
		protected.POST("/favorite-foods", controllers.AddFavoriteFood)
		protected.DELETE("/favorite-foods", controllers.RemoveFavoriteFood)
		protected.PUT("/favorite-foods/quantity", controllers.UpdateFavoriteFoodQuantity)
		protected.PUT("/daily-calories", controllers.UpdateDailyCalories)
		protected.PUT("/timezone", controllers.UpdateTimezone)
		protected.GET("/history", controllers.GetHistory)
	}

	return r
}
