package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/douglasmelere/daily-diet-api/controllers"
	"github.com/douglasmelere/daily-diet-api/middlewares"
	"github.com/douglasmelere/daily-diet-api/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	userSvc := services.NewUserService(db)
	mealSvc := services.NewMealService(db)

	userCtl := controllers.NewUserController(userSvc)
	mealCtl := controllers.NewMealController(mealSvc)

	users := r.Group("/users")
	{
		users.POST("", userCtl.Register)
		users.GET("", userCtl.ListUsers)
	}

	// Every meal route, mutating ones included, sits behind the session check.
	meals := r.Group("/meals")
	meals.Use(middlewares.RequireSession(userSvc))
	{
		meals.POST("", mealCtl.LogMeal)
		meals.GET("", mealCtl.ListMeals)
		meals.GET("/summary", mealCtl.Summary)
		meals.GET("/:id", mealCtl.GetMeal)
		meals.PUT("/:id", mealCtl.UpdateMeal)
		meals.DELETE("/:id", mealCtl.DeleteMeal)
	}

	return r
}
