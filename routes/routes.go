package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momokapoolz/calories-app-gateway/controllers"
	"github.com/momokapoolz/calories-app-gateway/middlewares"
	"github.com/momokapoolz/calories-app-gateway/services"
)

// Services bundles everything the router needs. All dependencies are built
// in main and injected here; nothing route-level reaches for globals.
type Services struct {
	Sessions  *services.SessionService
	Foods     *services.FoodService
	Nutrients *services.NutrientService
	MealLogs  *services.MealLogService
	Nutrition *services.NutritionService
}

func SetupRouter(svc *Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authCtrl := controllers.NewAuthController(svc.Sessions)
	userCtrl := controllers.NewUserController(svc.Sessions)
	foodCtrl := controllers.NewFoodController(svc.Foods)
	foodNutrientCtrl := controllers.NewFoodNutrientController(svc.Foods)
	nutrientCtrl := controllers.NewNutrientController(svc.Nutrients)
	mealLogCtrl := controllers.NewMealLogController(svc.MealLogs)
	mealItemCtrl := controllers.NewMealLogItemController(svc.MealLogs)
	nutritionCtrl := controllers.NewNutritionController(svc.Nutrition)

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", authCtrl.Login)
		auth.POST("/register", authCtrl.Register)
		auth.POST("/cookie-login", authCtrl.CookieLogin)
		auth.POST("/refresh", authCtrl.Refresh)
	}

	// Everything below requires a resolvable session
	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware(svc.Sessions))
	{
		protected.POST("/auth/logout", authCtrl.Logout)
		protected.GET("/auth/status", authCtrl.Status)

		protected.GET("/profile", userCtrl.GetProfile)
		protected.PUT("/profile", userCtrl.UpdateProfile)
		protected.PUT("/password", userCtrl.UpdatePassword)
		protected.DELETE("/account", userCtrl.DeleteAccount)

		foods := protected.Group("/foods")
		{
			foods.GET("", foodCtrl.ListFoods)
			foods.POST("", foodCtrl.CreateFood)
			foods.GET("/:id", foodCtrl.GetFood)
			foods.PUT("/:id", foodCtrl.UpdateFood)
			foods.DELETE("/:id", foodCtrl.DeleteFood)
		}

		foodNutrients := protected.Group("/food-nutrients")
		{
			foodNutrients.GET("", foodNutrientCtrl.List)
			foodNutrients.POST("", foodNutrientCtrl.Create)
			foodNutrients.GET("/:id", foodNutrientCtrl.Get)
			foodNutrients.PUT("/:id", foodNutrientCtrl.Update)
			foodNutrients.DELETE("/:id", foodNutrientCtrl.Delete)
			foodNutrients.GET("/food/:foodId", foodNutrientCtrl.ListByFood)
		}

		nutrients := protected.Group("/nutrients")
		{
			nutrients.GET("", nutrientCtrl.List)
			nutrients.GET("/category/:category", nutrientCtrl.ListByCategory)
		}

		mealLogs := protected.Group("/meal-logs")
		{
			mealLogs.POST("", mealLogCtrl.Create)
			mealLogs.GET("", mealLogCtrl.List)
			mealLogs.GET("/:id", mealLogCtrl.Get)
			mealLogs.PUT("/:id", mealLogCtrl.Update)
			mealLogs.DELETE("/:id", mealLogCtrl.Delete)
			mealLogs.GET("/user/date/:date", mealLogCtrl.ListByDate)
			mealLogs.POST("/:id/items", mealLogCtrl.AddItems)
		}

		mealItems := protected.Group("/meal-log-items")
		{
			mealItems.POST("", mealItemCtrl.Create)
			mealItems.GET("/:id", mealItemCtrl.Get)
			mealItems.PUT("/:id", mealItemCtrl.Update)
			mealItems.DELETE("/:id", mealItemCtrl.Delete)
			mealItems.GET("/meal-log/:mealLogId", mealItemCtrl.ListByMealLog)
			mealItems.GET("/food/:foodId", mealItemCtrl.ListByFood)
		}

		nutrition := protected.Group("/nutrition")
		{
			nutrition.GET("/date/:date", nutritionCtrl.GetDaily)
			nutrition.GET("/meal/:mealLogId", nutritionCtrl.GetMeal)
			nutrition.GET("/week", nutritionCtrl.GetWeek)
		}
	}

	return r
}
