package routes

import (
	"github.com/abdbabti01/GoHardAPI-sub000/controllers"
	"github.com/abdbabti01/GoHardAPI-sub000/middlewares"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth          *controllers.AuthController
	User          *controllers.UserController
	Meal          *controllers.MealController
	Food          *controllers.FoodController
	Workout       *controllers.WorkoutController
	Analytics     *controllers.AnalyticsController
	Goal          *controllers.GoalController
	NutritionGoal *controllers.NutritionGoalController
	BodyMetric    *controllers.BodyMetricController
	Device        *controllers.DeviceController
	Notification  *controllers.NotificationController
	Realtime      *controllers.RealtimeController
}

func SetupRouter(db *gorm.DB, ctrl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(db))
	{
		user := api.Group("/user")
		{
			user.GET("/profile", ctrl.User.GetProfile)
			user.PUT("/profile", ctrl.User.UpdateProfile)
		}

		meals := api.Group("/meals")
		{
			meals.GET("/log", ctrl.Meal.GetMealLog)
			meals.POST("/entries", ctrl.Meal.CreateMealEntry)
			meals.PATCH("/entries/:id/consumed", ctrl.Meal.SetEntryConsumed)
			meals.DELETE("/entries/:id", ctrl.Meal.DeleteMealEntry)
			meals.POST("/entries/:id/items", ctrl.Meal.AddFoodItem)
			meals.PUT("/items/:id", ctrl.Meal.UpdateFoodItem)
			meals.DELETE("/items/:id", ctrl.Meal.DeleteFoodItem)
		}

		foods := api.Group("/foods")
		{
			foods.POST("", ctrl.Food.CreateTemplate)
			foods.GET("/search", ctrl.Food.SearchTemplates)
			foods.GET("/:id", ctrl.Food.GetTemplate)
		}

		workouts := api.Group("/workouts")
		{
			workouts.POST("", ctrl.Workout.CreateSession)
			workouts.GET("", ctrl.Workout.ListSessions)
			workouts.GET("/:id", ctrl.Workout.GetSession)
			workouts.POST("/:id/start", ctrl.Workout.StartSession)
			workouts.POST("/:id/complete", ctrl.Workout.CompleteSession)
			workouts.POST("/:id/exercises", ctrl.Workout.AddExercise)
			workouts.PUT("/:id/exercises/order", ctrl.Workout.ReorderExercises)
			workouts.POST("/exercises/:id/sets", ctrl.Workout.AddSet)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/workouts/stats", ctrl.Analytics.GetWorkoutStats)
			analytics.GET("/workouts/records", ctrl.Analytics.GetPersonalRecords)
			analytics.GET("/workouts/progress", ctrl.Analytics.GetExerciseProgress)
			analytics.GET("/workouts/muscle-groups", ctrl.Analytics.GetMuscleGroupDistribution)
			analytics.GET("/nutrition/daily", ctrl.Analytics.GetDailySummary)
			analytics.GET("/nutrition/weekly", ctrl.Analytics.GetWeeklySummaries)
			analytics.GET("/nutrition/trend", ctrl.Analytics.GetCalorieTrend)
			analytics.GET("/nutrition/streak", ctrl.Analytics.GetLoggingStreak)
			analytics.GET("/nutrition/frequent-foods", ctrl.Analytics.GetFrequentFoods)
		}

		goals := api.Group("/goals")
		{
			goals.POST("", ctrl.Goal.Create)
			goals.GET("", ctrl.Goal.List)
			goals.GET("/:id", ctrl.Goal.Get)
			goals.POST("/:id/progress", ctrl.Goal.AddProgress)
			goals.DELETE("/:id", ctrl.Goal.Delete)
		}

		nutritionGoals := api.Group("/nutrition-goals")
		{
			nutritionGoals.POST("/calculate", ctrl.NutritionGoal.Calculate)
			nutritionGoals.POST("", ctrl.NutritionGoal.CreateFromCalculator)
			nutritionGoals.POST("/:id/activate", ctrl.NutritionGoal.Activate)
			nutritionGoals.GET("/active", ctrl.NutritionGoal.GetActive)
			nutritionGoals.GET("", ctrl.NutritionGoal.List)
		}

		metrics := api.Group("/body-metrics")
		{
			metrics.POST("", ctrl.BodyMetric.Create)
			metrics.GET("", ctrl.BodyMetric.List)
		}

		api.POST("/devices", ctrl.Device.Register)
		api.GET("/alerts", ctrl.Notification.ListAlerts)
		api.GET("/ws/alerts", ctrl.Realtime.AlertsWS)
	}

	return r
}
