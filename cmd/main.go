package main

import (
	"log"
	"os"

	"github.com/abdbabti01/GoHardAPI-sub000/config"
	"github.com/abdbabti01/GoHardAPI-sub000/controllers"
	"github.com/abdbabti01/GoHardAPI-sub000/routes"
	"github.com/abdbabti01/GoHardAPI-sub000/services"
)

func main() {
	db, err := config.Connect()
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	hub := services.NewRealtimeHub()

	// Push is optional: without AWS credentials alerts still land in the
	// database and over websocket.
	push, err := services.NewPushService(db)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}

	notifier := services.NewNotifier(db, hub, push)
	rollup := services.NewRollupService(db)
	tracker := services.NewGoalTrackerService(db, notifier)

	ctrl := routes.Controllers{
		Auth:          controllers.NewAuthController(services.NewAuthService(db)),
		User:          controllers.NewUserController(services.NewUserService(db)),
		Meal:          controllers.NewMealController(services.NewMealService(db, rollup, tracker)),
		Food:          controllers.NewFoodController(services.NewFoodTemplateService(db)),
		Workout:       controllers.NewWorkoutController(services.NewWorkoutService(db, notifier)),
		Analytics:     controllers.NewAnalyticsController(services.NewWorkoutAnalyticsService(db), services.NewNutritionAnalyticsService(db)),
		Goal:          controllers.NewGoalController(services.NewGoalService(db), tracker),
		NutritionGoal: controllers.NewNutritionGoalController(services.NewNutritionGoalService(db), services.NewUserService(db)),
		BodyMetric:    controllers.NewBodyMetricController(services.NewBodyMetricService(db, tracker)),
		Device:        controllers.NewDeviceController(push),
		Notification:  controllers.NewNotificationController(notifier),
		Realtime:      controllers.NewRealtimeController(hub),
	}

	r := routes.SetupRouter(db, ctrl)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
