package config

import (
	"fmt"
	"log"
	"os"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and runs migrations. The handle is returned to
// the caller; nothing global is kept.
func Connect() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_NAME", "gohard"),
		getEnv("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodTemplate{},
		&models.FoodItem{},
		&models.MealLog{},
		&models.MealEntry{},
		&models.NutritionGoal{},
		&models.Goal{},
		&models.GoalProgress{},
		&models.WorkoutSession{},
		&models.Exercise{},
		&models.ExerciseSet{},
		&models.ExerciseTemplate{},
		&models.BodyMetric{},
		&models.Alert{},
		&models.UserDevice{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
