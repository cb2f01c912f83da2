package models

import "gorm.io/gorm"

// NutritionGoal holds a user's daily calorie and macro targets. At most one
// goal per user may be active; activation flips every other goal off in the
// same transaction.
type NutritionGoal struct {
	gorm.Model
	UserID   uint `gorm:"index;not null"`
	IsActive bool `gorm:"index"`
	GoalType string `gorm:"size:32"` // e.g. "weight_loss", "maintenance", "muscle_gain"

	DailyCalories      float64 // kcal
	DailyProtein       float64 // g
	DailyCarbohydrates float64 // g
	DailyFat           float64 // g

	ProteinPct *float64
	CarbPct    *float64
	FatPct     *float64
}
