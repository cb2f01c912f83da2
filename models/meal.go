package models

import (
	"time"

	"gorm.io/gorm"
)

// MealLog is one calendar day (UTC midnight) of eating for a user. The
// Total* fields cache the consumed view (IsConsumed entries only) and the
// Planned* fields the unfiltered view; both are recomputed bottom-up by the
// rollup service, never written by hand.
type MealLog struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // UTC midnight

	TotalCalories      float64
	TotalProtein       float64
	TotalCarbohydrates float64
	TotalFat           float64
	TotalFiber         float64
	TotalSodium        float64

	PlannedCalories      float64
	PlannedProtein       float64
	PlannedCarbohydrates float64
	PlannedFat           float64

	Version int `gorm:"not null;default:0"` // optimistic lock
	Entries []MealEntry
}

// MealEntry is one meal (breakfast/lunch/dinner/snack) inside a MealLog.
// Total* fields cache the sum over current Items.
type MealEntry struct {
	gorm.Model
	MealLogID  uint   `gorm:"index;not null"`
	MealType   string `gorm:"size:16"` // "breakfast" | "lunch" | "dinner" | "snack"
	IsConsumed bool
	ConsumedAt *time.Time

	TotalCalories      float64
	TotalProtein       float64
	TotalCarbohydrates float64
	TotalFat           float64
	TotalFiber         float64
	TotalSodium        float64

	Version int `gorm:"not null;default:0"`
	Items   []FoodItem
}
