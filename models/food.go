package models

import "gorm.io/gorm"

// FoodTemplate is reusable per-serving nutrition reference data.
// System templates (UserID nil) are shared; user templates are private.
type FoodTemplate struct {
	gorm.Model
	UserID      *uint  `gorm:"index"`
	Name        string `gorm:"not null;index"`
	ServingSize float64 // grams per serving
	Calories    float64 // per serving
	Protein     float64 // g per serving
	Carbs       float64 // g per serving
	Fat         float64 // g per serving
	Fiber       *float64
	Sodium      *float64 // mg
	IsSystem    bool
}

// FoodItem is one consumed instance inside a MealEntry. When derived from a
// template its macro fields are always quantity × the per-serving values;
// fully custom items store whatever the user entered, scaled the same way.
type FoodItem struct {
	gorm.Model
	MealEntryID    uint  `gorm:"index;not null"`
	FoodTemplateID *uint `gorm:"index"`
	Name     string
	Quantity float64 // servings
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    *float64
	Sodium   *float64
}
