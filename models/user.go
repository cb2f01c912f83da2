package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FirstName string
	LastName  string
	Birthday  time.Time
	Gender    string  // "male" | "female"
	HeightCm  float64 // centimeters
	WeightKg  float64 // kilograms
	ActivityLevel string // "sedentary" | "lightly_active" | "moderately_active" | "very_active" | "extremely_active"
	Disabled  bool
}
