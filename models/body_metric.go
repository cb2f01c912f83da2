package models

import (
	"time"

	"gorm.io/gorm"
)

// BodyMetric is a timestamped snapshot of body measurements. Every field is
// optional; creating one feeds the goal auto-tracker.
type BodyMetric struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	RecordedAt time.Time `gorm:"index;not null"`

	Weight  *float64 // kg
	BodyFat *float64 // percent
	Chest   *float64 // cm
	Waist   *float64 // cm
	Hip     *float64 // cm
	Arm     *float64 // cm
}
