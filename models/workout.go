package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SessionStatusPlanned    = "planned"
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"
)

// WorkoutSession is one gym session. Only completed sessions feed analytics.
type WorkoutSession struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Name        string
	Status      string `gorm:"size:16;index;default:planned"`
	StartedAt   *time.Time
	CompletedAt *time.Time
	Notes       string
	Exercises   []Exercise
}

// Exercise is one movement inside a session, identified by template when the
// user picked it from the catalog, by free-text name otherwise.
type Exercise struct {
	gorm.Model
	WorkoutSessionID   uint  `gorm:"index;not null"`
	ExerciseTemplateID *uint `gorm:"index"`
	Name       string
	OrderIndex int `gorm:"not null"`
	Sets       []ExerciseSet
}

type ExerciseSet struct {
	gorm.Model
	ExerciseID uint `gorm:"index;not null"`
	SetNumber  int
	Reps       *int
	Weight     *float64 // kg
}

// ExerciseTemplate is a catalog entry (e.g. "Bench Press", chest).
type ExerciseTemplate struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null"`
	MuscleGroup string `gorm:"size:32"`
	IsSystem    bool
}
