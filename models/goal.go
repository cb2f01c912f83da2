package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// GoalDirection says which way CurrentValue has to move to reach TargetValue.
type GoalDirection string

const (
	GoalDirectionDecrease GoalDirection = "decrease"
	GoalDirectionIncrease GoalDirection = "increase"
	GoalDirectionAbsolute GoalDirection = "absolute"
)

// GoalMetric names the body measurement a goal tracks.
type GoalMetric string

const (
	GoalMetricWeight   GoalMetric = "weight"
	GoalMetricBodyFat  GoalMetric = "bodyfat"
	GoalMetricChest    GoalMetric = "chest"
	GoalMetricWaist    GoalMetric = "waist"
	GoalMetricHip      GoalMetric = "hip"
	GoalMetricArm      GoalMetric = "arm"
	GoalMetricCalories GoalMetric = "calories"
	GoalMetricCustom   GoalMetric = "custom"
)

// Goal is a user fitness goal. GoalType keeps the free text the user typed;
// Direction and Metric are derived from it exactly once, at creation, so the
// tracker never re-parses strings at runtime.
type Goal struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Title    string
	GoalType string // free text, e.g. "Lose Weight"

	Direction GoalDirection `gorm:"size:16;not null"`
	Metric    GoalMetric    `gorm:"size:16;not null"`

	StartValue   float64
	CurrentValue float64
	TargetValue  float64

	IsActive    bool `gorm:"index"`
	IsCompleted bool
	CompletedAt *time.Time

	ProgressHistory []GoalProgress
}

type GoalProgress struct {
	gorm.Model
	GoalID     uint      `gorm:"index;not null"`
	Value      float64
	RecordedAt time.Time `gorm:"not null"`
}

// ParseGoalDirection classifies a free-text goal type. "lose"/"decrease"
// means the value should go down, "gain"/"increase" up; anything else is an
// absolute target reached within a tolerance band.
func ParseGoalDirection(goalType string) GoalDirection {
	t := strings.ToLower(goalType)
	switch {
	case strings.Contains(t, "lose") || strings.Contains(t, "decrease"):
		return GoalDirectionDecrease
	case strings.Contains(t, "gain") || strings.Contains(t, "increase"):
		return GoalDirectionIncrease
	default:
		return GoalDirectionAbsolute
	}
}

// ParseGoalMetric picks the tracked measurement from a free-text goal type.
// When several keywords appear the first branch in this fixed order wins:
// weight, bodyfat, chest, waist, hip, arm, calories.
func ParseGoalMetric(goalType string) GoalMetric {
	t := strings.ToLower(goalType)
	switch {
	case strings.Contains(t, "weight"):
		return GoalMetricWeight
	case strings.Contains(t, "bodyfat") || strings.Contains(t, "body fat"):
		return GoalMetricBodyFat
	case strings.Contains(t, "chest"):
		return GoalMetricChest
	case strings.Contains(t, "waist"):
		return GoalMetricWaist
	case strings.Contains(t, "hip"):
		return GoalMetricHip
	case strings.Contains(t, "arm"):
		return GoalMetricArm
	case strings.Contains(t, "calorie"):
		return GoalMetricCalories
	default:
		return GoalMetricCustom
	}
}
