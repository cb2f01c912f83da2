package models

import "time"

const (
	AlertTypeGoalCompleted  = "goal_completed"
	AlertTypePersonalRecord = "personal_record"
	AlertTypeInfo           = "info"
)

// Alert is a persisted notification (goal completed, new personal record)
// also fanned out over websocket and mobile push.
type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:20"` // "goal_completed" | "personal_record" | "info"
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
