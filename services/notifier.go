package services

import (
	"time"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"gorm.io/gorm"
)

// Notifier persists an Alert row and fans it out over the websocket hub and
// mobile push. Hub and push are optional; a Notifier with only a db still
// records alerts. Delivery failures are deliberately ignored — an alert is
// best-effort, the domain write that triggered it must not fail with it.
type Notifier struct {
	db   *gorm.DB
	hub  *RealtimeHub
	push *PushService
}

func NewNotifier(db *gorm.DB, hub *RealtimeHub, push *PushService) *Notifier {
	return &Notifier{db: db, hub: hub, push: push}
}

func (n *Notifier) Emit(userID uint, alertType, message string) {
	a := &models.Alert{
		UserID:    userID,
		Type:      alertType,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	_ = n.db.Create(a).Error

	if n.hub != nil {
		n.hub.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if n.push != nil {
		n.push.PushToUser(userID, alertTitle(alertType), message, map[string]string{
			"type": alertType,
		})
	}
}

func alertTitle(alertType string) string {
	switch alertType {
	case models.AlertTypeGoalCompleted:
		return "Goal completed"
	case models.AlertTypePersonalRecord:
		return "New personal record"
	default:
		return "GoHard"
	}
}

// ListAlerts returns the newest alerts for a user.
func (n *Notifier) ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 20
	}
	var alerts []models.Alert
	err := n.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
