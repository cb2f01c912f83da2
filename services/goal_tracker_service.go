package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"gorm.io/gorm"
)

// absoluteTolerance is how close CurrentValue must get to TargetValue for a
// goal with no direction ("absolute") to count as reached.
const absoluteTolerance = 0.5

// GoalTrackerService maps incoming body-metric and nutrition-consumption
// events onto active goals, appends progress history and detects completion.
// Completion is one-way: IsCompleted flips false→true exactly once, stamps
// CompletedAt and deactivates the goal.
type GoalTrackerService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewGoalTrackerService(db *gorm.DB, notifier *Notifier) *GoalTrackerService {
	return &GoalTrackerService{db: db, notifier: notifier}
}

// ApplyBodyMetric updates every active, incomplete goal of the user whose
// tracked metric is present on the snapshot.
func (s *GoalTrackerService) ApplyBodyMetric(ctx context.Context, userID uint, metric *models.BodyMetric) error {
	var goals []models.Goal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND is_completed = ?", userID, true, false).
		Find(&goals).Error; err != nil {
		return err
	}

	for i := range goals {
		g := &goals[i]
		value, ok := metricValue(g.Metric, metric)
		if !ok {
			continue
		}
		if err := s.recordProgress(ctx, g, value, metric.RecordedAt); err != nil {
			return err
		}
	}
	return nil
}

// ApplyNutritionTotals is the consumption-event path: a recomputed day log
// feeds calorie-metric goals with its consumed total.
func (s *GoalTrackerService) ApplyNutritionTotals(ctx context.Context, userID uint, log *models.MealLog) error {
	var goals []models.Goal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND is_completed = ? AND metric = ?",
			userID, true, false, models.GoalMetricCalories).
		Find(&goals).Error; err != nil {
		return err
	}
	for i := range goals {
		if err := s.recordProgress(ctx, &goals[i], log.TotalCalories, log.Date); err != nil {
			return err
		}
	}
	return nil
}

// AddProgress is the explicit user-input path. Unlike the auto-tracker it
// completes on current >= target regardless of the goal's direction; the two
// paths intentionally disagree and must not be unified silently.
func (s *GoalTrackerService) AddProgress(ctx context.Context, userID, goalID uint, value float64) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	progress := models.GoalProgress{GoalID: goal.ID, Value: value, RecordedAt: now}
	if err := s.db.WithContext(ctx).Create(&progress).Error; err != nil {
		return nil, err
	}

	goal.CurrentValue = value
	if !goal.IsCompleted && value >= goal.TargetValue {
		s.complete(&goal, now)
	}
	if err := s.db.WithContext(ctx).Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// recordProgress appends a history row, moves CurrentValue and runs the
// direction-aware completion check.
func (s *GoalTrackerService) recordProgress(ctx context.Context, goal *models.Goal, value float64, at time.Time) error {
	progress := models.GoalProgress{GoalID: goal.ID, Value: value, RecordedAt: at}
	if err := s.db.WithContext(ctx).Create(&progress).Error; err != nil {
		return err
	}

	goal.CurrentValue = value
	if !goal.IsCompleted && goalReached(goal.Direction, value, goal.TargetValue) {
		s.complete(goal, time.Now().UTC())
	}
	return s.db.WithContext(ctx).Save(goal).Error
}

func (s *GoalTrackerService) complete(goal *models.Goal, at time.Time) {
	goal.IsCompleted = true
	goal.CompletedAt = &at
	goal.IsActive = false
	if s.notifier != nil {
		s.notifier.Emit(goal.UserID, models.AlertTypeGoalCompleted,
			fmt.Sprintf("Goal %q completed: reached %.1f (target %.1f).", goal.Title, goal.CurrentValue, goal.TargetValue))
	}
}

// goalReached implements the completion policy per direction: decrease goals
// finish at or below target, increase goals at or above, absolute goals
// within ±0.5 of the target.
func goalReached(direction models.GoalDirection, current, target float64) bool {
	switch direction {
	case models.GoalDirectionDecrease:
		return current <= target
	case models.GoalDirectionIncrease:
		return current >= target
	default:
		return math.Abs(current-target) <= absoluteTolerance
	}
}

// metricValue picks the snapshot field matching the goal's metric. Missing
// fields mean the goal is left untouched.
func metricValue(metric models.GoalMetric, bm *models.BodyMetric) (float64, bool) {
	var v *float64
	switch metric {
	case models.GoalMetricWeight:
		v = bm.Weight
	case models.GoalMetricBodyFat:
		v = bm.BodyFat
	case models.GoalMetricChest:
		v = bm.Chest
	case models.GoalMetricWaist:
		v = bm.Waist
	case models.GoalMetricHip:
		v = bm.Hip
	case models.GoalMetricArm:
		v = bm.Arm
	default:
		return 0, false
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}
