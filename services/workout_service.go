package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"gorm.io/gorm"
)

// WorkoutService owns session/exercise/set CRUD. Analytics only ever see
// sessions this service has marked completed.
type WorkoutService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewWorkoutService(db *gorm.DB, notifier *Notifier) *WorkoutService {
	return &WorkoutService{db: db, notifier: notifier}
}

func (s *WorkoutService) CreateSession(ctx context.Context, userID uint, name string) (*models.WorkoutSession, error) {
	sess := models.WorkoutSession{UserID: userID, Name: name, Status: models.SessionStatusPlanned}
	if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *WorkoutService) StartSession(ctx context.Context, userID, sessionID uint) (*models.WorkoutSession, error) {
	sess, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	sess.Status = models.SessionStatusInProgress
	sess.StartedAt = &now
	if err := s.db.WithContext(ctx).Save(sess).Error; err != nil {
		return nil, err
	}
	return sess, nil
}

// CompleteSession stamps the completion time; from here on the session feeds
// streaks, PRs and volume.
func (s *WorkoutService) CompleteSession(ctx context.Context, userID, sessionID uint) (*models.WorkoutSession, error) {
	sess, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == models.SessionStatusCompleted {
		return sess, nil
	}
	now := time.Now().UTC()
	sess.Status = models.SessionStatusCompleted
	sess.CompletedAt = &now
	if err := s.db.WithContext(ctx).Save(sess).Error; err != nil {
		return nil, err
	}
	s.notifyNewRecords(ctx, userID, sess.ID)
	return sess, nil
}

// notifyNewRecords emits an alert for every exercise whose heaviest set in the
// just-completed session beats the user's best across all earlier completed
// sessions. Best-effort: a lookup failure never fails the completion.
func (s *WorkoutService) notifyNewRecords(ctx context.Context, userID, sessionID uint) {
	if s.notifier == nil {
		return
	}
	var completed models.WorkoutSession
	if err := s.db.WithContext(ctx).Preload("Exercises.Sets").First(&completed, sessionID).Error; err != nil {
		return
	}
	var prior []models.WorkoutSession
	if err := s.db.WithContext(ctx).Preload("Exercises.Sets").
		Where("user_id = ? AND status = ? AND id <> ?", userID, models.SessionStatusCompleted, sessionID).
		Find(&prior).Error; err != nil {
		return
	}
	for _, pr := range sessionNewRecords(completed, priorBestWeights(prior)) {
		s.notifier.Emit(userID, models.AlertTypePersonalRecord,
			fmt.Sprintf("New personal record: %s %.1f kg × %d.", pr.ExerciseName, pr.MaxWeight, pr.Reps))
	}
}

func (s *WorkoutService) GetSession(ctx context.Context, userID, sessionID uint) (*models.WorkoutSession, error) {
	var sess models.WorkoutSession
	err := s.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("order_index ASC") }).
		Preload("Exercises.Sets").
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}

func (s *WorkoutService) ListSessions(ctx context.Context, userID uint, limit int) ([]models.WorkoutSession, error) {
	if limit <= 0 {
		limit = 20
	}
	var sessions []models.WorkoutSession
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

func (s *WorkoutService) AddExercise(ctx context.Context, userID, sessionID uint, templateID *uint, name string) (*models.Exercise, error) {
	sess, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if templateID != nil {
		var tpl models.ExerciseTemplate
		if err := s.db.WithContext(ctx).First(&tpl, *templateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if name == "" {
			name = tpl.Name
		}
	}
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required when no template is given"}
	}

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Exercise{}).
		Where("workout_session_id = ?", sess.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}

	ex := models.Exercise{
		WorkoutSessionID:   sess.ID,
		ExerciseTemplateID: templateID,
		Name:               name,
		OrderIndex:         int(count),
	}
	if err := s.db.WithContext(ctx).Create(&ex).Error; err != nil {
		return nil, err
	}
	return &ex, nil
}

func (s *WorkoutService) AddSet(ctx context.Context, userID, exerciseID uint, reps *int, weight *float64) (*models.ExerciseSet, error) {
	var ex models.Exercise
	err := s.db.WithContext(ctx).
		Joins("JOIN workout_sessions ON workout_sessions.id = exercises.workout_session_id").
		Where("exercises.id = ? AND workout_sessions.user_id = ?", exerciseID, userID).
		First(&ex).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if reps != nil && *reps < 0 {
		return nil, &ValidationError{Field: "reps", Reason: "must not be negative"}
	}
	if weight != nil && *weight < 0 {
		return nil, &ValidationError{Field: "weight", Reason: "must not be negative"}
	}

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.ExerciseSet{}).
		Where("exercise_id = ?", ex.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}

	set := models.ExerciseSet{ExerciseID: ex.ID, SetNumber: int(count) + 1, Reps: reps, Weight: weight}
	if err := s.db.WithContext(ctx).Create(&set).Error; err != nil {
		return nil, err
	}
	return &set, nil
}

// ReorderExercises rewrites the order of a session's exercises in one
// all-or-nothing transaction: orderedIDs must be exactly the session's
// exercise ids, and any failed update rolls the whole reorder back.
func (s *WorkoutService) ReorderExercises(ctx context.Context, userID, sessionID uint, orderedIDs []uint) error {
	sess, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	var existing []models.Exercise
	if err := s.db.WithContext(ctx).
		Where("workout_session_id = ?", sess.ID).
		Find(&existing).Error; err != nil {
		return err
	}
	if len(orderedIDs) != len(existing) {
		return &ValidationError{Field: "exercise_ids", Reason: "must list every exercise of the session exactly once"}
	}
	known := make(map[uint]bool, len(existing))
	for _, ex := range existing {
		known[ex.ID] = true
	}
	seen := make(map[uint]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !known[id] || seen[id] {
			return &ValidationError{Field: "exercise_ids", Reason: "must list every exercise of the session exactly once"}
		}
		seen[id] = true
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for idx, id := range orderedIDs {
			res := tx.Model(&models.Exercise{}).
				Where("id = ? AND workout_session_id = ?", id, sess.ID).
				Update("order_index", idx)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
}

func (s *WorkoutService) ownedSession(ctx context.Context, userID, sessionID uint) (*models.WorkoutSession, error) {
	var sess models.WorkoutSession
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}
