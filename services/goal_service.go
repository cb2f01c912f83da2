package services

import (
	"context"
	"errors"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"gorm.io/gorm"
)

// GoalService creates and lists fitness goals. Direction and metric are
// parsed from the free-text goal type exactly once, here, so the tracker
// works on tagged values from then on.
type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

type GoalInput struct {
	Title       string  `json:"title"`
	GoalType    string  `json:"goal_type"` // free text, e.g. "Lose Weight"
	StartValue  float64 `json:"start_value"`
	TargetValue float64 `json:"target_value"`
}

func (s *GoalService) Create(ctx context.Context, userID uint, in GoalInput) (*models.Goal, error) {
	if in.GoalType == "" {
		return nil, &ValidationError{Field: "goal_type", Reason: "is required"}
	}

	goal := models.Goal{
		UserID:       userID,
		Title:        in.Title,
		GoalType:     in.GoalType,
		Direction:    models.ParseGoalDirection(in.GoalType),
		Metric:       models.ParseGoalMetric(in.GoalType),
		StartValue:   in.StartValue,
		CurrentValue: in.StartValue,
		TargetValue:  in.TargetValue,
		IsActive:     true,
	}
	if goal.Title == "" {
		goal.Title = goal.GoalType
	}
	if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) Get(ctx context.Context, userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.WithContext(ctx).
		Preload("ProgressHistory", func(db *gorm.DB) *gorm.DB { return db.Order("recorded_at ASC") }).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) List(ctx context.Context, userID uint, activeOnly bool) ([]models.Goal, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var goals []models.Goal
	err := q.Order("created_at DESC").Find(&goals).Error
	return goals, err
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		Delete(&models.Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return s.db.WithContext(ctx).Where("goal_id = ?", goalID).Delete(&models.GoalProgress{}).Error
}
