package services

import (
	"context"
	"errors"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"gorm.io/gorm"
)

// NutritionGoalService manages daily calorie/macro target sets. Activation
// is atomic: the same transaction that activates one goal deactivates every
// other goal of the user, so at most one is ever active.
type NutritionGoalService struct{ db *gorm.DB }

func NewNutritionGoalService(db *gorm.DB) *NutritionGoalService {
	return &NutritionGoalService{db: db}
}

// CreateFromCalculator runs the target calculator on the user's stored
// biometrics and persists the plan as the new active goal.
func (s *NutritionGoalService) CreateFromCalculator(ctx context.Context, userID uint, in CalculatorInput) (*models.NutritionGoal, *NutritionPlan, error) {
	plan, err := CalculateNutrition(in)
	if err != nil {
		return nil, nil, err
	}

	goal := models.NutritionGoal{
		UserID:             userID,
		GoalType:           in.GoalType,
		DailyCalories:      plan.DailyCalories,
		DailyProtein:       plan.DailyProtein,
		DailyCarbohydrates: plan.DailyCarbohydrates,
		DailyFat:           plan.DailyFat,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.NutritionGoal{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		goal.IsActive = true
		return tx.Create(&goal).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &goal, plan, nil
}

// Activate makes the given goal the single active one.
func (s *NutritionGoalService) Activate(ctx context.Context, userID, goalID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.NutritionGoal{}).
			Where("user_id = ? AND id <> ?", userID, goal.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&goal).Update("is_active", true).Error
	})
	if err != nil {
		return nil, err
	}
	goal.IsActive = true
	return &goal, nil
}

func (s *NutritionGoalService) GetActive(ctx context.Context, userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (s *NutritionGoalService) List(ctx context.Context, userID uint) ([]models.NutritionGoal, error) {
	var goals []models.NutritionGoal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}
