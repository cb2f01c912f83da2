package services

import (
	"context"
	"errors"
	"time"

	"github.com/abdbabti01/GoHardAPI-sub000/models"
	"github.com/abdbabti01/GoHardAPI-sub000/utils"

	"gorm.io/gorm"
)

// UserService manages the biometric profile the target calculator reads.
type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

type ProfileInput struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Birthday      string  `json:"birthday"` // YYYY-MM-DD
	Gender        string  `json:"gender"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (map[string]interface{}, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("id = ? AND disabled = ?", userID, false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	profile := map[string]interface{}{
		"id":             user.ID,
		"email":          user.Email,
		"first_name":     user.FirstName,
		"last_name":      user.LastName,
		"gender":         user.Gender,
		"age":            age,
		"height_cm":      user.HeightCm,
		"weight_kg":      user.WeightKg,
		"activity_level": user.ActivityLevel,
	}
	if !user.Birthday.IsZero() {
		profile["birthday"] = user.Birthday.Format("2006-01-02")
	}
	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		profile["bmi"] = round2(bmi)
		profile["bmi_category"] = utils.BMICategory(bmi)
	}
	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) error {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("id = ? AND disabled = ?", userID, false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", in.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if in.Gender != "" {
		user.Gender = in.Gender
	}
	if in.HeightCm > 0 {
		user.HeightCm = in.HeightCm
	}
	if in.WeightKg > 0 {
		user.WeightKg = in.WeightKg
	}
	if in.ActivityLevel != "" {
		user.ActivityLevel = in.ActivityLevel
	}
	return s.db.WithContext(ctx).Save(&user).Error
}

// CalculatorInputForUser builds calculator input from the stored profile.
func (s *UserService) CalculatorInputForUser(ctx context.Context, userID uint, goalType string, targetWeeklyChangeKg *float64) (CalculatorInput, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("id = ? AND disabled = ?", userID, false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CalculatorInput{}, ErrNotFound
		}
		return CalculatorInput{}, err
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}
	return CalculatorInput{
		WeightKg:             user.WeightKg,
		HeightCm:             user.HeightCm,
		Age:                  age,
		Gender:               user.Gender,
		ActivityLevel:        user.ActivityLevel,
		GoalType:             goalType,
		TargetWeeklyChangeKg: targetWeeklyChangeKg,
	}, nil
}
