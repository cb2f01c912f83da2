package services

import (
	"context"
	"errors"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"gorm.io/gorm"
)

// FoodTemplateService is the food catalog: system templates shared by
// everyone plus the user's own. Templates are immutable reference data once
// created; editing nutrition means creating a new template.
type FoodTemplateService struct{ db *gorm.DB }

func NewFoodTemplateService(db *gorm.DB) *FoodTemplateService {
	return &FoodTemplateService{db: db}
}

type FoodTemplateInput struct {
	Name        string   `json:"name"`
	ServingSize float64  `json:"serving_size"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Fiber       *float64 `json:"fiber"`
	Sodium      *float64 `json:"sodium"`
}

func (s *FoodTemplateService) Create(ctx context.Context, userID uint, in FoodTemplateInput) (*models.FoodTemplate, error) {
	if in.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	}
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 {
		return nil, &ValidationError{Field: "nutrition", Reason: "values must not be negative"}
	}

	tpl := models.FoodTemplate{
		UserID:      &userID,
		Name:        in.Name,
		ServingSize: in.ServingSize,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		Fiber:       in.Fiber,
		Sodium:      in.Sodium,
	}
	if err := s.db.WithContext(ctx).Create(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (s *FoodTemplateService) Get(ctx context.Context, userID, templateID uint) (*models.FoodTemplate, error) {
	var tpl models.FoodTemplate
	err := s.db.WithContext(ctx).
		Where("id = ? AND (is_system = ? OR user_id = ?)", templateID, true, userID).
		First(&tpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tpl, nil
}

// Search matches template names case-insensitively over the system catalog
// and the user's own templates.
func (s *FoodTemplateService) Search(ctx context.Context, userID uint, query string, limit int) ([]models.FoodTemplate, error) {
	if limit <= 0 {
		limit = 20
	}
	var templates []models.FoodTemplate
	q := s.db.WithContext(ctx).
		Where("is_system = ? OR user_id = ?", true, userID).
		Order("name ASC").
		Limit(limit)
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}
	err := q.Find(&templates).Error
	return templates, err
}
