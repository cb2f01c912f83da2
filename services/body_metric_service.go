package services

import (
	"context"
	"time"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"gorm.io/gorm"
)

// BodyMetricService records measurement snapshots and hands each new one to
// the goal auto-tracker before the request returns.
type BodyMetricService struct {
	db      *gorm.DB
	tracker *GoalTrackerService
}

func NewBodyMetricService(db *gorm.DB, tracker *GoalTrackerService) *BodyMetricService {
	return &BodyMetricService{db: db, tracker: tracker}
}

type BodyMetricInput struct {
	RecordedAt *time.Time `json:"recorded_at"`
	Weight     *float64   `json:"weight"`
	BodyFat    *float64   `json:"body_fat"`
	Chest      *float64   `json:"chest"`
	Waist      *float64   `json:"waist"`
	Hip        *float64   `json:"hip"`
	Arm        *float64   `json:"arm"`
}

func (s *BodyMetricService) Create(ctx context.Context, userID uint, in BodyMetricInput) (*models.BodyMetric, error) {
	if in.Weight == nil && in.BodyFat == nil && in.Chest == nil && in.Waist == nil && in.Hip == nil && in.Arm == nil {
		return nil, &ValidationError{Field: "body_metric", Reason: "at least one measurement is required"}
	}

	at := time.Now().UTC()
	if in.RecordedAt != nil {
		at = in.RecordedAt.UTC()
	}
	metric := models.BodyMetric{
		UserID:     userID,
		RecordedAt: at,
		Weight:     in.Weight,
		BodyFat:    in.BodyFat,
		Chest:      in.Chest,
		Waist:      in.Waist,
		Hip:        in.Hip,
		Arm:        in.Arm,
	}
	if err := s.db.WithContext(ctx).Create(&metric).Error; err != nil {
		return nil, err
	}

	if err := s.tracker.ApplyBodyMetric(ctx, userID, &metric); err != nil {
		return nil, err
	}
	return &metric, nil
}

func (s *BodyMetricService) List(ctx context.Context, userID uint, limit int) ([]models.BodyMetric, error) {
	if limit <= 0 {
		limit = 30
	}
	var metrics []models.BodyMetric
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&metrics).Error
	return metrics, err
}
