package services

import (
	"context"
	"errors"
	"time"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"gorm.io/gorm"
)

// MealService owns the MealLog → MealEntry → FoodItem tree. Every item
// mutation funnels through RollupService.RecomputeAncestors so cached totals
// can never drift, and the recomputed day is handed to the goal tracker as a
// consumption event before the response goes out.
type MealService struct {
	db      *gorm.DB
	rollup  *RollupService
	tracker *GoalTrackerService
}

func NewMealService(db *gorm.DB, rollup *RollupService, tracker *GoalTrackerService) *MealService {
	return &MealService{db: db, rollup: rollup, tracker: tracker}
}

// GetOrCreateMealLog returns the user's log for the given calendar day,
// creating an empty one when it does not exist yet.
func (s *MealService) GetOrCreateMealLog(ctx context.Context, userID uint, date time.Time) (*models.MealLog, error) {
	day := dayStartUTC(date)
	log := models.MealLog{UserID: userID, Date: day}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		FirstOrCreate(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetMealLog loads a day with its full entry/item tree.
func (s *MealService) GetMealLog(ctx context.Context, userID uint, date time.Time) (*models.MealLog, error) {
	day := dayStartUTC(date)
	var log models.MealLog
	err := s.db.WithContext(ctx).
		Preload("Entries.Items").
		Where("user_id = ? AND date = ?", userID, day).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (s *MealService) CreateMealEntry(ctx context.Context, userID uint, date time.Time, mealType string) (*models.MealEntry, error) {
	switch mealType {
	case "breakfast", "lunch", "dinner", "snack":
	default:
		return nil, &ValidationError{Field: "meal_type", Reason: "must be breakfast, lunch, dinner or snack"}
	}

	log, err := s.GetOrCreateMealLog(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	entry := models.MealEntry{MealLogID: log.ID, MealType: mealType}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// SetEntryConsumed flips the consumed flag and recomputes the day, since the
// consumed view filters on it. The goal tracker sees the new totals.
func (s *MealService) SetEntryConsumed(ctx context.Context, userID, entryID uint, consumed bool) (*models.MealEntry, error) {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.IsConsumed = consumed
	if consumed {
		now := time.Now().UTC()
		entry.ConsumedAt = &now
	} else {
		entry.ConsumedAt = nil
	}
	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, err
	}

	log, err := s.rollup.RecomputeFromEntry(ctx, entry.ID)
	if errors.Is(err, ErrConcurrentUpdate) {
		// the recompute reloads everything itself, so one retry suffices
		log, err = s.rollup.RecomputeFromEntry(ctx, entry.ID)
	}
	if err != nil {
		return nil, err
	}
	if err := s.tracker.ApplyNutritionTotals(ctx, userID, log); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *MealService) DeleteMealEntry(ctx context.Context, userID, entryID uint) error {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Where("meal_entry_id = ?", entry.ID).Delete(&models.FoodItem{}).Error; err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&models.MealEntry{}, entry.ID).Error; err != nil {
		return err
	}

	var log models.MealLog
	if err := s.db.WithContext(ctx).First(&log, entry.MealLogID).Error; err != nil {
		return err
	}
	err = s.rollup.RecalculateMealLog(ctx, &log)
	if errors.Is(err, ErrConcurrentUpdate) {
		if err = s.db.WithContext(ctx).First(&log, entry.MealLogID).Error; err != nil {
			return err
		}
		err = s.rollup.RecalculateMealLog(ctx, &log)
	}
	if err != nil {
		return err
	}
	return s.tracker.ApplyNutritionTotals(ctx, userID, &log)
}

// FoodItemInput describes one item to add or update. Either FoodTemplateID
// is set and macros are derived from the template × quantity, or the
// per-serving values are supplied inline for a custom food.
type FoodItemInput struct {
	FoodTemplateID *uint    `json:"food_template_id"`
	Name           string   `json:"name"`
	Quantity       float64  `json:"quantity"`
	Calories       *float64 `json:"calories"` // per serving, custom foods only
	Protein        *float64 `json:"protein"`
	Carbs          *float64 `json:"carbs"`
	Fat            *float64 `json:"fat"`
	Fiber          *float64 `json:"fiber"`
	Sodium         *float64 `json:"sodium"`
}

// AddFoodItem creates a leaf and recomputes its ancestors inline.
func (s *MealService) AddFoodItem(ctx context.Context, userID, entryID uint, in FoodItemInput) (*models.FoodItem, error) {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if in.Quantity <= 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	item := models.FoodItem{
		MealEntryID:    entry.ID,
		FoodTemplateID: in.FoodTemplateID,
		Quantity:       in.Quantity,
		Name:           in.Name,
	}
	if err := s.applyNutrition(ctx, &item, in); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}

	if err := s.recomputeAndTrack(ctx, userID, item.ID); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateFoodItem rescales the snapshot (template per-serving × quantity, or
// the supplied custom values) and recomputes ancestors.
func (s *MealService) UpdateFoodItem(ctx context.Context, userID, itemID uint, in FoodItemInput) (*models.FoodItem, error) {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if in.Quantity <= 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	item.Quantity = in.Quantity
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.FoodTemplateID != nil {
		item.FoodTemplateID = in.FoodTemplateID
	}
	if err := s.applyNutrition(ctx, item, in); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}

	if err := s.recomputeAndTrack(ctx, userID, item.ID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MealService) DeleteFoodItem(ctx context.Context, userID, itemID uint) error {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	entryID := item.MealEntryID

	if err := s.db.WithContext(ctx).Delete(&models.FoodItem{}, item.ID).Error; err != nil {
		return err
	}

	log, err := s.rollup.RecomputeFromEntry(ctx, entryID)
	if errors.Is(err, ErrConcurrentUpdate) {
		log, err = s.rollup.RecomputeFromEntry(ctx, entryID)
	}
	if err != nil {
		return err
	}
	return s.tracker.ApplyNutritionTotals(ctx, userID, log)
}

// applyNutrition fills the item's macro snapshot: always quantity × the
// per-serving values, whether those come from a template or the input.
func (s *MealService) applyNutrition(ctx context.Context, item *models.FoodItem, in FoodItemInput) error {
	if item.FoodTemplateID != nil {
		var tpl models.FoodTemplate
		if err := s.db.WithContext(ctx).First(&tpl, *item.FoodTemplateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if item.Name == "" {
			item.Name = tpl.Name
		}
		item.Calories = tpl.Calories * item.Quantity
		item.Protein = tpl.Protein * item.Quantity
		item.Carbs = tpl.Carbs * item.Quantity
		item.Fat = tpl.Fat * item.Quantity
		item.Fiber = scaleOptional(tpl.Fiber, item.Quantity)
		item.Sodium = scaleOptional(tpl.Sodium, item.Quantity)
		return nil
	}

	item.Calories = derefOr(in.Calories, 0) * item.Quantity
	item.Protein = derefOr(in.Protein, 0) * item.Quantity
	item.Carbs = derefOr(in.Carbs, 0) * item.Quantity
	item.Fat = derefOr(in.Fat, 0) * item.Quantity
	item.Fiber = scaleOptional(in.Fiber, item.Quantity)
	item.Sodium = scaleOptional(in.Sodium, item.Quantity)
	return nil
}

func (s *MealService) recomputeAndTrack(ctx context.Context, userID, itemID uint) error {
	log, err := s.rollup.RecomputeAncestors(ctx, itemID)
	if errors.Is(err, ErrConcurrentUpdate) {
		log, err = s.rollup.RecomputeAncestors(ctx, itemID)
	}
	if err != nil {
		return err
	}
	return s.tracker.ApplyNutritionTotals(ctx, userID, log)
}

// ownedEntry loads an entry and verifies it belongs to the user through its
// meal log.
func (s *MealService) ownedEntry(ctx context.Context, userID, entryID uint) (*models.MealEntry, error) {
	var entry models.MealEntry
	err := s.db.WithContext(ctx).
		Joins("JOIN meal_logs ON meal_logs.id = meal_entries.meal_log_id").
		Where("meal_entries.id = ? AND meal_logs.user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *MealService) ownedItem(ctx context.Context, userID, itemID uint) (*models.FoodItem, error) {
	var item models.FoodItem
	err := s.db.WithContext(ctx).
		Joins("JOIN meal_entries ON meal_entries.id = food_items.meal_entry_id").
		Joins("JOIN meal_logs ON meal_logs.id = meal_entries.meal_log_id").
		Where("food_items.id = ? AND meal_logs.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func scaleOptional(v *float64, quantity float64) *float64 {
	if v == nil {
		return nil
	}
	scaled := *v * quantity
	return &scaled
}

func derefOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
