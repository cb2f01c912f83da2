package services

import (
	"context"
	"errors"
	"time"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"gorm.io/gorm"
)

// RollupService keeps the cached nutrition totals on MealEntry and MealLog
// consistent with their leaf FoodItems. Recomputation always runs bottom-up
// (item → entry → log), only ever writes the cached fields of the aggregate
// it was handed, and is idempotent: unchanged leaves give identical totals.
type RollupService struct{ db *gorm.DB }

func NewRollupService(db *gorm.DB) *RollupService { return &RollupService{db: db} }

type nutritionTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sodium   float64
}

// sumFoodItems adds up a set of items. Nil optional fields count as zero but
// stay nil on the item itself.
func sumFoodItems(items []models.FoodItem) nutritionTotals {
	var t nutritionTotals
	for _, it := range items {
		t.Calories += it.Calories
		t.Protein += it.Protein
		t.Carbs += it.Carbs
		t.Fat += it.Fat
		if it.Fiber != nil {
			t.Fiber += *it.Fiber
		}
		if it.Sodium != nil {
			t.Sodium += *it.Sodium
		}
	}
	return t
}

// sumEntries adds up entry-level cached totals, filtered to consumed entries
// when consumedOnly is set.
func sumEntries(entries []models.MealEntry, consumedOnly bool) nutritionTotals {
	var t nutritionTotals
	for _, e := range entries {
		if consumedOnly && !e.IsConsumed {
			continue
		}
		t.Calories += e.TotalCalories
		t.Protein += e.TotalProtein
		t.Carbs += e.TotalCarbohydrates
		t.Fat += e.TotalFat
		t.Fiber += e.TotalFiber
		t.Sodium += e.TotalSodium
	}
	return t
}

// RecalculateMealEntry reloads the entry's current items, sums them into the
// cached fields and writes those fields back under an optimistic version
// check. The passed entry is updated in place on success.
func (s *RollupService) RecalculateMealEntry(ctx context.Context, entry *models.MealEntry) error {
	var items []models.FoodItem
	if err := s.db.WithContext(ctx).
		Where("meal_entry_id = ?", entry.ID).
		Find(&items).Error; err != nil {
		return err
	}
	t := sumFoodItems(items)

	res := s.db.WithContext(ctx).
		Model(&models.MealEntry{}).
		Where("id = ? AND version = ?", entry.ID, entry.Version).
		Updates(map[string]any{
			"total_calories":      t.Calories,
			"total_protein":       t.Protein,
			"total_carbohydrates": t.Carbs,
			"total_fat":           t.Fat,
			"total_fiber":         t.Fiber,
			"total_sodium":        t.Sodium,
			"version":             entry.Version + 1,
			"updated_at":          time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}

	entry.TotalCalories = t.Calories
	entry.TotalProtein = t.Protein
	entry.TotalCarbohydrates = t.Carbs
	entry.TotalFat = t.Fat
	entry.TotalFiber = t.Fiber
	entry.TotalSodium = t.Sodium
	entry.Version++
	return nil
}

// RecalculateMealLog recomputes both cached views of a day — consumed
// (IsConsumed entries only) and planned (all entries) — from the current
// entry totals. Entry rows are never touched.
func (s *RollupService) RecalculateMealLog(ctx context.Context, log *models.MealLog) error {
	var entries []models.MealEntry
	if err := s.db.WithContext(ctx).
		Where("meal_log_id = ?", log.ID).
		Find(&entries).Error; err != nil {
		return err
	}
	consumed := sumEntries(entries, true)
	planned := sumEntries(entries, false)

	res := s.db.WithContext(ctx).
		Model(&models.MealLog{}).
		Where("id = ? AND version = ?", log.ID, log.Version).
		Updates(map[string]any{
			"total_calories":        consumed.Calories,
			"total_protein":         consumed.Protein,
			"total_carbohydrates":   consumed.Carbs,
			"total_fat":             consumed.Fat,
			"total_fiber":           consumed.Fiber,
			"total_sodium":          consumed.Sodium,
			"planned_calories":      planned.Calories,
			"planned_protein":       planned.Protein,
			"planned_carbohydrates": planned.Carbs,
			"planned_fat":           planned.Fat,
			"version":               log.Version + 1,
			"updated_at":            time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}

	log.TotalCalories = consumed.Calories
	log.TotalProtein = consumed.Protein
	log.TotalCarbohydrates = consumed.Carbs
	log.TotalFat = consumed.Fat
	log.TotalFiber = consumed.Fiber
	log.TotalSodium = consumed.Sodium
	log.PlannedCalories = planned.Calories
	log.PlannedProtein = planned.Protein
	log.PlannedCarbohydrates = planned.Carbs
	log.PlannedFat = planned.Fat
	log.Version++
	return nil
}

// RecomputeAncestors is the single entry point every FoodItem mutation path
// goes through: it walks item → entry → log and recomputes each level.
func (s *RollupService) RecomputeAncestors(ctx context.Context, foodItemID uint) (*models.MealLog, error) {
	var item models.FoodItem
	if err := s.db.WithContext(ctx).First(&item, foodItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.RecomputeFromEntry(ctx, item.MealEntryID)
}

// RecomputeFromEntry recomputes an entry and its owning log. Deletion paths
// call this directly since the item row is already gone.
func (s *RollupService) RecomputeFromEntry(ctx context.Context, mealEntryID uint) (*models.MealLog, error) {
	var entry models.MealEntry
	if err := s.db.WithContext(ctx).First(&entry, mealEntryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.RecalculateMealEntry(ctx, &entry); err != nil {
		return nil, err
	}

	var log models.MealLog
	if err := s.db.WithContext(ctx).First(&log, entry.MealLogID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.RecalculateMealLog(ctx, &log); err != nil {
		return nil, err
	}
	return &log, nil
}
