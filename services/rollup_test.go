package services

import (
	"testing"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"github.com/stretchr/testify/require"
)

func TestSumFoodItemsNilOptionalsCountAsZero(t *testing.T) {
	items := []models.FoodItem{
		{Calories: 300, Protein: 20, Carbs: 40, Fat: 8, Fiber: ptr(5.0), Sodium: ptr(200.0)},
		{Calories: 150, Protein: 10, Carbs: 15, Fat: 6}, // no fiber/sodium recorded
	}

	got := sumFoodItems(items)
	require.Equal(t, 450.0, got.Calories)
	require.Equal(t, 30.0, got.Protein)
	require.Equal(t, 55.0, got.Carbs)
	require.Equal(t, 14.0, got.Fat)
	require.Equal(t, 5.0, got.Fiber)
	require.Equal(t, 200.0, got.Sodium)
}

func TestSumFoodItemsIdempotent(t *testing.T) {
	items := []models.FoodItem{
		{Calories: 300, Protein: 20, Carbs: 40, Fat: 8},
		{Calories: 120, Protein: 3, Carbs: 27, Fat: 0.5},
	}
	require.Equal(t, sumFoodItems(items), sumFoodItems(items))
}

func TestSumFoodItemsEmpty(t *testing.T) {
	require.Equal(t, nutritionTotals{}, sumFoodItems(nil))
}

func TestSumEntriesConsumedFilter(t *testing.T) {
	entries := []models.MealEntry{
		{IsConsumed: true, TotalCalories: 500, TotalProtein: 35, TotalCarbohydrates: 50, TotalFat: 15, TotalFiber: 4, TotalSodium: 300},
		{IsConsumed: false, TotalCalories: 700, TotalProtein: 40, TotalCarbohydrates: 80, TotalFat: 20},
	}

	consumed := sumEntries(entries, true)
	require.Equal(t, 500.0, consumed.Calories)
	require.Equal(t, 35.0, consumed.Protein)

	planned := sumEntries(entries, false)
	require.Equal(t, 1200.0, planned.Calories)
	require.Equal(t, 75.0, planned.Protein)
}
