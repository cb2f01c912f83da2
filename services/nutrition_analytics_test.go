package services

import (
	"testing"
	"time"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"github.com/stretchr/testify/require"
)

func TestMacroBreakdown(t *testing.T) {
	b := macroBreakdown(100, 100, 50)

	require.Equal(t, 400.0, b.ProteinCalories)
	require.Equal(t, 400.0, b.CarbCalories)
	require.Equal(t, 450.0, b.FatCalories)

	// shares of the 1250 kcal macro sum
	require.Equal(t, 32.0, b.ProteinPct)
	require.Equal(t, 32.0, b.CarbPct)
	require.Equal(t, 36.0, b.FatPct)
}

func TestMacroBreakdownEmptyDay(t *testing.T) {
	b := macroBreakdown(0, 0, 0)
	require.Equal(t, 0.0, b.ProteinPct)
	require.Equal(t, 0.0, b.CarbPct)
	require.Equal(t, 0.0, b.FatPct)
}

func TestLoggingStreak(t *testing.T) {
	tests := []struct {
		name        string
		dates       []time.Time
		wantCurrent int
		wantLongest int
	}{
		{"empty", nil, 0, 0},
		{"unbroken chain ending today", []time.Time{day(-2), day(-1), day(0)}, 3, 3},
		{"anchored on yesterday", []time.Time{day(-1)}, 1, 1},
		{"stale single day", []time.Time{day(-3)}, 0, 1},
		// any gap in the history zeroes the current streak even though the
		// most recent days are consecutive; the workout streak would keep 2.
		{"gap zeroes current", []time.Time{day(-5), day(-4), day(-3), day(-1), day(0)}, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := loggingStreak(tt.dates, testToday)
			require.Equal(t, tt.wantCurrent, current, "current")
			require.Equal(t, tt.wantLongest, longest, "longest")
		})
	}
}

func TestLoggingStreakDivergesFromWorkoutStreak(t *testing.T) {
	dates := []time.Time{day(-5), day(-4), day(-3), day(-1), day(0)}

	workoutCurrent, _ := workoutStreaks(dates, testToday)
	loggingCurrent, _ := loggingStreak(dates, testToday)

	require.Equal(t, 2, workoutCurrent)
	require.Equal(t, 0, loggingCurrent)
}

func TestBucketWeeklySummaries(t *testing.T) {
	logs := []models.MealLog{
		{Date: day(0), TotalCalories: 2000, TotalProtein: 150, TotalCarbohydrates: 200, TotalFat: 60},
		{Date: day(-1), TotalCalories: 1800, TotalProtein: 130, TotalCarbohydrates: 180, TotalFat: 55},
		{Date: day(-8), TotalCalories: 1000, TotalProtein: 80, TotalCarbohydrates: 100, TotalFat: 30},
	}

	out := bucketWeeklySummaries(logs, testToday, 2)
	require.Len(t, out, 2)

	require.Equal(t, day(-6).Format("2006-01-02"), out[0].WeekStart)
	require.Equal(t, day(0).Format("2006-01-02"), out[0].WeekEnd)
	require.Equal(t, 2, out[0].DaysLogged)
	require.Equal(t, 1900.0, out[0].AvgCalories)

	require.Equal(t, 1, out[1].DaysLogged)
	require.Equal(t, 1000.0, out[1].AvgCalories)
}

func TestBucketWeeklySummariesEmptyWeek(t *testing.T) {
	out := bucketWeeklySummaries(nil, testToday, 1)
	require.Len(t, out, 1)
	require.Equal(t, 0, out[0].DaysLogged)
	require.Equal(t, 0.0, out[0].AvgCalories)
}

func TestRankFrequentFoods(t *testing.T) {
	items := []models.FoodItem{
		{Name: "Oats", FoodTemplateID: ptr(uint(1)), Calories: 300},
		{Name: "Oats", FoodTemplateID: ptr(uint(1)), Calories: 350},
		{Name: "Oats", FoodTemplateID: ptr(uint(1)), Calories: 250},
		{Name: "Protein Shake", Calories: 120},
		{Name: "Protein Shake", Calories: 120},
		{Name: "Banana", FoodTemplateID: ptr(uint(2)), Calories: 105},
	}

	out := rankFrequentFoods(items, 2)
	require.Len(t, out, 2)

	require.Equal(t, "Oats", out[0].Name)
	require.Equal(t, 3, out[0].Count)
	require.Equal(t, 900.0, out[0].TotalCalories)
	require.Equal(t, 300.0, out[0].AvgCalories)

	require.Equal(t, "Protein Shake", out[1].Name)
	require.Equal(t, 2, out[1].Count)
	require.Nil(t, out[1].FoodTemplateID)
}

func TestRankFrequentFoodsSeparatesTemplateFromCustom(t *testing.T) {
	// same name, one from the catalog and one custom: two distinct foods
	items := []models.FoodItem{
		{Name: "Rice", FoodTemplateID: ptr(uint(7)), Calories: 200},
		{Name: "Rice", Calories: 180},
	}
	out := rankFrequentFoods(items, 10)
	require.Len(t, out, 2)
}
