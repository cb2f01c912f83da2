package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateNutritionMaleMaintenance(t *testing.T) {
	plan, err := CalculateNutrition(CalculatorInput{
		WeightKg:      80,
		HeightCm:      180,
		Age:           30,
		Gender:        "male",
		ActivityLevel: "moderately_active",
		GoalType:      "maintenance",
	})
	require.NoError(t, err)

	// Mifflin-St Jeor: 10*80 + 6.25*180 - 5*30 + 5
	require.Equal(t, 1780.0, plan.Bmr)
	require.Equal(t, 2759.0, plan.Tdee)
	require.Equal(t, 2759.0, plan.DailyCalories)
	require.Equal(t, 0.0, plan.CalorieAdjustment)
	require.Equal(t, 0.0, plan.ExpectedWeeklyWeightChange)

	// maintenance protein at 1.6 g/kg, fat 25% of calories, carbs remainder
	require.Equal(t, 128.0, plan.DailyProtein)
	require.InDelta(t, 76.64, plan.DailyFat, 0.01)
	require.InDelta(t, 389.31, plan.DailyCarbohydrates, 0.01)
	require.NotEmpty(t, plan.Explanation)
}

func TestCalculateNutritionFemaleLossFlooredAtBMR(t *testing.T) {
	plan, err := CalculateNutrition(CalculatorInput{
		WeightKg:      60,
		HeightCm:      165,
		Age:           25,
		Gender:        "female",
		ActivityLevel: "sedentary",
		GoalType:      "weight loss",
	})
	require.NoError(t, err)

	require.Equal(t, 1345.25, plan.Bmr)
	require.InDelta(t, 1614.30, plan.Tdee, 0.01)

	// TDEE - 500 would land below BMR, so calories are floored at BMR and
	// the adjustment shrinks to match.
	require.Equal(t, plan.Bmr, plan.DailyCalories)
	require.InDelta(t, -269.05, plan.CalorieAdjustment, 0.01)
	require.InDelta(t, -0.24, plan.ExpectedWeeklyWeightChange, 0.01)

	// deficit protein at 2.2 g/kg
	require.Equal(t, 132.0, plan.DailyProtein)
}

func TestCalculateNutritionExplicitWeeklyTarget(t *testing.T) {
	target := 0.5
	plan, err := CalculateNutrition(CalculatorInput{
		WeightKg:             100,
		HeightCm:             190,
		Age:                  28,
		Gender:               "male",
		ActivityLevel:        "very_active",
		GoalType:             "weight loss",
		TargetWeeklyChangeKg: &target,
	})
	require.NoError(t, err)

	// 0.5 kg/week * 7700 kcal/kg / 7 days = 550 kcal/day deficit
	require.Equal(t, -550.0, plan.CalorieAdjustment)
	require.Equal(t, -0.5, plan.ExpectedWeeklyWeightChange)
	require.InDelta(t, 2990.56, plan.DailyCalories, 0.01)
	require.Equal(t, 220.0, plan.DailyProtein)
}

func TestCalculateNutritionGainDefaults(t *testing.T) {
	plan, err := CalculateNutrition(CalculatorInput{
		WeightKg:      70,
		HeightCm:      175,
		Age:           22,
		Gender:        "male",
		ActivityLevel: "lightly_active",
		GoalType:      "muscle gain",
	})
	require.NoError(t, err)

	require.Equal(t, 300.0, plan.CalorieAdjustment)
	require.Equal(t, 140.0, plan.DailyProtein) // 2.0 g/kg
	require.Greater(t, plan.ExpectedWeeklyWeightChange, 0.0)
}

func TestCalculateNutritionUnknownActivityFallsBack(t *testing.T) {
	base := CalculatorInput{
		WeightKg:      80,
		HeightCm:      180,
		Age:           30,
		Gender:        "male",
		ActivityLevel: "moderately_active",
		GoalType:      "maintenance",
	}
	unknown := base
	unknown.ActivityLevel = "couch_potato"

	want, err := CalculateNutrition(base)
	require.NoError(t, err)
	got, err := CalculateNutrition(unknown)
	require.NoError(t, err)
	require.Equal(t, want.Tdee, got.Tdee)
}

func TestCalculateNutritionDeterministic(t *testing.T) {
	in := CalculatorInput{
		WeightKg:      72.5,
		HeightCm:      168,
		Age:           41,
		Gender:        "female",
		ActivityLevel: "very_active",
		GoalType:      "weight loss",
	}
	a, err := CalculateNutrition(in)
	require.NoError(t, err)
	b, err := CalculateNutrition(in)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestCalculateNutritionValidation(t *testing.T) {
	_, err := CalculateNutrition(CalculatorInput{WeightKg: 0, HeightCm: 180})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "weight", ve.Field)

	_, err = CalculateNutrition(CalculatorInput{WeightKg: 80, HeightCm: -1})
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "height", ve.Field)
}
