package services

import (
	"fmt"
	"strings"
)

// Energy bookkeeping constants: ~7700 kcal per kg of bodyweight, 4 kcal per
// gram of protein/carbohydrate, 9 per gram of fat.
const (
	kcalPerKgBodyweight = 7700.0
	kcalPerGramProtein  = 4.0
	kcalPerGramCarbs    = 4.0
	kcalPerGramFat      = 9.0
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Unknown levels fall back to moderately_active.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.9,
}

type CalculatorInput struct {
	WeightKg             float64
	HeightCm             float64
	Age                  int
	Gender               string // "male" | "female"; anything else uses the male constant
	ActivityLevel        string
	GoalType             string   // matched by substring: "loss" / "gain" / "muscle"
	TargetWeeklyChangeKg *float64 // desired body-mass delta per week, optional
}

// NutritionPlan is the derived daily target set. Everything is a pure,
// deterministic function of CalculatorInput.
type NutritionPlan struct {
	Bmr                        float64 `json:"bmr"`
	Tdee                       float64 `json:"tdee"`
	DailyCalories              float64 `json:"daily_calories"`
	DailyProtein               float64 `json:"daily_protein"`
	DailyCarbohydrates         float64 `json:"daily_carbohydrates"`
	DailyFat                   float64 `json:"daily_fat"`
	CalorieAdjustment          float64 `json:"calorie_adjustment"`
	ExpectedWeeklyWeightChange float64 `json:"expected_weekly_weight_change"`
	Explanation                string  `json:"explanation"`
}

// CalculateNutrition derives BMR (Mifflin-St Jeor), TDEE, a goal-adjusted
// daily calorie target floored at BMR, and a macro split: protein scaled to
// bodyweight by goal, fat at 25% of calories, carbs from the remainder.
func CalculateNutrition(in CalculatorInput) (*NutritionPlan, error) {
	if in.WeightKg <= 0 {
		return nil, &ValidationError{Field: "weight", Reason: "must be a positive number of kilograms"}
	}
	if in.HeightCm <= 0 {
		return nil, &ValidationError{Field: "height", Reason: "must be a positive number of centimeters"}
	}

	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	if strings.EqualFold(in.Gender, "female") {
		bmr -= 161
	} else {
		bmr += 5
	}

	mult, ok := activityMultipliers[strings.ToLower(in.ActivityLevel)]
	if !ok {
		mult = activityMultipliers["moderately_active"]
	}
	tdee := bmr * mult

	adjustment := calorieAdjustment(in.GoalType, in.TargetWeeklyChangeKg)
	calories := tdee + adjustment
	if calories < bmr {
		// never prescribe below resting expenditure
		calories = bmr
		adjustment = calories - tdee
	}

	protein := proteinPerKg(in.GoalType) * in.WeightKg
	fat := calories * 0.25 / kcalPerGramFat
	carbs := (calories - protein*kcalPerGramProtein - fat*kcalPerGramFat) / kcalPerGramCarbs
	if carbs < 0 {
		carbs = 0
	}

	weeklyChange := adjustment * 7 / kcalPerKgBodyweight

	plan := &NutritionPlan{
		Bmr:                        round2(bmr),
		Tdee:                       round2(tdee),
		DailyCalories:              round2(calories),
		DailyProtein:               round2(protein),
		DailyCarbohydrates:         round2(carbs),
		DailyFat:                   round2(fat),
		CalorieAdjustment:          round2(adjustment),
		ExpectedWeeklyWeightChange: round2(weeklyChange),
	}
	plan.Explanation = fmt.Sprintf(
		"BMR %.0f kcal (Mifflin-St Jeor) × %.3f activity = TDEE %.0f kcal; %+.0f kcal/day for the %q goal gives %.0f kcal/day, expecting %+.2f kg/week.",
		plan.Bmr, mult, plan.Tdee, plan.CalorieAdjustment, in.GoalType, plan.DailyCalories, plan.ExpectedWeeklyWeightChange,
	)
	return plan, nil
}

// calorieAdjustment converts the goal into a daily surplus/deficit. An
// explicit weekly weight-change target overrides the defaults via the
// 7700 kcal/kg relationship; the goal type only decides the sign.
func calorieAdjustment(goalType string, targetWeeklyChangeKg *float64) float64 {
	t := strings.ToLower(goalType)
	switch {
	case strings.Contains(t, "loss"):
		if targetWeeklyChangeKg != nil && *targetWeeklyChangeKg != 0 {
			return -abs(*targetWeeklyChangeKg) * kcalPerKgBodyweight / 7
		}
		return -500
	case strings.Contains(t, "gain") || strings.Contains(t, "muscle"):
		if targetWeeklyChangeKg != nil && *targetWeeklyChangeKg != 0 {
			return abs(*targetWeeklyChangeKg) * kcalPerKgBodyweight / 7
		}
		return 300
	default:
		return 0
	}
}

// proteinPerKg: heavier protein in a deficit to spare muscle, moderate in a
// surplus, maintenance baseline otherwise.
func proteinPerKg(goalType string) float64 {
	t := strings.ToLower(goalType)
	switch {
	case strings.Contains(t, "loss"):
		return 2.2
	case strings.Contains(t, "gain") || strings.Contains(t, "muscle"):
		return 2.0
	default:
		return 1.6
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
