package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGoalDirection(t *testing.T) {
	tests := []struct {
		goalType string
		want     GoalDirection
	}{
		{"Lose Weight", GoalDirectionDecrease},
		{"decrease waist", GoalDirectionDecrease},
		{"Gain Muscle", GoalDirectionIncrease},
		{"increase chest", GoalDirectionIncrease},
		{"Reach 70kg", GoalDirectionAbsolute},
		{"", GoalDirectionAbsolute},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ParseGoalDirection(tt.goalType), tt.goalType)
	}
}

func TestParseGoalMetric(t *testing.T) {
	tests := []struct {
		goalType string
		want     GoalMetric
	}{
		{"Lose Weight", GoalMetricWeight},
		{"reduce bodyfat", GoalMetricBodyFat},
		{"reduce body fat", GoalMetricBodyFat},
		{"bigger chest", GoalMetricChest},
		{"smaller waist", GoalMetricWaist},
		{"hip mobility", GoalMetricHip},
		{"arm size", GoalMetricArm},
		{"daily calorie ceiling", GoalMetricCalories},
		{"run a marathon", GoalMetricCustom},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ParseGoalMetric(tt.goalType), tt.goalType)
	}
}

// When several keywords appear the fixed priority order decides.
func TestParseGoalMetricPriority(t *testing.T) {
	require.Equal(t, GoalMetricWeight, ParseGoalMetric("lose weight and body fat"))
	require.Equal(t, GoalMetricBodyFat, ParseGoalMetric("body fat and waist"))
	require.Equal(t, GoalMetricChest, ParseGoalMetric("chest and arm day"))
}
