package services

import (
	"testing"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"github.com/stretchr/testify/require"
)

func TestGoalReached(t *testing.T) {
	tests := []struct {
		name      string
		direction models.GoalDirection
		current   float64
		target    float64
		want      bool
	}{
		{"decrease above target", models.GoalDirectionDecrease, 80, 75, false},
		{"decrease at target", models.GoalDirectionDecrease, 75, 75, true},
		{"decrease overshoot still completes", models.GoalDirectionDecrease, 69, 75, true},
		{"increase below target", models.GoalDirectionIncrease, 90, 100, false},
		{"increase at target", models.GoalDirectionIncrease, 100, 100, true},
		{"increase past target", models.GoalDirectionIncrease, 104, 100, true},
		{"absolute within tolerance", models.GoalDirectionAbsolute, 70.4, 70, true},
		{"absolute at tolerance edge", models.GoalDirectionAbsolute, 70.5, 70, true},
		{"absolute outside tolerance", models.GoalDirectionAbsolute, 71, 70, false},
		{"absolute approaching from below", models.GoalDirectionAbsolute, 69.6, 70, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, goalReached(tt.direction, tt.current, tt.target))
		})
	}
}

func TestMetricValue(t *testing.T) {
	bm := &models.BodyMetric{
		Weight: ptr(78.5),
		Waist:  ptr(84.0),
	}

	v, ok := metricValue(models.GoalMetricWeight, bm)
	require.True(t, ok)
	require.Equal(t, 78.5, v)

	v, ok = metricValue(models.GoalMetricWaist, bm)
	require.True(t, ok)
	require.Equal(t, 84.0, v)

	// not recorded on this snapshot
	_, ok = metricValue(models.GoalMetricBodyFat, bm)
	require.False(t, ok)

	// calorie goals are fed by the nutrition path, not body metrics
	_, ok = metricValue(models.GoalMetricCalories, bm)
	require.False(t, ok)

	_, ok = metricValue(models.GoalMetricCustom, bm)
	require.False(t, ok)
}
