package services

import (
	"testing"
	"time"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time { return testToday.AddDate(0, 0, offset) }

func TestWorkoutStreaks(t *testing.T) {
	tests := []struct {
		name        string
		dates       []time.Time
		wantCurrent int
		wantLongest int
	}{
		{"empty", nil, 0, 0},
		{"three consecutive ending today", []time.Time{day(-2), day(-1), day(0)}, 3, 3},
		{"single old workout", []time.Time{day(-2)}, 0, 1},
		{"anchored on yesterday", []time.Time{day(-1)}, 1, 1},
		{"gap keeps recent run", []time.Time{day(-5), day(-4), day(-3), day(-1), day(0)}, 2, 3},
		{"longest run in the past", []time.Time{day(-10), day(-9), day(-8), day(-7), day(0)}, 1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := workoutStreaks(tt.dates, testToday)
			require.Equal(t, tt.wantCurrent, current, "current")
			require.Equal(t, tt.wantLongest, longest, "longest")
		})
	}
}

func TestEstimateOneRepMax(t *testing.T) {
	require.Equal(t, 100.0, estimateOneRepMax(100, 1))
	// Brzycki: 100 / (1.0278 - 0.0278*5)
	require.InDelta(t, 112.51, estimateOneRepMax(100, 5), 0.01)
	require.InDelta(t, 133.37, estimateOneRepMax(100, 10), 0.01)
}

func ptr[T any](v T) *T { return &v }

func completedSession(at time.Time, exercises ...models.Exercise) models.WorkoutSession {
	return models.WorkoutSession{
		Status:      models.SessionStatusCompleted,
		CompletedAt: &at,
		Exercises:   exercises,
	}
}

func TestBuildPersonalRecordsTieKeepsFirst(t *testing.T) {
	first := day(-10)
	second := day(-3)
	sessions := []models.WorkoutSession{
		completedSession(second, models.Exercise{
			Name:               "Bench Press",
			ExerciseTemplateID: ptr(uint(1)),
			Sets:               []models.ExerciseSet{{Reps: ptr(3), Weight: ptr(100.0)}},
		}),
		completedSession(first, models.Exercise{
			Name:               "Bench Press",
			ExerciseTemplateID: ptr(uint(1)),
			Sets: []models.ExerciseSet{
				{Reps: ptr(5), Weight: ptr(100.0)},
				{Reps: ptr(8), Weight: nil}, // bodyweight set, ignored
			},
		}),
	}

	records := buildPersonalRecords(sessions)
	require.Len(t, records, 1)
	pr := records[0]
	require.Equal(t, "Bench Press", pr.ExerciseName)
	require.Equal(t, 100.0, pr.MaxWeight)
	require.Equal(t, 5, pr.Reps) // earlier session wins the tie
	require.Equal(t, first, pr.AchievedAt)
	require.InDelta(t, 112.51, pr.EstimatedOneRepMax, 0.01)
}

func TestBuildPersonalRecordsDistinctByTemplateAndName(t *testing.T) {
	sessions := []models.WorkoutSession{
		completedSession(day(-1),
			models.Exercise{
				Name:               "Squat",
				ExerciseTemplateID: ptr(uint(2)),
				Sets:               []models.ExerciseSet{{Reps: ptr(5), Weight: ptr(140.0)}},
			},
			models.Exercise{
				Name: "Farmer Carry", // free-text, keyed by name
				Sets: []models.ExerciseSet{{Weight: ptr(60.0)}}, // nil reps defaults to 1
			},
		),
	}

	records := buildPersonalRecords(sessions)
	require.Len(t, records, 2)
	require.Equal(t, 1, records[1].Reps)
	require.Equal(t, 60.0, records[1].EstimatedOneRepMax)
}

func TestPriorBestWeights(t *testing.T) {
	sessions := []models.WorkoutSession{
		completedSession(day(-10), models.Exercise{
			Name:               "Bench Press",
			ExerciseTemplateID: ptr(uint(1)),
			Sets: []models.ExerciseSet{
				{Reps: ptr(5), Weight: ptr(95.0)},
				{Reps: ptr(3), Weight: ptr(100.0)},
			},
		}),
		completedSession(day(-5),
			models.Exercise{
				Name:               "Bench Press",
				ExerciseTemplateID: ptr(uint(1)),
				Sets:               []models.ExerciseSet{{Reps: ptr(5), Weight: ptr(97.5)}},
			},
			models.Exercise{
				Name: "Pull Up",
				Sets: []models.ExerciseSet{{Reps: ptr(10), Weight: nil}},
			},
		),
	}

	best := priorBestWeights(sessions)
	require.Equal(t, map[string]float64{"t:1": 100.0}, best)
}

func TestSessionNewRecords(t *testing.T) {
	baseline := map[string]float64{"t:1": 100.0}
	sess := completedSession(day(0),
		models.Exercise{
			Name:               "Bench Press",
			ExerciseTemplateID: ptr(uint(1)),
			Sets: []models.ExerciseSet{
				{Reps: ptr(5), Weight: ptr(95.0)},  // below the old best
				{Reps: ptr(3), Weight: ptr(105.0)}, // new record
				{Reps: ptr(2), Weight: ptr(102.0)}, // beats baseline but not the 105
			},
		},
		models.Exercise{
			Name:               "Squat",
			ExerciseTemplateID: ptr(uint(2)),
			Sets:               []models.ExerciseSet{{Reps: ptr(5), Weight: ptr(60.0)}}, // first ever
		},
	)

	records := sessionNewRecords(sess, baseline)
	require.Len(t, records, 2)

	require.Equal(t, "Bench Press", records[0].ExerciseName)
	require.Equal(t, 105.0, records[0].MaxWeight)
	require.Equal(t, 3, records[0].Reps)
	require.Equal(t, day(0), records[0].AchievedAt)

	require.Equal(t, "Squat", records[1].ExerciseName)
	require.Equal(t, 60.0, records[1].MaxWeight)
}

func TestSessionNewRecordsEqualWeightIsNotARecord(t *testing.T) {
	baseline := map[string]float64{"t:1": 100.0}
	sess := completedSession(day(0), models.Exercise{
		Name:               "Bench Press",
		ExerciseTemplateID: ptr(uint(1)),
		Sets: []models.ExerciseSet{
			{Reps: ptr(1), Weight: ptr(100.0)},
			{Reps: ptr(8), Weight: nil},
		},
	})

	require.Empty(t, sessionNewRecords(sess, baseline))
}

func TestBuildExerciseProgress(t *testing.T) {
	sessions := []models.WorkoutSession{
		completedSession(day(-14), models.Exercise{
			Name:               "Deadlift",
			ExerciseTemplateID: ptr(uint(3)),
			Sets: []models.ExerciseSet{
				{Reps: ptr(5), Weight: ptr(90.0)},
				{Reps: ptr(5), Weight: ptr(110.0)},
			},
		}),
		completedSession(day(-1), models.Exercise{
			Name:               "Deadlift",
			ExerciseTemplateID: ptr(uint(3)),
			Sets:               []models.ExerciseSet{{Reps: ptr(5), Weight: ptr(110.0)}},
		}),
		completedSession(day(-1), models.Exercise{
			Name:               "Row",
			ExerciseTemplateID: ptr(uint(4)),
			Sets:               []models.ExerciseSet{{Reps: ptr(8), Weight: ptr(60.0)}},
		}),
	}

	progress := buildExerciseProgress(sessions)
	require.Len(t, progress, 2)

	dl := progress[0]
	require.Equal(t, "Deadlift", dl.ExerciseName)
	require.Equal(t, 2, dl.TimesPerformed)
	require.Equal(t, 100.0, dl.FirstAvgWeight)
	require.Equal(t, 110.0, dl.LastAvgWeight)
	require.NotNil(t, dl.TrendPct)
	require.InDelta(t, 10.0, *dl.TrendPct, 0.01)

	// performed once: trend undefined
	require.Nil(t, progress[1].TrendPct)
}

func TestBuildMuscleGroupVolume(t *testing.T) {
	sessions := []models.WorkoutSession{
		completedSession(day(-1),
			models.Exercise{
				Name:               "Bench Press",
				ExerciseTemplateID: ptr(uint(1)),
				Sets:               []models.ExerciseSet{{Reps: ptr(10), Weight: ptr(100.0)}},
			},
			models.Exercise{
				Name: "Mystery Machine",
				Sets: []models.ExerciseSet{{Reps: ptr(10), Weight: ptr(50.0)}},
			},
		),
	}
	groups := map[uint]string{1: "Chest"}

	out := buildMuscleGroupVolume(sessions, groups)
	require.Len(t, out, 2)
	require.Equal(t, "Chest", out[0].MuscleGroup)
	require.Equal(t, 1000.0, out[0].Volume)
	require.InDelta(t, 66.67, out[0].Percent, 0.01)
	require.Equal(t, "Unknown", out[1].MuscleGroup)
	require.InDelta(t, 33.33, out[1].Percent, 0.01)
}

func TestDistinctSessionDates(t *testing.T) {
	morning := time.Date(2026, 8, 27, 7, 30, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 27, 19, 0, 0, 0, time.UTC)
	sessions := []models.WorkoutSession{
		completedSession(evening),
		completedSession(morning),
		completedSession(day(-5)),
	}

	dates := distinctSessionDates(sessions)
	require.Equal(t, []time.Time{day(-5), day(-1)}, dates)
}

func TestStartOfWeekIsMonday(t *testing.T) {
	// 2026-08-28 is a Friday
	require.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), startOfWeek(testToday))
	// Sunday belongs to the week started the previous Monday
	sunday := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), startOfWeek(sunday))
	// Monday is its own week start
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, monday, startOfWeek(monday))
}
