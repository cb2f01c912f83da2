package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"gorm.io/gorm"
)

// WorkoutAnalyticsService derives streaks, personal records, progress trends
// and muscle-group volume from completed sessions. Stored logs are read-only
// inputs; nothing here writes back.
type WorkoutAnalyticsService struct{ db *gorm.DB }

func NewWorkoutAnalyticsService(db *gorm.DB) *WorkoutAnalyticsService {
	return &WorkoutAnalyticsService{db: db}
}

// ---------- Stats & streaks ----------

type WorkoutStats struct {
	TotalWorkouts     int     `json:"total_workouts"`
	WorkoutsThisWeek  int     `json:"workouts_this_week"`
	WorkoutsThisMonth int     `json:"workouts_this_month"`
	CurrentStreak     int     `json:"current_streak"`
	LongestStreak     int     `json:"longest_streak"`
	TotalVolume       float64 `json:"total_volume"` // Σ reps × weight, kg
}

func (s *WorkoutAnalyticsService) GetWorkoutStats(ctx context.Context, userID uint) (*WorkoutStats, error) {
	sessions, err := s.loadCompletedSessions(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := dayStartUTC(time.Now())
	weekStart := startOfWeek(today)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	out := &WorkoutStats{TotalWorkouts: len(sessions)}
	for _, sess := range sessions {
		d := sessionDate(sess)
		if !d.Before(weekStart) {
			out.WorkoutsThisWeek++
		}
		if !d.Before(monthStart) {
			out.WorkoutsThisMonth++
		}
		out.TotalVolume += sessionVolume(sess)
	}
	out.CurrentStreak, out.LongestStreak = workoutStreaks(distinctSessionDates(sessions), today)
	return out, nil
}

// workoutStreaks computes the consecutive-day streaks over distinct workout
// dates. The current streak anchors on today or yesterday and walks backward
// requiring each prior date to be exactly one day earlier; the longest streak
// is an independent single scan over the ascending list.
func workoutStreaks(dates []time.Time, today time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	present := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		present[d] = true
	}

	anchor := today
	if !present[anchor] {
		anchor = today.AddDate(0, 0, -1)
	}
	if present[anchor] {
		current = 1
		for present[anchor.AddDate(0, 0, -1)] {
			current++
			anchor = anchor.AddDate(0, 0, -1)
		}
	}

	run := 1
	longest = 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return current, longest
}

// distinctSessionDates returns the unique UTC calendar dates of the sessions,
// ascending. Completed sessions without a completion stamp fall back to the
// record's creation time.
func distinctSessionDates(sessions []models.WorkoutSession) []time.Time {
	seen := make(map[time.Time]bool, len(sessions))
	for _, sess := range sessions {
		seen[sessionDate(sess)] = true
	}
	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func sessionDate(sess models.WorkoutSession) time.Time {
	if sess.CompletedAt != nil {
		return dayStartUTC(*sess.CompletedAt)
	}
	return dayStartUTC(sess.CreatedAt)
}

func sessionVolume(sess models.WorkoutSession) float64 {
	var v float64
	for _, ex := range sess.Exercises {
		for _, set := range ex.Sets {
			if set.Reps != nil && set.Weight != nil {
				v += float64(*set.Reps) * *set.Weight
			}
		}
	}
	return v
}

// ---------- Personal records ----------

type PersonalRecord struct {
	ExerciseName       string     `json:"exercise_name"`
	ExerciseTemplateID *uint      `json:"exercise_template_id,omitempty"`
	MaxWeight          float64    `json:"max_weight"`
	Reps               int        `json:"reps"`
	EstimatedOneRepMax float64    `json:"estimated_one_rep_max"`
	AchievedAt         time.Time  `json:"achieved_at"`
}

func (s *WorkoutAnalyticsService) GetPersonalRecords(ctx context.Context, userID uint) ([]PersonalRecord, error) {
	sessions, err := s.loadCompletedSessions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildPersonalRecords(sessions), nil
}

// buildPersonalRecords picks, per distinct exercise (template id, falling
// back to free-text name), the set with the highest recorded weight. Sets
// with nil or zero weight are ignored. Ties keep the first set encountered
// in session-date order.
func buildPersonalRecords(sessions []models.WorkoutSession) []PersonalRecord {
	sortSessionsByDate(sessions)

	best := map[string]*PersonalRecord{}
	var order []string
	for _, sess := range sessions {
		date := sessionDate(sess)
		for _, ex := range sess.Exercises {
			key := exerciseKey(ex)
			for _, set := range ex.Sets {
				if set.Weight == nil || *set.Weight <= 0 {
					continue
				}
				reps := 1
				if set.Reps != nil && *set.Reps > 0 {
					reps = *set.Reps
				}
				pr, seen := best[key]
				if seen && *set.Weight <= pr.MaxWeight {
					continue
				}
				rec := PersonalRecord{
					ExerciseName:       ex.Name,
					ExerciseTemplateID: ex.ExerciseTemplateID,
					MaxWeight:          *set.Weight,
					Reps:               reps,
					EstimatedOneRepMax: round2(estimateOneRepMax(*set.Weight, reps)),
					AchievedAt:         date,
				}
				if !seen {
					order = append(order, key)
				}
				best[key] = &rec
			}
		}
	}

	out := make([]PersonalRecord, 0, len(order))
	for _, key := range order {
		out = append(out, *best[key])
	}
	return out
}

// priorBestWeights maps exercise key to the heaviest weight ever recorded
// across the given sessions. Exercises with no weighted sets are absent.
func priorBestWeights(sessions []models.WorkoutSession) map[string]float64 {
	best := map[string]float64{}
	for _, sess := range sessions {
		for _, ex := range sess.Exercises {
			key := exerciseKey(ex)
			for _, set := range ex.Sets {
				if set.Weight != nil && *set.Weight > best[key] {
					best[key] = *set.Weight
				}
			}
		}
	}
	return best
}

// sessionNewRecords returns, per distinct exercise of one session, the
// heaviest set that strictly beats the baseline weight for that exercise.
// An exercise absent from the baseline counts as 0, so a first-ever weighted
// set is a record. Equalled weights are not.
func sessionNewRecords(sess models.WorkoutSession, baseline map[string]float64) []PersonalRecord {
	date := sessionDate(sess)

	best := map[string]*PersonalRecord{}
	var order []string
	for _, ex := range sess.Exercises {
		key := exerciseKey(ex)
		for _, set := range ex.Sets {
			if set.Weight == nil || *set.Weight <= baseline[key] {
				continue
			}
			if pr, seen := best[key]; seen && *set.Weight <= pr.MaxWeight {
				continue
			}
			reps := 1
			if set.Reps != nil && *set.Reps > 0 {
				reps = *set.Reps
			}
			if _, seen := best[key]; !seen {
				order = append(order, key)
			}
			best[key] = &PersonalRecord{
				ExerciseName:       ex.Name,
				ExerciseTemplateID: ex.ExerciseTemplateID,
				MaxWeight:          *set.Weight,
				Reps:               reps,
				EstimatedOneRepMax: round2(estimateOneRepMax(*set.Weight, reps)),
				AchievedAt:         date,
			}
		}
	}

	out := make([]PersonalRecord, 0, len(order))
	for _, key := range order {
		out = append(out, *best[key])
	}
	return out
}

// estimateOneRepMax uses the Brzycki formula for multi-rep sets; a true
// single is already a one-rep max.
func estimateOneRepMax(weight float64, reps int) float64 {
	if reps <= 1 {
		return weight
	}
	return weight / (1.0278 - 0.0278*float64(reps))
}

func exerciseKey(ex models.Exercise) string {
	if ex.ExerciseTemplateID != nil {
		return fmt.Sprintf("t:%d", *ex.ExerciseTemplateID)
	}
	return "n:" + ex.Name
}

// ---------- Progress trend ----------

type ExerciseProgress struct {
	ExerciseName   string   `json:"exercise_name"`
	TimesPerformed int      `json:"times_performed"`
	FirstAvgWeight float64  `json:"first_avg_weight"`
	LastAvgWeight  float64  `json:"last_avg_weight"`
	TrendPct       *float64 `json:"trend_pct,omitempty"`
}

func (s *WorkoutAnalyticsService) GetExerciseProgress(ctx context.Context, userID uint) ([]ExerciseProgress, error) {
	sessions, err := s.loadCompletedSessions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildExerciseProgress(sessions), nil
}

// buildExerciseProgress compares, per exercise, the average working weight of
// the first instance that has any nonzero-weight sets against the most
// recent such instance. The trend is undefined (nil) when the exercise was
// performed once or the first average is zero.
func buildExerciseProgress(sessions []models.WorkoutSession) []ExerciseProgress {
	sortSessionsByDate(sessions)

	type track struct {
		name        string
		count       int
		first, last float64
	}
	tracks := map[string]*track{}
	var order []string

	for _, sess := range sessions {
		for _, ex := range sess.Exercises {
			avg, ok := averageSetWeight(ex)
			if !ok {
				continue
			}
			key := exerciseKey(ex)
			t, seen := tracks[key]
			if !seen {
				t = &track{name: ex.Name, first: avg}
				tracks[key] = t
				order = append(order, key)
			}
			t.count++
			t.last = avg
		}
	}

	out := make([]ExerciseProgress, 0, len(order))
	for _, key := range order {
		t := tracks[key]
		p := ExerciseProgress{
			ExerciseName:   t.name,
			TimesPerformed: t.count,
			FirstAvgWeight: round2(t.first),
			LastAvgWeight:  round2(t.last),
		}
		if t.count > 1 && t.first > 0 {
			trend := round2((t.last - t.first) / t.first * 100)
			p.TrendPct = &trend
		}
		out = append(out, p)
	}
	return out
}

// averageSetWeight averages the nonzero-weight sets of one exercise
// instance; ok is false when there are none.
func averageSetWeight(ex models.Exercise) (float64, bool) {
	var sum float64
	var n int
	for _, set := range ex.Sets {
		if set.Weight != nil && *set.Weight > 0 {
			sum += *set.Weight
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// ---------- Muscle-group volume ----------

type MuscleGroupVolume struct {
	MuscleGroup string  `json:"muscle_group"`
	Volume      float64 `json:"volume"`
	Percent     float64 `json:"percent"`
}

func (s *WorkoutAnalyticsService) GetMuscleGroupDistribution(ctx context.Context, userID uint) ([]MuscleGroupVolume, error) {
	sessions, err := s.loadCompletedSessions(ctx, userID)
	if err != nil {
		return nil, err
	}

	var templates []models.ExerciseTemplate
	if err := s.db.WithContext(ctx).Find(&templates).Error; err != nil {
		return nil, err
	}
	groups := make(map[uint]string, len(templates))
	for _, t := range templates {
		groups[t.ID] = t.MuscleGroup
	}
	return buildMuscleGroupVolume(sessions, groups), nil
}

// buildMuscleGroupVolume buckets Σ(reps × weight) by the exercise template's
// muscle group; exercises without a template (or with a blank group) land in
// "Unknown". Percentages are of the grand total, zero-guarded.
func buildMuscleGroupVolume(sessions []models.WorkoutSession, groupByTemplate map[uint]string) []MuscleGroupVolume {
	volumes := map[string]float64{}
	var total float64
	for _, sess := range sessions {
		for _, ex := range sess.Exercises {
			group := "Unknown"
			if ex.ExerciseTemplateID != nil {
				if g, ok := groupByTemplate[*ex.ExerciseTemplateID]; ok && g != "" {
					group = g
				}
			}
			for _, set := range ex.Sets {
				if set.Reps != nil && set.Weight != nil {
					v := float64(*set.Reps) * *set.Weight
					volumes[group] += v
					total += v
				}
			}
		}
	}

	names := make([]string, 0, len(volumes))
	for g := range volumes {
		names = append(names, g)
	}
	sort.Slice(names, func(i, j int) bool { return volumes[names[i]] > volumes[names[j]] })

	out := make([]MuscleGroupVolume, 0, len(names))
	for _, g := range names {
		out = append(out, MuscleGroupVolume{
			MuscleGroup: g,
			Volume:      round2(volumes[g]),
			Percent:     pctOf(volumes[g], total),
		})
	}
	return out
}

// ---------- internals ----------

func (s *WorkoutAnalyticsService) loadCompletedSessions(ctx context.Context, userID uint) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := s.db.WithContext(ctx).
		Preload("Exercises.Sets").
		Where("user_id = ? AND status = ?", userID, models.SessionStatusCompleted).
		Order("completed_at ASC").
		Find(&sessions).Error
	return sessions, err
}

func sortSessionsByDate(sessions []models.WorkoutSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessionDate(sessions[i]).Before(sessionDate(sessions[j]))
	})
}
