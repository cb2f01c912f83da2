package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/abdbabti01/GoHardAPI-sub000/models"

	"gorm.io/gorm"
)

// NutritionAnalyticsService derives summaries, macro breakdowns, trends and
// the logging streak from stored meal logs. Like the workout side it only
// reads; the cached day totals it consumes are maintained by RollupService.
type NutritionAnalyticsService struct{ db *gorm.DB }

func NewNutritionAnalyticsService(db *gorm.DB) *NutritionAnalyticsService {
	return &NutritionAnalyticsService{db: db}
}

// ---------- Daily / weekly summaries ----------

type DailySummary struct {
	Date     string         `json:"date"`
	Consumed nutritionView  `json:"consumed"`
	Planned  nutritionView  `json:"planned"`
	Macros   MacroBreakdown `json:"macros"`
	Entries  []EntrySummary `json:"entries"`
}

type nutritionView struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

type EntrySummary struct {
	MealType   string  `json:"meal_type"`
	IsConsumed bool    `json:"is_consumed"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
}

func (s *NutritionAnalyticsService) GetDailySummary(ctx context.Context, userID uint, date time.Time) (*DailySummary, error) {
	day := dayStartUTC(date)
	var log models.MealLog
	if err := s.db.WithContext(ctx).
		Preload("Entries").
		Where("user_id = ? AND date = ?", userID, day).
		First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	out := &DailySummary{
		Date: day.Format("2006-01-02"),
		Consumed: nutritionView{
			Calories:      log.TotalCalories,
			Protein:       log.TotalProtein,
			Carbohydrates: log.TotalCarbohydrates,
			Fat:           log.TotalFat,
		},
		Planned: nutritionView{
			Calories:      log.PlannedCalories,
			Protein:       log.PlannedProtein,
			Carbohydrates: log.PlannedCarbohydrates,
			Fat:           log.PlannedFat,
		},
		Macros: macroBreakdown(log.TotalProtein, log.TotalCarbohydrates, log.TotalFat),
	}
	for _, e := range log.Entries {
		out.Entries = append(out.Entries, EntrySummary{
			MealType:   e.MealType,
			IsConsumed: e.IsConsumed,
			Calories:   e.TotalCalories,
			Protein:    e.TotalProtein,
			Carbs:      e.TotalCarbohydrates,
			Fat:        e.TotalFat,
		})
	}
	return out, nil
}

type WeeklySummary struct {
	WeekStart   string  `json:"week_start"`
	WeekEnd     string  `json:"week_end"`
	DaysLogged  int     `json:"days_logged"`
	AvgCalories float64 `json:"avg_calories"`
	AvgProtein  float64 `json:"avg_protein"`
	AvgCarbs    float64 `json:"avg_carbs"`
	AvgFat      float64 `json:"avg_fat"`
}

// GetWeeklySummaries buckets logs into fixed 7-day windows counted backward
// from today. Each bucket averages over the days actually logged; days with
// no log are absent, not zero-filled.
func (s *NutritionAnalyticsService) GetWeeklySummaries(ctx context.Context, userID uint, weeks int) ([]WeeklySummary, error) {
	if weeks <= 0 {
		weeks = 4
	}
	today := dayStartUTC(time.Now())
	from := today.AddDate(0, 0, -(weeks*7 - 1))

	var logs []models.MealLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, dayEndUTC(today)).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return bucketWeeklySummaries(logs, today, weeks), nil
}

func bucketWeeklySummaries(logs []models.MealLog, today time.Time, weeks int) []WeeklySummary {
	out := make([]WeeklySummary, 0, weeks)
	for w := 0; w < weeks; w++ {
		end := today.AddDate(0, 0, -7*w)
		start := end.AddDate(0, 0, -6)

		var sum nutritionTotals
		var n int
		for _, log := range logs {
			d := dayStartUTC(log.Date)
			if d.Before(start) || d.After(end) {
				continue
			}
			sum.Calories += log.TotalCalories
			sum.Protein += log.TotalProtein
			sum.Carbs += log.TotalCarbohydrates
			sum.Fat += log.TotalFat
			n++
		}

		ws := WeeklySummary{
			WeekStart:  start.Format("2006-01-02"),
			WeekEnd:    end.Format("2006-01-02"),
			DaysLogged: n,
		}
		if n > 0 {
			ws.AvgCalories = round2(sum.Calories / float64(n))
			ws.AvgProtein = round2(sum.Protein / float64(n))
			ws.AvgCarbs = round2(sum.Carbs / float64(n))
			ws.AvgFat = round2(sum.Fat / float64(n))
		}
		out = append(out, ws)
	}
	return out
}

// ---------- Macro breakdown ----------

type MacroBreakdown struct {
	ProteinCalories float64 `json:"protein_calories"`
	CarbCalories    float64 `json:"carb_calories"`
	FatCalories     float64 `json:"fat_calories"`
	ProteinPct      float64 `json:"protein_pct"`
	CarbPct         float64 `json:"carb_pct"`
	FatPct          float64 `json:"fat_pct"`
}

// macroBreakdown converts grams to calories (4/4/9) and reports each macro's
// share of the macro-calorie sum — not of total logged calories, which can
// include untracked sources.
func macroBreakdown(proteinG, carbsG, fatG float64) MacroBreakdown {
	b := MacroBreakdown{
		ProteinCalories: proteinG * kcalPerGramProtein,
		CarbCalories:    carbsG * kcalPerGramCarbs,
		FatCalories:     fatG * kcalPerGramFat,
	}
	total := b.ProteinCalories + b.CarbCalories + b.FatCalories
	b.ProteinPct = pctOf(b.ProteinCalories, total)
	b.CarbPct = pctOf(b.CarbCalories, total)
	b.FatPct = pctOf(b.FatCalories, total)
	return b
}

// ---------- Calorie trend vs goal ----------

type CalorieTrendDay struct {
	Date     string  `json:"date"`
	Consumed float64 `json:"consumed"`
	Target   float64 `json:"target"`
	Delta    float64 `json:"delta"`
}

type CalorieTrend struct {
	Days        []CalorieTrendDay `json:"days"`
	AvgConsumed float64           `json:"avg_consumed"`
	Target      float64           `json:"target"`
}

// GetCalorieTrend compares each logged day in the trailing window against
// the active nutrition goal's calorie target (0 when no goal is active).
func (s *NutritionAnalyticsService) GetCalorieTrend(ctx context.Context, userID uint, days int) (*CalorieTrend, error) {
	if days <= 0 {
		days = 30
	}
	today := dayStartUTC(time.Now())
	from := today.AddDate(0, 0, -(days - 1))

	var logs []models.MealLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, dayEndUTC(today)).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	var target float64
	var goal models.NutritionGoal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&goal).Error
	switch {
	case err == nil:
		target = goal.DailyCalories
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no active goal: deltas are against 0
	default:
		return nil, err
	}

	out := &CalorieTrend{Target: target}
	var sum float64
	for _, log := range logs {
		out.Days = append(out.Days, CalorieTrendDay{
			Date:     dayStartUTC(log.Date).Format("2006-01-02"),
			Consumed: log.TotalCalories,
			Target:   target,
			Delta:    round2(log.TotalCalories - target),
		})
		sum += log.TotalCalories
	}
	if len(logs) > 0 {
		out.AvgConsumed = round2(sum / float64(len(logs)))
	}
	return out, nil
}

// ---------- Logging streak ----------

type LoggingStreak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// GetLoggingStreak counts consecutive days with consumed calories logged.
func (s *NutritionAnalyticsService) GetLoggingStreak(ctx context.Context, userID uint) (*LoggingStreak, error) {
	var logs []models.MealLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND total_calories > 0", userID).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(logs))
	for _, log := range logs {
		dates = append(dates, dayStartUTC(log.Date))
	}
	current, longest := loggingStreak(dates, dayStartUTC(time.Now()))
	return &LoggingStreak{Current: current, Longest: longest}, nil
}

// loggingStreak is deliberately NOT the workout streak algorithm. It anchors
// on today/yesterday like the workout one, but then keeps walking the whole
// date list from newest to oldest and zeroes the current-streak accumulator
// permanently the moment any gap appears: the current streak survives only
// when the entire logged history is one unbroken chain. The workout streak
// stops at the first gap instead, keeping the run it counted so far. The two
// behaviors diverge on purpose; do not unify them without confirming intent.
func loggingStreak(dates []time.Time, today time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	desc := make([]time.Time, len(dates))
	copy(desc, dates)
	sort.Slice(desc, func(i, j int) bool { return desc[i].After(desc[j]) })

	newest := desc[0]
	if sameDay(newest, today) || sameDay(newest, today.AddDate(0, 0, -1)) {
		current = 1
	}
	for i := 1; i < len(desc); i++ {
		if current > 0 && desc[i-1].Sub(desc[i]) == 24*time.Hour {
			current++
		} else {
			current = 0
		}
	}

	run := 1
	longest = 1
	for i := len(desc) - 2; i >= 0; i-- {
		if desc[i].Sub(desc[i+1]) == 24*time.Hour {
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

// ---------- Frequent foods ----------

type FrequentFood struct {
	Name           string  `json:"name"`
	FoodTemplateID *uint   `json:"food_template_id,omitempty"`
	Count          int     `json:"count"`
	TotalCalories  float64 `json:"total_calories"`
	AvgCalories    float64 `json:"avg_calories"`
}

// GetFrequentFoods ranks consumed food items by occurrence over a trailing
// N-day window.
func (s *NutritionAnalyticsService) GetFrequentFoods(ctx context.Context, userID uint, days, limit int) ([]FrequentFood, error) {
	if days <= 0 {
		days = 30
	}
	if limit <= 0 {
		limit = 10
	}
	today := dayStartUTC(time.Now())
	from := today.AddDate(0, 0, -(days - 1))

	var items []models.FoodItem
	if err := s.db.WithContext(ctx).
		Joins("JOIN meal_entries ON meal_entries.id = food_items.meal_entry_id").
		Joins("JOIN meal_logs ON meal_logs.id = meal_entries.meal_log_id").
		Where("meal_logs.user_id = ? AND meal_entries.is_consumed = ? AND meal_logs.date BETWEEN ? AND ?",
			userID, true, from, dayEndUTC(today)).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return rankFrequentFoods(items, limit), nil
}

func rankFrequentFoods(items []models.FoodItem, limit int) []FrequentFood {
	type key struct {
		name       string
		templateID uint // 0 when custom
	}
	groups := map[key]*FrequentFood{}
	var order []key
	for _, it := range items {
		k := key{name: it.Name}
		if it.FoodTemplateID != nil {
			k.templateID = *it.FoodTemplateID
		}
		g, ok := groups[k]
		if !ok {
			g = &FrequentFood{Name: it.Name, FoodTemplateID: it.FoodTemplateID}
			groups[k] = g
			order = append(order, k)
		}
		g.Count++
		g.TotalCalories += it.Calories
	}

	out := make([]FrequentFood, 0, len(order))
	for _, k := range order {
		g := groups[k]
		g.TotalCalories = round2(g.TotalCalories)
		g.AvgCalories = round2(g.TotalCalories / float64(g.Count))
		out = append(out, *g)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
