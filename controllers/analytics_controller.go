package controllers

import (
	"net/http"
	"strconv"

	"github.com/abdbabti01/GoHardAPI-sub000/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Workout   *services.WorkoutAnalyticsService
	Nutrition *services.NutritionAnalyticsService
}

func NewAnalyticsController(workout *services.WorkoutAnalyticsService, nutrition *services.NutritionAnalyticsService) *AnalyticsController {
	return &AnalyticsController{Workout: workout, Nutrition: nutrition}
}

// ---------- workout ----------

func (h *AnalyticsController) GetWorkoutStats(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	stats, err := h.Workout.GetWorkoutStats(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsController) GetPersonalRecords(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	records, err := h.Workout.GetPersonalRecords(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *AnalyticsController) GetExerciseProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	progress, err := h.Workout.GetExerciseProgress(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *AnalyticsController) GetMuscleGroupDistribution(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dist, err := h.Workout.GetMuscleGroupDistribution(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}

// ---------- nutrition ----------

func (h *AnalyticsController) GetDailySummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date, err := dateQuery(c, "date")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	summary, err := h.Nutrition.GetDailySummary(c.Request.Context(), userID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *AnalyticsController) GetWeeklySummaries(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	weeks, _ := strconv.Atoi(c.DefaultQuery("weeks", "4"))
	summaries, err := h.Nutrition.GetWeeklySummaries(c.Request.Context(), userID, weeks)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *AnalyticsController) GetCalorieTrend(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	trend, err := h.Nutrition.GetCalorieTrend(c.Request.Context(), userID, days)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

func (h *AnalyticsController) GetLoggingStreak(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	streak, err := h.Nutrition.GetLoggingStreak(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, streak)
}

func (h *AnalyticsController) GetFrequentFoods(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	foods, err := h.Nutrition.GetFrequentFoods(c.Request.Context(), userID, days, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}
