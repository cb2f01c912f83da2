package controllers

import (
	"net/http"

	"github.com/abdbabti01/GoHardAPI-sub000/services"

	"github.com/gin-gonic/gin"
)

type NutritionGoalController struct {
	Svc   *services.NutritionGoalService
	Users *services.UserService
}

func NewNutritionGoalController(svc *services.NutritionGoalService, users *services.UserService) *NutritionGoalController {
	return &NutritionGoalController{Svc: svc, Users: users}
}

// Calculate runs the calculator against the stored profile without
// persisting anything.
func (h *NutritionGoalController) Calculate(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		GoalType             string   `json:"goal_type" binding:"required"`
		TargetWeeklyChangeKg *float64 `json:"target_weekly_change_kg"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in, err := h.Users.CalculatorInputForUser(c.Request.Context(), userID, body.GoalType, body.TargetWeeklyChangeKg)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	plan, err := services.CalculateNutrition(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreateFromCalculator persists the calculated plan as the new active goal.
func (h *NutritionGoalController) CreateFromCalculator(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		GoalType             string   `json:"goal_type" binding:"required"`
		TargetWeeklyChangeKg *float64 `json:"target_weekly_change_kg"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in, err := h.Users.CalculatorInputForUser(c.Request.Context(), userID, body.GoalType, body.TargetWeeklyChangeKg)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	goal, plan, err := h.Svc.CreateFromCalculator(c.Request.Context(), userID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"goal": goal, "plan": plan})
}

func (h *NutritionGoalController) Activate(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	goal, err := h.Svc.Activate(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *NutritionGoalController) GetActive(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goal, err := h.Svc.GetActive(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *NutritionGoalController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goals, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}
