package controllers

import (
	"net/http"
	"strconv"

	"github.com/abdbabti01/GoHardAPI-sub000/services"

	"github.com/gin-gonic/gin"
)

type BodyMetricController struct {
	Svc *services.BodyMetricService
}

func NewBodyMetricController(svc *services.BodyMetricService) *BodyMetricController {
	return &BodyMetricController{Svc: svc}
}

func (h *BodyMetricController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var in services.BodyMetricInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metric, err := h.Svc.Create(c.Request.Context(), userID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, metric)
}

func (h *BodyMetricController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	metrics, err := h.Svc.List(c.Request.Context(), userID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
