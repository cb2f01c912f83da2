package controllers

import (
	"net/http"
	"strconv"

	"github.com/abdbabti01/GoHardAPI-sub000/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifier *services.Notifier
}

func NewNotificationController(notifier *services.Notifier) *NotificationController {
	return &NotificationController{Notifier: notifier}
}

func (h *NotificationController) ListAlerts(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	alerts, err := h.Notifier.ListAlerts(userID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}
