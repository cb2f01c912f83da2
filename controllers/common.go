package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/abdbabti01/GoHardAPI-sub000/services"

	"github.com/gin-gonic/gin"
)

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	case float64:
		return uint(id), true
	default:
		return 0, false
	}
}

// respondServiceError maps service-layer errors to HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrConcurrentUpdate):
		c.JSON(http.StatusConflict, gin.H{"error": "resource was modified concurrently, retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// dateQuery parses an optional YYYY-MM-DD query param, defaulting to today.
func dateQuery(c *gin.Context, key string) (time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return time.Now().UTC(), nil
	}
	return parseDate(v)
}

func parseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}
