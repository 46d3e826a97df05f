package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutrio-app/progress-engine/internal/adapters/handler/http/middleware"
	"github.com/nutrio-app/progress-engine/internal/core/domain"
	"github.com/nutrio-app/progress-engine/internal/core/services"
)

const maxCustomRangeDays = 366

type ProgressHandler struct {
	progress  *services.ProgressService
	summaries *services.SummaryService
}

func NewProgressHandler(progress *services.ProgressService, summaries *services.SummaryService) *ProgressHandler {
	return &ProgressHandler{
		progress:  progress,
		summaries: summaries,
	}
}

func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup) {
	progress := router.Group("/progress")
	{
		progress.GET("", h.GetProgress)
		progress.GET("/remaining", h.GetRemaining)
		progress.GET("/summary/daily", h.GetDailySummary)
		progress.GET("/summary/weekly", h.GetWeeklySummary)
		progress.GET("/summary/monthly", h.GetMonthlySummary)
	}
}

func (h *ProgressHandler) GetProgress(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	rangeStr := c.DefaultQuery("range", string(domain.TimeRangeDaily))
	timeRange, err := domain.ParseTimeRange(rangeStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.ProgressInput{
		Username: username,
		Range:    timeRange,
	}

	if timeRange == domain.TimeRangeCustom {
		if s := c.Query("start"); s != "" {
			parsed, err := time.Parse("2006-01-02", s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start format, expected YYYY-MM-DD"})
				return
			}
			input.CustomStart = &parsed
		}
		if e := c.Query("end"); e != "" {
			parsed, err := time.Parse("2006-01-02", e)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end format, expected YYYY-MM-DD"})
				return
			}
			input.CustomEnd = &parsed
		}

		if input.CustomStart != nil && input.CustomEnd != nil {
			days := input.CustomEnd.Sub(*input.CustomStart).Hours() / 24
			if days > maxCustomRangeDays || days < -maxCustomRangeDays {
				c.JSON(http.StatusBadRequest, gin.H{"error": "date range too large, max 1 year allowed"})
				return
			}
		}
	}

	snapshot := h.progress.GetProgress(c.Request.Context(), input)

	c.JSON(http.StatusOK, snapshot)
}

func (h *ProgressHandler) GetRemaining(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	remaining, err := h.progress.RemainingCalories(c.Request.Context(), username)
	if err != nil {
		log.Printf("[ERROR] remaining calories lookup failed for user %s: %v", username, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream metrics unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"remaining_calories": remaining})
}

func (h *ProgressHandler) GetDailySummary(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, h.summaries.Daily(c.Request.Context(), username))
}

func (h *ProgressHandler) GetWeeklySummary(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, h.summaries.Weekly(c.Request.Context(), username))
}

func (h *ProgressHandler) GetMonthlySummary(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, h.summaries.Monthly(c.Request.Context(), username))
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidGoals) || errors.Is(err, domain.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrGoalsNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})

	default:
		log.Printf("[ERROR] request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
