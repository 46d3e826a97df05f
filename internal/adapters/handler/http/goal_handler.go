package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrio-app/progress-engine/internal/adapters/handler/http/middleware"
	"github.com/nutrio-app/progress-engine/internal/core/domain"
	"github.com/nutrio-app/progress-engine/internal/core/services"
)

type GoalHandler struct {
	svc *services.GoalService
}

func NewGoalHandler(svc *services.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

type updateGoalsRequest struct {
	Calories float64 `json:"calories" binding:"min=0"`
	Steps    float64 `json:"steps" binding:"min=0"`
	Water    float64 `json:"water" binding:"min=0"`
	Exercise float64 `json:"exercise" binding:"min=0"`
	Sleep    float64 `json:"sleep" binding:"min=0"`
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/progress/goals")
	{
		goals.GET("", h.Get)
		goals.PUT("", h.Update)
	}
}

func (h *GoalHandler) Get(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goals, err := h.svc.Get(c.Request.Context(), username)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

func (h *GoalHandler) Update(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req updateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	goals := domain.Goals{
		Calories: req.Calories,
		Steps:    req.Steps,
		Water:    req.Water,
		Exercise: req.Exercise,
		Sleep:    req.Sleep,
	}

	if err := h.svc.Update(c.Request.Context(), username, goals); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}
