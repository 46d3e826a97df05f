package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/nutrio-app/progress-engine/internal/adapters/handler/http"
	"github.com/nutrio-app/progress-engine/internal/adapters/repository"
	"github.com/nutrio-app/progress-engine/internal/core/domain"
	"github.com/nutrio-app/progress-engine/internal/core/services"
)

type countingCache struct {
	noopCache
	invalidates int
}

func (c *countingCache) Invalidate(ctx context.Context) {
	c.invalidates++
}

func setupGoalRouter() (*gin.Engine, *repository.InMemoryGoalRepository, *countingCache) {
	gin.SetMode(gin.TestMode)

	goalRepo := repository.NewInMemoryGoalRepository()
	cache := &countingCache{}
	handler := adapterHTTP.NewGoalHandler(services.NewGoalService(goalRepo, cache))

	r := gin.New()
	r.Use(usernameFromHeader())

	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)

	return r, goalRepo, cache
}

func TestGetGoalsEndpoint(t *testing.T) {
	t.Run("Success: Defaults when nothing is stored", func(t *testing.T) {
		r, _, _ := setupGoalRouter()

		req, _ := http.NewRequest("GET", "/api/v1/progress/goals", nil)
		req.Header.Set("X-Username", "margherita")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"calories":2000`)
		assert.Contains(t, w.Body.String(), `"steps":10000`)
	})

	t.Run("Success: Stored goals win over defaults", func(t *testing.T) {
		r, goalRepo, _ := setupGoalRouter()
		require.NoError(t, goalRepo.Upsert(context.Background(), "margherita", domain.Goals{
			Calories: 1800, Steps: 12000, Water: 2500, Exercise: 45, Sleep: 7,
		}))

		req, _ := http.NewRequest("GET", "/api/v1/progress/goals", nil)
		req.Header.Set("X-Username", "margherita")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"calories":1800`)
	})

	t.Run("Fail: Missing auth context returns 401", func(t *testing.T) {
		r, _, _ := setupGoalRouter()

		req, _ := http.NewRequest("GET", "/api/v1/progress/goals", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateGoalsEndpoint(t *testing.T) {
	t.Run("Success: Persists and invalidates the snapshot cache", func(t *testing.T) {
		r, goalRepo, cache := setupGoalRouter()

		body := `{"calories":1900,"steps":9000,"water":2200,"exercise":40,"sleep":7.5}`
		req, _ := http.NewRequest("PUT", "/api/v1/progress/goals", strings.NewReader(body))
		req.Header.Set("X-Username", "margherita")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, cache.invalidates)

		stored, err := goalRepo.Get(context.Background(), "margherita")
		require.NoError(t, err)
		assert.Equal(t, 1900.0, stored.Calories)
		assert.Equal(t, 7.5, stored.Sleep)
	})

	t.Run("Fail: Negative target returns 400", func(t *testing.T) {
		r, _, cache := setupGoalRouter()

		body := `{"calories":-100,"steps":9000,"water":2200,"exercise":40,"sleep":7}`
		req, _ := http.NewRequest("PUT", "/api/v1/progress/goals", strings.NewReader(body))
		req.Header.Set("X-Username", "margherita")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, cache.invalidates)
	})

	t.Run("Fail: Malformed body returns 400", func(t *testing.T) {
		r, _, _ := setupGoalRouter()

		req, _ := http.NewRequest("PUT", "/api/v1/progress/goals", strings.NewReader(`{"calories":`))
		req.Header.Set("X-Username", "margherita")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: Missing auth context returns 401", func(t *testing.T) {
		r, _, _ := setupGoalRouter()

		req, _ := http.NewRequest("PUT", "/api/v1/progress/goals", strings.NewReader(`{}`))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
