package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrio-app/progress-engine/internal/core/domain"
)

func sampleSnapshot() *domain.ProgressSnapshot {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	dr := domain.ResolveDateRange(domain.TimeRangeWeekly, now, nil, nil)

	return &domain.ProgressSnapshot{
		ID:        "b9f9a9f2-6a1b-4c77-9f93-0a4c5a3f1e2d",
		Username:  "margherita",
		TimeRange: domain.TimeRangeWeekly,
		DateRange: dr,
		Calories: domain.CaloriesData{
			Current: 2200, Goal: 2000, Remaining: 0, Percentage: 1,
		},
		Weight: domain.WeightData{
			Current: 77, Previous: 76, Change: 1, Trend: domain.TrendIncreasing,
		},
		Exercise: domain.ExerciseData{
			Duration: 120.5, CaloriesBurned: 840, Sessions: 4, AverageIntensity: 840 / 120.5,
		},
		Steps: domain.StepsData{
			Current: 64213, Goal: 10000, Remaining: 0, Percentage: 1,
		},
		WaterIntake: domain.WaterIntakeData{
			Goal: 2000, Remaining: 2000,
		},
		Sleep: domain.SleepData{
			Duration: 7.5, Quality: 8, Bedtime: "23:10", WakeTime: "06:40",
		},
		HeartRate: domain.HeartRateData{
			Average: 68, Resting: 54, Max: 171,
			Zones: map[string]float64{"fat_burn": 42, "cardio": 18, "peak": 3},
		},
		Goals:       domain.DefaultGoals(),
		LastUpdated: now,
	}
}

func TestProgressSnapshot_JSONRoundTrip(t *testing.T) {
	t.Run("All fields reproduce exactly", func(t *testing.T) {
		orig := sampleSnapshot()

		data, err := json.Marshal(orig)
		require.NoError(t, err)

		back, err := domain.SnapshotFromJSON(data)
		require.NoError(t, err)

		assert.Equal(t, orig, back)

		// serialized forms must match too
		again, err := json.Marshal(back)
		require.NoError(t, err)
		assert.JSONEq(t, string(data), string(again))
	})

	t.Run("Tolerates integer and float source numerics alike", func(t *testing.T) {
		// same snapshot serialized twice with differing numeric subtypes
		intBody := `{"date":"2024-05-13","calories":500}`
		floatBody := `{"date":"2024-05-13","calories":500.0}`

		var a, b domain.CalorieEntry
		require.NoError(t, json.Unmarshal([]byte(intBody), &a))
		require.NoError(t, json.Unmarshal([]byte(floatBody), &b))

		assert.Equal(t, a, b)
	})
}

func TestEmptySnapshot(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	dr := domain.ResolveDateRange(domain.TimeRangeDaily, now, nil, nil)

	snap := domain.EmptySnapshot("margherita", domain.TimeRangeDaily, dr, now)

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, "margherita", snap.Username)
	assert.Equal(t, domain.TimeRangeDaily, snap.TimeRange)
	assert.Equal(t, dr, snap.DateRange)

	assert.Equal(t, domain.EmptyCaloriesData(), snap.Calories)
	assert.Equal(t, domain.EmptyWeightData(), snap.Weight)
	assert.Equal(t, domain.EmptyExerciseData(), snap.Exercise)
	assert.Equal(t, domain.EmptyStepsData(), snap.Steps)
	assert.Equal(t, domain.EmptyWaterIntakeData(), snap.WaterIntake)
	assert.Equal(t, domain.EmptySleepData(), snap.Sleep)
	assert.Equal(t, domain.EmptyHeartRateData(), snap.HeartRate)
	assert.Equal(t, domain.DefaultGoals(), snap.Goals)
}

func TestEmptyMetricForms(t *testing.T) {
	t.Run("Empty calories carries the default goal", func(t *testing.T) {
		e := domain.EmptyCaloriesData()
		assert.Equal(t, 0.0, e.Current)
		assert.Equal(t, 2000.0, e.Goal)
		assert.Equal(t, 2000.0, e.Remaining)
		assert.Equal(t, 0.0, e.Percentage)
	})

	t.Run("Empty weight trend is stable", func(t *testing.T) {
		assert.Equal(t, domain.TrendStable, domain.EmptyWeightData().Trend)
	})

	t.Run("Empty heart rate has a non-nil zones map", func(t *testing.T) {
		assert.NotNil(t, domain.EmptyHeartRateData().Zones)
		assert.Empty(t, domain.EmptyHeartRateData().Zones)
	})
}
