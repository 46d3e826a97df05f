package services

import (
	"sort"

	"github.com/nutrio-app/progress-engine/internal/core/domain"
)

// Pure per-metric reducers. Each folds raw fetch results into one summary
// value object and never fails: missing input degrades to the metric's
// canonical empty form.

const weightTrendWindow = 7

// AggregateCalories sums the window's calorie entries against the goal.
// Remaining is clamped to zero while percentage is clamped to [0,1]; the
// asymmetry is intentional (over-goal shows 100%, never negative remaining).
func AggregateCalories(entries []domain.CalorieEntry, goals domain.Goals) domain.CaloriesData {
	goal := goals.Calories
	if goal <= 0 {
		goal = domain.DefaultCaloriesGoal
	}

	var current float64
	for _, e := range entries {
		current += e.Calories.Float64()
	}

	return domain.CaloriesData{
		Current:    current,
		Goal:       goal,
		Remaining:  maxf(0, goal-current),
		Percentage: clamp(current/goal, 0, 1),
	}
}

// AggregateWeight reports the latest reading and a trend computed over
// entry-count windows, not calendar days: the mean of the most recent 7
// entries against the mean of the up-to-7 entries before them. A difference
// above 0.5 in either direction breaks "stable".
func AggregateWeight(entries []domain.WeightEntry) domain.WeightData {
	if len(entries) == 0 {
		return domain.EmptyWeightData()
	}

	sorted := make([]domain.WeightEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	data := domain.WeightData{
		Current: sorted[len(sorted)-1].Weight.Float64(),
		Trend:   domain.TrendStable,
	}

	if len(sorted) < 2 {
		return data
	}

	data.Previous = sorted[len(sorted)-2].Weight.Float64()
	data.Change = data.Current - data.Previous

	recentStart := len(sorted) - weightTrendWindow
	if recentStart < 0 {
		recentStart = 0
	}
	priorStart := recentStart - weightTrendWindow
	if priorStart < 0 {
		priorStart = 0
	}

	recent := mean(sorted[recentStart:])
	prior := sorted[priorStart:recentStart]
	if len(prior) == 0 {
		return data
	}

	switch diff := recent - mean(prior); {
	case diff > 0.5:
		data.Trend = domain.TrendIncreasing
	case diff < -0.5:
		data.Trend = domain.TrendDecreasing
	}

	return data
}

// AggregateExercise folds the window's workouts. A zero total duration with
// recorded burned calories yields an intensity of 0, never NaN or Inf.
func AggregateExercise(entries []domain.WorkoutEntry) domain.ExerciseData {
	data := domain.ExerciseData{Sessions: len(entries)}

	for _, e := range entries {
		data.Duration += e.Duration.Float64()
		data.CaloriesBurned += e.CaloriesBurned.Float64()
	}

	if data.Duration > 0 {
		data.AverageIntensity = data.CaloriesBurned / data.Duration
	}

	return data
}

// AggregateSteps reconciles the two platform step readings by taking the
// higher one; both providers may report overlapping counts, so summing would
// double-count. The goal is pinned at 10000 regardless of the user's stored
// goals map, matching the platform-fixed target the dashboards assume.
func AggregateSteps(health domain.HealthMetrics) domain.StepsData {
	current := maxf(health.Steps.Float64(), health.PedometerSteps.Float64())
	const goal = float64(domain.DefaultStepsGoal)

	return domain.StepsData{
		Current:    current,
		Goal:       goal,
		Remaining:  clamp(goal-current, 0, goal),
		Percentage: clamp(current/goal, 0, 1),
	}
}

// AggregateWater only carries the goal for now; no source reports intake yet.
func AggregateWater(goals domain.Goals) domain.WaterIntakeData {
	goal := goals.Water
	if goal <= 0 {
		goal = domain.DefaultWaterGoal
	}

	return domain.WaterIntakeData{
		Goal:      goal,
		Remaining: goal,
	}
}

func AggregateSleep(health domain.HealthMetrics) domain.SleepData {
	return domain.SleepData{
		Duration: health.SleepDuration.Float64(),
		Quality:  health.SleepQuality.Float64(),
		Bedtime:  health.Bedtime,
		WakeTime: health.WakeTime,
	}
}

func AggregateHeartRate(health domain.HealthMetrics) domain.HeartRateData {
	zones := health.HeartRateZones
	if zones == nil {
		zones = map[string]float64{}
	}

	return domain.HeartRateData{
		Average: health.HeartRateAvg.Float64(),
		Resting: health.HeartRateResting.Float64(),
		Max:     health.HeartRateMax.Float64(),
		Zones:   zones,
	}
}

func mean(entries []domain.WeightEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Weight.Float64()
	}
	return sum / float64(len(entries))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
