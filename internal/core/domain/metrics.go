package domain

// Raw per-entry records as the upstream nutrition backend returns them.
// Dates stay ISO-8601 strings; they are only used for ordering and ISO dates
// sort correctly as text.

type CalorieEntry struct {
	Date     string    `json:"date"`
	Calories FlexFloat `json:"calories"`
}

type WeightEntry struct {
	Date   string    `json:"date"`
	Weight FlexFloat `json:"weight"`
}

type WorkoutEntry struct {
	Date           string    `json:"date"`
	Duration       FlexFloat `json:"duration"`
	CaloriesBurned FlexFloat `json:"calories_burned"`
}

// BackendMetrics bundles the three upstream metric lists fetched for one
// (user, date range) window. Any of the lists may be empty when its source
// call degraded.
type BackendMetrics struct {
	Calories []CalorieEntry
	Weights  []WeightEntry
	Workouts []WorkoutEntry
}

// HealthMetrics is the payload read from an on-device health platform.
// Steps and PedometerSteps may both carry overlapping counts from different
// providers; the aggregator reconciles them by taking the higher reading.
type HealthMetrics struct {
	Steps          FlexFloat `json:"steps"`
	PedometerSteps FlexFloat `json:"pedometer_steps"`

	HeartRateAvg     FlexFloat          `json:"heart_rate_avg"`
	HeartRateResting FlexFloat          `json:"heart_rate_resting"`
	HeartRateMax     FlexFloat          `json:"heart_rate_max"`
	HeartRateZones   map[string]float64 `json:"heart_rate_zones,omitempty"`

	SleepDuration FlexFloat `json:"sleep_duration"`
	SleepQuality  FlexFloat `json:"sleep_quality"`
	Bedtime       string    `json:"bedtime,omitempty"`
	WakeTime      string    `json:"wake_time,omitempty"`
}

func EmptyHealthMetrics() HealthMetrics {
	return HealthMetrics{}
}
