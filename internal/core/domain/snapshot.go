package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

type CaloriesData struct {
	Current    float64 `json:"current"`
	Goal       float64 `json:"goal"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

func EmptyCaloriesData() CaloriesData {
	return CaloriesData{Goal: DefaultCaloriesGoal, Remaining: DefaultCaloriesGoal}
}

type WeightData struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Change   float64 `json:"change"`
	Trend    string  `json:"trend"`
}

func EmptyWeightData() WeightData {
	return WeightData{Trend: TrendStable}
}

type ExerciseData struct {
	Duration         float64 `json:"duration"`
	CaloriesBurned   float64 `json:"calories_burned"`
	Sessions         int     `json:"sessions"`
	AverageIntensity float64 `json:"average_intensity"`
}

func EmptyExerciseData() ExerciseData {
	return ExerciseData{}
}

type StepsData struct {
	Current    float64 `json:"current"`
	Goal       float64 `json:"goal"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

func EmptyStepsData() StepsData {
	return StepsData{Goal: DefaultStepsGoal, Remaining: DefaultStepsGoal}
}

type WaterIntakeData struct {
	Current    float64 `json:"current"`
	Goal       float64 `json:"goal"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

func EmptyWaterIntakeData() WaterIntakeData {
	return WaterIntakeData{Goal: DefaultWaterGoal, Remaining: DefaultWaterGoal}
}

type SleepData struct {
	Duration float64 `json:"duration"`
	Quality  float64 `json:"quality"`
	Bedtime  string  `json:"bedtime,omitempty"`
	WakeTime string  `json:"wake_time,omitempty"`
}

func EmptySleepData() SleepData {
	return SleepData{}
}

type HeartRateData struct {
	Average float64            `json:"average"`
	Resting float64            `json:"resting"`
	Max     float64            `json:"max"`
	Zones   map[string]float64 `json:"zones"`
}

func EmptyHeartRateData() HeartRateData {
	return HeartRateData{Zones: map[string]float64{}}
}

// ProgressSnapshot is one fully-aggregated progress result for a user and a
// resolved time window. It is built fresh on every aggregation pass, never
// mutated afterwards, and superseded by the next pass.
type ProgressSnapshot struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	TimeRange TimeRange `json:"time_range"`
	DateRange DateRange `json:"date_range"`

	Calories    CaloriesData    `json:"calories"`
	Weight      WeightData      `json:"weight"`
	Exercise    ExerciseData    `json:"exercise"`
	Steps       StepsData       `json:"steps"`
	WaterIntake WaterIntakeData `json:"water_intake"`
	Sleep       SleepData       `json:"sleep"`
	HeartRate   HeartRateData   `json:"heart_rate"`

	Goals Goals `json:"goals"`

	// LastUpdated is for freshness display only, it is not a cache key.
	LastUpdated time.Time `json:"last_updated"`
}

// EmptySnapshot is the caller-visible fallback when the whole pipeline trips:
// every metric block in its canonical empty form plus default goals.
func EmptySnapshot(username string, r TimeRange, dr DateRange, now time.Time) *ProgressSnapshot {
	return &ProgressSnapshot{
		ID:          uuid.NewString(),
		Username:    username,
		TimeRange:   r,
		DateRange:   dr,
		Calories:    EmptyCaloriesData(),
		Weight:      EmptyWeightData(),
		Exercise:    EmptyExerciseData(),
		Steps:       EmptyStepsData(),
		WaterIntake: EmptyWaterIntakeData(),
		Sleep:       EmptySleepData(),
		HeartRate:   EmptyHeartRateData(),
		Goals:       DefaultGoals(),
		LastUpdated: now.UTC(),
	}
}

func (s *ProgressSnapshot) MarshalBinary() ([]byte, error) {
	return json.Marshal(s)
}

func SnapshotFromJSON(data []byte) (*ProgressSnapshot, error) {
	var snap ProgressSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
