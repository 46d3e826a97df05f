package domain

// Period-flavored reports derived from a ProgressSnapshot by pure
// transformations. Threshold rules live in the services package.

type DailySummary struct {
	Date            string   `json:"date"`
	Achievements    []string `json:"achievements"`
	Recommendations []string `json:"recommendations"`
}

type WeeklySummary struct {
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`

	// Window totals reported as-is: the snapshot already aggregates the
	// whole week, so these equal the current values rather than true
	// per-day averages.
	AvgCalories      float64  `json:"avg_calories"`
	AvgSteps         float64  `json:"avg_steps"`
	ExerciseMinutes  float64  `json:"exercise_minutes"`
	ExerciseSessions int      `json:"exercise_sessions"`
	WeightTrend      string   `json:"weight_trend"`
	Achievements     []string `json:"achievements"`
}

type MonthlySummary struct {
	MonthStart string `json:"month_start"`
	MonthEnd   string `json:"month_end"`

	TotalCalories    float64  `json:"total_calories"`
	TotalSteps       float64  `json:"total_steps"`
	ExerciseMinutes  float64  `json:"exercise_minutes"`
	ExerciseSessions int      `json:"exercise_sessions"`
	WeightChange     float64  `json:"weight_change"`
	WeightTrend      string   `json:"weight_trend"`
	Achievements     []string `json:"achievements"`
}
