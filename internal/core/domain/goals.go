package domain

import "errors"

var (
	ErrGoalsNotFound = errors.New("goals not found")
	ErrInvalidGoals  = errors.New("goal targets cannot be negative")
)

// Default targets used whenever a user has no stored goals or the goals
// source is unreachable. The steps target is intentionally NOT read from
// here by the steps aggregator (see AggregateSteps).
const (
	DefaultCaloriesGoal = 2000
	DefaultStepsGoal    = 10000
	DefaultWaterGoal    = 2000 // ml
	DefaultExerciseGoal = 30   // minutes
	DefaultSleepGoal    = 8    // hours
)

type Goals struct {
	Calories float64 `json:"calories" db:"calories"`
	Steps    float64 `json:"steps" db:"steps"`
	Water    float64 `json:"water" db:"water"`
	Exercise float64 `json:"exercise" db:"exercise"`
	Sleep    float64 `json:"sleep" db:"sleep"`
}

func DefaultGoals() Goals {
	return Goals{
		Calories: DefaultCaloriesGoal,
		Steps:    DefaultStepsGoal,
		Water:    DefaultWaterGoal,
		Exercise: DefaultExerciseGoal,
		Sleep:    DefaultSleepGoal,
	}
}

func (g Goals) Validate() error {
	if g.Calories < 0 || g.Steps < 0 || g.Water < 0 || g.Exercise < 0 || g.Sleep < 0 {
		return ErrInvalidGoals
	}
	return nil
}
