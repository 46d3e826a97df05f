package services

import (
	"context"

	"github.com/nutrio-app/progress-engine/internal/core/domain"
)

// Threshold tables behind the period summaries. Purely declarative; nothing
// here is tunable at runtime.
const (
	dailyExerciseMinTarget = 15
	dailySleepMinHours     = 7

	weeklySessionsMilestone = 5
	weeklyStepsMilestone    = 70000

	monthlySessionsMilestone = 20
	monthlyStepsMilestone    = 300000
)

const dateLayout = "2006-01-02"

// SummaryService wraps the aggregation pipeline with period-specific derived
// insights for the reporting views.
type SummaryService struct {
	progress *ProgressService
}

func NewSummaryService(progress *ProgressService) *SummaryService {
	return &SummaryService{progress: progress}
}

func (s *SummaryService) Daily(ctx context.Context, username string) domain.DailySummary {
	snap := s.progress.GetProgress(ctx, ProgressInput{Username: username, Range: domain.TimeRangeDaily})
	return BuildDailySummary(snap)
}

func (s *SummaryService) Weekly(ctx context.Context, username string) domain.WeeklySummary {
	snap := s.progress.GetProgress(ctx, ProgressInput{Username: username, Range: domain.TimeRangeWeekly})
	return BuildWeeklySummary(snap)
}

func (s *SummaryService) Monthly(ctx context.Context, username string) domain.MonthlySummary {
	snap := s.progress.GetProgress(ctx, ProgressInput{Username: username, Range: domain.TimeRangeMonthly})
	return BuildMonthlySummary(snap)
}

// BuildDailySummary applies the daily threshold rules to a snapshot.
func BuildDailySummary(snap *domain.ProgressSnapshot) domain.DailySummary {
	summary := domain.DailySummary{
		Date:            snap.DateRange.Start.Format(dateLayout),
		Achievements:    []string{},
		Recommendations: []string{},
	}

	if snap.Calories.Percentage >= 1.0 {
		summary.Achievements = append(summary.Achievements, "Calorie goal reached")
	}
	if snap.Steps.Percentage >= 1.0 {
		summary.Achievements = append(summary.Achievements, "Step goal reached")
	}
	if snap.Exercise.Duration >= snap.Goals.Exercise && snap.Goals.Exercise > 0 {
		summary.Achievements = append(summary.Achievements, "Exercise goal reached")
	}

	if snap.Exercise.Duration < dailyExerciseMinTarget {
		summary.Recommendations = append(summary.Recommendations, "Try to get at least 15 minutes of exercise")
	}
	if snap.WaterIntake.Goal > 0 && snap.WaterIntake.Current < snap.WaterIntake.Goal/2 {
		summary.Recommendations = append(summary.Recommendations, "Drink more water throughout the day")
	}
	if snap.Sleep.Duration > 0 && snap.Sleep.Duration < dailySleepMinHours {
		summary.Recommendations = append(summary.Recommendations, "Aim for at least 7 hours of sleep")
	}

	return summary
}

// BuildWeeklySummary reports window totals plus weekly milestones. The
// "averages" equal the snapshot's current values: the snapshot already
// aggregates the whole window, which is a known simplification rather than a
// true per-day mean.
func BuildWeeklySummary(snap *domain.ProgressSnapshot) domain.WeeklySummary {
	summary := domain.WeeklySummary{
		WeekStart:        snap.DateRange.Start.Format(dateLayout),
		WeekEnd:          snap.DateRange.End.Format(dateLayout),
		AvgCalories:      snap.Calories.Current,
		AvgSteps:         snap.Steps.Current,
		ExerciseMinutes:  snap.Exercise.Duration,
		ExerciseSessions: snap.Exercise.Sessions,
		WeightTrend:      snap.Weight.Trend,
		Achievements:     []string{},
	}

	if snap.Exercise.Sessions >= weeklySessionsMilestone {
		summary.Achievements = append(summary.Achievements, "5+ workout sessions this week")
	}
	if snap.Steps.Current >= weeklyStepsMilestone {
		summary.Achievements = append(summary.Achievements, "70,000 steps this week")
	}

	return summary
}

// BuildMonthlySummary follows the weekly pattern with higher thresholds.
func BuildMonthlySummary(snap *domain.ProgressSnapshot) domain.MonthlySummary {
	summary := domain.MonthlySummary{
		MonthStart:       snap.DateRange.Start.Format(dateLayout),
		MonthEnd:         snap.DateRange.End.Format(dateLayout),
		TotalCalories:    snap.Calories.Current,
		TotalSteps:       snap.Steps.Current,
		ExerciseMinutes:  snap.Exercise.Duration,
		ExerciseSessions: snap.Exercise.Sessions,
		WeightChange:     snap.Weight.Change,
		WeightTrend:      snap.Weight.Trend,
		Achievements:     []string{},
	}

	if snap.Exercise.Sessions >= monthlySessionsMilestone {
		summary.Achievements = append(summary.Achievements, "20+ workout sessions this month")
	}
	if snap.Steps.Current >= monthlyStepsMilestone {
		summary.Achievements = append(summary.Achievements, "300,000 steps this month")
	}

	return summary
}
