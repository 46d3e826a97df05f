package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimeRange = errors.New("invalid time range (must be daily, weekly, monthly, or custom)")
)

type TimeRange string

const (
	TimeRangeDaily   TimeRange = "daily"
	TimeRangeWeekly  TimeRange = "weekly"
	TimeRangeMonthly TimeRange = "monthly"
	TimeRangeCustom  TimeRange = "custom"
)

func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case TimeRangeDaily, TimeRangeWeekly, TimeRangeMonthly, TimeRangeCustom:
		return TimeRange(s), nil
	default:
		return "", ErrInvalidTimeRange
	}
}

// DateRange is an inclusive (start, end) day pair. Start never comes after End.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// ResolveDateRange turns a period selector plus "now" into concrete bounds.
// Daily is a same-day window (today as both endpoints). Weekly snaps back to
// the most recent Monday. Monthly covers the 1st through the last calendar day
// of the current month. Custom passes caller bounds through, defaulting either
// missing endpoint to today. It never fails: a reversed custom range is swapped.
func ResolveDateRange(r TimeRange, now time.Time, customStart, customEnd *time.Time) DateRange {
	today := truncateToDay(now)

	switch r {
	case TimeRangeWeekly:
		wd := int(now.Weekday())
		if wd == 0 {
			wd = 7 // time.Sunday is 0, we count Monday as day 1
		}
		start := today.AddDate(0, 0, -(wd - 1))
		return DateRange{Start: start, End: start.AddDate(0, 0, 6)}

	case TimeRangeMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		// day 0 of the next month is the last day of this one
		end := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
		return DateRange{Start: start, End: end}

	case TimeRangeCustom:
		start, end := today, today
		if customStart != nil {
			start = truncateToDay(*customStart)
		}
		if customEnd != nil {
			end = truncateToDay(*customEnd)
		}
		if start.After(end) {
			start, end = end, start
		}
		return DateRange{Start: start, End: end}

	default: // daily
		return DateRange{Start: today, End: today}
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
