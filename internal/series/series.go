// Package series turns sparse per-day aggregates into a continuous daily series.
package series

import "time"

const dayKeyLayout = "2006-01-02"

// Day is the income and expense total of one calendar day, in milliunits.
type Day struct {
	Date     time.Time
	Income   int64
	Expenses int64
}

// FillMissingDays returns one Day per calendar day in [start, end], ascending,
// using the input record for days that have one and zero totals otherwise.
// Days are compared as calendar dates in loc.
//
// An empty input yields an empty result whatever the range: callers treat that
// as "no data", which is not the same as a range of zero days.
func FillMissingDays(active []Day, start, end time.Time, loc *time.Location) []Day {
	if len(active) == 0 {
		return []Day{}
	}
	if loc == nil {
		loc = time.UTC
	}

	byDay := make(map[string]Day, len(active))
	for _, day := range active {
		key := day.Date.In(loc).Format(dayKeyLayout)
		if _, seen := byDay[key]; !seen {
			byDay[key] = day
		}
	}

	first := StartOfDay(start, loc)
	last := StartOfDay(end, loc)

	filled := make([]Day, 0, DaysBetween(first, last))
	for current := first; !current.After(last); current = current.AddDate(0, 0, 1) {
		if found, ok := byDay[current.Format(dayKeyLayout)]; ok {
			filled = append(filled, found)
			continue
		}
		filled = append(filled, Day{Date: current})
	}

	return filled
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// DaysBetween counts the calendar days in [start, end]; zero when end precedes start.
func DaysBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int((civilDay(end).Unix()-civilDay(start).Unix())/secondsPerDay) + 1
}

const secondsPerDay = 24 * 60 * 60

// civilDay moves t's calendar date to UTC midnight so DST shifts do not skew day counts.
func civilDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
