package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/carson-networks/finance-dashboard/internal/series"
)

const (
	DayLayout        = "2006-01-02"
	defaultRangeDays = 30
	// MaxRangeDays bounds every range, a leap year fits.
	MaxRangeDays = 366
)

var ErrInvalidDate = errors.New("invalid date")

// DateRange is an inclusive range of calendar days, both ends at midnight.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days counts the calendar days in the range.
func (r DateRange) Days() int {
	return series.DaysBetween(r.Start, r.End)
}

// EndExclusive is midnight after the last day, the upper bound for timestamp filters.
func (r DateRange) EndExclusive() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// Previous is the range of equal length ending the day before r starts.
func (r DateRange) Previous() DateRange {
	days := r.Days()
	if days < 1 {
		days = 1
	}
	end := r.Start.AddDate(0, 0, -1)
	return DateRange{
		Start: end.AddDate(0, 0, -(days - 1)),
		End:   end,
	}
}

// ParseDay parses a strict YYYY-MM-DD date as midnight in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DayLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, value)
	}
	return day, nil
}

// ParseDate accepts either a YYYY-MM-DD day, taken as midnight in loc, or an
// RFC3339 timestamp.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if day, err := ParseDay(value, loc); err == nil {
		return day, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD or RFC3339", ErrInvalidDate, value)
	}
	return parsed, nil
}

// ResolveRange applies the defaults: to is today, from is 30 days before to.
// Ranges longer than MaxRangeDays are rejected with ErrInvalidDate.
func ResolveRange(from, to string, now time.Time, loc *time.Location) (DateRange, error) {
	end := series.StartOfDay(now, loc)
	if to != "" {
		parsed, err := ParseDay(to, loc)
		if err != nil {
			return DateRange{}, err
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -defaultRangeDays)
	if from != "" {
		parsed, err := ParseDay(from, loc)
		if err != nil {
			return DateRange{}, err
		}
		start = parsed
	}

	if days := series.DaysBetween(start, end); days > MaxRangeDays {
		return DateRange{}, fmt.Errorf("%w range: %d days, at most %d allowed", ErrInvalidDate, days, MaxRangeDays)
	}

	return DateRange{Start: start, End: end}, nil
}
