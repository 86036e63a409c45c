package utils

import (
	"fmt"
	"time"
)

// Date represents a calendar date with no time of day
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date
func ParseDate(dateStr string) (Date, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %w", err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from start to end; negative when
// end is before start.
func DaysBetween(start, end Date) int {
	return int(end.Time().Sub(start.Time()).Hours() / 24)
}

// DaysPastMaturity is the number of calendar days asOf lies after the
// maturity date, or 0 when there is no maturity date or it has not passed.
func DaysPastMaturity(maturity *time.Time, asOf time.Time) int {
	if maturity == nil {
		return 0
	}
	days := DaysBetween(DateOf(maturity.UTC()), DateOf(asOf.UTC()))
	if days < 0 {
		return 0
	}
	return days
}

// StartOfDay is midnight UTC of t's UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	return DateOf(t.UTC()).Time()
}
