// Package datemath does day-granularity arithmetic on calendar dates.
//
// Every function works on civil.Date values, so the result never depends on
// time of day, daylight-saving shifts or the zone the process runs in.
// Wall-clock instants enter only through DateOf and Today.
package datemath

import (
	"time"

	"cloud.google.com/go/civil"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
)

// Layout is the textual form of dates crossing the API and storage boundary.
const Layout = "2006-01-02"

// DaysBetween returns the whole number of calendar days from a to b.
// The result is negative when b is before a.
func DaysBetween(a, b civil.Date) (int, error) {
	if !a.IsValid() || !b.IsValid() {
		return 0, errorvalues.ErrInvalidDate
	}
	return b.DaysSince(a), nil
}

// AddDays shifts d by n calendar days (n may be negative).
func AddDays(d civil.Date, n int) (civil.Date, error) {
	if !d.IsValid() {
		return civil.Date{}, errorvalues.ErrInvalidDate
	}
	return d.AddDays(n), nil
}

// DaysRemaining is how many days of expectedDuration are left on today for
// a goal started on start. Overdue goals get a negative value.
func DaysRemaining(start civil.Date, expectedDuration int, today civil.Date) (int, error) {
	elapsed, err := DaysBetween(start, today)
	if err != nil {
		return 0, err
	}
	return expectedDuration - elapsed, nil
}

// Parse reads an ISO 8601 date-only value such as 2024-01-31.
func Parse(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil || !d.IsValid() {
		return civil.Date{}, errorvalues.ErrInvalidDate
	}
	return d, nil
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) civil.Date {
	return civil.DateOf(t)
}

// Today is the current calendar day in loc. Only boundary adapters call it;
// the core takes "today" as an argument.
func Today(loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(time.Now().In(loc))
}

// ToTime converts d to midnight UTC, the form used for SQL date parameters.
func ToTime(d civil.Date) time.Time {
	return d.In(time.UTC)
}
