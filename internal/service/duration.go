package service

import (
	"cloud.google.com/go/civil"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/datemath"
)

// DurationMode selects which of the two schedule inputs the caller supplied.
type DurationMode string

const (
	DurationModeDays    DurationMode = "days"
	DurationModeEndDate DurationMode = "end_date"
)

type DurationInput struct {
	Mode             DurationMode
	StartDate        civil.Date
	ExpectedDuration *int
	TargetDate       *civil.Date
}

// Schedule is a reconciled start/target/duration triple.
type Schedule struct {
	StartDate        civil.Date
	TargetDate       civil.Date
	ExpectedDuration int
}

// ReconcileDuration derives whichever of target date and expected duration
// the caller left out. With no mode set, a duration wins over a target date.
func ReconcileDuration(in DurationInput) (Schedule, error) {
	if !in.StartDate.IsValid() {
		return Schedule{}, errorvalues.ErrInvalidDate
	}
	mode := in.Mode
	if mode == "" {
		switch {
		case in.ExpectedDuration != nil:
			mode = DurationModeDays
		case in.TargetDate != nil:
			mode = DurationModeEndDate
		default:
			return Schedule{}, errorvalues.ErrMissingDurationInput
		}
	}
	switch mode {
	case DurationModeDays:
		if in.ExpectedDuration == nil {
			return Schedule{}, errorvalues.ErrMissingDurationInput
		}
		if *in.ExpectedDuration <= 0 {
			return Schedule{}, errorvalues.ErrInvalidDuration
		}
		target, err := datemath.AddDays(in.StartDate, *in.ExpectedDuration)
		if err != nil {
			return Schedule{}, err
		}
		return Schedule{
			StartDate:        in.StartDate,
			TargetDate:       target,
			ExpectedDuration: *in.ExpectedDuration,
		}, nil
	case DurationModeEndDate:
		if in.TargetDate == nil {
			return Schedule{}, errorvalues.ErrMissingDurationInput
		}
		days, err := datemath.DaysBetween(in.StartDate, *in.TargetDate)
		if err != nil {
			return Schedule{}, err
		}
		// Start and target are unordered here
		if days < 0 {
			days = -days
		}
		return Schedule{
			StartDate:        in.StartDate,
			TargetDate:       *in.TargetDate,
			ExpectedDuration: days,
		}, nil
	default:
		return Schedule{}, errorvalues.ErrMissingDurationInput
	}
}
