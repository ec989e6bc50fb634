package service

import (
	"cloud.google.com/go/civil"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/datemath"
	"github.com/limbo/goalkeeper/pkg/entity"
)

// StreakOutcome tells what a single recorded update did to a streak.
type StreakOutcome string

const (
	StreakStarted   StreakOutcome = "started"
	StreakExtended  StreakOutcome = "extended"
	StreakReset     StreakOutcome = "reset"
	StreakUnchanged StreakOutcome = "unchanged"
)

// AdvanceStreak computes the streak after one progress update recorded on
// today. prev is the stored streak or nil when the goal has none yet; it is
// never modified.
//
// The gap is counted in whole calendar days since prev.LastUpdated:
// exactly one day extends the streak, more than one resets it to 1, and zero
// or a negative gap (several updates on one day, or a clock running behind)
// leaves the count as is. LastUpdated always becomes today.
func AdvanceStreak(prev *entity.Streak, today civil.Date) (*entity.Streak, StreakOutcome, error) {
	if !today.IsValid() {
		return nil, "", errorvalues.ErrInvalidDate
	}
	if prev == nil {
		return &entity.Streak{
			CurrentStreak: 1,
			LongestStreak: 1,
			LastUpdated:   today,
		}, StreakStarted, nil
	}
	gap, err := datemath.DaysBetween(prev.LastUpdated, today)
	if err != nil {
		return nil, "", err
	}
	next := *prev
	var outcome StreakOutcome
	switch {
	case gap == 1:
		next.CurrentStreak++
		outcome = StreakExtended
	case gap > 1:
		next.CurrentStreak = 1
		outcome = StreakReset
	default:
		outcome = StreakUnchanged
	}
	next.LongestStreak = max(next.LongestStreak, next.CurrentStreak)
	next.LastUpdated = today
	return &next, outcome, nil
}
