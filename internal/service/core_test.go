package service_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/pkg/datemath"
	"github.com/limbo/goalkeeper/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

func intPtr(v int) *int {
	return &v
}

func TestReconcileDuration(t *testing.T) {
	target := date(2024, 1, 15)
	before := date(2023, 12, 22)
	testCases := []struct {
		Name        string
		Input       service.DurationInput
		Expected    service.Schedule
		ExpectedErr error
	}{
		{
			Name: "days mode",
			Input: service.DurationInput{
				Mode:             service.DurationModeDays,
				StartDate:        date(2024, 1, 1),
				ExpectedDuration: intPtr(10),
			},
			Expected: service.Schedule{StartDate: date(2024, 1, 1), TargetDate: date(2024, 1, 11), ExpectedDuration: 10},
		},
		{
			Name: "end date mode",
			Input: service.DurationInput{
				Mode:       service.DurationModeEndDate,
				StartDate:  date(2024, 1, 1),
				TargetDate: &target,
			},
			Expected: service.Schedule{StartDate: date(2024, 1, 1), TargetDate: target, ExpectedDuration: 14},
		},
		{
			Name: "inferred days mode wins",
			Input: service.DurationInput{
				StartDate:        date(2024, 2, 20),
				ExpectedDuration: intPtr(10),
				TargetDate:       &target,
			},
			Expected: service.Schedule{StartDate: date(2024, 2, 20), TargetDate: date(2024, 3, 1), ExpectedDuration: 10},
		},
		{
			Name: "inferred end date mode",
			Input: service.DurationInput{
				StartDate:  date(2024, 1, 1),
				TargetDate: &target,
			},
			Expected: service.Schedule{StartDate: date(2024, 1, 1), TargetDate: target, ExpectedDuration: 14},
		},
		{
			Name: "target before start keeps target",
			Input: service.DurationInput{
				Mode:       service.DurationModeEndDate,
				StartDate:  date(2024, 1, 1),
				TargetDate: &before,
			},
			Expected: service.Schedule{StartDate: date(2024, 1, 1), TargetDate: before, ExpectedDuration: 10},
		},
		{
			Name:        "nothing given",
			Input:       service.DurationInput{StartDate: date(2024, 1, 1)},
			ExpectedErr: errorvalues.ErrMissingDurationInput,
		},
		{
			Name:        "days mode without duration",
			Input:       service.DurationInput{Mode: service.DurationModeDays, StartDate: date(2024, 1, 1), TargetDate: &target},
			ExpectedErr: errorvalues.ErrMissingDurationInput,
		},
		{
			Name:        "end date mode without target",
			Input:       service.DurationInput{Mode: service.DurationModeEndDate, StartDate: date(2024, 1, 1), ExpectedDuration: intPtr(3)},
			ExpectedErr: errorvalues.ErrMissingDurationInput,
		},
		{
			Name:        "zero duration",
			Input:       service.DurationInput{Mode: service.DurationModeDays, StartDate: date(2024, 1, 1), ExpectedDuration: intPtr(0)},
			ExpectedErr: errorvalues.ErrInvalidDuration,
		},
		{
			Name:        "invalid start",
			Input:       service.DurationInput{StartDate: civil.Date{}, ExpectedDuration: intPtr(3)},
			ExpectedErr: errorvalues.ErrInvalidDate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			res, err := service.ReconcileDuration(tc.Input)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, res)
		})
	}
}

func TestReconciledScheduleInvariant(t *testing.T) {
	start := date(2024, 2, 27)
	for days := 1; days <= 400; days += 7 {
		s, err := service.ReconcileDuration(service.DurationInput{StartDate: start, ExpectedDuration: intPtr(days)})
		require.NoError(t, err)
		back, err := service.ReconcileDuration(service.DurationInput{StartDate: start, TargetDate: &s.TargetDate})
		require.NoError(t, err)
		assert.Equal(t, days, back.ExpectedDuration)
		expected, err := datemath.AddDays(start, back.ExpectedDuration)
		require.NoError(t, err)
		assert.Equal(t, expected, back.TargetDate)
	}
}

func TestAdvanceStreak(t *testing.T) {
	t.Run("first update starts streak", func(t *testing.T) {
		next, outcome, err := service.AdvanceStreak(nil, date(2024, 3, 1))
		require.NoError(t, err)
		assert.Equal(t, service.StreakStarted, outcome)
		assert.Equal(t, entity.Streak{CurrentStreak: 1, LongestStreak: 1, LastUpdated: date(2024, 3, 1)}, *next)
	})
	t.Run("next day extends", func(t *testing.T) {
		prev := &entity.Streak{CurrentStreak: 3, LongestStreak: 5, LastUpdated: date(2024, 3, 1)}
		next, outcome, err := service.AdvanceStreak(prev, date(2024, 3, 2))
		require.NoError(t, err)
		assert.Equal(t, service.StreakExtended, outcome)
		assert.Equal(t, 4, next.CurrentStreak)
		assert.Equal(t, 5, next.LongestStreak)
		assert.Equal(t, date(2024, 3, 2), next.LastUpdated)
		// prev is left intact
		assert.Equal(t, 3, prev.CurrentStreak)
	})
	t.Run("gap resets", func(t *testing.T) {
		prev := &entity.Streak{CurrentStreak: 4, LongestStreak: 5, LastUpdated: date(2024, 3, 2)}
		next, outcome, err := service.AdvanceStreak(prev, date(2024, 3, 5))
		require.NoError(t, err)
		assert.Equal(t, service.StreakReset, outcome)
		assert.Equal(t, entity.Streak{CurrentStreak: 1, LongestStreak: 5, LastUpdated: date(2024, 3, 5)}, *next)
	})
	t.Run("same day is idempotent", func(t *testing.T) {
		prev := &entity.Streak{CurrentStreak: 2, LongestStreak: 2, LastUpdated: date(2024, 3, 2)}
		first, outcome, err := service.AdvanceStreak(prev, date(2024, 3, 2))
		require.NoError(t, err)
		assert.Equal(t, service.StreakUnchanged, outcome)
		second, _, err := service.AdvanceStreak(first, date(2024, 3, 2))
		require.NoError(t, err)
		assert.Equal(t, 2, first.CurrentStreak)
		assert.Equal(t, first.CurrentStreak, second.CurrentStreak)
	})
	t.Run("extension raises longest", func(t *testing.T) {
		prev := &entity.Streak{CurrentStreak: 5, LongestStreak: 5, LastUpdated: date(2024, 2, 28)}
		next, _, err := service.AdvanceStreak(prev, date(2024, 2, 29))
		require.NoError(t, err)
		assert.Equal(t, 6, next.CurrentStreak)
		assert.Equal(t, 6, next.LongestStreak)
	})
	t.Run("backwards clock leaves count", func(t *testing.T) {
		prev := &entity.Streak{CurrentStreak: 3, LongestStreak: 4, LastUpdated: date(2024, 3, 10)}
		next, outcome, err := service.AdvanceStreak(prev, date(2024, 3, 8))
		require.NoError(t, err)
		assert.Equal(t, service.StreakUnchanged, outcome)
		assert.Equal(t, 3, next.CurrentStreak)
	})
	t.Run("invalid today", func(t *testing.T) {
		_, _, err := service.AdvanceStreak(nil, civil.Date{Year: 2024, Month: 2, Day: 30})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
}

func TestStreakLongestNeverDecreases(t *testing.T) {
	// Mix of consecutive days, same-day repeats and gaps
	offsets := []int{0, 1, 1, 0, 1, 3, 1, 1, 1, 1, 0, 5, 1, 2, 1, 1}
	day := date(2024, 1, 1)
	var (
		s       *entity.Streak
		longest int
	)
	for _, off := range offsets {
		day = day.AddDays(off)
		next, _, err := service.AdvanceStreak(s, day)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, next.LongestStreak, longest)
		assert.GreaterOrEqual(t, next.LongestStreak, next.CurrentStreak)
		longest = next.LongestStreak
		s = next
	}
	assert.Equal(t, 5, longest)
}

func TestLifecycleTransitions(t *testing.T) {
	testCases := []struct {
		Name      string
		From      entity.GoalStatus
		Step      func(*entity.Goal) error
		Expected  entity.GoalStatus
		IsIllegal bool
	}{
		{Name: "start not started", From: entity.GoalStatusNotStarted, Step: service.StartProgress, Expected: entity.GoalStatusInProgress},
		{Name: "start in progress", From: entity.GoalStatusInProgress, Step: service.StartProgress, IsIllegal: true},
		{Name: "start completed", From: entity.GoalStatusCompleted, Step: service.StartProgress, IsIllegal: true},
		{Name: "done in progress", From: entity.GoalStatusInProgress, Step: service.MarkDone, Expected: entity.GoalStatusCompleted},
		{Name: "done not started", From: entity.GoalStatusNotStarted, Step: service.MarkDone, IsIllegal: true},
		{Name: "done completed", From: entity.GoalStatusCompleted, Step: service.MarkDone, IsIllegal: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			goal := &entity.Goal{Status: tc.From}
			err := tc.Step(goal)
			if tc.IsIllegal {
				assert.ErrorIs(t, err, errorvalues.ErrIllegalTransition)
				assert.Equal(t, tc.From, goal.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, goal.Status)
		})
	}
}

func TestApplyEdit(t *testing.T) {
	sectionID := uuid.New()
	goal := &entity.Goal{
		Title:            "old",
		Description:      "old desc",
		Priority:         entity.PriorityLow,
		Status:           entity.GoalStatusCompleted,
		StartDate:        date(2024, 1, 1),
		TargetDate:       date(2024, 1, 11),
		ExpectedDuration: 10,
	}
	title := "  new  "
	high := entity.PriorityHigh
	service.ApplyEdit(goal, service.GoalEdit{Title: &title, Priority: &high})
	assert.Equal(t, "new", goal.Title)
	assert.Equal(t, "old desc", goal.Description)
	assert.Equal(t, entity.PriorityHigh, goal.Priority)
	// Edits never touch status or schedule
	assert.Equal(t, entity.GoalStatusCompleted, goal.Status)
	assert.Equal(t, date(2024, 1, 11), goal.TargetDate)
	assert.Equal(t, 10, goal.ExpectedDuration)

	service.ApplyEdit(goal, service.GoalEdit{SectionID: &sectionID})
	require.NotNil(t, goal.SectionID)
	assert.Equal(t, sectionID, *goal.SectionID)
	service.ApplyEdit(goal, service.GoalEdit{SectionID: &sectionID, ClearSection: true})
	assert.Nil(t, goal.SectionID)
}
