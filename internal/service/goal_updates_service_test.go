package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/repository/mocks"
	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type updatesRepoMocks struct {
	goals   *mocks.MockGoalsRepositoryI
	updates *mocks.MockGoalUpdatesRepositoryI
	streaks *mocks.MockStreaksRepositoryI
}

func newGoalUpdatesService(t *testing.T) (*service.GoalUpdatesService, updatesRepoMocks) {
	ctrl := gomock.NewController(t)
	m := updatesRepoMocks{
		goals:   mocks.NewMockGoalsRepositoryI(ctrl),
		updates: mocks.NewMockGoalUpdatesRepositoryI(ctrl),
		streaks: mocks.NewMockStreaksRepositoryI(ctrl),
	}
	return service.NewGoalUpdatesService(m.goals, m.updates, m.streaks), m
}

func TestRecordUpdate(t *testing.T) {
	s, m := newGoalUpdatesService(t)
	ctx := context.Background()
	streakID := uuid.New()
	req := service.RecordUpdateRequest{Content: "read 30 pages", ProgressPercentage: intPtr(40)}
	expectUpdate := func() {
		m.goals.EXPECT().GetByID(gomock.Any(), goalID).Return(testGoal(entity.GoalStatusInProgress), nil)
		m.updates.EXPECT().Create(gomock.Any(), &entity.GoalUpdate{
			GoalID:             goalID,
			UserID:             userID,
			Content:            req.Content,
			ProgressPercentage: req.ProgressPercentage,
		}).DoAndReturn(func(_ context.Context, u *entity.GoalUpdate) error {
			u.ID = uuid.New()
			u.CreatedAt = time.Now()
			return nil
		})
	}

	t.Run("first update creates streak", func(t *testing.T) {
		expectUpdate()
		m.streaks.EXPECT().GetByGoalID(gomock.Any(), goalID).Return(nil, nil)
		m.streaks.EXPECT().Create(gomock.Any(), &entity.Streak{
			UserID:        userID,
			GoalID:        goalID,
			CurrentStreak: 1,
			LongestStreak: 1,
			LastUpdated:   date(2024, 3, 1),
		}).Return(streakID, nil)
		update, streak, err := s.RecordUpdate(ctx, goalID, userID, req, date(2024, 3, 1))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, update.ID)
		assert.Equal(t, entity.Streak{
			ID:            streakID,
			UserID:        userID,
			GoalID:        goalID,
			CurrentStreak: 1,
			LongestStreak: 1,
			LastUpdated:   date(2024, 3, 1),
		}, *streak)
	})
	t.Run("next day extends streak", func(t *testing.T) {
		prev := &entity.Streak{ID: streakID, UserID: userID, GoalID: goalID, CurrentStreak: 3, LongestStreak: 5, LastUpdated: date(2024, 3, 1)}
		next := *prev
		next.CurrentStreak = 4
		next.LastUpdated = date(2024, 3, 2)
		expectUpdate()
		m.streaks.EXPECT().GetByGoalID(gomock.Any(), goalID).Return(prev, nil)
		m.streaks.EXPECT().Update(gomock.Any(), prev, &next).Return(nil)
		_, streak, err := s.RecordUpdate(ctx, goalID, userID, req, date(2024, 3, 2))
		require.NoError(t, err)
		assert.Equal(t, next, *streak)
	})
	t.Run("gap resets streak", func(t *testing.T) {
		prev := &entity.Streak{ID: streakID, UserID: userID, GoalID: goalID, CurrentStreak: 4, LongestStreak: 5, LastUpdated: date(2024, 3, 2)}
		expectUpdate()
		m.streaks.EXPECT().GetByGoalID(gomock.Any(), goalID).Return(prev, nil)
		m.streaks.EXPECT().Update(gomock.Any(), prev, gomock.Any()).Return(nil)
		_, streak, err := s.RecordUpdate(ctx, goalID, userID, req, date(2024, 3, 5))
		require.NoError(t, err)
		assert.Equal(t, 1, streak.CurrentStreak)
		assert.Equal(t, 5, streak.LongestStreak)
		assert.Equal(t, date(2024, 3, 5), streak.LastUpdated)
	})
	t.Run("same day writes nothing", func(t *testing.T) {
		prev := &entity.Streak{ID: streakID, UserID: userID, GoalID: goalID, CurrentStreak: 2, LongestStreak: 2, LastUpdated: date(2024, 3, 5)}
		expectUpdate()
		m.streaks.EXPECT().GetByGoalID(gomock.Any(), goalID).Return(prev, nil)
		_, streak, err := s.RecordUpdate(ctx, goalID, userID, req, date(2024, 3, 5))
		require.NoError(t, err)
		assert.Equal(t, *prev, *streak)
	})
	t.Run("lost race is reported", func(t *testing.T) {
		prev := &entity.Streak{ID: streakID, UserID: userID, GoalID: goalID, CurrentStreak: 1, LongestStreak: 1, LastUpdated: date(2024, 3, 5)}
		expectUpdate()
		m.streaks.EXPECT().GetByGoalID(gomock.Any(), goalID).Return(prev, nil)
		m.streaks.EXPECT().Update(gomock.Any(), prev, gomock.Any()).Return(errorvalues.ErrStreakConflict).Times(1)
		_, _, err := s.RecordUpdate(ctx, goalID, userID, req, date(2024, 3, 6))
		assert.ErrorIs(t, err, errorvalues.ErrStreakConflict)
	})
	t.Run("empty content", func(t *testing.T) {
		_, _, err := s.RecordUpdate(ctx, goalID, userID, service.RecordUpdateRequest{Content: "  \n"}, date(2024, 3, 6))
		assert.ErrorIs(t, err, errorvalues.ErrEmptyContent)
	})
	t.Run("progress out of range", func(t *testing.T) {
		_, _, err := s.RecordUpdate(ctx, goalID, userID, service.RecordUpdateRequest{Content: "x", ProgressPercentage: intPtr(101)}, date(2024, 3, 6))
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("foreign goal", func(t *testing.T) {
		m.goals.EXPECT().GetByID(gomock.Any(), goalID).Return(testGoal(entity.GoalStatusInProgress), nil)
		_, _, err := s.RecordUpdate(ctx, goalID, uuid.New(), req, date(2024, 3, 6))
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("update not persisted", func(t *testing.T) {
		m.goals.EXPECT().GetByID(gomock.Any(), goalID).Return(testGoal(entity.GoalStatusInProgress), nil)
		m.updates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr)
		_, _, err := s.RecordUpdate(ctx, goalID, userID, req, date(2024, 3, 6))
		assert.ErrorIs(t, err, errorvalues.ErrPersistenceFailure)
	})
}

func TestListUpdatesAndStreak(t *testing.T) {
	s, m := newGoalUpdatesService(t)
	ctx := context.Background()
	t.Run("updates", func(t *testing.T) {
		m.goals.EXPECT().GetByID(gomock.Any(), goalID).Return(testGoal(entity.GoalStatusInProgress), nil)
		m.updates.EXPECT().GetByGoalID(gomock.Any(), goalID).Return([]*entity.GoalUpdate{
			{ID: uuid.New(), GoalID: goalID, Content: "second"},
			{ID: uuid.New(), GoalID: goalID, Content: "first"},
		}, nil)
		updates, err := s.ListUpdates(ctx, goalID, userID)
		require.NoError(t, err)
		assert.Len(t, updates, 2)
		assert.Equal(t, "second", updates[0].Content)
	})
	t.Run("no streak yet", func(t *testing.T) {
		m.goals.EXPECT().GetByID(gomock.Any(), goalID).Return(testGoal(entity.GoalStatusNotStarted), nil)
		m.streaks.EXPECT().GetByGoalID(gomock.Any(), goalID).Return(nil, nil)
		streak, err := s.GetStreak(ctx, goalID, userID)
		require.NoError(t, err)
		assert.Nil(t, streak)
	})
	t.Run("foreign goal", func(t *testing.T) {
		m.goals.EXPECT().GetByID(gomock.Any(), goalID).Return(testGoal(entity.GoalStatusNotStarted), nil)
		_, err := s.GetStreak(ctx, goalID, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}
