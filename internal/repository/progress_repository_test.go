package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/pkg/datemath"
	"github.com/limbo/goalkeeper/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGoalUpdate(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewGoalUpdatesRepo(conn)
	progress := 40
	query := regexp.QuoteMeta(`INSERT INTO goal_updates (goal_id, user_id, content, progress_percentage)`)
	t.Run("created", func(t *testing.T) {
		update := entity.GoalUpdate{GoalID: uuid.New(), UserID: uuid.New(), Content: "read 30 pages", ProgressPercentage: &progress}
		id := uuid.New()
		createdAt := time.Now()
		conn.ExpectQuery(query).
			WithArgs(update.GoalID, update.UserID, update.Content, update.ProgressPercentage).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, createdAt))
		require.NoError(t, repo.Create(ctx, &update))
		assert.Equal(t, id, update.ID)
		assert.Equal(t, createdAt, update.CreatedAt)
	})
	t.Run("goal gone", func(t *testing.T) {
		update := entity.GoalUpdate{GoalID: uuid.New(), UserID: uuid.New(), Content: "x"}
		conn.ExpectQuery(query).
			WithArgs(update.GoalID, update.UserID, update.Content, update.ProgressPercentage).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Create(ctx, &update), errorvalues.ErrGoalNotFound)
	})
}

func TestGetGoalUpdates(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewGoalUpdatesRepo(conn)
	goalID := uuid.New()
	uid := uuid.New()
	progress := 70
	query := regexp.QuoteMeta(`FROM goal_updates WHERE goal_id = $1 ORDER BY created_at DESC;`)
	t.Run("newest first", func(t *testing.T) {
		now := time.Now()
		conn.ExpectQuery(query).WithArgs(goalID).WillReturnRows(
			pgxmock.NewRows([]string{"id", "goal_id", "user_id", "content", "progress_percentage", "created_at"}).
				AddRow(uuid.New(), goalID, uid, "second", &progress, now).
				AddRow(uuid.New(), goalID, uid, "first", nil, now.Add(-time.Hour)),
		)
		updates, err := repo.GetByGoalID(ctx, goalID)
		require.NoError(t, err)
		require.Len(t, updates, 2)
		assert.Equal(t, "second", updates[0].Content)
		assert.Equal(t, 70, *updates[0].ProgressPercentage)
		assert.Nil(t, updates[1].ProgressPercentage)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(goalID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByGoalID(ctx, goalID)
		assert.ErrorIs(t, err, errorvalues.ErrPersistenceFailure)
	})
}

var streakColumns = []string{"id", "user_id", "goal_id", "current_streak", "longest_streak", "last_updated"}

func TestGetStreak(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewStreaksRepo(conn)
	query := regexp.QuoteMeta(`FROM streaks WHERE goal_id = $1;`)
	streak := entity.Streak{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		GoalID:        uuid.New(),
		CurrentStreak: 3,
		LongestStreak: 5,
		LastUpdated:   civil.Date{Year: 2024, Month: 3, Day: 1},
	}
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(streak.GoalID).WillReturnRows(pgxmock.NewRows(streakColumns).
			AddRow(streak.ID, streak.UserID, streak.GoalID, streak.CurrentStreak, streak.LongestStreak, datemath.ToTime(streak.LastUpdated)))
		res, err := repo.GetByGoalID(ctx, streak.GoalID)
		require.NoError(t, err)
		assert.Equal(t, streak, *res)
	})
	t.Run("none yet", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(streak.GoalID).WillReturnError(pgx.ErrNoRows)
		res, err := repo.GetByGoalID(ctx, streak.GoalID)
		assert.NoError(t, err)
		assert.Nil(t, res)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(streak.GoalID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByGoalID(ctx, streak.GoalID)
		assert.ErrorIs(t, err, errorvalues.ErrPersistenceFailure)
	})
}

func TestCreateStreak(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewStreaksRepo(conn)
	query := regexp.QuoteMeta(`INSERT INTO streaks (user_id, goal_id, current_streak, longest_streak, last_updated)`)
	streak := entity.Streak{
		UserID:        uuid.New(),
		GoalID:        uuid.New(),
		CurrentStreak: 1,
		LongestStreak: 1,
		LastUpdated:   civil.Date{Year: 2024, Month: 3, Day: 1},
	}
	args := []any{streak.UserID, streak.GoalID, 1, 1, datemath.ToTime(streak.LastUpdated)}
	t.Run("created", func(t *testing.T) {
		id := uuid.New()
		conn.ExpectQuery(query).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		res, err := repo.Create(ctx, &streak)
		require.NoError(t, err)
		assert.Equal(t, id, res)
	})
	t.Run("created concurrently", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Create(ctx, &streak)
		assert.ErrorIs(t, err, errorvalues.ErrStreakConflict)
	})
	t.Run("goal gone", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &streak)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
}

func TestUpdateStreak(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewStreaksRepo(conn)
	query := regexp.QuoteMeta(`UPDATE streaks SET current_streak = $1, longest_streak = $2, last_updated = $3`)
	prev := &entity.Streak{ID: uuid.New(), CurrentStreak: 3, LongestStreak: 5, LastUpdated: civil.Date{Year: 2024, Month: 3, Day: 1}}
	next := &entity.Streak{ID: prev.ID, CurrentStreak: 4, LongestStreak: 5, LastUpdated: civil.Date{Year: 2024, Month: 3, Day: 2}}
	args := []any{4, 5, datemath.ToTime(next.LastUpdated), prev.ID, 3, datemath.ToTime(prev.LastUpdated)}
	t.Run("swapped", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, prev, next))
	})
	t.Run("stale prev", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, prev, next)
		assert.ErrorIs(t, err, errorvalues.ErrStreakConflict)
		assert.ErrorIs(t, err, errorvalues.ErrPersistenceFailure)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		err := repo.Update(ctx, prev, next)
		assert.ErrorIs(t, err, errorvalues.ErrPersistenceFailure)
		assert.False(t, errors.Is(err, errorvalues.ErrStreakConflict))
	})
}

func TestSectionsRepository(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewSectionsRepo(conn)
	now := time.Now()
	section := entity.Section{ID: uuid.New(), UserID: uuid.New(), Title: "health", Description: "", CreatedAt: now, UpdatedAt: now}
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sections (user_id, title, description) VALUES ($1, $2, $3) RETURNING id;`)).
			WithArgs(section.UserID, section.Title, section.Description).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(section.ID))
		id, err := repo.Create(ctx, &section)
		require.NoError(t, err)
		assert.Equal(t, section.ID, id)
	})
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM sections WHERE id = $1;`)).
			WithArgs(section.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "title", "description", "created_at", "updated_at"}).
				AddRow(section.UserID, section.Title, section.Description, now, now))
		res, err := repo.GetByID(ctx, section.ID)
		require.NoError(t, err)
		assert.Equal(t, section, *res)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM sections WHERE id = $1;`)).
			WithArgs(section.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, section.ID)
		assert.ErrorIs(t, err, errorvalues.ErrSectionNotFound)
	})
	t.Run("listed", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM sections WHERE user_id = $1 ORDER BY created_at ASC;`)).
			WithArgs(section.UserID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "description", "created_at", "updated_at"}).
				AddRow(section.ID, section.UserID, section.Title, section.Description, now, now))
		res, err := repo.GetByUserID(ctx, section.UserID)
		require.NoError(t, err)
		assert.Len(t, res, 1)
	})
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`DELETE FROM sections WHERE id = $1;`)).
			WithArgs(section.ID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, section.ID))
	})
	t.Run("delete missing", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`DELETE FROM sections WHERE id = $1;`)).
			WithArgs(section.ID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, section.ID), errorvalues.ErrSectionNotFound)
	})
}
