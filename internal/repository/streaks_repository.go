package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/datemath"
	"github.com/limbo/goalkeeper/pkg/entity"
)

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(conn PgConnection) *StreaksRepository {
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) GetByGoalID(ctx context.Context, goalID uuid.UUID) (*entity.Streak, error) {
	var (
		s           entity.Streak
		lastUpdated time.Time
	)
	row := sr.conn.QueryRow(ctx, `SELECT id, user_id, goal_id, current_streak, longest_streak, last_updated
		FROM streaks WHERE goal_id = $1;`, goalID)
	if err := row.Scan(&s.ID, &s.UserID, &s.GoalID, &s.CurrentStreak, &s.LongestStreak, &lastUpdated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("getting streak by goal id", err)
	}
	s.LastUpdated = datemath.DateOf(lastUpdated)
	return &s, nil
}

func (sr *StreaksRepository) Create(ctx context.Context, streak *entity.Streak) (uuid.UUID, error) {
	var id uuid.UUID
	row := sr.conn.QueryRow(ctx, `INSERT INTO streaks (user_id, goal_id, current_streak, longest_streak, last_updated)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		streak.UserID,
		streak.GoalID,
		streak.CurrentStreak,
		streak.LongestStreak,
		datemath.ToTime(streak.LastUpdated),
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrorCode(err) {
		// Another update created the streak first
		case pgUniqueViolation:
			return uuid.UUID{}, dbError("creating streak", errorvalues.ErrStreakConflict)
		case pgForeignKeyViolation:
			return uuid.UUID{}, errorvalues.ErrGoalNotFound
		}
		return uuid.UUID{}, dbError("creating streak", err)
	}
	return id, nil
}

// Update is a compare-and-swap on the counters and date read earlier, so two
// concurrent updates cannot both build on the same prev.
func (sr *StreaksRepository) Update(ctx context.Context, prev, next *entity.Streak) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE streaks SET current_streak = $1, longest_streak = $2, last_updated = $3
		WHERE id = $4 AND current_streak = $5 AND last_updated = $6;`,
		next.CurrentStreak,
		next.LongestStreak,
		datemath.ToTime(next.LastUpdated),
		prev.ID,
		prev.CurrentStreak,
		datemath.ToTime(prev.LastUpdated),
	)
	if err != nil {
		return dbError("updating streak", err)
	}
	if ct.RowsAffected() == 0 {
		return dbError("updating streak", errorvalues.ErrStreakConflict)
	}
	return nil
}
